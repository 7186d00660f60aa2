// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
)

const (
	// cuiMinLength and cuiMaxLength bound the full CUI, check digit included.
	cuiMinLength = 4
	cuiMaxLength = 10

	// cuiBaseLength is the width the base is zero-padded to before weighting.
	cuiBaseLength = 9
)

// cuiWeights is the control key applied to the padded base, left to right.
var cuiWeights = [cuiBaseLength]int{7, 5, 3, 2, 1, 7, 5, 3, 2}

// IsValidCUI reports whether candidate is a well-formed Romanian company
// identification number (Cod Unic de Înregistrare) with a correct check digit.
//
// A candidate is valid when it consists of 4 to 10 ASCII digits and its last
// digit equals the modulo-11 weighted sum of the preceding digits, padded on
// the left with zeros to 9 digits. A remainder of 10 maps to check digit 0.
//
// IsValidCUI never panics; any malformed input simply yields false.
func IsValidCUI(candidate string) bool {
	// byte-wise on purpose: multi-byte runes never fall into '0'..'9'
	for i := 0; i < len(candidate); i++ {
		if candidate[i] < '0' || candidate[i] > '9' {
			return false
		}
	}

	if len(candidate) < cuiMinLength || len(candidate) > cuiMaxLength {
		return false
	}

	checkDigit := candidate[len(candidate)-1]
	base := candidate[:len(candidate)-1]

	// leading zeros contribute nothing, so the base is aligned to the right
	// end of the weights instead of building a padded copy
	offset := cuiBaseLength - len(base)

	sum := 0
	for i := 0; i < len(base); i++ {
		sum += int(base[i]-'0') * cuiWeights[offset+i]
	}

	rest := sum % 11
	if rest == 10 {
		return checkDigit == '0'
	}

	return checkDigit == byte('0'+rest)
}

// CUIValidator implements the Validator interface for CUI candidates.
// It accepts string and *string values; fields are ignored since a CUI
// has no sub-fields to scope.
type CUIValidator struct {
}

// NewCUIValidator constructs a new CUIValidator and returns it as the
// Validator interface.
func NewCUIValidator() Validator {
	return &CUIValidator{}
}

// Validate returns ErrInvalidCUI when obj is not a valid CUI and
// ErrUnsupportedType when obj is not a string.
func (v *CUIValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateCUI(value)
	case *string:
		if value == nil {
			return ErrInvalidCUI
		}
		return v.validateCUI(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *CUIValidator) validateCUI(candidate string) error {
	if !IsValidCUI(candidate) {
		return ErrInvalidCUI
	}
	return nil
}
