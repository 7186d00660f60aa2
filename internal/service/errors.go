package service

import "errors"

var (
	ErrAppNameIsNotSpecified = errors.New("app name is not specified")
	ErrStartTimeIsNotSet     = errors.New("process start time is not set")
)
