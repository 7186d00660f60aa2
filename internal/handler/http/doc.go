// Package http implements the HTTP transport layer of the CUI validator.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, response compression
// and method checks are handled in this package before requests are
// delegated to the service layer.
package http
