// Package http implements the REST transport of the notes service.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as bearer authentication, request tracing, access logging
// and response compression are handled in this package before requests are
// delegated to the service layer.
package http
