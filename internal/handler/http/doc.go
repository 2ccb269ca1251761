// Package http implements the HTTP transport layer of the sync backend.
//
// It exposes route wiring, the sync envelope handler and the middleware in
// front of it. Authentication, request tracing, access logging and gzip
// compression are handled in this package before requests are delegated to
// the service layer.
package http
