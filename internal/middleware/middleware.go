// Package middleware contains the HTTP middleware stack: request ids,
// request-scoped logging, CORS, panic recovery, secure headers, rate
// limiting, and the global error handler that turns every error into the
// wire envelope.
package middleware
