// Package errs defines the error taxonomy surfaced to API clients.
//
// Every user-visible failure is an *HTTPError carrying an HTTP status, a
// category label, and a human-readable message, serialized as
// {"success":false,"error":<label>,"message":<text>}.
package errs
