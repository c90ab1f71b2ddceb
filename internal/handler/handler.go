// Package handler is the HTTP entry point for business logic after the
// router.
//
// It binds and validates request payloads, calls the service layer, and
// shapes the JSON response envelopes.
package handler
