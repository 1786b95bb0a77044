// Package relay provides an HTTP implementation of domain.VerifyClient for
// submitting attested sessions to a running verification server.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Error responses carrying a {code, message} body are mapped back
// to domain errors of the matching kind; other non-2xx statuses are returned
// with the method, path and status text.
package relay
