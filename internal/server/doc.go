// Package server exposes the redeem pipeline over HTTP.
//
// Routes:
//
//	GET  /health          liveness check
//	POST /verify          verify two sessions and issue a signed code
//	POST /api/v1/verify   same as /verify
//	GET  /api/v1/issuer   issuer public key and fingerprint
//
// Failures are reported as {code, message} with the HTTP status equal to
// code: 404 for a missing attribute or token, 401 for an undecodable
// signature, 400 for any other invalid input.
package server
