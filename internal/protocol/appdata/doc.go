// Package appdata decodes the hex-encoded HTTP transcript carried in an
// attested session's applicationData field.
//
// Decoding is lenient: undecodable hex pairs become NUL bytes and a
// transcript without both header separators yields empty sections. The
// result is informational only and never feeds the redemption code.
package appdata
