// Package logging wraps zerolog with the small surface the rest of the
// module logs through.
package logging
