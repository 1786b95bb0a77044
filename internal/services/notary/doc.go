// Package notary verifies attribute signatures issued by the TLS notary.
package notary
