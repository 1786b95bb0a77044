// Package contract extracts token contract addresses embedded in post text.
//
// An address is introduced by a "ca:" label. The label is matched without
// regard to case; the address itself is case-sensitive and must be either an
// EVM address (0x followed by 40 hex digits) or a 44-character base58 string.
// Whitespace around the colon and the word boundary after the address follow
// Unicode rules, so "ca :" is accepted and an address glued to a
// non-ASCII letter is not.
package contract
