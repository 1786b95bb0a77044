// Package redeem runs the validate-then-issue pipeline.
//
// Two attested sessions are parsed, every attribute of each is checked
// against the notary key, both must name the same author, and the post
// session's attributes are turned into a signed redemption code. Any failure
// aborts the whole request; nothing is persisted.
package redeem
