// Package session decodes untrusted attested-session payloads.
//
// Every top-level field, both meta fields and all three attribute fields must
// be present with the right JSON type; empty values are accepted here and
// rejected later by the redeem pipeline where emptiness matters.
package session
