// Package attribute locates semantic fields inside a notarized attribute list.
//
// Attributes are unordered "key: value" strings. A field is selected by the
// first attribute whose name starts with "key:"; later duplicates are ignored.
package attribute
