package types

// Field names a semantic attribute inside an attested session.
type Field string

// String returns the string form of the field name.
func (f Field) String() string { return string(f) }

// Prefix returns the attribute-name prefix that selects this field.
func (f Field) Prefix() string { return string(f) + ":" }

const (
	FieldAuthor        Field = "author"
	FieldContent       Field = "content"
	FieldPostID        Field = "id"
	FieldBookmarkCount Field = "bookmark_count"
	FieldFavoriteCount Field = "favorite_count"
	FieldRetweetCount  Field = "retweet_count"
)

// Fingerprint is a short identifier for public keys presented to operators.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
