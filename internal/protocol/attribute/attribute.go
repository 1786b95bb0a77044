package attribute

import (
	"strings"

	"vitaverify/internal/domain"
)

// missing holds the NotFound detail reported for each field.
var missing = map[domain.Field]string{
	domain.FieldAuthor:        "Author information is missing",
	domain.FieldContent:       "Message content is missing",
	domain.FieldPostID:        "Post ID is missing",
	domain.FieldBookmarkCount: "Bookmark count is missing",
	domain.FieldFavoriteCount: "Like count is missing",
	domain.FieldRetweetCount:  "Share count is missing",
}

// Find returns the value of the first attribute named field.
func Find(attrs []domain.Attribute, field domain.Field) (string, error) {
	prefix := field.Prefix()
	for _, attr := range attrs {
		if strings.HasPrefix(attr.AttributeName, prefix) {
			return Value(attr.AttributeName), nil
		}
	}
	msg, ok := missing[field]
	if !ok {
		msg = field.String() + " is missing"
	}
	return "", domain.NotFound("%s", msg)
}

// Value extracts the value part of a "key: value" attribute name: everything
// after the first colon, trimmed, with one enclosing quote stripped per side.
func Value(name string) string {
	_, rest, _ := strings.Cut(name, ":")
	rest = strings.TrimSpace(rest)
	rest = strings.TrimPrefix(rest, `"`)
	rest = strings.TrimSuffix(rest, `"`)
	return rest
}

// Engagement is the triple of counts that feed the engagement score.
type Engagement struct {
	Bookmark string
	Favorite string
	Retweet  string
}

// FindEngagement extracts the three count fields in bookmark, favorite,
// retweet order and stops at the first missing one.
func FindEngagement(attrs []domain.Attribute) (Engagement, error) {
	var (
		e   Engagement
		err error
	)
	if e.Bookmark, err = Find(attrs, domain.FieldBookmarkCount); err != nil {
		return Engagement{}, err
	}
	if e.Favorite, err = Find(attrs, domain.FieldFavoriteCount); err != nil {
		return Engagement{}, err
	}
	if e.Retweet, err = Find(attrs, domain.FieldRetweetCount); err != nil {
		return Engagement{}, err
	}
	return e, nil
}
