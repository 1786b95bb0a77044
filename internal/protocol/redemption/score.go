package redemption

import (
	"strconv"
	"strings"

	"vitaverify/internal/domain"
	"vitaverify/internal/protocol/attribute"
)

// engagementOffset is added to every score.
const engagementOffset = 1

// Score parses the three counts and returns their sum plus the fixed offset.
func Score(bookmark, favorite, retweet string) (uint64, error) {
	b, err := parseCount(domain.FieldBookmarkCount, bookmark)
	if err != nil {
		return 0, err
	}
	f, err := parseCount(domain.FieldFavoriteCount, favorite)
	if err != nil {
		return 0, err
	}
	r, err := parseCount(domain.FieldRetweetCount, retweet)
	if err != nil {
		return 0, err
	}
	return b + f + r + engagementOffset, nil
}

// ScoreEngagement scores an extracted engagement triple.
func ScoreEngagement(e attribute.Engagement) (uint64, error) {
	return Score(e.Bookmark, e.Favorite, e.Retweet)
}

// parseCount accepts unsigned 32-bit decimal counts with at most one
// leading '+'.
func parseCount(field domain.Field, v string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(v, "+"), 10, 32)
	if err != nil {
		return 0, domain.InvalidMessage("%s is not a valid count: %q", field, v)
	}
	return n, nil
}
