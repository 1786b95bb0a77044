package contract

import (
	"time"

	"github.com/dlclark/regexp2"

	"vitaverify/internal/domain"
)

// matchTimeout bounds a single search over post content.
const matchTimeout = 250 * time.Millisecond

// caPattern uses regexp2's Unicode \s and \b, so a no-break space counts as
// whitespace and an address glued to a non-ASCII letter does not match.
var caPattern = func() *regexp2.Regexp {
	re := regexp2.MustCompile(
		`(?i:ca)\s*:\s*(0x[0-9a-fA-F]{40}|[1-9A-HJ-NP-Za-km-z]{44})\b`,
		regexp2.None,
	)
	re.MatchTimeout = matchTimeout
	return re
}()

// Extract returns the first contract address in text, verbatim.
func Extract(text string) (string, error) {
	m, err := caPattern.FindStringMatch(text)
	if err != nil {
		return "", domain.InvalidMessage("ca search failed: %v", err)
	}
	if m == nil {
		return "", domain.NotFound("ca not found")
	}
	return m.GroupByNumber(1).String(), nil
}
