package redemption

import (
	"fmt"
	"strconv"
	"strings"

	"vitaverify/internal/domain"
)

const codeFields = 5

// Build assembles a redemption code under the current version and client tags.
func Build(postID, contractAddress string, engagement uint64) domain.RedemptionCode {
	return domain.RedemptionCode{
		Version:         domain.CodeVersion,
		Client:          domain.CodeClient,
		PostID:          postID,
		ContractAddress: contractAddress,
		Engagement:      engagement,
	}
}

// Parse splits a rendered code back into its fields. Codes whose post id or
// address contained the delimiter do not have exactly five fields and are
// rejected.
func Parse(code string) (domain.RedemptionCode, error) {
	parts := strings.Split(code, domain.CodeDelimiter)
	if len(parts) != codeFields {
		return domain.RedemptionCode{}, fmt.Errorf("redemption code: want %d fields, got %d", codeFields, len(parts))
	}
	engagement, err := strconv.ParseUint(parts[4], 10, 64)
	if err != nil {
		return domain.RedemptionCode{}, fmt.Errorf("redemption code: engagement %q: %w", parts[4], err)
	}
	return domain.RedemptionCode{
		Version:         parts[0],
		Client:          parts[1],
		PostID:          parts[2],
		ContractAddress: parts[3],
		Engagement:      engagement,
	}, nil
}
