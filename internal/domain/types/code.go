package types

import "strconv"

const (
	// CodeVersion is the protocol version tag of issued codes.
	CodeVersion = "v1"
	// CodeClient is the platform tag of issued codes.
	CodeClient = "twitter"
	// CodeDelimiter separates the fields of a redemption code. Fields are not
	// escaped, so a field containing it yields an unparseable code.
	CodeDelimiter = "-"
)

// RedemptionCode is the attested engagement in structured form.
type RedemptionCode struct {
	Version         string
	Client          string
	PostID          string
	ContractAddress string
	Engagement      uint64
}

// String renders version-client-postId-contractAddress-engagement.
func (c RedemptionCode) String() string {
	return c.Version + CodeDelimiter +
		c.Client + CodeDelimiter +
		c.PostID + CodeDelimiter +
		c.ContractAddress + CodeDelimiter +
		strconv.FormatUint(c.Engagement, 10)
}

// SignedRedemptionCode is the terminal output of a successful verification.
type SignedRedemptionCode struct {
	RedemCode string `json:"redemcode"`
	Signature string `json:"signature"`
}
