package contract

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

// Kind is the chain family an address appears to belong to.
type Kind string

const (
	KindEVM     Kind = "evm"
	KindSolana  Kind = "solana"
	KindUnknown Kind = "unknown"
)

const solanaPubkeySize = 32

// Classify guesses the chain family of an extracted address. It is
// informational; extraction never depends on it.
func Classify(addr string) Kind {
	if strings.HasPrefix(addr, "0x") && common.IsHexAddress(addr) {
		return KindEVM
	}
	if raw, err := base58.Decode(addr); err == nil && len(raw) == solanaPubkeySize {
		return KindSolana
	}
	return KindUnknown
}
