package contract_test

import (
	"errors"
	"testing"

	"vitaverify/internal/domain"
	"vitaverify/internal/protocol/contract"
)

func TestExtract_Matches(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"base58 lowercase label", "Dobby thinks friends should ca:6p6xgHyF7AeE6TZkSmFsko444wqoP15icUSqi2jfGiPN always carry a sock", "6p6xgHyF7AeE6TZkSmFsko444wqoP15icUSqi2jfGiPN"},
		{"base58 at end of text", "Dobby thinks friends should ca:7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump", "7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump"},
		{"evm mixed-case label", "Test Ca:0x85e58d0f9152669083bda1e6638fa6400898d0ee test", "0x85e58d0f9152669083bda1e6638fa6400898d0ee"},
		{"evm at end of text", "Test Ca:0x85e58d0f9152669083bda1e6638fa6400898d0ee", "0x85e58d0f9152669083bda1e6638fa6400898d0ee"},
		{"spaces around colon", "CA : 7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump!", "7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump"},
		{"no-break space before colon", "ca\u00a0:7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump", "7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump"},
		{"followed by em dash", "ca:7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump\u2014you never know", "7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump"},
		{"first match wins", "ca:0x85e58d0f9152669083bda1e6638fa6400898d0ee and ca:7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump", "0x85e58d0f9152669083bda1e6638fa6400898d0ee"},
		{"skips invalid then finds valid", "ca:xxxx then ca:7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump", "7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump"},
		{"ideographic space after colon", "ca:\u30007mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump", "7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump"},
		{"next line before colon", "ca\u0085:0x85e58d0f9152669083bda1e6638fa6400898d0ee", "0x85e58d0f9152669083bda1e6638fa6400898d0ee"},
		{"evm uppercase hex preserved", "ca:0x85E58D0F9152669083BDA1E6638FA6400898D0EE.", "0x85E58D0F9152669083BDA1E6638FA6400898D0EE"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := contract.Extract(c.text)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestExtract_NotFound(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"short token with spaces", "Start CA : ABC123 end"},
		{"short token mixed case", "Test Ca:XYZ789 test"},
		{"no label", "Dobby thinks friends should always carry a sock"},
		{"placeholder token", "Dobby thinks ca:xxxxxxxx friends should always carry a sock"},
		{"empty token", "Dobby thinks friends should ca: always carry a sock"},
		{"base58 with excluded char", "ca:7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpum0"},
		{"base58 too long", "ca:7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpumpX"},
		{"evm too long", "ca:0x85e58d0f9152669083bda1e6638fa6400898d0eef"},
		{"evm uppercase prefix", "ca:0X85e58d0f9152669083bda1e6638fa6400898d0ee"},
		{"glued to non-ascii letter", "ca:7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump\u00e9"},
		{"glued to combining mark", "ca:7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump\u0301"},
		{"glued to non-ascii digit", "ca:0x85e58d0f9152669083bda1e6638fa6400898d0ee\u0663"},
		{"label split by newline escape", `ca\n:7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := contract.Extract(c.text)
			if !errors.Is(err, domain.ErrNotFound) {
				t.Fatalf("want NotFound, got %v", err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	if k := contract.Classify("0x85e58d0f9152669083bda1e6638fa6400898d0ee"); k != contract.KindEVM {
		t.Fatalf("got %s, want evm", k)
	}
	if k := contract.Classify("7mHCx9iXPJ7EJDbDAUGmej39Kme8cxZfeVi1EAvEpump"); k != contract.KindSolana {
		t.Fatalf("got %s, want solana", k)
	}
	if k := contract.Classify("ABC123"); k != contract.KindUnknown {
		t.Fatalf("got %s, want unknown", k)
	}
}
