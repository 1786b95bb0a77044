package session_test

import (
	"errors"
	"strings"
	"testing"

	"vitaverify/internal/domain"
	"vitaverify/internal/services/session"
)

const validPayload = `{
  "version": "1.0",
  "meta": {"notaryUrl": "https://notary.example", "websocketProxyUrl": "wss://proxy.example"},
  "signature": "abcd",
  "applicationData": "4745540d0a",
  "attributes": [
    {"attributeHex": "69643a2031", "attributeName": "id: 1", "signature": "00"},
    {"attributeHex": "", "attributeName": "", "signature": ""}
  ],
  "extra": true
}`

func TestParse_Valid(t *testing.T) {
	s, err := session.New().Parse(validPayload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Version != "1.0" || s.Meta.NotaryURL != "https://notary.example" || s.Meta.WebsocketProxyURL != "wss://proxy.example" {
		t.Fatalf("unexpected header fields: %+v", s)
	}
	if s.Signature != "abcd" || s.ApplicationData != "4745540d0a" {
		t.Fatalf("unexpected body fields: %+v", s)
	}
	if len(s.Attributes) != 2 || s.Attributes[0].AttributeName != "id: 1" {
		t.Fatalf("unexpected attributes: %+v", s.Attributes)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]struct {
		payload string
		detail  string
	}{
		"not json":           {`not json`, "invalid character"},
		"null":               {`null`, "missing field `version`"},
		"missing meta":       {`{"version":"1","signature":"","applicationData":"","attributes":[]}`, "missing field `meta`"},
		"missing proxy":      {`{"version":"1","meta":{"notaryUrl":""},"signature":"","applicationData":"","attributes":[]}`, "meta.websocketProxyUrl"},
		"missing attributes": {`{"version":"1","meta":{"notaryUrl":"","websocketProxyUrl":""},"signature":"","applicationData":""}`, "missing field `attributes`"},
		"attribute field":    {`{"version":"1","meta":{"notaryUrl":"","websocketProxyUrl":""},"signature":"","applicationData":"","attributes":[{"attributeHex":"","signature":""}]}`, "attributes[0].attributeName"},
		"mistyped":           {`{"version":1}`, "cannot unmarshal number"},
	}
	for name, c := range cases {
		_, err := session.New().Parse(c.payload)
		if !errors.Is(err, domain.ErrInvalidMessage) {
			t.Fatalf("%s: want InvalidMessage, got %v", name, err)
		}
		if !strings.Contains(err.Error(), c.detail) {
			t.Fatalf("%s: error %q missing diagnostic %q", name, err, c.detail)
		}
	}
}

func TestParse_KeysAreExactAndUnique(t *testing.T) {
	cases := map[string]struct {
		payload string
		detail  string
	}{
		"case-folded keys": {
			`{"VERSION":"1","Meta":{"NOTARYURL":"","websocketproxyurl":""},"Signature":"","APPLICATIONDATA":"","Attributes":[]}`,
			"missing field `version`",
		},
		"case-folded nested key": {
			`{"version":"1","meta":{"notaryUrl":"","WebsocketProxyUrl":""},"signature":"","applicationData":"","attributes":[]}`,
			"missing field `meta.websocketProxyUrl`",
		},
		"duplicate top-level key": {
			`{"version":"1","version":"2","meta":{"notaryUrl":"","websocketProxyUrl":""},"signature":"","applicationData":"","attributes":[]}`,
			"duplicate field `version`",
		},
		"duplicate key in attribute": {
			`{"version":"1","meta":{"notaryUrl":"","websocketProxyUrl":""},"signature":"","applicationData":"","attributes":[{"attributeHex":"","attributeName":"a","attributeName":"b","signature":""}]}`,
			"duplicate field `attributeName`",
		},
		"lone leading surrogate": {
			`{"version":"1","meta":{"notaryUrl":"","websocketProxyUrl":""},"signature":"","applicationData":"","attributes":[{"attributeHex":"","attributeName":"\ud800","signature":""}]}`,
			"lone leading surrogate",
		},
		"lone trailing surrogate": {
			`{"version":"\udc00","meta":{"notaryUrl":"","websocketProxyUrl":""},"signature":"","applicationData":"","attributes":[]}`,
			"lone trailing surrogate",
		},
		"trailing data": {
			`{"version":"1","meta":{"notaryUrl":"","websocketProxyUrl":""},"signature":"","applicationData":"","attributes":[]} x`,
			"invalid character",
		},
	}
	for name, c := range cases {
		_, err := session.New().Parse(c.payload)
		if !errors.Is(err, domain.ErrInvalidMessage) {
			t.Fatalf("%s: want InvalidMessage, got %v", name, err)
		}
		if !strings.Contains(err.Error(), c.detail) {
			t.Fatalf("%s: error %q missing diagnostic %q", name, err, c.detail)
		}
	}
}

func TestParse_SurrogatePairAndRepeatedKeysAcrossObjects(t *testing.T) {
	payload := `{"version":"1","meta":{"notaryUrl":"","websocketProxyUrl":"","version":"x"},"signature":"","applicationData":"",` +
		`"attributes":[{"attributeHex":"","attributeName":"\ud83d\ude00 \\u0041","signature":""},{"attributeHex":"","attributeName":"b","signature":""}]}`
	s, err := session.New().Parse(payload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := s.Attributes[0].AttributeName; got != "\U0001F600 \\u0041" {
		t.Fatalf("attributeName = %q", got)
	}
}
