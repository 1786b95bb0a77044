package session

import (
	"encoding/json"
	"fmt"

	"vitaverify/internal/domain"
)

// Parser implements domain.SessionParser over JSON text.
type Parser struct{}

// New returns a session parser.
func New() *Parser { return &Parser{} }

// Parse decodes payload into an AttestedSession. Keys match exactly and may
// not repeat within an object; unknown keys are ignored. Malformed JSON, a
// missing, null or mistyped field, or an unpaired surrogate escape is
// reported as InvalidMessage carrying the decoder diagnostic.
func (p *Parser) Parse(payload string) (domain.AttestedSession, error) {
	s, err := parse([]byte(payload))
	if err != nil {
		return domain.AttestedSession{}, domain.InvalidMessage("invalid session payload: %v", err)
	}
	return s, nil
}

func parse(data []byte) (domain.AttestedSession, error) {
	var s domain.AttestedSession
	if err := checkDocument(data); err != nil {
		return s, err
	}
	root, err := decodeObject(data, "session")
	if err != nil {
		return s, err
	}

	if s.Version, err = root.str("version", "version"); err != nil {
		return s, err
	}
	meta, err := root.obj("meta", "meta")
	if err != nil {
		return s, err
	}
	if s.Meta.NotaryURL, err = meta.str("notaryUrl", "meta.notaryUrl"); err != nil {
		return s, err
	}
	if s.Meta.WebsocketProxyURL, err = meta.str("websocketProxyUrl", "meta.websocketProxyUrl"); err != nil {
		return s, err
	}
	if s.Signature, err = root.str("signature", "signature"); err != nil {
		return s, err
	}
	if s.ApplicationData, err = root.str("applicationData", "applicationData"); err != nil {
		return s, err
	}

	rawAttrs, err := root.value("attributes", "attributes")
	if err != nil {
		return s, err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(rawAttrs, &items); err != nil {
		return s, fmt.Errorf("attributes: %w", err)
	}
	s.Attributes = make([]domain.Attribute, 0, len(items))
	for i, item := range items {
		a, err := parseAttribute(item, fmt.Sprintf("attributes[%d]", i))
		if err != nil {
			return domain.AttestedSession{}, err
		}
		s.Attributes = append(s.Attributes, a)
	}
	return s, nil
}

func parseAttribute(raw json.RawMessage, path string) (domain.Attribute, error) {
	var a domain.Attribute
	o, err := decodeObject(raw, path)
	if err != nil {
		return a, err
	}
	if a.AttributeHex, err = o.str("attributeHex", path+".attributeHex"); err != nil {
		return a, err
	}
	if a.AttributeName, err = o.str("attributeName", path+".attributeName"); err != nil {
		return a, err
	}
	if a.Signature, err = o.str("signature", path+".signature"); err != nil {
		return a, err
	}
	return a, nil
}

func missingField(name string) error {
	return fmt.Errorf("missing field `%s`", name)
}

// Compile-time assertion that Parser implements domain.SessionParser.
var _ domain.SessionParser = (*Parser)(nil)
