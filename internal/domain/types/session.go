package types

// AttestedSession is a notarized capture of an HTTPS session together with
// the attributes the notary signed individually.
type AttestedSession struct {
	Version         string      `json:"version"`
	Meta            SessionMeta `json:"meta"`
	Signature       string      `json:"signature"`
	ApplicationData string      `json:"applicationData"`
	Attributes      []Attribute `json:"attributes"`
}

// SessionMeta describes where the session was notarized.
type SessionMeta struct {
	NotaryURL         string `json:"notaryUrl"`
	WebsocketProxyURL string `json:"websocketProxyUrl"`
}

// Attribute is one signed "key: value" fact.
//
// AttributeHex must be the lowercase hex of the UTF-8 bytes of AttributeName;
// Signature is the hex of a fixed-width P-256 signature over those bytes.
type Attribute struct {
	AttributeHex  string `json:"attributeHex"`
	AttributeName string `json:"attributeName"`
	Signature     string `json:"signature"`
}
