package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// checkDocument walks data once, rejecting malformed JSON, an object that
// repeats a key, and \u escapes that encode an unpaired UTF-16 surrogate.
func checkDocument(data []byte) error {
	if err := checkDuplicateKeys(data); err != nil {
		return err
	}
	return checkSurrogates(data)
}

type frame struct {
	object    bool
	expectKey bool
	keys      map[string]struct{}
}

func checkDuplicateKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	var stack []*frame
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		var top *frame
		if len(stack) > 0 {
			top = stack[len(stack)-1]
		}

		if d, ok := tok.(json.Delim); ok && (d == '}' || d == ']') {
			stack = stack[:len(stack)-1]
			continue
		}
		if key, ok := tok.(string); ok && top != nil && top.object && top.expectKey {
			if _, dup := top.keys[key]; dup {
				return fmt.Errorf("duplicate field `%s`", key)
			}
			top.keys[key] = struct{}{}
			top.expectKey = false
			continue
		}

		// Any other token starts a value.
		if top != nil && top.object {
			top.expectKey = true
		}
		switch tok {
		case json.Delim('{'):
			stack = append(stack, &frame{object: true, expectKey: true, keys: map[string]struct{}{}})
		case json.Delim('['):
			stack = append(stack, &frame{})
		}
	}
}

// checkSurrogates expects syntactically valid JSON.
func checkSurrogates(data []byte) error {
	inString := false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if !inString {
			inString = c == '"'
			continue
		}
		switch c {
		case '"':
			inString = false
		case '\\':
			if i+5 >= len(data) || data[i+1] != 'u' {
				i++
				continue
			}
			r := hex4(data[i+2 : i+6])
			i += 5
			switch {
			case isLowSurrogate(r):
				return errors.New("lone trailing surrogate in hex escape")
			case isHighSurrogate(r):
				if i+6 < len(data) && data[i+1] == '\\' && data[i+2] == 'u' && isLowSurrogate(hex4(data[i+3:i+7])) {
					i += 6
					continue
				}
				return errors.New("lone leading surrogate in hex escape")
			}
		}
	}
	return nil
}

func hex4(b []byte) int {
	n, err := strconv.ParseUint(string(b), 16, 16)
	if err != nil {
		return -1
	}
	return int(n)
}

func isHighSurrogate(r int) bool { return r >= 0xD800 && r <= 0xDBFF }

func isLowSurrogate(r int) bool { return r >= 0xDC00 && r <= 0xDFFF }

// object holds one JSON object by exact key; encoding/json's struct decoding
// would also accept case-folded keys.
type object map[string]json.RawMessage

func decodeObject(raw json.RawMessage, path string) (object, error) {
	var o object
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

// value returns the raw value under key; an absent key and a JSON null are
// both reported as missing.
func (o object) value(key, path string) (json.RawMessage, error) {
	raw, ok := o[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, missingField(path)
	}
	return raw, nil
}

func (o object) str(key, path string) (string, error) {
	raw, err := o.value(key, path)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (o object) obj(key, path string) (object, error) {
	raw, err := o.value(key, path)
	if err != nil {
		return nil, err
	}
	return decodeObject(raw, path)
}
