package appdata

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// IdentityHeader carries the semaphore identity commitment in the request.
const IdentityHeader = "x-semaphore-identity"

const sectionSeparator = "\r\n\r\n"

var hostnamePattern = regexp.MustCompile(`^(?:https?://)?(?:[^@\n]+@)?(?:www\.)?([^:/\n?]+)`)

// Transcript is the decoded request/response exchange.
type Transcript struct {
	Hostname           string `json:"hostname"`
	RequestURL         string `json:"requestUrl"`
	Request            string `json:"request"`
	ResponseHeader     string `json:"responseHeader"`
	ResponseBody       string `json:"responseBody"`
	IdentityCommitment string `json:"semaphoreIdentityCommitment"`
}

// Decode parses a hex transcript. It never fails.
func Decode(hexString string) Transcript {
	text := decodeLatin1(hexString)

	var request, header, body string
	if parts := strings.Split(text, sectionSeparator); len(parts) >= 3 {
		request, header, body = parts[0], parts[1], parts[2]
	}

	lines := strings.Split(request, "\r")
	url := requestURL(lines)
	return Transcript{
		Hostname:           Hostname(url),
		RequestURL:         url,
		Request:            request,
		ResponseHeader:     header,
		ResponseBody:       body,
		IdentityCommitment: identity(lines),
	}
}

// Hostname returns the host part of url without scheme, userinfo, a leading
// "www." or port. Empty input yields "".
func Hostname(url string) string {
	m := hostnamePattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// decodeLatin1 strips whitespace and maps each hex pair to the rune with the
// same code point.
func decodeLatin1(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	var b strings.Builder
	b.Grow(len(s) / 2)
	for i := 0; i < len(s); i += 2 {
		end := min(i+2, len(s))
		v, err := strconv.ParseUint(s[i:end], 16, 8)
		if err != nil {
			v = 0
		}
		b.WriteRune(rune(v))
	}
	return b.String()
}

func requestURL(lines []string) string {
	for _, line := range lines {
		if strings.HasPrefix(line, "GET") || strings.HasPrefix(line, "POST") {
			if f := strings.Fields(line); len(f) > 1 {
				return f[1]
			}
			return ""
		}
	}
	return ""
}

func identity(lines []string) string {
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), IdentityHeader) {
			parts := strings.Split(line, ": ")
			if len(parts) < 2 {
				return ""
			}
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}
