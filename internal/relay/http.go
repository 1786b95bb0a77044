package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"vitaverify/internal/domain"
)

type HTTP struct {
	Base string
	HTTP *http.Client
}

func NewHTTP(base string) *HTTP {
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: http.DefaultClient}
}

// VerifyRequest is the object form of the verify request body.
type VerifyRequest struct {
	PostSessionPayload   string `json:"postSessionPayload"`
	AuthorSessionPayload string `json:"authorSessionPayload"`
}

// IssuerInfo describes the issuer key served by GET /api/v1/issuer.
type IssuerInfo struct {
	PublicKey   string             `json:"publicKey"`
	Fingerprint domain.Fingerprint `json:"fingerprint"`
	Algorithm   string             `json:"algorithm"`
}

// ErrorResponse is the failure body of the verification API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *HTTP) Verify(ctx context.Context, postPayload, authorPayload string) (domain.SignedRedemptionCode, error) {
	var out domain.SignedRedemptionCode
	in := VerifyRequest{PostSessionPayload: postPayload, AuthorSessionPayload: authorPayload}
	if err := c.post(ctx, "/api/v1/verify", in, &out); err != nil {
		return domain.SignedRedemptionCode{}, err
	}
	return out, nil
}

func (c *HTTP) IssuerPublicKey(ctx context.Context) (string, error) {
	info, err := c.Issuer(ctx)
	if err != nil {
		return "", err
	}
	return info.PublicKey, nil
}

func (c *HTTP) Issuer(ctx context.Context) (IssuerInfo, error) {
	var out IssuerInfo
	if err := c.getJSON(ctx, "/api/v1/issuer", &out); err != nil {
		return IssuerInfo{}, err
	}
	return out, nil
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTP) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return decodeError(req, resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func decodeError(req *http.Request, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var e ErrorResponse
	if json.Unmarshal(body, &e) == nil && e.Message != "" {
		switch e.Code {
		case http.StatusNotFound:
			return domain.NotFound("%s", e.Message)
		case http.StatusUnauthorized:
			return domain.SignatureError("%s", e.Message)
		case http.StatusBadRequest:
			return domain.InvalidMessage("%s", e.Message)
		}
		return fmt.Errorf("%s %s: %s: %s", req.Method, req.URL.Path, resp.Status, e.Message)
	}
	return fmt.Errorf("%s %s: %s", req.Method, req.URL.Path, resp.Status)
}

var _ domain.VerifyClient = (*HTTP)(nil)
