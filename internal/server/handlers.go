package server

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"vitaverify/internal/domain"
	"vitaverify/internal/relay"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	req, err := decodeVerifyRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.PostSessionPayload == "" || req.AuthorSessionPayload == "" {
		writeError(w, http.StatusBadRequest, "Invalid parameters")
		return
	}

	signed, err := s.redeemer.VerifyAndSign(r.Context(), req.PostSessionPayload, req.AuthorSessionPayload)
	if err != nil {
		kind := domain.KindOf(err)
		if kind == domain.KindUnknown {
			s.log.Error(err, "verification aborted")
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		s.log.Zerolog().Info().
			Str("request_id", w.Header().Get(requestIDHeader)).
			Str("kind", kind.String()).
			Str("reason", domain.MessageOf(err)).
			Msg("verification rejected")
		writeError(w, kind.HTTPStatus(), domain.MessageOf(err))
		return
	}
	writeJSON(w, http.StatusOK, signed)
}

func (s *Server) handleIssuer(w http.ResponseWriter, r *http.Request) {
	pub := s.signer.PublicKey()
	writeJSON(w, http.StatusOK, relay.IssuerInfo{
		PublicKey:   hex.EncodeToString(pub[:]),
		Fingerprint: s.signer.Fingerprint(),
		Algorithm:   "ed25519",
	})
}

// decodeVerifyRequest accepts either [author, post] or the object form.
func decodeVerifyRequest(r *http.Request) (relay.VerifyRequest, error) {
	var raw json.RawMessage
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&raw)
	if err == nil {
		// Exactly one JSON value per body.
		if _, tokErr := dec.Token(); !errors.Is(tokErr, io.EOF) {
			err = tokErr
			if err == nil {
				err = errors.New("unexpected data after request value")
			}
		}
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return relay.VerifyRequest{}, fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
		}
		return relay.VerifyRequest{}, fmt.Errorf("invalid request body: %w", err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var pair []string
		if err := json.Unmarshal(raw, &pair); err != nil {
			return relay.VerifyRequest{}, fmt.Errorf("invalid request body: %w", err)
		}
		if len(pair) != 2 {
			return relay.VerifyRequest{}, fmt.Errorf("invalid request body: want 2 payloads, got %d", len(pair))
		}
		return relay.VerifyRequest{AuthorSessionPayload: pair[0], PostSessionPayload: pair[1]}, nil
	}

	var req relay.VerifyRequest
	objDec := json.NewDecoder(bytes.NewReader(raw))
	objDec.DisallowUnknownFields()
	if err := objDec.Decode(&req); err != nil {
		return relay.VerifyRequest{}, fmt.Errorf("invalid request body: %w", err)
	}
	return req, nil
}
