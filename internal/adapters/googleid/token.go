package googleid

// Package googleid verifies Google identity tokens delivered through the
// implicit front-channel flow and extracts the federated identity from them.

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedToken indicates the token is not a well-formed compact JWT.
var ErrMalformedToken = errors.New("malformed identity token")

// Payload is the untrusted decoded payload of an identity token. Only the
// fields this package validates or extracts are mapped.
type Payload struct {
	Nonce  string `json:"nonce"`
	Issuer string `json:"iss"`
	// Exp and Iat are unix seconds; zero means the claim was absent.
	Exp   int64  `json:"exp"`
	Iat   int64  `json:"iat"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Sub   string `json:"sub"`
}

// Decode splits a compact token into its three segments and parses the
// middle (payload) segment. The signature segment is not inspected here.
// Every structural failure maps to ErrMalformedToken.
func Decode(token string) (Payload, error) {
	var p Payload

	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return p, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(segments))
	}

	raw, err := decodeSegment(segments[1])
	if err != nil {
		return p, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return p, nil
}

// decodeSegment base64url-decodes a JWT segment, restoring stripped padding.
func decodeSegment(seg string) ([]byte, error) {
	if rem := len(seg) % 4; rem > 0 {
		seg += strings.Repeat("=", 4-rem)
	}
	return base64.URLEncoding.DecodeString(seg)
}
