package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
)

type jwk struct {
	Kty string `json:"kty"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	Kid string `json:"kid"`
	K   string `json:"k"`
}

type jwkSet struct {
	Keys []jwk `json:"keys"`
}

// BuildKeySetJSON renders the signing secrets as a JWK Set of symmetric
// (oct) HS256 keys. The previous secret is optional and only ever used to
// verify tokens minted before a rotation.
func BuildKeySetJSON(primary, previous string) (json.RawMessage, error) {
	if primary == "" {
		return nil, errors.New("signing secret cannot be empty")
	}

	set := jwkSet{Keys: []jwk{octKey(primary)}}
	if previous != "" {
		set.Keys = append(set.Keys, octKey(previous))
	}

	return json.Marshal(set)
}

// KeyID derives the "kid" of a secret: a short fingerprint, so tokens
// signed before a rotation still find their key.
func KeyID(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:8])
}

func octKey(secret string) jwk {
	return jwk{
		Kty: "oct",
		Use: "sig",
		Alg: "HS256",
		Kid: KeyID(secret),
		K:   base64.RawURLEncoding.EncodeToString([]byte(secret)),
	}
}
