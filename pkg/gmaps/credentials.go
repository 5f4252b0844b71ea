package gmaps

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // the signing scheme is HMAC-SHA1
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMissingCredentials is returned when client signing is half configured.
var ErrMissingCredentials = errors.New("gmaps: client id and signing key must be set together")

// Credentials authenticate requests either with an API key or with a client
// ID plus URL signing key. The zero value sends unauthenticated requests.
type Credentials struct {
	APIKey     string
	ClientID   string
	SigningKey string
}

// Validate checks that client signing is either fully set or absent.
func (c Credentials) Validate() error {
	hasID := strings.TrimSpace(c.ClientID) != ""
	hasKey := strings.TrimSpace(c.SigningKey) != ""
	if hasID != hasKey {
		return ErrMissingCredentials
	}
	if hasKey {
		if _, err := decodeSigningKey(c.SigningKey); err != nil {
			return err
		}
	}
	return nil
}

// Apply returns a copy of u with the credential parameters added. When a
// signing key is set, the signature covers the path and the final query and
// is appended last.
func (c Credentials) Apply(u *url.URL) (*url.URL, error) {
	if u == nil {
		return nil, errors.New("gmaps: cannot apply credentials to nil url")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := *u
	q := out.Query()
	if key := strings.TrimSpace(c.APIKey); key != "" {
		q.Set("key", key)
	}
	clientID := strings.TrimSpace(c.ClientID)
	if clientID != "" {
		q.Set("client", clientID)
	}
	q.Del("signature")
	out.RawQuery = q.Encode()

	if clientID == "" {
		return &out, nil
	}

	sig, err := sign(c.SigningKey, out.EscapedPath()+"?"+out.RawQuery)
	if err != nil {
		return nil, err
	}
	out.RawQuery += "&signature=" + sig
	return &out, nil
}

// sign computes the URL-safe base64 HMAC-SHA1 of resource.
func sign(signingKey, resource string) (string, error) {
	key, err := decodeSigningKey(signingKey)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha1.New, key)
	mac.Write([]byte(resource))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil)), nil
}

func decodeSigningKey(signingKey string) ([]byte, error) {
	raw := strings.TrimSpace(signingKey)
	key, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		key, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(raw, "="))
	}
	if err != nil {
		return nil, fmt.Errorf("gmaps: decode signing key: %w", err)
	}
	return key, nil
}
