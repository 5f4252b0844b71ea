package httpclient

import (
	"fmt"
	"net/url"
	"strings"
)

// redactedParams are query parameters that carry credentials.
var redactedParams = []string{"key", "signature", "client"}

// StatusError reports a response whose status code is outside the 2xx range.
type StatusError struct {
	URL     string
	Code    int
	Snippet string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned status %d body: %s", e.URL, e.Code, e.Snippet)
}

// IsSuccess reports whether code is a 2xx status.
func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}

// CheckStatus returns a *StatusError when resp does not carry a 2xx status.
func CheckStatus(rawURL string, resp Response) error {
	if resp == nil {
		return fmt.Errorf("GET %s returned no response", RedactURL(rawURL))
	}
	if IsSuccess(resp.StatusCode()) {
		return nil
	}
	return &StatusError{
		URL:     RedactURL(rawURL),
		Code:    resp.StatusCode(),
		Snippet: ResponseSnippet(resp.Body()),
	}
}

// ResponseSnippet trims the body to a loggable size.
func ResponseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}

// RedactURL masks credential query parameters so URLs are safe to log.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	changed := false
	for _, p := range redactedParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if !changed {
		return rawURL
	}
	u.RawQuery = q.Encode()
	return u.String()
}
