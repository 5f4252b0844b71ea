package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRestyClientGetReturnsBodyAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("User-Agent"); got != "gmaps-test/1.0" {
			t.Errorf("User-Agent = %q", got)
		}
		if got := r.Header.Get("Accept-Language"); got != "en" {
			t.Errorf("Accept-Language = %q", got)
		}
		if got := r.URL.Query().Get("place_id"); got != "abc" {
			t.Errorf("place_id = %q", got)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	client := NewRestyClient(2*time.Second, WithUserAgent("gmaps-test/1.0"))
	resp, err := client.Get(context.Background(), srv.URL+"/json?place_id=abc", map[string]string{"Accept-Language": "en"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Fatalf("StatusCode = %d", resp.StatusCode())
	}
	if string(resp.Body()) != `{"status":"OK"}` {
		t.Fatalf("Body = %q", resp.Body())
	}
}

func TestRestyClientDoesNotFailOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	resp, err := NewRestyClient(time.Second).Get(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.StatusCode() != http.StatusForbidden {
		t.Fatalf("StatusCode = %d", resp.StatusCode())
	}
}

type errorTransport struct{}

func (errorTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("mock transport error")
}

func TestRestyClientPropagatesTransportErrors(t *testing.T) {
	client := NewRestyClient(time.Second, WithTransport(errorTransport{}))
	_, err := client.Get(context.Background(), "http://example.invalid/json", nil)
	if err == nil || !strings.Contains(err.Error(), "mock transport error") {
		t.Fatalf("expected transport error, got %v", err)
	}
}

type stubResponse struct {
	body []byte
	code int
}

func (s stubResponse) Body() []byte    { return s.body }
func (s stubResponse) StatusCode() int { return s.code }

func TestCheckStatus(t *testing.T) {
	if err := CheckStatus("https://example.com", stubResponse{code: http.StatusNoContent}); err != nil {
		t.Fatalf("expected nil for 204, got %v", err)
	}

	err := CheckStatus("https://example.com/json?key=secret&place_id=x", stubResponse{body: []byte(" denied "), code: http.StatusBadRequest})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T", err)
	}
	if statusErr.Code != http.StatusBadRequest {
		t.Errorf("Code = %d", statusErr.Code)
	}
	if statusErr.Snippet != "denied" {
		t.Errorf("Snippet = %q", statusErr.Snippet)
	}
	if strings.Contains(err.Error(), "secret") {
		t.Errorf("api key leaked into error: %s", err)
	}

	if err := CheckStatus("https://example.com", nil); err == nil {
		t.Fatalf("expected error for nil response")
	}
}

func TestRedactURL(t *testing.T) {
	got := RedactURL("https://maps.example/json?client=c1&key=k&place_id=p&signature=s")
	for _, secret := range []string{"key=k", "client=c1", "signature=s"} {
		if strings.Contains(got, secret) {
			t.Errorf("RedactURL left %q in %s", secret, got)
		}
	}
	if !strings.Contains(got, "place_id=p") {
		t.Errorf("RedactURL dropped place_id: %s", got)
	}

	plain := "https://maps.example/json?place_id=p"
	if RedactURL(plain) != plain {
		t.Errorf("RedactURL changed URL without credentials")
	}
}

func TestResponseSnippet(t *testing.T) {
	if got := ResponseSnippet(nil); got != "<empty>" {
		t.Errorf("empty snippet = %q", got)
	}
	long := strings.Repeat("a", 600)
	if got := ResponseSnippet([]byte(long)); len(got) != 515 || !strings.HasSuffix(got, "...") {
		t.Errorf("long snippet len = %d", len(got))
	}
}
