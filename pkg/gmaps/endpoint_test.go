package gmaps

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/samvad-hq/gmaps/pkg/gmaps/fetch"
	"github.com/samvad-hq/gmaps/pkg/httpclient"
)

type fakeResponse struct {
	body       []byte
	statusCode int
}

func (f fakeResponse) Body() []byte    { return f.body }
func (f fakeResponse) StatusCode() int { return f.statusCode }

// fakeHTTPClient returns canned responses per URL to avoid network calls.
type fakeHTTPClient struct {
	responses map[string]fakeResponse
	calls     []string
}

func (f *fakeHTTPClient) Get(_ context.Context, url string, _ map[string]string) (httpclient.Response, error) {
	f.calls = append(f.calls, url)
	resp, ok := f.responses[url]
	if !ok {
		return nil, errors.New("not found")
	}
	return resp, nil
}

type echoRequest struct {
	Query string
}

type echoResponse struct {
	Status Status `json:"status"`
	Echo   string `json:"echo"`
}

func buildEcho(r echoRequest) (url.Values, error) {
	if r.Query == "" {
		return nil, errors.New("query is required")
	}
	return url.Values{"q": {r.Query}}, nil
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u
}

func TestNewEndpointBaseURIFallback(t *testing.T) {
	def := mustURL(t, "https://maps.example/api/echo/")

	ep := NewEndpoint[echoRequest, echoResponse](nil, nil, def, buildEcho)
	if got := ep.BaseURI().String(); got != def.String() {
		t.Fatalf("nil base: BaseURI = %s", got)
	}

	ep = NewEndpoint[echoRequest, echoResponse](nil, &url.URL{}, def, buildEcho)
	if got := ep.BaseURI().String(); got != def.String() {
		t.Fatalf("empty base: BaseURI = %s", got)
	}

	override := mustURL(t, "http://localhost:8080/mock/echo/")
	ep = NewEndpoint[echoRequest, echoResponse](nil, override, def, buildEcho)
	if got := ep.BaseURI().String(); got != override.String() {
		t.Fatalf("override: BaseURI = %s", got)
	}

	// Mutating the returned copy must not leak into the endpoint.
	ep.BaseURI().Host = "evil.example"
	if ep.BaseURI().Host != "localhost:8080" {
		t.Fatalf("BaseURI is not a copy")
	}
}

func TestEndpointURI(t *testing.T) {
	ep := NewEndpoint[echoRequest, echoResponse](nil, mustURL(t, "https://maps.example/api/echo/"), nil, buildEcho,
		WithCredentials(Credentials{APIKey: "k1"}))

	u, err := ep.URI(echoRequest{Query: "a b&c"})
	if err != nil {
		t.Fatalf("URI: %v", err)
	}
	want := "https://maps.example/api/echo/json?key=k1&q=a+b%26c"
	if u.String() != want {
		t.Fatalf("URI = %s\nwant  %s", u, want)
	}

	if _, err := ep.URI(echoRequest{}); err == nil || !strings.Contains(err.Error(), "query is required") {
		t.Fatalf("expected builder error, got %v", err)
	}
}

func TestEndpointURIWithoutTrailingSlash(t *testing.T) {
	ep := NewEndpoint[echoRequest, echoResponse](nil, mustURL(t, "https://maps.example/api/echo?region=us"), nil, buildEcho)
	u, err := ep.URI(echoRequest{Query: "x"})
	if err != nil {
		t.Fatalf("URI: %v", err)
	}
	if u.Path != "/api/echo/json" {
		t.Fatalf("Path = %s", u.Path)
	}
	if u.Query().Get("region") != "us" || u.Query().Get("q") != "x" {
		t.Fatalf("Query = %s", u.RawQuery)
	}
}

func TestEndpointGetDecodesTypedResponse(t *testing.T) {
	target := "https://maps.example/api/echo/json?q=hello"
	transport := &fakeHTTPClient{responses: map[string]fakeResponse{
		target: {body: []byte(`{"status":"OK","echo":"hello"}`), statusCode: http.StatusOK},
	}}
	ep := NewEndpoint[echoRequest, echoResponse](transport, nil, mustURL(t, "https://maps.example/api/echo/"), buildEcho)

	got, err := ep.Get(context.Background(), echoRequest{Query: "hello"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusOK || got.Echo != "hello" {
		t.Fatalf("Get = %+v", got)
	}
	if len(transport.calls) != 1 || transport.calls[0] != target {
		t.Fatalf("calls = %v", transport.calls)
	}
}

func TestEndpointPassesErrorsThrough(t *testing.T) {
	base := mustURL(t, "https://maps.example/api/echo/")

	transport := &fakeHTTPClient{responses: map[string]fakeResponse{
		"https://maps.example/api/echo/json?q=denied": {body: []byte(`{"status":"REQUEST_DENIED"}`), statusCode: http.StatusOK},
		"https://maps.example/api/echo/json?q=broken": {body: []byte(`{"status":`), statusCode: http.StatusOK},
		"https://maps.example/api/echo/json?q=500":    {body: []byte(`oops`), statusCode: http.StatusInternalServerError},
	}}
	ep := NewEndpoint[echoRequest, echoResponse](transport, base, nil, buildEcho)

	// A non-OK API status is data, not an error.
	got, err := ep.Get(context.Background(), echoRequest{Query: "denied"})
	if err != nil {
		t.Fatalf("Get denied: %v", err)
	}
	if got.Status != StatusRequestDenied {
		t.Fatalf("Status = %v", got.Status)
	}

	var decodeErr *fetch.DecodeError
	if _, err := ep.Get(context.Background(), echoRequest{Query: "broken"}); !errors.As(err, &decodeErr) {
		t.Fatalf("expected *fetch.DecodeError, got %v", err)
	}

	var statusErr *httpclient.StatusError
	if _, err := ep.Get(context.Background(), echoRequest{Query: "500"}); !errors.As(err, &statusErr) {
		t.Fatalf("expected *httpclient.StatusError, got %v", err)
	}

	if _, err := ep.Get(context.Background(), echoRequest{Query: "missing"}); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected transport error, got %v", err)
	}
}

type cannedWrapper struct {
	uri  string
	body string
}

func (c *cannedWrapper) URI() string                            { return c.uri }
func (c *cannedWrapper) AsText(context.Context) (string, error) { return c.body, nil }
func (c *cannedWrapper) As(_ context.Context, v any) error {
	return fetch.Unmarshal(fetch.JSONDecode, c.uri, []byte(c.body), v)
}

func TestEndpointWithStubbedFactory(t *testing.T) {
	var requested []string
	stub := fetch.New(fetch.FactoryFunc(func(u *url.URL) fetch.Response {
		requested = append(requested, u.String())
		return &cannedWrapper{uri: u.String(), body: `{"status":"ZERO_RESULTS","echo":"stubbed"}`}
	}))

	ep := NewEndpoint[echoRequest, echoResponse](nil, mustURL(t, "https://maps.example/api/echo/"), nil, buildEcho, WithFetcher(stub))
	got, err := ep.Get(context.Background(), echoRequest{Query: "anything"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Echo != "stubbed" || got.Status != StatusZeroResults {
		t.Fatalf("Get = %+v", got)
	}
	if len(requested) != 1 || !strings.HasSuffix(requested[0], "/json?q=anything") {
		t.Fatalf("requested = %v", requested)
	}
}

func TestEndpointMisconfigured(t *testing.T) {
	if _, err := NewEndpoint[echoRequest, echoResponse](nil, nil, nil, buildEcho).URI(echoRequest{Query: "x"}); err == nil {
		t.Fatalf("expected error without base uri")
	}
	if _, err := NewEndpoint[echoRequest, echoResponse](nil, mustURL(t, "https://a.example/"), nil, nil).URI(echoRequest{}); err == nil {
		t.Fatalf("expected error without builder")
	}
	ep := NewEndpoint[echoRequest, echoResponse](nil, mustURL(t, "https://a.example/"), nil, buildEcho,
		WithCredentials(Credentials{ClientID: "only-id"}))
	if _, err := ep.URI(echoRequest{Query: "x"}); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}
