// Package gmaps holds the pieces shared by every Maps web service endpoint:
// the generic typed Endpoint, credentials, response status and geometry types.
package gmaps

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/samvad-hq/gmaps/pkg/gmaps/fetch"
	"github.com/samvad-hq/gmaps/pkg/httpclient"
)

// OutputJSON is the output-format path segment appended to every base URI.
const OutputJSON = "json"

// RequestBuilder turns a typed request into query parameters.
type RequestBuilder[Req any] func(Req) (url.Values, error)

// Option configures an Endpoint.
type Option func(*settings)

type settings struct {
	fetcher   *fetch.Client
	creds     Credentials
	fetchOpts []fetch.Option
}

// WithFetcher injects the fetch client used to build response wrappers.
// Tests use it to substitute a stub factory.
func WithFetcher(c *fetch.Client) Option {
	return func(s *settings) { s.fetcher = c }
}

// WithCredentials authenticates every request URI.
func WithCredentials(c Credentials) Option {
	return func(s *settings) { s.creds = c }
}

// WithDecoder replaces the JSON decoding strategy. Ignored with WithFetcher.
func WithDecoder(fn fetch.DecodeFunc) Option {
	return func(s *settings) { s.fetchOpts = append(s.fetchOpts, fetch.WithDecoder(fn)) }
}

// WithHeaders adds headers to every request. Ignored with WithFetcher.
func WithHeaders(headers map[string]string) Option {
	return func(s *settings) { s.fetchOpts = append(s.fetchOpts, fetch.WithHeaders(headers)) }
}

// Endpoint binds a typed request/response pair to a base URI.
// It is immutable after construction and safe for concurrent use.
type Endpoint[Req, Resp any] struct {
	baseURI *url.URL
	build   RequestBuilder[Req]
	creds   Credentials
	fetcher *fetch.Client
}

// NewEndpoint builds an endpoint over transport. A nil or empty baseURI falls
// back to defaultURI.
func NewEndpoint[Req, Resp any](transport httpclient.Client, baseURI, defaultURI *url.URL, build RequestBuilder[Req], opts ...Option) *Endpoint[Req, Resp] {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.fetcher == nil {
		s.fetcher = fetch.Default(transport, s.fetchOpts...)
	}

	return &Endpoint[Req, Resp]{
		baseURI: resolveBase(baseURI, defaultURI),
		build:   build,
		creds:   s.creds,
		fetcher: s.fetcher,
	}
}

func resolveBase(baseURI, defaultURI *url.URL) *url.URL {
	chosen := baseURI
	if chosen == nil || chosen.String() == "" {
		chosen = defaultURI
	}
	if chosen == nil {
		return nil
	}
	cp := *chosen
	return &cp
}

// BaseURI returns a copy of the effective base URI.
func (e *Endpoint[Req, Resp]) BaseURI() *url.URL {
	if e.baseURI == nil {
		return nil
	}
	cp := *e.baseURI
	return &cp
}

// URI builds the full request URI: base URI, output format, encoded request
// parameters, then credentials.
func (e *Endpoint[Req, Resp]) URI(req Req) (*url.URL, error) {
	if e.baseURI == nil {
		return nil, errors.New("gmaps: endpoint has no base uri")
	}
	if e.build == nil {
		return nil, errors.New("gmaps: endpoint has no request builder")
	}

	params, err := e.build(req)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	u := e.baseURI.JoinPath(OutputJSON)
	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()

	signed, err := e.creds.Apply(u)
	if err != nil {
		return nil, fmt.Errorf("apply credentials: %w", err)
	}
	return signed, nil
}

// Response returns the lazy wrapper for req without performing I/O.
func (e *Endpoint[Req, Resp]) Response(req Req) (fetch.Response, error) {
	u, err := e.URI(req)
	if err != nil {
		return nil, err
	}
	return e.fetcher.Get(u), nil
}

// Get performs the request and decodes the body into Resp. Errors from the
// transport and the decoder pass through unclassified.
func (e *Endpoint[Req, Resp]) Get(ctx context.Context, req Req) (Resp, error) {
	var zero Resp
	resp, err := e.Response(req)
	if err != nil {
		return zero, err
	}
	return fetch.Decode[Resp](ctx, resp)
}
