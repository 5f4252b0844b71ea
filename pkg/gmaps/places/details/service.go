// Package details is the client for the Places Details web service.
package details

import (
	"context"
	"net/url"

	"github.com/samvad-hq/gmaps/pkg/gmaps"
	"github.com/samvad-hq/gmaps/pkg/gmaps/fetch"
	"github.com/samvad-hq/gmaps/pkg/httpclient"
)

// HTTPSURI is the production base URI of the Place Details endpoint.
const HTTPSURI = "https://maps.googleapis.com/maps/api/place/details/"

// DefaultURI returns HTTPSURI parsed.
func DefaultURI() *url.URL {
	u, err := url.Parse(HTTPSURI)
	if err != nil {
		panic(err)
	}
	return u
}

// Service provides direct access to Place Details over HTTP.
type Service struct {
	endpoint *gmaps.Endpoint[*Request, Response]
}

// NewService binds the Place Details endpoint to transport. A nil baseURI
// selects HTTPSURI.
func NewService(transport httpclient.Client, baseURI *url.URL, opts ...gmaps.Option) *Service {
	return &Service{
		endpoint: gmaps.NewEndpoint[*Request, Response](transport, baseURI, DefaultURI(), buildRequest, opts...),
	}
}

func buildRequest(req *Request) (url.Values, error) {
	return req.Values()
}

// BaseURI returns the effective base URI.
func (s *Service) BaseURI() *url.URL { return s.endpoint.BaseURI() }

// URI returns the full request URI for req.
func (s *Service) URI(req *Request) (*url.URL, error) { return s.endpoint.URI(req) }

// Response returns the lazy wrapper for req, for callers that also want the
// raw body.
func (s *Service) Response(req *Request) (fetch.Response, error) { return s.endpoint.Response(req) }

// GetResponse fetches and decodes the details for req. A non-OK API status is
// returned in the response, not as an error.
func (s *Service) GetResponse(ctx context.Context, req *Request) (*Response, error) {
	out, err := s.endpoint.Get(ctx, req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DecodeResponse decodes a raw Place Details body.
func DecodeResponse(data []byte) (*Response, error) {
	out, err := fetch.DecodeBytes[Response](fetch.JSONDecode, data)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
