// Package fetch issues blocking HTTP GETs and exposes the body either as text
// or decoded into a caller-chosen type.
//
// A Client hands out Response wrappers through its Factory. Wrappers do no I/O
// until read, and every read is a fresh round trip. Tests swap the Factory on
// their own Client to return canned wrappers; nothing here is process-wide.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/samvad-hq/gmaps/pkg/httpclient"
)

var (
	// ErrNilURI is returned when reading a wrapper built without a target.
	ErrNilURI = errors.New("fetch: request uri is nil")
	// ErrNoTransport is returned when reading a wrapper built without a transport.
	ErrNoTransport = errors.New("fetch: transport is nil")
	// ErrNoFactory is returned by wrappers from a Client built without a factory.
	ErrNoFactory = errors.New("fetch: response factory is nil")
)

// Response is bound to one request URI and reads it on demand.
type Response interface {
	// URI returns the request target.
	URI() string
	// AsText performs the GET and returns the raw body.
	AsText(ctx context.Context) (string, error)
	// As performs the GET and decodes the body into v.
	As(ctx context.Context, v any) error
}

// Factory builds Response wrappers for request URIs.
type Factory interface {
	CreateResponse(uri *url.URL) Response
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(uri *url.URL) Response

// CreateResponse calls f(uri).
func (f FactoryFunc) CreateResponse(uri *url.URL) Response { return f(uri) }

// Option configures wrappers built by NewFactory or NewResponse.
type Option func(*options)

type options struct {
	decode  DecodeFunc
	headers map[string]string
}

// WithDecoder replaces the JSON decoding strategy.
func WithDecoder(fn DecodeFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.decode = fn
		}
	}
}

// WithHeaders adds headers to every GET.
func WithHeaders(headers map[string]string) Option {
	return func(o *options) {
		if len(headers) == 0 {
			return
		}
		cp := make(map[string]string, len(headers))
		for k, v := range headers {
			cp[k] = v
		}
		o.headers = cp
	}
}

func buildOptions(opts []Option) options {
	o := options{decode: JSONDecode}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// NewFactory returns the default binding: network-backed wrappers over transport.
func NewFactory(transport httpclient.Client, opts ...Option) Factory {
	return &httpFactory{transport: transport, opts: buildOptions(opts)}
}

type httpFactory struct {
	transport httpclient.Client
	opts      options
}

func (f *httpFactory) CreateResponse(uri *url.URL) Response {
	return newResponse(f.transport, uri, f.opts)
}

// HTTPResponse is the network-backed Response.
type HTTPResponse struct {
	uri       *url.URL
	transport httpclient.Client
	decode    DecodeFunc
	headers   map[string]string
}

// NewResponse builds a wrapper for uri. The URI is copied so later changes by
// the caller do not affect the wrapper.
func NewResponse(transport httpclient.Client, uri *url.URL, opts ...Option) *HTTPResponse {
	return newResponse(transport, uri, buildOptions(opts))
}

func newResponse(transport httpclient.Client, uri *url.URL, o options) *HTTPResponse {
	var target *url.URL
	if uri != nil {
		cp := *uri
		target = &cp
	}
	return &HTTPResponse{
		uri:       target,
		transport: transport,
		decode:    o.decode,
		headers:   o.headers,
	}
}

// URI returns the request target, or "" when none was given.
func (r *HTTPResponse) URI() string {
	if r == nil || r.uri == nil {
		return ""
	}
	return r.uri.String()
}

// AsText issues one GET and returns the body unmodified.
// Non-2xx statuses come back as *httpclient.StatusError.
func (r *HTTPResponse) AsText(ctx context.Context) (string, error) {
	body, err := r.get(ctx)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// As issues one GET and decodes the body into v.
func (r *HTTPResponse) As(ctx context.Context, v any) error {
	text, err := r.AsText(ctx)
	if err != nil {
		return err
	}
	return Unmarshal(r.decode, r.URI(), []byte(text), v)
}

func (r *HTTPResponse) get(ctx context.Context) ([]byte, error) {
	if r == nil || r.uri == nil {
		return nil, ErrNilURI
	}
	if r.transport == nil {
		return nil, ErrNoTransport
	}

	target := r.uri.String()
	resp, err := r.transport.Get(ctx, target, r.headers)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	if err := httpclient.CheckStatus(target, resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// Client hands out Response wrappers through its factory.
type Client struct {
	factory Factory
}

// New binds a Client to factory.
func New(factory Factory) *Client {
	return &Client{factory: factory}
}

// Default binds a Client to the network-backed factory over transport.
func Default(transport httpclient.Client, opts ...Option) *Client {
	return New(NewFactory(transport, opts...))
}

// Factory returns the current binding.
func (c *Client) Factory() Factory {
	if c == nil {
		return nil
	}
	return c.factory
}

// Get returns the wrapper for uri. It performs no I/O.
func (c *Client) Get(uri *url.URL) Response {
	if c == nil || c.factory == nil {
		return failedResponse{uri: uri, err: ErrNoFactory}
	}
	return c.factory.CreateResponse(uri)
}

// Decode reads r and decodes it into a fresh T. On failure it returns the
// zero T, never a partially filled value.
func Decode[T any](ctx context.Context, r Response) (T, error) {
	var zero T
	if r == nil {
		return zero, errors.New("fetch: response is nil")
	}
	var out T
	if err := r.As(ctx, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type failedResponse struct {
	uri *url.URL
	err error
}

func (f failedResponse) URI() string {
	if f.uri == nil {
		return ""
	}
	return f.uri.String()
}

func (f failedResponse) AsText(context.Context) (string, error) { return "", f.err }
func (f failedResponse) As(context.Context, any) error          { return f.err }
