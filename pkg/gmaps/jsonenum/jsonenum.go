// Package jsonenum maps the string and numeric tokens the Maps APIs use for
// enumerations onto Go constants.
//
// Each enum type owns a Set and calls it from its UnmarshalJSON/MarshalText
// methods, so the mapping travels with the type rather than with a decoder.
// Name matching ignores case, underscores, hyphens and spaces: "ZERO_RESULTS",
// "zero-results" and "ZeroResults" all resolve to the same constant.
package jsonenum

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Set is the token table for one enum type. Build it once at package init;
// it is read-only afterwards and safe for concurrent use.
type Set[E comparable] struct {
	typeName string
	unknown  E
	byName   map[string]E
	byNumber map[int64]E
	names    map[E]string
}

// New starts a Set for typeName. Tokens that match nothing decode to unknown.
func New[E comparable](typeName string, unknown E) *Set[E] {
	return &Set[E]{
		typeName: typeName,
		unknown:  unknown,
		byName:   make(map[string]E),
		byNumber: make(map[int64]E),
		names:    make(map[E]string),
	}
}

// Name registers the canonical wire name of v plus any aliases.
func (s *Set[E]) Name(v E, canonical string, aliases ...string) *Set[E] {
	if _, ok := s.names[v]; !ok {
		s.names[v] = canonical
	}
	s.byName[normalize(canonical)] = v
	for _, a := range aliases {
		s.byName[normalize(a)] = v
	}
	return s
}

// Number registers a numeric token for v.
func (s *Set[E]) Number(n int64, v E) *Set[E] {
	s.byNumber[n] = v
	return s
}

// Unknown returns the fallback constant.
func (s *Set[E]) Unknown() E { return s.unknown }

// Parse resolves a name token.
func (s *Set[E]) Parse(token string) (E, bool) {
	v, ok := s.byName[normalize(token)]
	if !ok {
		return s.unknown, false
	}
	return v, true
}

// FromNumber resolves a numeric token.
func (s *Set[E]) FromNumber(n int64) (E, bool) {
	v, ok := s.byNumber[n]
	if !ok {
		return s.unknown, false
	}
	return v, true
}

// String returns the canonical name of v, or "" when it has none.
func (s *Set[E]) String(v E) string {
	return s.names[v]
}

// Unmarshal decodes a raw JSON token. Strings are matched by name (or by
// number when they hold digits), numbers by number, and null yields the
// unknown value. Unrecognized tokens also yield the unknown value so new API
// values do not break decoding; only non-scalar input is an error.
func (s *Set[E]) Unmarshal(data []byte) (E, error) {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return s.unknown, nil
	case data[0] == '"':
		var token string
		if err := json.Unmarshal(data, &token); err != nil {
			return s.unknown, fmt.Errorf("jsonenum: %s: %w", s.typeName, err)
		}
		if n, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64); err == nil {
			v, _ := s.FromNumber(n)
			return v, nil
		}
		v, _ := s.Parse(token)
		return v, nil
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		n, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return s.unknown, fmt.Errorf("jsonenum: %s: number %s is not an integer", s.typeName, data)
		}
		v, _ := s.FromNumber(n)
		return v, nil
	default:
		return s.unknown, fmt.Errorf("jsonenum: %s: cannot decode %s", s.typeName, truncate(data))
	}
}

// MarshalText returns the canonical name of v.
func (s *Set[E]) MarshalText(v E) ([]byte, error) {
	name, ok := s.names[v]
	if !ok {
		return nil, fmt.Errorf("jsonenum: %s: value %v has no name", s.typeName, v)
	}
	return []byte(name), nil
}

func normalize(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range strings.TrimSpace(token) {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func truncate(data []byte) string {
	const maxLen = 32
	if len(data) > maxLen {
		return string(data[:maxLen]) + "..."
	}
	return string(data)
}
