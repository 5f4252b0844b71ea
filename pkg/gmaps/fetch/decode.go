package fetch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/samvad-hq/gmaps/pkg/httpclient"
)

// DecodeFunc decodes a response body into v.
type DecodeFunc func(data []byte, v any) error

// DecodeError reports a body that could not be decoded into the target type.
type DecodeError struct {
	URI string
	Err error
}

func (e *DecodeError) Error() string {
	if e.URI == "" {
		return fmt.Sprintf("decode response: %v", e.Err)
	}
	return fmt.Sprintf("decode response from %s: %v", e.URI, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// JSONDecode decodes exactly one JSON value. Enum types plug their own token
// mapping in through json.Unmarshaler; numbers landing in `any` stay json.Number.
func JSONDecode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level JSON value")
	}
	return nil
}

// Unmarshal runs decode over data and wraps failures in *DecodeError.
// A nil decode falls back to JSONDecode.
func Unmarshal(decode DecodeFunc, uri string, data []byte, v any) error {
	if decode == nil {
		decode = JSONDecode
	}
	if err := decode(data, v); err != nil {
		return &DecodeError{URI: httpclient.RedactURL(uri), Err: err}
	}
	return nil
}

// DecodeBytes decodes data into a fresh T, returning the zero T on failure.
func DecodeBytes[T any](decode DecodeFunc, data []byte) (T, error) {
	var zero T
	var out T
	if err := Unmarshal(decode, "", data, &out); err != nil {
		return zero, err
	}
	return out, nil
}
