package gmaps

import (
	"fmt"

	"github.com/samvad-hq/gmaps/pkg/gmaps/jsonenum"
)

// Status is the top-level "status" field every web service response carries.
type Status int

const (
	StatusUnknown Status = iota
	StatusOK
	StatusZeroResults
	StatusNotFound
	StatusOverQueryLimit
	StatusOverDailyLimit
	StatusRequestDenied
	StatusInvalidRequest
	StatusUnknownError
)

var statusSet = jsonenum.New[Status]("Status", StatusUnknown).
	Name(StatusUnknown, "").
	Name(StatusOK, "OK").
	Name(StatusZeroResults, "ZERO_RESULTS").
	Name(StatusNotFound, "NOT_FOUND").
	Name(StatusOverQueryLimit, "OVER_QUERY_LIMIT").
	Name(StatusOverDailyLimit, "OVER_DAILY_LIMIT").
	Name(StatusRequestDenied, "REQUEST_DENIED").
	Name(StatusInvalidRequest, "INVALID_REQUEST").
	Name(StatusUnknownError, "UNKNOWN_ERROR")

// ParseStatus resolves a wire token such as "ZERO_RESULTS".
func ParseStatus(token string) Status {
	s, _ := statusSet.Parse(token)
	return s
}

func (s Status) String() string {
	if name := statusSet.String(s); name != "" {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) { return statusSet.MarshalText(s) }

func (s *Status) UnmarshalJSON(data []byte) error {
	v, err := statusSet.Unmarshal(data)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Temporary reports whether a retry later might succeed.
func (s Status) Temporary() bool {
	switch s {
	case StatusOverQueryLimit, StatusUnknownError:
		return true
	}
	return false
}

// Err turns a non-OK status into a *StatusError. The endpoint never calls
// this itself; callers opt in.
func (s Status) Err(message string) error {
	if s == StatusOK {
		return nil
	}
	return &StatusError{Status: s, Message: message}
}

// StatusError reports a response whose API status is not OK.
type StatusError struct {
	Status  Status
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("maps api status %s", e.Status)
	}
	return fmt.Sprintf("maps api status %s: %s", e.Status, e.Message)
}
