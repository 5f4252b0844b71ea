package details

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrEmptyPlaceID is returned for requests without a place id.
var ErrEmptyPlaceID = errors.New("details: place id is required")

// Review sort orders accepted by reviews_sort.
const (
	ReviewsSortMostRelevant = "most_relevant"
	ReviewsSortNewest       = "newest"
)

// Request selects one place and the shape of its details.
type Request struct {
	PlaceID string
	// Language is a BCP-47 code such as "en" or "pt-BR".
	Language string
	// Region is a ccTLD used to bias formatting, e.g. "uk".
	Region string
	// Fields limits the returned fields ("name", "geometry/location", ...).
	// Empty means all fields.
	Fields       []string
	SessionToken string
	// ReviewsNoTranslations returns reviews in their original language.
	ReviewsNoTranslations bool
	ReviewsSort           string
}

// Values encodes the request as query parameters.
func (r *Request) Values() (url.Values, error) {
	if r == nil {
		return nil, ErrEmptyPlaceID
	}
	placeID := strings.TrimSpace(r.PlaceID)
	if placeID == "" {
		return nil, ErrEmptyPlaceID
	}

	v := url.Values{}
	v.Set("place_id", placeID)
	if lang := strings.TrimSpace(r.Language); lang != "" {
		v.Set("language", lang)
	}
	if region := strings.TrimSpace(r.Region); region != "" {
		v.Set("region", region)
	}
	if fields := cleanFields(r.Fields); len(fields) > 0 {
		v.Set("fields", strings.Join(fields, ","))
	}
	if token := strings.TrimSpace(r.SessionToken); token != "" {
		v.Set("sessiontoken", token)
	}
	if r.ReviewsNoTranslations {
		v.Set("reviews_no_translations", "true")
	}
	if sort := strings.ToLower(strings.TrimSpace(r.ReviewsSort)); sort != "" {
		if sort != ReviewsSortMostRelevant && sort != ReviewsSortNewest {
			return nil, fmt.Errorf("details: unsupported reviews_sort %q", r.ReviewsSort)
		}
		v.Set("reviews_sort", sort)
	}
	return v, nil
}

// cleanFields trims, drops blanks and de-duplicates while keeping order.
func cleanFields(fields []string) []string {
	if len(fields) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
