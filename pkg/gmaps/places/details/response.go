package details

import (
	"github.com/samvad-hq/gmaps/pkg/gmaps"
)

// Response is the Place Details reply.
type Response struct {
	Status           gmaps.Status `json:"status" yaml:"status"`
	ErrorMessage     string       `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	InfoMessages     []string     `json:"info_messages,omitempty" yaml:"info_messages,omitempty"`
	HTMLAttributions []string     `json:"html_attributions" yaml:"html_attributions"`
	Result           Place        `json:"result" yaml:"result"`
}

// Err is shorthand for r.Status.Err(r.ErrorMessage).
func (r *Response) Err() error {
	return r.Status.Err(r.ErrorMessage)
}

// Attributions returns html_attributions as plain text.
func (r *Response) Attributions() []string {
	return gmaps.AttributionText(r.HTMLAttributions)
}

// Place is the "result" object.
type Place struct {
	PlaceID                  string             `json:"place_id" yaml:"place_id"`
	Name                     string             `json:"name,omitempty" yaml:"name,omitempty"`
	BusinessStatus           BusinessStatus     `json:"business_status,omitempty" yaml:"business_status,omitempty"`
	FormattedAddress         string             `json:"formatted_address,omitempty" yaml:"formatted_address,omitempty"`
	AdrAddress               string             `json:"adr_address,omitempty" yaml:"adr_address,omitempty"`
	AddressComponents        []AddressComponent `json:"address_components,omitempty" yaml:"address_components,omitempty"`
	Vicinity                 string             `json:"vicinity,omitempty" yaml:"vicinity,omitempty"`
	Geometry                 *gmaps.Geometry    `json:"geometry,omitempty" yaml:"geometry,omitempty"`
	PlusCode                 *PlusCode          `json:"plus_code,omitempty" yaml:"plus_code,omitempty"`
	Types                    []string           `json:"types,omitempty" yaml:"types,omitempty"`
	FormattedPhoneNumber     string             `json:"formatted_phone_number,omitempty" yaml:"formatted_phone_number,omitempty"`
	InternationalPhoneNumber string             `json:"international_phone_number,omitempty" yaml:"international_phone_number,omitempty"`
	Website                  string             `json:"website,omitempty" yaml:"website,omitempty"`
	URL                      string             `json:"url,omitempty" yaml:"url,omitempty"`
	Icon                     string             `json:"icon,omitempty" yaml:"icon,omitempty"`
	Rating                   float64            `json:"rating,omitempty" yaml:"rating,omitempty"`
	UserRatingsTotal         int                `json:"user_ratings_total,omitempty" yaml:"user_ratings_total,omitempty"`
	PriceLevel               PriceLevel         `json:"price_level,omitempty" yaml:"price_level,omitempty"`
	UTCOffset                *int               `json:"utc_offset,omitempty" yaml:"utc_offset,omitempty"`
	OpeningHours             *OpeningHours      `json:"opening_hours,omitempty" yaml:"opening_hours,omitempty"`
	Photos                   []Photo            `json:"photos,omitempty" yaml:"photos,omitempty"`
	Reviews                  []Review           `json:"reviews,omitempty" yaml:"reviews,omitempty"`
	EditorialSummary         *EditorialSummary  `json:"editorial_summary,omitempty" yaml:"editorial_summary,omitempty"`
	WheelchairAccessible     *bool              `json:"wheelchair_accessible_entrance,omitempty" yaml:"wheelchair_accessible_entrance,omitempty"`
}

// ParsedAdrAddress parses AdrAddress into its microformat parts.
func (p Place) ParsedAdrAddress() (AdrAddress, error) {
	return ParseAdrAddress(p.AdrAddress)
}

// Component returns the first address component tagged with typ.
func (p Place) Component(typ string) (AddressComponent, bool) {
	for _, c := range p.AddressComponents {
		for _, t := range c.Types {
			if t == typ {
				return c, true
			}
		}
	}
	return AddressComponent{}, false
}

// AddressComponent is one piece of a structured address.
type AddressComponent struct {
	LongName  string   `json:"long_name" yaml:"long_name"`
	ShortName string   `json:"short_name" yaml:"short_name"`
	Types     []string `json:"types" yaml:"types"`
}

// PlusCode is an Open Location Code reference.
type PlusCode struct {
	GlobalCode   string `json:"global_code" yaml:"global_code"`
	CompoundCode string `json:"compound_code,omitempty" yaml:"compound_code,omitempty"`
}

// OpeningHours describes regular opening times.
type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty" yaml:"open_now,omitempty"`
	Periods     []Period `json:"periods,omitempty" yaml:"periods,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty" yaml:"weekday_text,omitempty"`
}

// Period is one open/close pair. Close is nil for places open around the clock.
type Period struct {
	Open  TimeOfWeek  `json:"open" yaml:"open"`
	Close *TimeOfWeek `json:"close,omitempty" yaml:"close,omitempty"`
}

// TimeOfWeek is a day (0 = Sunday) and a 24h "hhmm" time.
type TimeOfWeek struct {
	Day  int    `json:"day" yaml:"day"`
	Time string `json:"time" yaml:"time"`
}

// Photo references an image retrievable through the Place Photos service.
type Photo struct {
	PhotoReference   string   `json:"photo_reference" yaml:"photo_reference"`
	Height           int      `json:"height" yaml:"height"`
	Width            int      `json:"width" yaml:"width"`
	HTMLAttributions []string `json:"html_attributions,omitempty" yaml:"html_attributions,omitempty"`
}

// Review is a user review.
type Review struct {
	AuthorName              string `json:"author_name" yaml:"author_name"`
	AuthorURL               string `json:"author_url,omitempty" yaml:"author_url,omitempty"`
	Language                string `json:"language,omitempty" yaml:"language,omitempty"`
	OriginalLanguage        string `json:"original_language,omitempty" yaml:"original_language,omitempty"`
	ProfilePhotoURL         string `json:"profile_photo_url,omitempty" yaml:"profile_photo_url,omitempty"`
	Rating                  int    `json:"rating" yaml:"rating"`
	RelativeTimeDescription string `json:"relative_time_description,omitempty" yaml:"relative_time_description,omitempty"`
	Text                    string `json:"text,omitempty" yaml:"text,omitempty"`
	Time                    int64  `json:"time" yaml:"time"`
	Translated              bool   `json:"translated,omitempty" yaml:"translated,omitempty"`
}

// EditorialSummary is a short description of the place.
type EditorialSummary struct {
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	Overview string `json:"overview" yaml:"overview"`
}
