package details

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// AdrAddress is adr_address split into its adr microformat parts.
type AdrAddress struct {
	PostOfficeBox   string `json:"post_office_box,omitempty" yaml:"post_office_box,omitempty"`
	ExtendedAddress string `json:"extended_address,omitempty" yaml:"extended_address,omitempty"`
	StreetAddress   string `json:"street_address,omitempty" yaml:"street_address,omitempty"`
	Locality        string `json:"locality,omitempty" yaml:"locality,omitempty"`
	Region          string `json:"region,omitempty" yaml:"region,omitempty"`
	PostalCode      string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	CountryName     string `json:"country_name,omitempty" yaml:"country_name,omitempty"`
}

// IsZero reports whether no part was found.
func (a AdrAddress) IsZero() bool {
	return a == AdrAddress{}
}

// ParseAdrAddress extracts the microformat spans from an adr_address
// fragment such as `<span class="street-address">5 Main St</span>, ...`.
// An empty fragment yields a zero AdrAddress.
func ParseAdrAddress(fragment string) (AdrAddress, error) {
	if strings.TrimSpace(fragment) == "" {
		return AdrAddress{}, nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return AdrAddress{}, fmt.Errorf("parse adr_address: %w", err)
	}

	text := func(class string) string {
		return strings.Join(strings.Fields(doc.Find("."+class).First().Text()), " ")
	}
	return AdrAddress{
		PostOfficeBox:   text("post-office-box"),
		ExtendedAddress: text("extended-address"),
		StreetAddress:   text("street-address"),
		Locality:        text("locality"),
		Region:          text("region"),
		PostalCode:      text("postal-code"),
		CountryName:     text("country-name"),
	}, nil
}
