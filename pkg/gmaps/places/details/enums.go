package details

import "github.com/samvad-hq/gmaps/pkg/gmaps/jsonenum"

// BusinessStatus is the operational state of a place.
type BusinessStatus int

const (
	BusinessStatusUnspecified BusinessStatus = iota
	BusinessStatusOperational
	BusinessStatusClosedTemporarily
	BusinessStatusClosedPermanently
)

var businessStatusSet = jsonenum.New[BusinessStatus]("BusinessStatus", BusinessStatusUnspecified).
	Name(BusinessStatusUnspecified, "BUSINESS_STATUS_UNSPECIFIED").
	Name(BusinessStatusOperational, "OPERATIONAL").
	Name(BusinessStatusClosedTemporarily, "CLOSED_TEMPORARILY").
	Name(BusinessStatusClosedPermanently, "CLOSED_PERMANENTLY")

func (b BusinessStatus) String() string { return businessStatusSet.String(b) }

func (b BusinessStatus) MarshalText() ([]byte, error) { return businessStatusSet.MarshalText(b) }

func (b *BusinessStatus) UnmarshalJSON(data []byte) error {
	v, err := businessStatusSet.Unmarshal(data)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// PriceLevel is the relative price of a place. The legacy API sends 0-4,
// the newer one sends names such as "PRICE_LEVEL_MODERATE"; both decode.
type PriceLevel int

const (
	PriceLevelUnspecified PriceLevel = iota
	PriceLevelFree
	PriceLevelInexpensive
	PriceLevelModerate
	PriceLevelExpensive
	PriceLevelVeryExpensive
)

var priceLevelSet = jsonenum.New[PriceLevel]("PriceLevel", PriceLevelUnspecified).
	Name(PriceLevelUnspecified, "PRICE_LEVEL_UNSPECIFIED").
	Name(PriceLevelFree, "PRICE_LEVEL_FREE", "FREE").
	Name(PriceLevelInexpensive, "PRICE_LEVEL_INEXPENSIVE", "INEXPENSIVE").
	Name(PriceLevelModerate, "PRICE_LEVEL_MODERATE", "MODERATE").
	Name(PriceLevelExpensive, "PRICE_LEVEL_EXPENSIVE", "EXPENSIVE").
	Name(PriceLevelVeryExpensive, "PRICE_LEVEL_VERY_EXPENSIVE", "VERY_EXPENSIVE").
	Number(0, PriceLevelFree).
	Number(1, PriceLevelInexpensive).
	Number(2, PriceLevelModerate).
	Number(3, PriceLevelExpensive).
	Number(4, PriceLevelVeryExpensive)

func (p PriceLevel) String() string { return priceLevelSet.String(p) }

func (p PriceLevel) MarshalText() ([]byte, error) { return priceLevelSet.MarshalText(p) }

func (p *PriceLevel) UnmarshalJSON(data []byte) error {
	v, err := priceLevelSet.Unmarshal(data)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
