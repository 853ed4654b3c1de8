package partner

import "strings"

// Address defaults applied during normalization
const (
	DefaultAddressType = "Hauptadresse"
	DefaultCountry     = "Deutschland"
)

// Address is a canonical postal address of a trading partner
type Address struct {
	Type    string
	Street  string
	ZipCode string
	City    string
	Country string
}

// AddressInput is unvalidated address data as received from a caller
type AddressInput struct {
	Type    string
	Street  string
	ZipCode string
	City    string
	Country string
}

// NormalizeAddress trims every field, flattens line breaks, rejects addresses without street or
// city and fills in the default type and country.
func NormalizeAddress(in AddressInput) (Address, bool) {
	a := Address{
		Type:    clean(in.Type),
		Street:  clean(in.Street),
		ZipCode: clean(in.ZipCode),
		City:    clean(in.City),
		Country: clean(in.Country),
	}
	if a.Street == "" || a.City == "" {
		return Address{}, false
	}
	if a.Type == "" {
		a.Type = DefaultAddressType
	}
	if a.Country == "" {
		a.Country = DefaultCountry
	}
	return a, true
}

// Locality formats zip code and city as a single line, e.g. "10115 Berlin"
func (a Address) Locality() string {
	return strings.TrimSpace(a.ZipCode + " " + a.City)
}
