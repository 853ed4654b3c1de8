package legacytext

import (
	"strings"

	"github.com/erp/partners/internal/domain/partner"
)

// LabelType prefixes the optional address label line
const LabelType = "Type:"

// SerializeAddresses renders each address as a block of lines: optional
// type label, street, "<zip> <city>", country. Blocks are separated by a
// blank line.
func SerializeAddresses(addresses []partner.Address) string {
	blocks := make([]string, 0, len(addresses))
	for _, a := range addresses {
		var lines []string
		if a.Type != "" {
			lines = append(lines, LabelType+" "+a.Type)
		}
		if a.Street != "" {
			lines = append(lines, a.Street)
		}
		if locality := a.Locality(); locality != "" {
			lines = append(lines, locality)
		}
		if a.Country != "" {
			lines = append(lines, a.Country)
		}
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}
	return strings.TrimRight(strings.Join(blocks, "\n\n"), " \t\r\n")
}

// DeserializeAddresses infers address fields from line positions.
//
// The line after the street is split at its first space into zip code and
// city; without a space it is the city alone. A city name containing a
// space and no zip code is therefore read back as zip and city. Stored text
// depends on this, so the rule stays as is.
func DeserializeAddresses(text string) []partner.Address {
	addresses := make([]partner.Address, 0)
	for _, lines := range splitBlocks(text, func(line string) bool { return line == "" }) {
		var in partner.AddressInput
		if strings.HasPrefix(lines[0], LabelType) {
			in.Type = strings.TrimPrefix(lines[0], LabelType)
			lines = lines[1:]
		}
		if len(lines) > 0 {
			in.Street = lines[0]
			lines = lines[1:]
		}
		if len(lines) > 0 {
			if zip, city, ok := strings.Cut(lines[0], " "); ok {
				in.ZipCode, in.City = zip, city
			} else {
				in.City = lines[0]
			}
			lines = lines[1:]
		}
		if len(lines) > 0 {
			in.Country = lines[len(lines)-1]
		}
		if a, ok := partner.NormalizeAddress(in); ok {
			addresses = append(addresses, a)
		}
	}
	return addresses
}

// AddressInputs converts canonical addresses back to inputs for replacement
func AddressInputs(addresses []partner.Address) []partner.AddressInput {
	out := make([]partner.AddressInput, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, partner.AddressInput{Type: a.Type, Street: a.Street, ZipCode: a.ZipCode, City: a.City, Country: a.Country})
	}
	return out
}
