// Package legacytext converts contact and address lists to and from the
// single free-text field used by the old partner form. It is the only
// place that knows the format.
package legacytext

import (
	"strings"

	"github.com/erp/partners/internal/domain/partner"
)

// Contact line labels, written in this order
const (
	LabelEmail      = "Email:"
	LabelPhone      = "Phone:"
	LabelName       = "Contact:"
	LabelDepartment = "Department:"
)

// ContactSeparator is the line between two contact blocks
const ContactSeparator = "---"

// SerializeContacts renders contacts as labeled lines, one block per contact
func SerializeContacts(contacts []partner.Contact) string {
	blocks := make([]string, 0, len(contacts))
	for _, c := range contacts {
		var lines []string
		lines = appendLabeled(lines, LabelEmail, c.Email)
		lines = appendLabeled(lines, LabelPhone, c.Phone)
		lines = appendLabeled(lines, LabelName, c.Name)
		lines = appendLabeled(lines, LabelDepartment, c.Role)
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}
	return strings.TrimRight(strings.Join(blocks, "\n"+ContactSeparator+"\n"), " \t\r\n")
}

// DeserializeContacts parses text produced by SerializeContacts.
// Unknown lines are ignored and blocks without name, email or phone are dropped.
func DeserializeContacts(text string) []partner.Contact {
	contacts := make([]partner.Contact, 0)
	for _, block := range splitBlocks(text, func(line string) bool { return line == ContactSeparator }) {
		var in partner.ContactInput
		for _, line := range block {
			switch {
			case strings.HasPrefix(line, LabelEmail):
				in.Email = strings.TrimPrefix(line, LabelEmail)
			case strings.HasPrefix(line, LabelPhone):
				in.Phone = strings.TrimPrefix(line, LabelPhone)
			case strings.HasPrefix(line, LabelName):
				in.Name = strings.TrimPrefix(line, LabelName)
			case strings.HasPrefix(line, LabelDepartment):
				in.Role = strings.TrimPrefix(line, LabelDepartment)
			}
		}
		if c, ok := partner.NormalizeContact(in); ok {
			contacts = append(contacts, c)
		}
	}
	return contacts
}

// ContactInputs converts canonical contacts back to inputs for replacement
func ContactInputs(contacts []partner.Contact) []partner.ContactInput {
	out := make([]partner.ContactInput, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, partner.ContactInput{Name: c.Name, Email: c.Email, Phone: c.Phone, Role: c.Role})
	}
	return out
}

func appendLabeled(lines []string, label, value string) []string {
	if value == "" {
		return lines
	}
	return append(lines, label+" "+value)
}

// splitBlocks breaks text into trimmed, non-empty lines grouped into blocks.
// A line for which isBoundary returns true closes the current block.
func splitBlocks(text string, isBoundary func(line string) bool) [][]string {
	var blocks [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
	}
	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if isBoundary(line) {
			flush()
			continue
		}
		if line != "" {
			current = append(current, line)
		}
	}
	flush()
	return blocks
}
