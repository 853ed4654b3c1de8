package partner

import "strings"

// Contact is a canonical contact person of a trading partner.
// Empty fields are absent.
type Contact struct {
	Name  string
	Email string
	Phone string
	Role  string
}

// ContactInput is unvalidated contact data as received from a caller
type ContactInput struct {
	Name  string
	Email string
	Phone string
	Role  string
}

// NormalizeContact trims every field, flattens line breaks and rejects the contact when name,
// email and phone are all empty. Role alone is not enough.
func NormalizeContact(in ContactInput) (Contact, bool) {
	c := Contact{
		Name:  clean(in.Name),
		Email: clean(in.Email),
		Phone: clean(in.Phone),
		Role:  clean(in.Role),
	}
	if c.Name == "" && c.Email == "" && c.Phone == "" {
		return Contact{}, false
	}
	return c, true
}

// DisplayName returns the best available label for the contact
func (c Contact) DisplayName() string {
	switch {
	case c.Name != "":
		return c.Name
	case c.Email != "":
		return c.Email
	default:
		return c.Phone
	}
}

// lineBreaks turns embedded line breaks into spaces; the legacy text
// format keeps one field per line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func clean(s string) string {
	return strings.TrimSpace(lineBreaks.Replace(s))
}
