package entities

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	domainerrors "apikit/contexts/directory/contact-service/domain/errors"
)

const (
	// MaxIndexedLength bounds every indexed varchar column.
	MaxIndexedLength = 191
	maxNotesLength   = 2000
)

// Normalize trims every free-text field and lower-cases the email.
func (c Contact) Normalize() Contact {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
	c.Company = strings.TrimSpace(c.Company)
	c.Notes = strings.TrimSpace(c.Notes)
	c.OwnerID = strings.TrimSpace(c.OwnerID)
	return c
}

// Validate reports every field problem at once. It returns nil for a valid
// contact and a *ValidationError otherwise.
func (c Contact) Validate() error {
	problems := &domainerrors.ValidationError{}
	if c.FirstName == "" {
		problems.Add("first_name", "is required")
	}
	if tooLong(c.FirstName, MaxIndexedLength) {
		problems.Add("first_name", "is too long")
	}
	if tooLong(c.LastName, MaxIndexedLength) {
		problems.Add("last_name", "is too long")
	}
	switch {
	case c.Email == "":
		problems.Add("email", "is required")
	case tooLong(c.Email, MaxIndexedLength):
		problems.Add("email", "is too long")
	default:
		// Only a bare mailbox is accepted, never "Name <addr>".
		if addr, err := mail.ParseAddress(c.Email); err != nil || addr.Address != c.Email {
			problems.Add("email", "is not a valid address")
		}
	}
	if tooLong(c.Phone, MaxIndexedLength) {
		problems.Add("phone", "is too long")
	}
	if tooLong(c.Company, MaxIndexedLength) {
		problems.Add("company", "is too long")
	}
	if tooLong(c.Notes, maxNotesLength) {
		problems.Add("notes", "is too long")
	}
	for _, tag := range c.Tags {
		if tooLong(tag.Label, MaxIndexedLength) {
			problems.Add("tags", "label is too long")
			break
		}
	}
	if problems.Empty() {
		return nil
	}
	return problems
}

func tooLong(value string, limit int) bool {
	return utf8.RuneCountInString(value) > limit
}
