package ports

import (
	"context"
	"time"

	"apikit/contexts/directory/contact-service/domain/entities"
)

// ContactListFilter defines read-side filtering/pagination for the contact book.
type ContactListFilter struct {
	// Search matches first name, last name or email, case as stored.
	Search string
	// HasPhone restricts to contacts with (true) or without (false) a phone.
	HasPhone *bool
	// ExcludeCompany drops contacts whose company starts with the value.
	ExcludeCompany string
	// Tag keeps contacts carrying a tag whose label contains the value.
	Tag     string
	Page    int
	PerPage int
}

// ContactSummary aggregates the contact book for the summary endpoint.
type ContactSummary struct {
	Total        int
	WithoutPhone int
	Recent       []entities.Contact
	Tags         []entities.Tag
}

// ContactRepository owns contact persistence.
type ContactRepository interface {
	// ListContacts returns one page of contacts ordered by creation time
	// (newest first) and the total number of matches.
	ListContacts(ctx context.Context, filter ContactListFilter) ([]entities.Contact, int, error)
	GetContact(ctx context.Context, contactID string) (entities.Contact, error)
	CreateContact(ctx context.Context, contact entities.Contact) error
	UpdateContact(ctx context.Context, contact entities.Contact) error
	DeleteContact(ctx context.Context, contactID string) error
	CountWithoutPhone(ctx context.Context) (int, error)
	ListTags(ctx context.Context) ([]entities.Tag, error)
}

// Clock allows deterministic timestamps in tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts contact identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
