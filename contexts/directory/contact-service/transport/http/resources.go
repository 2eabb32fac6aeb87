package httptransport

import (
	"time"

	"apikit/contexts/directory/contact-service/domain/entities"
	"apikit/internal/shared/response"
)

// ContactResource is the public shape of a contact. Notes and the owner
// stay internal.
type ContactResource struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	FullName  string   `json:"full_name"`
	Email     string   `json:"email"`
	Phone     *string  `json:"phone"`
	Company   string   `json:"company"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type TagResource struct {
	Label string `json:"label"`
}

func NewContactResource(contact entities.Contact) ContactResource {
	resource := ContactResource{
		ID:        contact.ContactID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		FullName:  contact.FullName(),
		Email:     contact.Email,
		Company:   contact.Company,
		Tags:      contact.TagLabels(),
		CreatedAt: contact.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: contact.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if contact.HasPhone() {
		phone := contact.Phone
		resource.Phone = &phone
	}
	return resource
}

func NewTagResource(tag entities.Tag) TagResource {
	return TagResource{Label: tag.Label}
}

// RegisterResources binds the contact and tag projections.
func RegisterResources(registry *response.Registry) {
	registry.Register(entities.Contact{}.RecordType(), response.Project(func(contact entities.Contact) any {
		return NewContactResource(contact)
	}))
	registry.Register(entities.Tag{}.RecordType(), response.Project(func(tag entities.Tag) any {
		return NewTagResource(tag)
	}))
}
