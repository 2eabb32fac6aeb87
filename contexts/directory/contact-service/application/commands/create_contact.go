package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	application "apikit/contexts/directory/contact-service/application"
	"apikit/contexts/directory/contact-service/domain/entities"
	"apikit/contexts/directory/contact-service/ports"
)

type ContactFields struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Notes     string
	OwnerID   string
	Tags      []string
}

type CreateContactCommand struct {
	ContactFields
}

type ContactResult struct {
	Contact entities.Contact
}

type CreateContactUseCase struct {
	Contacts    ports.ContactRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CreateContactUseCase) Execute(ctx context.Context, cmd CreateContactCommand) (ContactResult, error) {
	logger := application.ResolveLogger(u.Logger)

	contact := cmd.apply(entities.Contact{})
	if err := contact.Validate(); err != nil {
		return ContactResult{}, err
	}

	contactID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return ContactResult{}, fmt.Errorf("generate contact id: %w", err)
	}
	now := now(u.Clock)
	contact.ContactID = contactID
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if err := u.Contacts.CreateContact(ctx, contact); err != nil {
		logger.Error("create contact failed",
			"event", "create_contact_failed",
			"module", "directory/contact-service",
			"layer", "application",
			"error", err.Error(),
		)
		return ContactResult{}, err
	}

	logger.Info("contact created",
		"event", "contact_created",
		"module", "directory/contact-service",
		"layer", "application",
		"contact_id", contact.ContactID,
	)
	return ContactResult{Contact: contact}, nil
}

// apply overwrites the editable fields of contact and normalizes the result.
func (f ContactFields) apply(contact entities.Contact) entities.Contact {
	contact.FirstName = f.FirstName
	contact.LastName = f.LastName
	contact.Email = f.Email
	contact.Phone = f.Phone
	contact.Company = f.Company
	contact.Notes = f.Notes
	contact.OwnerID = f.OwnerID
	contact.Tags = entities.NormalizeTags(f.Tags)
	return contact.Normalize()
}

func now(clock ports.Clock) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock.Now().UTC()
}
