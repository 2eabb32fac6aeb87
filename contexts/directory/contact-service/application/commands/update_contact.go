package commands

import (
	"context"
	"log/slog"
	"strings"

	application "apikit/contexts/directory/contact-service/application"
	domainerrors "apikit/contexts/directory/contact-service/domain/errors"
	"apikit/contexts/directory/contact-service/ports"
)

// UpdateContactCommand replaces every editable field of an existing contact.
type UpdateContactCommand struct {
	ContactID string
	ContactFields
}

type UpdateContactUseCase struct {
	Contacts ports.ContactRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (u UpdateContactUseCase) Execute(ctx context.Context, cmd UpdateContactCommand) (ContactResult, error) {
	logger := application.ResolveLogger(u.Logger)
	contactID := strings.TrimSpace(cmd.ContactID)
	if contactID == "" {
		return ContactResult{}, domainerrors.ErrContactNotFound
	}

	existing, err := u.Contacts.GetContact(ctx, contactID)
	if err != nil {
		return ContactResult{}, err
	}

	contact := cmd.apply(existing)
	if err := contact.Validate(); err != nil {
		return ContactResult{}, err
	}
	contact.UpdatedAt = now(u.Clock)

	if err := u.Contacts.UpdateContact(ctx, contact); err != nil {
		logger.Error("update contact failed",
			"event", "update_contact_failed",
			"module", "directory/contact-service",
			"layer", "application",
			"contact_id", contactID,
			"error", err.Error(),
		)
		return ContactResult{}, err
	}

	logger.Info("contact updated",
		"event", "contact_updated",
		"module", "directory/contact-service",
		"layer", "application",
		"contact_id", contactID,
	)
	return ContactResult{Contact: contact}, nil
}
