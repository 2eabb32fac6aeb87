package queries

import (
	"context"
	"log/slog"
	"strings"

	application "apikit/contexts/directory/contact-service/application"
	"apikit/contexts/directory/contact-service/domain/entities"
	domainerrors "apikit/contexts/directory/contact-service/domain/errors"
	"apikit/contexts/directory/contact-service/ports"
)

type GetContactQuery struct {
	ContactID string
}

type GetContactResult struct {
	Contact entities.Contact
}

type GetContactUseCase struct {
	Contacts ports.ContactRepository
	Logger   *slog.Logger
}

func (u GetContactUseCase) Execute(ctx context.Context, query GetContactQuery) (GetContactResult, error) {
	contactID := strings.TrimSpace(query.ContactID)
	if contactID == "" {
		return GetContactResult{}, domainerrors.ErrContactNotFound
	}
	contact, err := u.Contacts.GetContact(ctx, contactID)
	if err != nil {
		application.ResolveLogger(u.Logger).Warn("get contact failed",
			"event", "get_contact_failed",
			"module", "directory/contact-service",
			"layer", "application",
			"contact_id", contactID,
			"error", err.Error(),
		)
		return GetContactResult{}, err
	}
	return GetContactResult{Contact: contact}, nil
}
