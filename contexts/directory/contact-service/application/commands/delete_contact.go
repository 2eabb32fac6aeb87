package commands

import (
	"context"
	"log/slog"
	"strings"

	application "apikit/contexts/directory/contact-service/application"
	domainerrors "apikit/contexts/directory/contact-service/domain/errors"
	"apikit/contexts/directory/contact-service/ports"
)

type DeleteContactCommand struct {
	ContactID string
}

type DeleteContactUseCase struct {
	Contacts ports.ContactRepository
	Logger   *slog.Logger
}

func (u DeleteContactUseCase) Execute(ctx context.Context, cmd DeleteContactCommand) error {
	contactID := strings.TrimSpace(cmd.ContactID)
	if contactID == "" {
		return domainerrors.ErrContactNotFound
	}
	if err := u.Contacts.DeleteContact(ctx, contactID); err != nil {
		return err
	}
	application.ResolveLogger(u.Logger).Info("contact deleted",
		"event", "contact_deleted",
		"module", "directory/contact-service",
		"layer", "application",
		"contact_id", contactID,
	)
	return nil
}
