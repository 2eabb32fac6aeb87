package queries

import (
	"context"
	"log/slog"

	application "apikit/contexts/directory/contact-service/application"
	"apikit/contexts/directory/contact-service/ports"
)

const recentContacts = 5

type ContactSummaryUseCase struct {
	Contacts ports.ContactRepository
	Logger   *slog.Logger
}

// Execute collects the total, the phone-less count, the newest contacts and
// every tag in use.
func (u ContactSummaryUseCase) Execute(ctx context.Context) (ports.ContactSummary, error) {
	logger := application.ResolveLogger(u.Logger)

	recent, total, err := u.Contacts.ListContacts(ctx, ports.ContactListFilter{
		Page:    1,
		PerPage: recentContacts,
	})
	if err != nil {
		return ports.ContactSummary{}, err
	}
	withoutPhone, err := u.Contacts.CountWithoutPhone(ctx)
	if err != nil {
		return ports.ContactSummary{}, err
	}
	tags, err := u.Contacts.ListTags(ctx)
	if err != nil {
		return ports.ContactSummary{}, err
	}

	logger.Debug("contact summary computed",
		"event", "contact_summary_computed",
		"module", "directory/contact-service",
		"layer", "application",
		"total", total,
		"without_phone", withoutPhone,
	)

	return ports.ContactSummary{
		Total:        total,
		WithoutPhone: withoutPhone,
		Recent:       recent,
		Tags:         tags,
	}, nil
}
