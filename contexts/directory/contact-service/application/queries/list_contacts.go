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

const (
	defaultPerPage = 15
	maxPerPage     = 100
)

type ListContactsQuery struct {
	Search         string
	HasPhone       string
	ExcludeCompany string
	Tag            string
	Page           int
	PerPage        int
}

type ListContactsResult struct {
	Items   []entities.Contact
	Total   int
	Page    int
	PerPage int
}

type ListContactsUseCase struct {
	Contacts ports.ContactRepository
	Logger   *slog.Logger
}

func (u ListContactsUseCase) Execute(ctx context.Context, query ListContactsQuery) (ListContactsResult, error) {
	logger := application.ResolveLogger(u.Logger)
	page := query.Page
	if page <= 0 {
		page = 1
	}
	perPage := query.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	hasPhone, ok := parseHasPhone(query.HasPhone)
	if !ok {
		return ListContactsResult{}, domainerrors.ErrInvalidListFilter
	}

	logger.Info("list contacts started",
		"event", "list_contacts_started",
		"module", "directory/contact-service",
		"layer", "application",
		"page", page,
		"per_page", perPage,
	)

	items, total, err := u.Contacts.ListContacts(ctx, ports.ContactListFilter{
		Search:         strings.TrimSpace(query.Search),
		HasPhone:       hasPhone,
		ExcludeCompany: strings.TrimSpace(query.ExcludeCompany),
		Tag:            strings.ToLower(strings.TrimSpace(query.Tag)),
		Page:           page,
		PerPage:        perPage,
	})
	if err != nil {
		logger.Error("list contacts failed",
			"event", "list_contacts_failed",
			"module", "directory/contact-service",
			"layer", "application",
			"error", err.Error(),
		)
		return ListContactsResult{}, err
	}

	logger.Info("list contacts completed",
		"event", "list_contacts_completed",
		"module", "directory/contact-service",
		"layer", "application",
		"items_count", len(items),
		"total", total,
	)

	return ListContactsResult{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

func parseHasPhone(value string) (*bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return nil, true
	case "1", "true", "yes":
		v := true
		return &v, true
	case "0", "false", "no":
		v := false
		return &v, true
	default:
		return nil, false
	}
}
