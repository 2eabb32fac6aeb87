package httpadapter

import (
	"context"
	"log/slog"

	application "apikit/contexts/directory/contact-service/application"
	"apikit/contexts/directory/contact-service/application/commands"
	"apikit/contexts/directory/contact-service/application/queries"
	"apikit/contexts/directory/contact-service/domain/entities"
	httptransport "apikit/contexts/directory/contact-service/transport/http"
	"apikit/internal/shared/response"
)

// Handler returns domain records. Projection into resources and the
// envelope happen in the response normalizer.
type Handler struct {
	ListContacts   queries.ListContactsUseCase
	GetContact     queries.GetContactUseCase
	ContactSummary queries.ContactSummaryUseCase
	CreateContact  commands.CreateContactUseCase
	UpdateContact  commands.UpdateContactUseCase
	DeleteContact  commands.DeleteContactUseCase
	Logger         *slog.Logger
}

// ListContactsHandler godoc
// @Summary List contacts
// @Description Returns one page of contacts with paginator metadata.
// @Tags contact-service
// @Produce json
// @Param search query string false "Matches first name, last name or email"
// @Param has_phone query string false "true or false"
// @Param exclude_company query string false "Drops contacts whose company starts with the value"
// @Param tag query string false "Tag label fragment"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size (max 100)"
// @Param Accept-Language header string false "Locale of default messages"
// @Success 200 {object} httptransport.ContactPageEnvelope
// @Failure 400 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /v1/contacts [get]
func (h Handler) ListContactsHandler(ctx context.Context, req httptransport.ListContactsRequest, path string) (response.Page, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("list contacts request received",
		"event", "http_list_contacts_received",
		"module", "directory/contact-service",
		"layer", "transport",
	)

	result, err := h.ListContacts.Execute(ctx, queries.ListContactsQuery{
		Search:         req.Search,
		HasPhone:       req.HasPhone,
		ExcludeCompany: req.ExcludeCompany,
		Tag:            req.Tag,
		Page:           req.Page,
		PerPage:        req.PerPage,
	})
	if err != nil {
		logger.Error("list contacts request failed",
			"event", "http_list_contacts_failed",
			"module", "directory/contact-service",
			"layer", "transport",
			"error", err.Error(),
		)
		return response.Page{}, err
	}

	return response.NewPage(result.Items, result.Total, result.PerPage, result.Page, path), nil
}

// GetContactHandler godoc
// @Summary Get contact
// @Description Returns one contact by id.
// @Tags contact-service
// @Produce json
// @Param contact_id path string true "Contact id"
// @Success 200 {object} httptransport.ContactEnvelope
// @Failure 404 {object} httptransport.ErrorEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /v1/contacts/{contact_id} [get]
func (h Handler) GetContactHandler(ctx context.Context, contactID string) (entities.Contact, error) {
	result, err := h.GetContact.Execute(ctx, queries.GetContactQuery{ContactID: contactID})
	if err != nil {
		return entities.Contact{}, err
	}
	return result.Contact, nil
}

// CreateContactHandler godoc
// @Summary Create contact
// @Tags contact-service
// @Accept json
// @Produce json
// @Param request body httptransport.ContactRequest true "Contact"
// @Success 201 {object} httptransport.ContactEnvelope
// @Failure 400 {object} httptransport.ErrorEnvelope
// @Failure 409 {object} httptransport.ErrorEnvelope
// @Failure 422 {object} httptransport.ErrorEnvelope
// @Router /v1/contacts [post]
func (h Handler) CreateContactHandler(ctx context.Context, req httptransport.ContactRequest) (entities.Contact, error) {
	result, err := h.CreateContact.Execute(ctx, commands.CreateContactCommand{
		ContactFields: contactFields(req),
	})
	if err != nil {
		return entities.Contact{}, err
	}
	return result.Contact, nil
}

// UpdateContactHandler godoc
// @Summary Replace contact
// @Description Replaces every editable field. PUT answers 201.
// @Tags contact-service
// @Accept json
// @Produce json
// @Param contact_id path string true "Contact id"
// @Param request body httptransport.ContactRequest true "Contact"
// @Success 201 {object} httptransport.ContactEnvelope
// @Failure 404 {object} httptransport.ErrorEnvelope
// @Failure 409 {object} httptransport.ErrorEnvelope
// @Failure 422 {object} httptransport.ErrorEnvelope
// @Router /v1/contacts/{contact_id} [put]
func (h Handler) UpdateContactHandler(ctx context.Context, contactID string, req httptransport.ContactRequest) (entities.Contact, error) {
	result, err := h.UpdateContact.Execute(ctx, commands.UpdateContactCommand{
		ContactID:     contactID,
		ContactFields: contactFields(req),
	})
	if err != nil {
		return entities.Contact{}, err
	}
	return result.Contact, nil
}

// DeleteContactHandler godoc
// @Summary Delete contact
// @Description DELETE answers 202.
// @Tags contact-service
// @Produce json
// @Param contact_id path string true "Contact id"
// @Success 202 {object} httptransport.MessageEnvelope
// @Failure 404 {object} httptransport.ErrorEnvelope
// @Router /v1/contacts/{contact_id} [delete]
func (h Handler) DeleteContactHandler(ctx context.Context, contactID string) error {
	return h.DeleteContact.Execute(ctx, commands.DeleteContactCommand{ContactID: contactID})
}

// ContactSummaryHandler godoc
// @Summary Contact book summary
// @Description Totals, the newest contacts and the tags in use.
// @Tags contact-service
// @Produce json
// @Success 200 {object} httptransport.ContactSummaryEnvelope
// @Failure 500 {object} httptransport.ErrorEnvelope
// @Router /v1/contacts-summary [get]
func (h Handler) ContactSummaryHandler(ctx context.Context) (map[string]any, error) {
	summary, err := h.ContactSummary.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"recent":        summary.Recent,
		"tags":          summary.Tags,
		"total":         summary.Total,
		"without_phone": summary.WithoutPhone,
	}, nil
}

func contactFields(req httptransport.ContactRequest) commands.ContactFields {
	return commands.ContactFields{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Notes:     req.Notes,
		OwnerID:   req.OwnerID,
		Tags:      req.Tags,
	}
}
