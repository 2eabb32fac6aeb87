package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	contactdomainerrors "apikit/contexts/directory/contact-service/domain/errors"
	contacthttp "apikit/contexts/directory/contact-service/transport/http"
)

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	req, ok := s.listRequest(w, r)
	if !ok {
		return
	}
	page, err := s.contacts.Handler.ListContactsHandler(r.Context(), req, r.URL.Path)
	if err != nil {
		s.writeContactDomainError(w, r, err)
		return
	}
	s.write(w, s.normalizer.Success(r, page, "", http.StatusOK))
}

func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := s.contacts.Handler.GetContactHandler(r.Context(), r.PathValue("contact_id"))
	if err != nil {
		s.writeContactDomainError(w, r, err)
		return
	}
	s.write(w, s.normalizer.Success(r, contact, "", http.StatusOK))
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var req contacthttp.ContactRequest
	if !s.decode(w, r, &req) {
		return
	}
	contact, err := s.contacts.Handler.CreateContactHandler(r.Context(), req)
	if err != nil {
		s.writeContactDomainError(w, r, err)
		return
	}
	s.write(w, s.normalizer.Success(r, contact, "contact created", http.StatusCreated))
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	var req contacthttp.ContactRequest
	if !s.decode(w, r, &req) {
		return
	}
	contact, err := s.contacts.Handler.UpdateContactHandler(r.Context(), r.PathValue("contact_id"), req)
	if err != nil {
		s.writeContactDomainError(w, r, err)
		return
	}
	s.write(w, s.normalizer.Success(r, contact, "contact updated", http.StatusOK))
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := s.contacts.Handler.DeleteContactHandler(r.Context(), r.PathValue("contact_id")); err != nil {
		s.writeContactDomainError(w, r, err)
		return
	}
	s.write(w, s.normalizer.Success(r, "contact deleted", "", http.StatusOK))
}

func (s *Server) handleContactSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.contacts.Handler.ContactSummaryHandler(r.Context())
	if err != nil {
		s.writeContactDomainError(w, r, err)
		return
	}
	s.write(w, s.normalizer.Success(r, summary, "", http.StatusOK))
}

func (s *Server) listRequest(w http.ResponseWriter, r *http.Request) (contacthttp.ListContactsRequest, bool) {
	query := r.URL.Query()
	req := contacthttp.ListContactsRequest{
		Search:         query.Get("search"),
		HasPhone:       query.Get("has_phone"),
		ExcludeCompany: query.Get("exclude_company"),
		Tag:            query.Get("tag"),
	}
	for name, target := range map[string]*int{"page": &req.Page, "per_page": &req.PerPage} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			s.write(w, s.normalizer.Error(r, name+" must be an integer", "", http.StatusBadRequest))
			return contacthttp.ListContactsRequest{}, false
		}
		*target = value
	}
	return req, true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		s.write(w, s.normalizer.Error(r, "request body must be valid JSON", "", http.StatusBadRequest))
		return false
	}
	return true
}

func (s *Server) writeContactDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *contactdomainerrors.ValidationError
	switch {
	case errors.As(err, &validation):
		s.write(w, s.normalizer.Error(r, validation.Fields, "", http.StatusUnprocessableEntity))
	case errors.Is(err, contactdomainerrors.ErrContactNotFound):
		s.write(w, s.normalizer.Error(r, nil, "", http.StatusNotFound))
	case errors.Is(err, contactdomainerrors.ErrDuplicateEmail):
		s.write(w, s.normalizer.Error(r, err, "", http.StatusConflict))
	case errors.Is(err, contactdomainerrors.ErrInvalidListFilter):
		s.write(w, s.normalizer.Error(r, err, "", http.StatusBadRequest))
	default:
		s.logger.Error("contact request failed",
			"event", "http_contact_request_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"path", r.URL.Path,
			"error", err.Error(),
		)
		s.write(w, s.normalizer.Error(r, nil, "", http.StatusInternalServerError))
	}
}
