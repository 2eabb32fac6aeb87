package memory

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	application "apikit/contexts/directory/contact-service/application"
	"apikit/contexts/directory/contact-service/domain/entities"
	domainerrors "apikit/contexts/directory/contact-service/domain/errors"
	"apikit/contexts/directory/contact-service/ports"
	"apikit/internal/platform/db"
)

// Store is an in-memory adapter implementing the contact ports for local
// runtime and tests. Filters follow the LIKE semantics of the Postgres
// adapter so both behave the same.
type Store struct {
	mu       sync.RWMutex
	contacts map[string]entities.Contact
	emails   map[string]string
	sequence uint64
	logger   *slog.Logger
}

func NewStore(seed []entities.Contact, logger *slog.Logger) *Store {
	store := &Store{
		contacts: make(map[string]entities.Contact, len(seed)),
		emails:   make(map[string]string, len(seed)),
		logger:   application.ResolveLogger(logger),
	}
	for _, contact := range seed {
		store.contacts[contact.ContactID] = cloneContact(contact)
		store.emails[contact.Email] = contact.ContactID
	}
	return store
}

func (s *Store) ListContacts(_ context.Context, filter ports.ContactListFilter) ([]entities.Contact, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entities.Contact, 0, len(s.contacts))
	for _, contact := range s.contacts {
		if matchesFilter(contact, filter) {
			matched = append(matched, contact)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ContactID > matched[j].ContactID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = total
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= total {
		return []entities.Contact{}, total, nil
	}
	end := start + perPage
	if end > total {
		end = total
	}

	items := make([]entities.Contact, 0, end-start)
	for _, contact := range matched[start:end] {
		items = append(items, cloneContact(contact))
	}
	return items, total, nil
}

func (s *Store) GetContact(_ context.Context, contactID string) (entities.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contact, ok := s.contacts[contactID]
	if !ok {
		return entities.Contact{}, domainerrors.ErrContactNotFound
	}
	return cloneContact(contact), nil
}

func (s *Store) CreateContact(_ context.Context, contact entities.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emails[contact.Email]; exists {
		return domainerrors.ErrDuplicateEmail
	}
	s.contacts[contact.ContactID] = cloneContact(contact)
	s.emails[contact.Email] = contact.ContactID
	return nil
}

func (s *Store) UpdateContact(_ context.Context, contact entities.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.contacts[contact.ContactID]
	if !ok {
		return domainerrors.ErrContactNotFound
	}
	if owner, exists := s.emails[contact.Email]; exists && owner != contact.ContactID {
		return domainerrors.ErrDuplicateEmail
	}
	delete(s.emails, existing.Email)
	s.contacts[contact.ContactID] = cloneContact(contact)
	s.emails[contact.Email] = contact.ContactID
	return nil
}

func (s *Store) DeleteContact(_ context.Context, contactID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.contacts[contactID]
	if !ok {
		return domainerrors.ErrContactNotFound
	}
	delete(s.contacts, contactID)
	delete(s.emails, existing.Email)
	s.logger.Debug("contact removed from memory store",
		"event", "memory_contact_deleted",
		"module", "directory/contact-service",
		"layer", "adapter",
		"contact_id", contactID,
	)
	return nil
}

func (s *Store) CountWithoutPhone(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, contact := range s.contacts {
		if contact.Phone == "" {
			count++
		}
	}
	return count, nil
}

// ListTags returns every distinct tag in use, sorted by label.
func (s *Store) ListTags(_ context.Context) ([]entities.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	tags := make([]entities.Tag, 0)
	for _, contact := range s.contacts {
		for _, tag := range contact.Tags {
			if _, ok := seen[tag.Label]; ok {
				continue
			}
			seen[tag.Label] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Label < tags[j].Label })
	return tags, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	next := atomic.AddUint64(&s.sequence, 1)
	return "contact-" + strconv.FormatUint(next, 10), nil
}

func matchesFilter(contact entities.Contact, filter ports.ContactListFilter) bool {
	if filter.Search != "" {
		pattern := db.LikePattern(filter.Search)
		if !db.MatchLike(contact.FirstName, pattern) &&
			!db.MatchLike(contact.LastName, pattern) &&
			!db.MatchLike(contact.Email, pattern) {
			return false
		}
	}
	if filter.HasPhone != nil && (contact.Phone != "") != *filter.HasPhone {
		return false
	}
	if filter.ExcludeCompany != "" &&
		db.MatchLike(contact.Company, db.LikePattern(filter.ExcludeCompany, db.NoLeadingWildcard())) {
		return false
	}
	if filter.Tag != "" {
		pattern := db.LikePattern(filter.Tag)
		found := false
		for _, tag := range contact.Tags {
			if db.MatchLike(tag.Label, pattern) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func cloneContact(contact entities.Contact) entities.Contact {
	contact.Tags = append([]entities.Tag(nil), contact.Tags...)
	if contact.Tags == nil {
		contact.Tags = []entities.Tag{}
	}
	return contact
}
