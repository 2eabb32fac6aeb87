package contactservice

import (
	"log/slog"

	httpadapter "apikit/contexts/directory/contact-service/adapters/http"
	"apikit/contexts/directory/contact-service/adapters/memory"
	"apikit/contexts/directory/contact-service/application/commands"
	"apikit/contexts/directory/contact-service/application/queries"
	"apikit/contexts/directory/contact-service/domain/entities"
	"apikit/contexts/directory/contact-service/ports"
)

// Module is the composition surface of the contact service.
// Runtime wiring consumes Handler; Store is exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Contacts    ports.ContactRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires the contact use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		ListContacts: queries.ListContactsUseCase{
			Contacts: deps.Contacts,
			Logger:   deps.Logger,
		},
		GetContact: queries.GetContactUseCase{
			Contacts: deps.Contacts,
			Logger:   deps.Logger,
		},
		ContactSummary: queries.ContactSummaryUseCase{
			Contacts: deps.Contacts,
			Logger:   deps.Logger,
		},
		CreateContact: commands.CreateContactUseCase{
			Contacts:    deps.Contacts,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		UpdateContact: commands.UpdateContactUseCase{
			Contacts: deps.Contacts,
			Clock:    deps.Clock,
			Logger:   deps.Logger,
		},
		DeleteContact: commands.DeleteContactUseCase{
			Contacts: deps.Contacts,
			Logger:   deps.Logger,
		},
		Logger: deps.Logger,
	}
	return Module{Handler: handler}
}

// NewInMemoryModule wires the use cases against the in-memory store. It is
// the runtime path when no Postgres DSN is configured.
func NewInMemoryModule(seed []entities.Contact, logger *slog.Logger) Module {
	store := memory.NewStore(seed, logger)
	module := NewModule(Dependencies{
		Contacts:    store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
