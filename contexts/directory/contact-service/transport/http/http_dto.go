package httptransport

type ListContactsRequest struct {
	Search         string `json:"search,omitempty"`
	HasPhone       string `json:"has_phone,omitempty"`
	ExcludeCompany string `json:"exclude_company,omitempty"`
	Tag            string `json:"tag,omitempty"`
	Page           int    `json:"page,omitempty"`
	PerPage        int    `json:"per_page,omitempty"`
}

// ContactRequest is the body of create and full-replace update calls.
type ContactRequest struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Company   string   `json:"company"`
	Notes     string   `json:"notes"`
	OwnerID   string   `json:"owner_id"`
	Tags      []string `json:"tags"`
}

// ContactEnvelope documents the success envelope wrapping one contact.
type ContactEnvelope struct {
	Code    int             `json:"code"`
	Data    ContactResource `json:"data"`
	Message string          `json:"message"`
	Status  string          `json:"status"`
	Success bool            `json:"success"`
}

// ContactPage documents the paginator metadata returned by the list endpoint.
type ContactPage struct {
	CurrentPage  int               `json:"current_page"`
	Data         []ContactResource `json:"data"`
	FirstPageURL string            `json:"first_page_url"`
	From         *int              `json:"from"`
	LastPage     int               `json:"last_page"`
	LastPageURL  string            `json:"last_page_url"`
	NextPageURL  *string           `json:"next_page_url"`
	Path         string            `json:"path"`
	PerPage      int               `json:"per_page"`
	PrevPageURL  *string           `json:"prev_page_url"`
	To           *int              `json:"to"`
	Total        int               `json:"total"`
}

type ContactPageEnvelope struct {
	Code    int         `json:"code"`
	Data    ContactPage `json:"data"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Success bool        `json:"success"`
}

type ContactSummary struct {
	Recent       []ContactResource `json:"recent"`
	Tags         []TagResource     `json:"tags"`
	Total        int               `json:"total"`
	WithoutPhone int               `json:"without_phone"`
}

type ContactSummaryEnvelope struct {
	Code    int            `json:"code"`
	Data    ContactSummary `json:"data"`
	Message string         `json:"message"`
	Status  string         `json:"status"`
	Success bool           `json:"success"`
}

// MessageEnvelope documents envelopes carrying no data.
type MessageEnvelope struct {
	Code    int    `json:"code"`
	Data    []any  `json:"data"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Success bool   `json:"success"`
}

type ErrorEnvelope struct {
	Code    int    `json:"code"`
	Errors  any    `json:"errors"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Success bool   `json:"success"`
}
