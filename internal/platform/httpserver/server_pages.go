package httpserver

import (
	"net/http"

	"apikit/contexts/directory/contact-service/domain/entities"
)

const contactsPage = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Contacts</title></head>
<body>
<h1>Contacts</h1>
{{if notempty .Contacts}}
<table>
<tr><th>Name</th><th>Email</th><th>Phone</th><th>Tags</th></tr>
{{range .Contacts}}
<tr>
<td>{{.FullName}}</td>
<td>{{.Email}}</td>
<td>{{if notempty .Phone}}{{.Phone}}{{else}}-{{end}}</td>
<td>{{if notempty .Tags}}{{range $i, $tag := .Tags}}{{if $i}}, {{end}}{{$tag.Label}}{{end}}{{end}}</td>
</tr>
{{end}}
</table>
<p>{{.Total}} contacts</p>
{{else}}
<p class="empty">No contacts yet.</p>
{{end}}
</body>
</html>
`

type contactsPageData struct {
	Contacts []entities.Contact
	Total    int
}

func (s *Server) handleContactsPage(w http.ResponseWriter, r *http.Request) {
	req, ok := s.listRequest(w, r)
	if !ok {
		return
	}
	page, err := s.contacts.Handler.ListContactsHandler(r.Context(), req, r.URL.Path)
	if err != nil {
		s.writeContactDomainError(w, r, err)
		return
	}

	data := contactsPageData{Total: page.Total}
	for _, record := range page.Records {
		if contact, ok := record.(entities.Contact); ok {
			data.Contacts = append(data.Contacts, contact)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages.Execute(w, data); err != nil {
		s.logger.Error("contacts page render failed",
			"event", "http_contacts_page_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
	}
}
