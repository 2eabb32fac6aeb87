package response

import (
	"strconv"
	"strings"
)

// Collection is an ordered sequence of records or plain values.
// A nil Collection serializes as an empty JSON array.
type Collection []any

// Collect lifts a typed slice into a Collection.
func Collect[T any](items []T) Collection {
	out := make(Collection, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

func (c Collection) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return encodeJSON([]any(c))
}

// Paginator is a paginated collection: the records of one page plus the
// metadata describing where the page sits in the full result set.
type Paginator interface {
	PageRecords() Collection
	PageMeta() map[string]any
}

// Page is a length-aware page of records.
type Page struct {
	Records     Collection
	Total       int
	PerPage     int
	CurrentPage int
	// Path is the base URL used to build the page links.
	Path string
}

func NewPage[T any](items []T, total int, perPage int, currentPage int, path string) Page {
	if currentPage < 1 {
		currentPage = 1
	}
	return Page{
		Records:     Collect(items),
		Total:       total,
		PerPage:     perPage,
		CurrentPage: currentPage,
		Path:        path,
	}
}

func (p Page) PageRecords() Collection {
	return p.Records
}

// LastPage is never lower than 1, even for an empty result set.
func (p Page) LastPage() int {
	if p.PerPage <= 0 || p.Total <= 0 {
		return 1
	}
	last := p.Total / p.PerPage
	if p.Total%p.PerPage != 0 {
		last++
	}
	return last
}

// PageMeta renders the page with the paginator field names clients expect:
// current_page, data, first_page_url, from, last_page, last_page_url,
// next_page_url, path, per_page, prev_page_url, to, total.
func (p Page) PageMeta() map[string]any {
	current := p.CurrentPage
	if current < 1 {
		current = 1
	}
	last := p.LastPage()

	var from, to any
	if len(p.Records) > 0 {
		first := (current-1)*p.PerPage + 1
		from = first
		to = first + len(p.Records) - 1
	}

	var next, prev any
	if current < last {
		next = p.url(current + 1)
	}
	if current > 1 {
		prev = p.url(current - 1)
	}

	return map[string]any{
		"current_page":   current,
		"data":           p.Records,
		"first_page_url": p.url(1),
		"from":           from,
		"last_page":      last,
		"last_page_url":  p.url(last),
		"next_page_url":  next,
		"path":           p.Path,
		"per_page":       p.PerPage,
		"prev_page_url":  prev,
		"to":             to,
		"total":          p.Total,
	}
}

func (p Page) MarshalJSON() ([]byte, error) {
	return encodeJSON(p.PageMeta())
}

func (p Page) url(page int) string {
	separator := "?"
	if strings.Contains(p.Path, "?") {
		separator = "&"
	}
	return p.Path + separator + "page=" + strconv.Itoa(page)
}
