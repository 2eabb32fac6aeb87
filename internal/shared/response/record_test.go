package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pointerRecord struct {
	Name string
}

func (p *pointerRecord) RecordType() string { return "PointerRecord" }

func TestRegistryLookup(t *testing.T) {
	registry := NewRegistry()
	registry.Register("Article", Project(func(a article) any { return a.Title }))
	registry.Register("  ", Project(func(a author) any { return a.Name }))
	registry.Register("Author", nil)

	projector, ok := registry.Lookup(article{Title: "Go"})
	require.True(t, ok)
	assert.Equal(t, "Go", projector(article{Title: "Go"}))

	_, ok = registry.Lookup(author{Name: "Ada"})
	assert.False(t, ok)
	assert.ElementsMatch(t, []string{"Article"}, registry.Types())

	var nilRegistry *Registry
	_, ok = nilRegistry.Lookup(article{})
	assert.False(t, ok)
}

func TestRegistryLookupNilPointerRecord(t *testing.T) {
	registry := NewRegistry()
	registry.Register("PointerRecord", Project(func(p *pointerRecord) any { return p.Name }))

	var record *pointerRecord
	_, ok := registry.Lookup(record)
	assert.False(t, ok)

	projector, ok := registry.Lookup(&pointerRecord{Name: "x"})
	require.True(t, ok)
	assert.Equal(t, "x", projector(&pointerRecord{Name: "x"}))
}

func TestProjectPassesThroughOtherTypes(t *testing.T) {
	projector := Project(func(a article) any { return a.Title })
	assert.Equal(t, author{Name: "Ada"}, projector(author{Name: "Ada"}))
}

func TestPageMetaEmpty(t *testing.T) {
	page := NewPage([]article{}, 0, 15, 0, "/articles?sort=title")
	meta := page.PageMeta()

	assert.Equal(t, 1, meta["current_page"])
	assert.Equal(t, 1, meta["last_page"])
	assert.Nil(t, meta["from"])
	assert.Nil(t, meta["to"])
	assert.Nil(t, meta["next_page_url"])
	assert.Nil(t, meta["prev_page_url"])
	assert.Equal(t, "/articles?sort=title&page=1", meta["first_page_url"])
}

func TestPageLastPage(t *testing.T) {
	assert.Equal(t, 1, Page{Total: 10, PerPage: 0}.LastPage())
	assert.Equal(t, 2, Page{Total: 10, PerPage: 5}.LastPage())
	assert.Equal(t, 3, Page{Total: 11, PerPage: 5}.LastPage())
}

func TestPageMiddle(t *testing.T) {
	page := NewPage([]int{4, 5, 6}, 9, 3, 2, "/numbers")
	meta := page.PageMeta()

	assert.Equal(t, 4, meta["from"])
	assert.Equal(t, 6, meta["to"])
	assert.Equal(t, "/numbers?page=1", meta["prev_page_url"])
	assert.Equal(t, "/numbers?page=3", meta["next_page_url"])
}

func TestCollectionMarshal(t *testing.T) {
	var empty Collection
	raw, err := empty.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	raw, err = Collection{"<a>", 1}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `["<a>",1]`, string(raw))
}
