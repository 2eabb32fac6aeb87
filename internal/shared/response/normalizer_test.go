package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type article struct {
	ID     int
	Title  string
	Secret string
}

func (article) RecordType() string { return "Article" }

type author struct {
	Name string
}

func (author) RecordType() string { return "Author" }

type articleResource struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type stubCatalog map[string]string

func (c stubCatalog) Message(locale string, code int) string {
	if code != http.StatusNotFound {
		return ""
	}
	return c[locale]
}

func newTestNormalizer(opts ...Option) *Normalizer {
	registry := NewRegistry()
	registry.Register("Article", Project(func(a article) any {
		return articleResource{ID: a.ID, Title: a.Title}
	}))
	return NewNormalizer(registry, opts...)
}

func decodeBody(t *testing.T, resp Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(resp.Body, &out))
	return out
}

func TestSuccessDefaults(t *testing.T) {
	n := newTestNormalizer()

	resp := n.Success(nil, nil, "", 0)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, `{"code":200,"data":[],"message":"","status":"success","success":true}`, string(resp.Body))

	resp = n.Success(nil, []any{}, "", 0)
	assert.Equal(t, `{"code":200,"data":[],"message":"","status":"success","success":true}`, string(resp.Body))
}

func TestSuccessStringBecomesMessage(t *testing.T) {
	n := newTestNormalizer()

	resp := n.Success(nil, "hello", "ignored", 0)
	assert.Equal(t, `{"code":200,"data":[],"message":"hello","status":"success","success":true}`, string(resp.Body))
}

func TestSuccessProjectsRegisteredRecord(t *testing.T) {
	n := newTestNormalizer()

	resp := n.Success(nil, article{ID: 7, Title: "Go", Secret: "hidden"}, "ok", 0)
	body := decodeBody(t, resp)
	assert.Equal(t, map[string]any{"id": float64(7), "title": "Go"}, body["data"])
	assert.NotContains(t, string(resp.Body), "hidden")
}

func TestSuccessPassesThroughUnregisteredRecord(t *testing.T) {
	n := newTestNormalizer()

	resp := n.Success(nil, author{Name: "Ada"}, "", 0)
	body := decodeBody(t, resp)
	assert.Equal(t, map[string]any{"Name": "Ada"}, body["data"])
}

func TestSuccessProjectsCollection(t *testing.T) {
	n := newTestNormalizer()

	items := Collect([]article{{ID: 1, Title: "a", Secret: "x"}, {ID: 2, Title: "b", Secret: "y"}})
	resp := n.Success(nil, items, "", 0)
	body := decodeBody(t, resp)
	assert.Equal(t, []any{
		map[string]any{"id": float64(1), "title": "a"},
		map[string]any{"id": float64(2), "title": "b"},
	}, body["data"])
}

func TestSuccessEmptyCollectionIsEmptySequence(t *testing.T) {
	n := newTestNormalizer()

	resp := n.Success(nil, Collection{}, "", 0)
	assert.Equal(t, `{"code":200,"data":[],"message":"","status":"success","success":true}`, string(resp.Body))

	var nilCollection Collection
	resp = n.Success(nil, nilCollection, "", 0)
	assert.Equal(t, `{"code":200,"data":[],"message":"","status":"success","success":true}`, string(resp.Body))
}

func TestSuccessNilSliceOrMapIsEmptySequence(t *testing.T) {
	n := newTestNormalizer()
	empty := `{"code":200,"data":[],"message":"","status":"success","success":true}`

	var articles []article
	assert.Equal(t, empty, string(n.Success(nil, articles, "", 0).Body))
	var fields map[string]any
	assert.Equal(t, empty, string(n.Success(nil, fields, "", 0).Body))

	resp := n.Success(nil, map[string]any{"items": []article(nil), "count": 0}, "", 0)
	assert.Equal(t, `{"code":200,"data":{"count":0,"items":[]},"message":"","status":"success","success":true}`, string(resp.Body))
}

func TestSuccessProjectsRecordsInIntKeyedMap(t *testing.T) {
	n := newTestNormalizer()

	resp := n.Success(nil, map[int]any{1: article{ID: 1, Title: "a", Secret: "x"}}, "", 0)
	body := decodeBody(t, resp)
	assert.Equal(t, map[string]any{
		"1": map[string]any{"id": float64(1), "title": "a"},
	}, body["data"])
}

type label string

func TestSuccessNamedStringBecomesMessage(t *testing.T) {
	n := newTestNormalizer()

	resp := n.Success(nil, label("hello"), "", 0)
	assert.Equal(t, `{"code":200,"data":[],"message":"hello","status":"success","success":true}`, string(resp.Body))

	resp = n.Error(nil, label("gone"), "", http.StatusGone)
	body := decodeBody(t, resp)
	assert.Equal(t, "gone", body["message"])
}

func TestSuccessCollectionUsesFirstElementType(t *testing.T) {
	n := newTestNormalizer()

	items := Collection{author{Name: "Ada"}, article{ID: 1, Title: "a", Secret: "x"}}
	resp := n.Success(nil, items, "", 0)
	body := decodeBody(t, resp)
	assert.Equal(t, []any{
		map[string]any{"Name": "Ada"},
		map[string]any{"ID": float64(1), "Title": "a", "Secret": "x"},
	}, body["data"])
}

func TestSuccessProjectsNestedRecords(t *testing.T) {
	n := newTestNormalizer()

	data := map[string]any{
		"featured": article{ID: 1, Title: "a", Secret: "x"},
		"latest":   []any{article{ID: 2, Title: "b", Secret: "y"}},
		"count":    2,
	}
	resp := n.Success(nil, data, "", 0)
	body := decodeBody(t, resp)
	assert.Equal(t, map[string]any{
		"featured": map[string]any{"id": float64(1), "title": "a"},
		"latest":   []any{map[string]any{"id": float64(2), "title": "b"}},
		"count":    float64(2),
	}, body["data"])
}

func TestSuccessProjectsTypedSlice(t *testing.T) {
	n := newTestNormalizer()

	resp := n.Success(nil, []article{{ID: 3, Title: "c", Secret: "z"}}, "", 0)
	body := decodeBody(t, resp)
	assert.Equal(t, []any{map[string]any{"id": float64(3), "title": "c"}}, body["data"])
}

func TestSuccessPaginated(t *testing.T) {
	n := newTestNormalizer()

	page := NewPage([]article{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}, 5, 2, 1, "/articles")
	resp := n.Success(nil, page, "", 0)
	body := decodeBody(t, resp)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["current_page"])
	assert.Equal(t, float64(3), data["last_page"])
	assert.Equal(t, float64(5), data["total"])
	assert.Equal(t, float64(2), data["per_page"])
	assert.Equal(t, float64(1), data["from"])
	assert.Equal(t, float64(2), data["to"])
	assert.Equal(t, "/articles?page=2", data["next_page_url"])
	assert.Nil(t, data["prev_page_url"])
	assert.Equal(t, "/articles?page=1", data["first_page_url"])
	assert.Equal(t, "/articles?page=3", data["last_page_url"])
	assert.Equal(t, []any{
		map[string]any{"id": float64(1), "title": "a"},
		map[string]any{"id": float64(2), "title": "b"},
	}, data["data"])
}

func TestSuccessMethodOverridesCode(t *testing.T) {
	n := newTestNormalizer()

	cases := []struct {
		method string
		want   int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodPost, http.StatusOK},
		{http.MethodPut, http.StatusCreated},
		{http.MethodDelete, http.StatusAccepted},
	}
	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/articles/1", nil)
			resp := n.Success(req, nil, "", http.StatusOK)
			assert.Equal(t, tc.want, resp.Code)
			assert.Equal(t, float64(tc.want), decodeBody(t, resp)["code"])
		})
	}
}

func TestErrorDoesNotApplyMethodOverride(t *testing.T) {
	n := newTestNormalizer()

	req := httptest.NewRequest(http.MethodPut, "/articles/1", nil)
	resp := n.Error(req, "conflict", "", http.StatusConflict)
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestEnvelopeSuccessFollowsCode(t *testing.T) {
	n := newTestNormalizer()

	for _, code := range []int{100, 200, 201, 299, 1000, 1200} {
		body := decodeBody(t, n.Success(nil, nil, "", code))
		assert.Equal(t, true, body["success"], "code %d", code)
		assert.Equal(t, StatusSuccess, body["status"], "code %d", code)
	}
	for _, code := range []int{300, 404, 422, 500, 999} {
		body := decodeBody(t, n.Success(nil, nil, "", code))
		assert.Equal(t, false, body["success"], "code %d", code)
		assert.Equal(t, StatusError, body["status"], "code %d", code)
	}
}

func TestErrorStringBecomesMessage(t *testing.T) {
	n := newTestNormalizer()

	resp := n.Error(nil, "not found", "", 0)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, `{"code":404,"errors":"","message":"not found","status":"error","success":false}`, string(resp.Body))
}

func TestErrorAcceptsGoError(t *testing.T) {
	n := newTestNormalizer()

	resp := n.Error(nil, errors.New("contact not found"), "", 0)
	body := decodeBody(t, resp)
	assert.Equal(t, "contact not found", body["message"])
	assert.Equal(t, "", body["errors"])
}

func TestErrorDefaultMessageFromCatalog(t *testing.T) {
	n := newTestNormalizer(WithCatalog(stubCatalog{"it": "Risorsa non trovata"}))

	req := httptest.NewRequest(http.MethodGet, "/articles/9", nil)
	req.Header.Set("Accept-Language", "it")
	resp := n.Error(req, nil, "", 0)
	body := decodeBody(t, resp)
	assert.Equal(t, "Risorsa non trovata", body["message"])
	assert.Nil(t, body["errors"])
}

func TestErrorDefaultMessageFallsBackToStatusText(t *testing.T) {
	n := newTestNormalizer()

	body := decodeBody(t, n.Error(nil, "", "", http.StatusUnprocessableEntity))
	assert.Equal(t, http.StatusText(http.StatusUnprocessableEntity), body["message"])
	assert.Equal(t, "", body["errors"])
}

func TestErrorProjectsStructuredPayload(t *testing.T) {
	n := newTestNormalizer()

	errs := map[string]any{
		"email":    []string{"is required"},
		"conflict": article{ID: 4, Title: "d", Secret: "w"},
	}
	resp := n.Error(nil, errs, "validation failed", http.StatusUnprocessableEntity)
	body := decodeBody(t, resp)
	assert.Equal(t, "validation failed", body["message"])
	assert.Equal(t, map[string]any{
		"email":    []any{"is required"},
		"conflict": map[string]any{"id": float64(4), "title": "d"},
	}, body["errors"])
}

func TestEncodingKeepsUnicodeAndHTML(t *testing.T) {
	n := newTestNormalizer()

	resp := n.Success(nil, map[string]any{"name": "caffè <b>&</b>"}, "città", 0)
	assert.Contains(t, string(resp.Body), `"name":"caffè <b>&</b>"`)
	assert.Contains(t, string(resp.Body), `"message":"città"`)
}

func TestNestedKeysAreSorted(t *testing.T) {
	n := newTestNormalizer()

	resp := n.Success(nil, map[string]any{"b": 1, "a": 2, "c": map[string]any{"z": 1, "y": 2}}, "", 0)
	assert.Equal(t,
		`{"code":200,"data":{"a":2,"b":1,"c":{"y":2,"z":1}},"message":"","status":"success","success":true}`,
		string(resp.Body),
	)
}

func TestEncodingFailureDegradesToServerError(t *testing.T) {
	n := newTestNormalizer()

	resp := n.Success(nil, map[string]any{"stream": make(chan int)}, "", 0)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), body["message"])
}

func TestResponseWrite(t *testing.T) {
	n := newTestNormalizer()
	rr := httptest.NewRecorder()

	require.NoError(t, n.Success(nil, "created", "", http.StatusCreated).Write(rr))
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Accept"))
	assert.Equal(t, "application/json;charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":201,"data":[],"message":"created","status":"success","success":true}`, rr.Body.String())

	assert.ErrorIs(t, Response{}.Write(nil), ErrNilWriter)
}

func TestResponseStatusCodeOutsideHTTPRange(t *testing.T) {
	assert.Equal(t, http.StatusOK, Response{Code: 1000}.StatusCode())
	assert.Equal(t, http.StatusTeapot, Response{Code: http.StatusTeapot}.StatusCode())
	assert.Equal(t, http.StatusOK, Response{Code: http.StatusContinue}.StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Response{Code: http.StatusProcessing, Failure: true}.StatusCode())

	rr := httptest.NewRecorder()
	require.NoError(t, Response{Code: http.StatusSwitchingProtocols}.Write(rr))
	assert.Equal(t, http.StatusOK, rr.Code)

	n := newTestNormalizer()
	assert.Equal(t, http.StatusOK, n.Success(nil, nil, "", 1200).StatusCode())
	assert.Equal(t, http.StatusInternalServerError, n.Error(nil, "upstream", "", 1200).StatusCode())
}
