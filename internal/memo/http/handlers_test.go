package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoboard/memo-backend/internal/memo/repository"
	"github.com/memoboard/memo-backend/internal/memo/selector"
	"github.com/memoboard/memo-backend/internal/memo/service"
)

type wireEnvelope struct {
	Detail  any `json:"detail"`
	Message any `json:"message"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	sel := selector.New(store)
	svc := service.New(store, sel)

	r := gin.New()
	New(svc, sel).Register(r)
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) wireEnvelope {
	t.Helper()
	var env wireEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func detailList(t *testing.T, env wireEnvelope) []any {
	t.Helper()
	list, ok := env.Detail.([]any)
	require.True(t, ok, "detail should be a list, got %T", env.Detail)
	return list
}

func TestSectionLifecycle(t *testing.T) {
	r := newTestRouter(t)

	t.Run("create returns the section wrapped in a list", func(t *testing.T) {
		w := do(r, http.MethodPost, "/sections/", `{"name":"Work"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		list := detailList(t, decodeEnvelope(t, w))
		require.Len(t, list, 1)
		sec := list[0].(map[string]any)
		assert.Equal(t, float64(1), sec["id"])
		assert.Equal(t, "Work", sec["name"])
		assert.Equal(t, []any{}, sec["notes"])
	})

	t.Run("get by id returns exactly one entry with empty notes", func(t *testing.T) {
		w := do(r, http.MethodGet, "/sections/1/", "")
		require.Equal(t, http.StatusOK, w.Code)

		list := detailList(t, decodeEnvelope(t, w))
		require.Len(t, list, 1)
		sec := list[0].(map[string]any)
		assert.Equal(t, "Work", sec["name"])
		assert.Equal(t, []any{}, sec["notes"])
	})

	t.Run("edit replaces the name", func(t *testing.T) {
		w := do(r, http.MethodPatch, "/sections/1/", `{"name":"Office"}`)
		require.Equal(t, http.StatusOK, w.Code)

		list := detailList(t, decodeEnvelope(t, w))
		assert.Equal(t, "Office", list[0].(map[string]any)["name"])
	})

	t.Run("edit without a name is 400 and leaves the section unchanged", func(t *testing.T) {
		w := do(r, http.MethodPatch, "/sections/1/", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = do(r, http.MethodGet, "/sections/1/", "")
		list := detailList(t, decodeEnvelope(t, w))
		assert.Equal(t, "Office", list[0].(map[string]any)["name"])
	})

	t.Run("delete answers a null detail with done", func(t *testing.T) {
		w := do(r, http.MethodDelete, "/sections/1/", "")
		require.Equal(t, http.StatusOK, w.Code)

		env := decodeEnvelope(t, w)
		assert.Nil(t, env.Detail)
		assert.Equal(t, "done", env.Message)
	})

	t.Run("missing section is 404", func(t *testing.T) {
		w := do(r, http.MethodGet, "/sections/1/", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid body is 400", func(t *testing.T) {
		w := do(r, http.MethodPost, "/sections/", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestScenario_SectionWithNote(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/sections/", `{"name":"Work"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/sections/1/notes/", `{"name":"Todo","url":"","description":"list"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	list := detailList(t, decodeEnvelope(t, w))
	require.Len(t, list, 1)
	note := list[0].(map[string]any)
	assert.Equal(t, float64(1), note["id"])
	assert.Equal(t, "Todo", note["name"])
	assert.Equal(t, "", note["url"])
	assert.Equal(t, "list", note["description"])
	assert.Equal(t, float64(1), note["section_id"])

	w = do(r, http.MethodGet, "/sections/1/", "")
	require.Equal(t, http.StatusOK, w.Code)
	list = detailList(t, decodeEnvelope(t, w))
	require.Len(t, list, 1)
	sec := list[0].(map[string]any)
	assert.Equal(t, "Work", sec["name"])
	notes := sec["notes"].([]any)
	require.Len(t, notes, 1)
	assert.Equal(t, "Todo", notes[0].(map[string]any)["name"])
}

func TestNoteEndpoints(t *testing.T) {
	r := newTestRouter(t)

	do(r, http.MethodPost, "/sections/", `{"name":"Work"}`)
	do(r, http.MethodPost, "/sections/", `{"name":"Home"}`)
	w := do(r, http.MethodPost, "/sections/1/notes/", `{"name":"Todo","url":"https://example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("lists notes under a section", func(t *testing.T) {
		w := do(r, http.MethodGet, "/sections/1/notes/", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, detailList(t, decodeEnvelope(t, w)), 1)
	})

	t.Run("listing under a missing section is 404", func(t *testing.T) {
		w := do(r, http.MethodGet, "/sections/9/notes/", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("note through the wrong section path is 404", func(t *testing.T) {
		w := do(r, http.MethodGet, "/sections/2/notes/1/", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("partial edit keeps name and url", func(t *testing.T) {
		w := do(r, http.MethodPatch, "/sections/1/notes/1/", `{"description":"x"}`)
		require.Equal(t, http.StatusOK, w.Code)

		list := detailList(t, decodeEnvelope(t, w))
		note := list[0].(map[string]any)
		assert.Equal(t, "Todo", note["name"])
		assert.Equal(t, "https://example.com", note["url"])
		assert.Equal(t, "x", note["description"])
	})

	t.Run("400 message echoes the submitted values", func(t *testing.T) {
		w := do(r, http.MethodPost, "/sections/1/notes/", `{"name":""}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		env := decodeEnvelope(t, w)
		msg, ok := env.Message.(string)
		require.True(t, ok)
		assert.Contains(t, msg, `name: ""`)
		assert.NotContains(t, msg, "0x")
	})

	t.Run("creating under a missing section is 400", func(t *testing.T) {
		w := do(r, http.MethodPost, "/sections/9/notes/", `{"name":"Todo"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete answers a null detail with done", func(t *testing.T) {
		w := do(r, http.MethodDelete, "/sections/1/notes/1/", "")
		require.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.Nil(t, env.Detail)
		assert.Equal(t, "done", env.Message)
	})
}

func TestDeleteSection_CascadesOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	do(r, http.MethodPost, "/sections/", `{"name":"Work"}`)
	do(r, http.MethodPost, "/sections/", `{"name":"Home"}`)
	do(r, http.MethodPost, "/sections/1/notes/", `{"name":"Todo"}`)
	do(r, http.MethodPost, "/sections/2/notes/", `{"name":"Groceries"}`)

	w := do(r, http.MethodDelete, "/sections/1/", "")
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("notes under the section are unretrievable", func(t *testing.T) {
		w := do(r, http.MethodGet, "/sections/1/notes/1/", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("other sections keep their notes", func(t *testing.T) {
		w := do(r, http.MethodGet, "/sections/", "")
		require.Equal(t, http.StatusOK, w.Code)

		list := detailList(t, decodeEnvelope(t, w))
		require.Len(t, list, 1)
		sec := list[0].(map[string]any)
		assert.Equal(t, "Home", sec["name"])
		assert.Len(t, sec["notes"].([]any), 1)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		w := do(r, http.MethodPost, "/sections/", `{"name":"New"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		list := detailList(t, decodeEnvelope(t, w))
		assert.Equal(t, float64(3), list[0].(map[string]any)["id"])
	})
}

func TestNonNumericIDs(t *testing.T) {
	r := newTestRouter(t)
	do(r, http.MethodPost, "/sections/", `{"name":"Work"}`)

	t.Run("non-numeric section id is 404", func(t *testing.T) {
		w := do(r, http.MethodGet, "/sections/abc/", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric note id is 404", func(t *testing.T) {
		w := do(r, http.MethodGet, "/sections/1/notes/abc/", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("a signed id never resolves to an existing section", func(t *testing.T) {
		// "+1" is collection-shaped to the gate, so GET passes; the id
		// parser must agree that it addresses nothing.
		w := do(r, http.MethodGet, "/sections/+1/", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
