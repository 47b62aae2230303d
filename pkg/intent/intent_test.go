package intent_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webkit/pkg/intent"
)

func formRequest(t *testing.T, target string, form url.Values) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("query string wins over body", func(t *testing.T) {
		t.Parallel()

		form := url.Values{"intent": {"from-body"}}
		r := formRequest(t, "/items?intent=from-query", form)

		got, err := intent.FromRequest(r)
		require.NoError(t, err)
		assert.Equal(t, "from-query", got)
	})

	t.Run("body field", func(t *testing.T) {
		t.Parallel()

		form := url.Values{"intent": {"delete"}}
		got, err := intent.FromRequest(formRequest(t, "/items", form))
		require.NoError(t, err)
		assert.Equal(t, "delete", got)
	})

	t.Run("missing intent", func(t *testing.T) {
		t.Parallel()

		_, err := intent.FromRequest(formRequest(t, "/items", url.Values{}))
		require.ErrorIs(t, err, intent.ErrMissingIntent)
	})

	t.Run("custom field name", func(t *testing.T) {
		t.Parallel()

		form := url.Values{"action": {"archive"}}
		got, err := intent.FromRequestField(formRequest(t, "/items", form), "action")
		require.NoError(t, err)
		assert.Equal(t, "archive", got)
	})
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	actions := func(called *string) map[string]http.HandlerFunc {
		return map[string]http.HandlerFunc{
			"create": func(w http.ResponseWriter, r *http.Request) { *called = "create" },
			"delete": func(w http.ResponseWriter, r *http.Request) { *called = "delete" },
		}
	}

	t.Run("routes to named action", func(t *testing.T) {
		t.Parallel()

		var called string
		r := formRequest(t, "/items", url.Values{"intent": {"delete"}})

		require.NoError(t, intent.Dispatch(httptest.NewRecorder(), r, actions(&called)))
		assert.Equal(t, "delete", called)
	})

	t.Run("unknown intent without default errors", func(t *testing.T) {
		t.Parallel()

		var called string
		r := formRequest(t, "/items", url.Values{"intent": {"explode"}})

		err := intent.Dispatch(httptest.NewRecorder(), r, actions(&called))
		require.ErrorIs(t, err, intent.ErrUnknownIntent)
		assert.Empty(t, called)
	})

	t.Run("default catches missing and unknown", func(t *testing.T) {
		t.Parallel()

		var called string
		handlers := actions(&called)
		handlers["default"] = func(w http.ResponseWriter, r *http.Request) { called = "default" }

		r := formRequest(t, "/items", url.Values{})
		require.NoError(t, intent.Dispatch(httptest.NewRecorder(), r, handlers))
		assert.Equal(t, "default", called)
	})

	t.Run("missing intent without default errors", func(t *testing.T) {
		t.Parallel()

		var called string
		r := formRequest(t, "/items", url.Values{})

		err := intent.Dispatch(httptest.NewRecorder(), r, actions(&called))
		require.ErrorIs(t, err, intent.ErrMissingIntent)
	})
}
