package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, query string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{
			name:       "defaults when absent",
			query:      "",
			wantPage:   1,
			wantLimit:  20,
			wantOffset: 0,
		},
		{
			name:       "explicit page and limit",
			query:      "page=3&limit=10",
			wantPage:   3,
			wantLimit:  10,
			wantOffset: 20,
		},
		{
			name:       "limit capped at maximum",
			query:      "page=1&limit=500",
			wantPage:   1,
			wantLimit:  100,
			wantOffset: 0,
		},
		{
			name:       "negative page falls back to first",
			query:      "page=-2&limit=10",
			wantPage:   1,
			wantLimit:  10,
			wantOffset: 0,
		},
		{
			name:       "garbage values fall back to defaults",
			query:      "page=abc&limit=xyz",
			wantPage:   1,
			wantLimit:  20,
			wantOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, offset := parsePagination(testContext(t, tt.query))
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestParseIDParam(t *testing.T) {
	e := echo.New()

	t.Run("valid uuid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues("550e8400-e29b-41d4-a716-446655440000")

		id, err := parseIDParam(c, "id")
		require.NoError(t, err)
		assert.Equal(t, uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"), id)
	})

	t.Run("malformed uuid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		id, err := parseIDParam(c, "id")
		require.Error(t, err)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, uuid.Nil, id)
	})
}
