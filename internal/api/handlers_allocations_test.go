// handlers_allocations_test.go - Tests for allocation query handlers
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func getAllocations(t *testing.T, h *Handler, target string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return rec, h.HandleGetAllocations(e.NewContext(req, rec))
}

func TestHandleGetAllocations(t *testing.T) {
	h := newTestHandler(t, testAllocations())

	rec, err := getAllocations(t, h, "/api/allocations")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp allocationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	// Feed order is preserved without an explicit sort
	assert.Equal(t, "GDMAT0045", resp.Allocations[0].Course.Code)
}

func TestHandleGetAllocations_Filters(t *testing.T) {
	h := newTestHandler(t, testAllocations())

	tests := []struct {
		name      string
		target    string
		wantCodes []string
	}{
		{"by instructor", "/api/allocations?instructor=ANA+LIMA", []string{"GDMAT0045", "GDINF0012"}},
		{"by department", "/api/allocations?department=PHYSICS", []string{"GDFIS0030"}},
		{"by schedule", "/api/allocations?schedule=3T12", []string{"GDINF0012"}},
		{"by min students", "/api/allocations?minStudents=30", []string{"GDMAT0045", "GDINF0012"}},
		{"by max students", "/api/allocations?maxStudents=25", []string{"GDFIS0030"}},
		{"by floor prefix", "/api/allocations?floor=ground", []string{"GDMAT0045", "GDFIS0030"}},
		{"sorted by students desc", "/api/allocations?sortBy=course.students&order=desc", []string{"GDINF0012", "GDMAT0045", "GDFIS0030"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := getAllocations(t, h, tt.target)
			require.NoError(t, err)

			var resp allocationsResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			codes := make([]string, 0, len(resp.Allocations))
			for _, a := range resp.Allocations {
				codes = append(codes, a.Course.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestHandleGetAllocations_BadParams(t *testing.T) {
	h := newTestHandler(t, testAllocations())

	_, err := getAllocations(t, h, "/api/allocations?minStudents=lots")
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)

	_, err = getAllocations(t, h, "/api/allocations?floor=attic")
	apiErr, ok = err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)

	_, err = getAllocations(t, h, "/api/allocations?sortBy=course.secret")
	apiErr, ok = err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "BAD_REQUEST", apiErr.Code)
}

func TestHandleGetAllocationsMsgpack(t *testing.T) {
	h := newTestHandler(t, testAllocations())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/allocations/msgpack", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.HandleGetAllocationsMsgpack(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/msgpack", rec.Header().Get(echo.HeaderContentType))

	var decoded map[string]interface{}
	require.NoError(t, msgpack.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.EqualValues(t, 3, decoded["total"])
}

func TestHandleExportAllocations(t *testing.T) {
	h := newTestHandler(t, testAllocations())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/allocations/export", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.HandleExportAllocations(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "allocations.xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestHandleGetRoomAllocations_SortedBySchedule(t *testing.T) {
	h := newTestHandler(t, testAllocations())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/t101/allocations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("t101")
	require.NoError(t, h.HandleGetRoomAllocations(c))

	var resp struct {
		Room        string           `json:"room"`
		Allocations []roomAllocation `json:"allocations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Allocations, 2)
	// Same day, so shift priority decides: M before E.
	assert.Equal(t, "2M2345", resp.Allocations[0].Course.Schedule)
	assert.Equal(t, "2E1", resp.Allocations[1].Course.Schedule)
	assert.NotEmpty(t, resp.Allocations[0].Meetings)
}

func TestHandleGetRoomAllocations_DayFilter(t *testing.T) {
	h := newTestHandler(t, testAllocations())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/sb101/allocations?day=3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("sb101")
	require.NoError(t, h.HandleGetRoomAllocations(c))

	var resp struct {
		Allocations []roomAllocation `json:"allocations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Allocations, 1)
	assert.Equal(t, "GDINF0012", resp.Allocations[0].Course.Code)

	// Day with no meetings in this room
	req = httptest.NewRequest(http.MethodGet, "/api/rooms/sb101/allocations?day=5", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("sb101")
	require.NoError(t, h.HandleGetRoomAllocations(c))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Allocations)
}

func TestHandleGetRoomAllocations_BadDay(t *testing.T) {
	h := newTestHandler(t, testAllocations())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/t101/allocations?day=9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("t101")

	err := h.HandleGetRoomAllocations(c)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
}

func TestHandleRefreshFeed(t *testing.T) {
	h := newTestHandler(t, testAllocations())
	before := h.session.Current().ID

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/feed/refresh", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.HandleRefreshFeed(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, before, h.session.Current().ID)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 3, resp["allocations"])
}
