package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skema/internal/domain"
	"skema/internal/handler"
	"skema/internal/schema"
	"skema/internal/service"
	"skema/mocks"
)

func newSchemaHandler() (*handler.SchemaHandler, *mocks.MockSchemaService) {
	mockSvc := new(mocks.MockSchemaService)
	h := handler.NewSchemaHandler(mockSvc)
	return h, mockSvc
}

func TestSchemaHandler_Create_Success(t *testing.T) {
	h, mockSvc := newSchemaHandler()

	expected := &domain.SchemaRecord{Name: "log-summary", Fields: json.RawMessage(`[]`)}
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(input service.CreateSchemaInput) bool {
		return input.Name == "log-summary" && len(input.Fields) == 1
	})).Return(expected, nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/schemas", map[string]any{
		"name":   "log-summary",
		"fields": []map[string]any{{"name": "errorCount", "type": "integer", "required": true}},
	})

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestSchemaHandler_Create_MissingName(t *testing.T) {
	h, _ := newSchemaHandler()

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/schemas", map[string]any{
		"fields": []map[string]any{{"name": "errorCount", "type": "integer"}},
	})

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchemaHandler_Create_MissingFields(t *testing.T) {
	h, _ := newSchemaHandler()

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/schemas", map[string]any{"name": "log-summary"})

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchemaHandler_Create_InvalidDefinition(t *testing.T) {
	h, mockSvc := newSchemaHandler()

	mockSvc.On("Create", mock.Anything, mock.AnythingOfType("service.CreateSchemaInput")).
		Return(nil, &schema.InvalidSchemaError{Field: "level", Reason: "enum has zero variants"})

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/schemas", map[string]any{
		"name":   "bad",
		"fields": []map[string]any{{"name": "level", "type": "enum"}},
	})

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_SCHEMA", resp.Error.Code)
}

func TestSchemaHandler_Create_DuplicateName(t *testing.T) {
	h, mockSvc := newSchemaHandler()

	mockSvc.On("Create", mock.Anything, mock.AnythingOfType("service.CreateSchemaInput")).
		Return(nil, domain.ErrDuplicateSchemaName)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/schemas", map[string]any{
		"name":   "log-summary",
		"fields": []map[string]any{{"name": "errorCount", "type": "integer"}},
	})

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DUPLICATE_SCHEMA_NAME", resp.Error.Code)
}

func TestSchemaHandler_List_Success(t *testing.T) {
	h, mockSvc := newSchemaHandler()

	records := []domain.SchemaRecord{
		{Name: "log-summary"},
		{Name: "invoice-header"},
	}
	mockSvc.On("List", mock.Anything, 0, 20).Return(records, 2, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/schemas?offset=0&limit=20", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Total)
	mockSvc.AssertExpectations(t)
}

func TestSchemaHandler_List_ClampsLimit(t *testing.T) {
	h, mockSvc := newSchemaHandler()

	mockSvc.On("List", mock.Anything, 0, 20).Return([]domain.SchemaRecord{}, 0, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/schemas?limit=5000", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestSchemaHandler_GetByName_Success(t *testing.T) {
	h, mockSvc := newSchemaHandler()

	expected := &domain.SchemaRecord{Name: "log-summary", Fields: json.RawMessage(`[]`)}
	mockSvc.On("GetByName", mock.Anything, "log-summary").Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/schemas/log-summary", http.NoBody)
	c.Params = gin.Params{{Key: "name", Value: "log-summary"}}

	h.GetByName(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestSchemaHandler_GetByName_NotFound(t *testing.T) {
	h, mockSvc := newSchemaHandler()

	mockSvc.On("GetByName", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/schemas/missing", http.NoBody)
	c.Params = gin.Params{{Key: "name", Value: "missing"}}

	h.GetByName(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSchemaHandler_Delete_Success(t *testing.T) {
	h, mockSvc := newSchemaHandler()

	mockSvc.On("Delete", mock.Anything, "log-summary").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/schemas/log-summary", http.NoBody)
	c.Params = gin.Params{{Key: "name", Value: "log-summary"}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestSchemaHandler_Delete_NotFound(t *testing.T) {
	h, mockSvc := newSchemaHandler()

	mockSvc.On("Delete", mock.Anything, "missing").Return(domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/schemas/missing", http.NoBody)
	c.Params = gin.Params{{Key: "name", Value: "missing"}}

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
