package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skema/internal/service"
)

// SchemaHandler handles schema catalog endpoints.
type SchemaHandler struct {
	schemaService service.SchemaService
}

// NewSchemaHandler creates a new SchemaHandler.
func NewSchemaHandler(schemaService service.SchemaService) *SchemaHandler {
	return &SchemaHandler{schemaService: schemaService}
}

// Create handles POST /api/v1/schemas
// @Summary Create a schema
// @Description Validate and store a named schema definition in the catalog
// @Tags schemas
// @Accept json
// @Produce json
// @Param request body CreateSchemaRequest true "Schema definition"
// @Success 201 {object} Response{data=SchemaResponse} "Schema created"
// @Failure 400 {object} ErrorResponseBody "Invalid schema definition"
// @Failure 409 {object} ErrorResponseBody "Schema name already exists"
// @Router /schemas [post]
func (h *SchemaHandler) Create(c *gin.Context) {
	var input service.CreateSchemaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	record, err := h.schemaService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, record)
}

// List handles GET /api/v1/schemas
// @Summary List schemas
// @Description List stored schema definitions, newest first
// @Tags schemas
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]SchemaResponse,meta=PagMeta} "List of schemas"
// @Router /schemas [get]
func (h *SchemaHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	records, total, err := h.schemaService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByName handles GET /api/v1/schemas/:name
// @Summary Get schema by name
// @Description Fetch one stored schema definition
// @Tags schemas
// @Produce json
// @Param name path string true "Schema name"
// @Success 200 {object} Response{data=SchemaResponse} "Schema details"
// @Failure 404 {object} ErrorResponseBody "Schema not found"
// @Router /schemas/{name} [get]
func (h *SchemaHandler) GetByName(c *gin.Context) {
	record, err := h.schemaService.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, record)
}

// Delete handles DELETE /api/v1/schemas/:name
// @Summary Delete a schema
// @Description Remove a stored schema definition from the catalog
// @Tags schemas
// @Produce json
// @Param name path string true "Schema name"
// @Success 200 {object} Response{data=MessageResponse} "Schema deleted"
// @Failure 404 {object} ErrorResponseBody "Schema not found"
// @Router /schemas/{name} [delete]
func (h *SchemaHandler) Delete(c *gin.Context) {
	if err := h.schemaService.Delete(c.Request.Context(), c.Param("name")); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "schema deleted"})
}
