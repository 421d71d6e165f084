package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skema/internal/domain"
	"skema/internal/extract"
	"skema/internal/service"
)

// ExtractHandler handles extraction endpoints.
type ExtractHandler struct {
	extractionService service.ExtractionService
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractionService service.ExtractionService) *ExtractHandler {
	return &ExtractHandler{extractionService: extractionService}
}

// Extract handles POST /api/v1/extract
// @Summary Extract structured data
// @Description Run schema-constrained extraction with strategy fallback against an inline schema
// @Tags extraction
// @Accept json
// @Produce json
// @Param request body ExtractRequest true "Extraction request"
// @Success 200 {object} Response{data=ExtractResponse} "Extraction result with attempt trail"
// @Failure 400 {object} ErrorResponseBody "Invalid schema or unknown strategy"
// @Failure 404 {object} ErrorResponseBody "Schema not found"
// @Failure 502 {object} ErrorResponseBody "All strategies exhausted"
// @Router /extract [post]
func (h *ExtractHandler) Extract(c *gin.Context) {
	var input service.ExtractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	h.run(c, &input)
}

// ExtractWithSchema handles POST /api/v1/schemas/:name/extract
// @Summary Extract using a stored schema
// @Description Run schema-constrained extraction against a schema from the catalog
// @Tags extraction
// @Accept json
// @Produce json
// @Param name path string true "Schema name"
// @Param request body ExtractRequest true "Extraction request (schema_name comes from the path)"
// @Success 200 {object} Response{data=ExtractResponse} "Extraction result with attempt trail"
// @Failure 400 {object} ErrorResponseBody "Invalid schema or unknown strategy"
// @Failure 404 {object} ErrorResponseBody "Schema not found"
// @Failure 502 {object} ErrorResponseBody "All strategies exhausted"
// @Router /schemas/{name}/extract [post]
func (h *ExtractHandler) ExtractWithSchema(c *gin.Context) {
	var input service.ExtractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	input.SchemaName = c.Param("name")
	h.run(c, &input)
}

func (h *ExtractHandler) run(c *gin.Context, input *service.ExtractInput) {
	result, attempts, err := h.extractionService.Extract(c.Request.Context(), input)
	if attempts == nil {
		attempts = []domain.StrategyAttempt{}
	}
	if err != nil {
		var exhausted *extract.ExhaustedError
		if errors.As(err, &exhausted) {
			// the exhausted body keeps the attempt trail so callers can see
			// why each strategy failed
			c.JSON(http.StatusBadGateway, APIResponse{
				Success: false,
				Error:   &APIError{Code: "EXTRACTION_EXHAUSTED", Message: "all extraction strategies failed"},
				Data:    gin.H{"attempts": attempts},
			})
			return
		}
		HandleError(c, err)
		return
	}

	RespondOK(c, ExtractResponse{
		Value:        result.Value,
		StrategyUsed: result.StrategyUsed,
		Attempts:     attempts,
	})
}
