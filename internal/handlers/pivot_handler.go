package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"datalab-service/internal/database"
	"datalab-service/internal/models"
	"datalab-service/internal/pivot"
)

// BuildPivot godoc
// @Summary Build a pivot table from imported EAV rows
// @Description Groups rows by the requested row/column field lists and aggregates the requested value fields. A non-empty selected_parameters list switches to unpivot mode: rows are first reconstructed into one wide row per entity.
// @Tags pivot
// @Accept  json
// @Produce  json
// @Param   pivot_request  body   models.PivotRequest   true  "Pivot request"
// @Success 200 {object} models.PivotResponse "Computed pivot table"
// @Failure 400 {object} models.APIError "Bad Request (e.g., unknown aggregation function, limit or selected-parameter ceiling exceeded - see 'code' in response)"
// @Failure 500 {object} models.APIError "Internal Server Error (e.g., store unavailable)"
// @Router /pivot [post]
func BuildPivot(c *gin.Context) {
	var req models.PivotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid request payload", gin.H{"reason": err.Error()})
		return
	}

	if len(req.SelectedParameters) > models.MaxSelectedParameters {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValueOutOfRange,
			"Too many selected parameters.",
			gin.H{"max": models.MaxSelectedParameters, "got": len(req.SelectedParameters)})
		return
	}

	resp, err := pivot.BuildPivot(database.GetDB(), &req)
	if err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to build pivot table.", nil)
		return
	}
	RespondWithSuccess(c, http.StatusOK, resp)
}

// GetPivotFields godoc
// @Summary List the fields available for pivot grouping
// @Description For each catalog field, returns its display name, up to 10 sample values and the count of distinct values (capped at 100) under the given scope. A failing field sample degrades to an empty list for that field only.
// @Tags pivot
// @Produce  json
// @Param   user_id         query  string  false  "Scope: user ID (UUID)"
// @Param   project_id      query  string  false  "Scope: project ID (UUID)"
// @Param   version_id      query  string  false  "Scope: version ID (UUID)"
// @Param   file_upload_id  query  string  false  "Scope: file upload ID (UUID)"
// @Success 200 {array} models.FieldInfo "Available fields with samples"
// @Failure 400 {object} models.APIError "Bad Request (e.g., invalid UUID - see 'code' INVALID_ID_FORMAT)"
// @Router /pivot/fields [get]
func GetPivotFields(c *gin.Context) {
	req, ok := scopeFromQuery(c)
	if !ok {
		return
	}
	fields := pivot.GetAvailableFields(database.GetDB(), req)
	RespondWithSuccess(c, http.StatusOK, fields)
}

// GetFilterValues godoc
// @Summary List the values a field may take under the current filters
// @Description Returns the sorted distinct non-empty values of one field, evaluated under the other active filters with the field's own filter excluded (cascading dropdowns). With selected_parameters the values come from the unpivoted wide rows.
// @Tags pivot
// @Produce  json
// @Param   field                query  string    true   "Field to list values for"
// @Param   user_id              query  string    false  "Scope: user ID (UUID)"
// @Param   project_id           query  string    false  "Scope: project ID (UUID)"
// @Param   version_id           query  string    false  "Scope: version ID (UUID)"
// @Param   file_upload_id       query  string    false  "Scope: file upload ID (UUID)"
// @Param   selected_parameters  query  []string  false  "Parameter names to unpivot"  collectionFormat(multi)
// @Param   filters              query  string    false  "JSON object of field -> allowed values"
// @Success 200 {object} models.FilterValuesResponse "Candidate values"
// @Failure 400 {object} models.APIError "Bad Request (missing field, invalid UUID, too many selected parameters)"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /pivot/filter-values [get]
func GetFilterValues(c *gin.Context) {
	field := c.Query("field")
	if field == "" {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Query parameter 'field' is required.", nil)
		return
	}

	req, ok := scopeFromQuery(c)
	if !ok {
		return
	}
	req.SelectedParameters = c.QueryArray("selected_parameters")
	if len(req.SelectedParameters) > models.MaxSelectedParameters {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValueOutOfRange,
			"Too many selected parameters.",
			gin.H{"max": models.MaxSelectedParameters, "got": len(req.SelectedParameters)})
		return
	}

	// Unparseable filter JSON is ignored rather than rejected: the UI may
	// still be assembling its filter state.
	if raw := c.Query("filters"); raw != "" {
		var filters map[string][]string
		if err := json.Unmarshal([]byte(raw), &filters); err == nil {
			delete(filters, field)
			req.Filters = filters
		}
	}

	values, err := pivot.GetFilterValues(database.GetDB(), req, field)
	if err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to get filter values.", nil)
		return
	}
	RespondWithSuccess(c, http.StatusOK, models.FilterValuesResponse{Values: values})
}

// HealthCheck godoc
// @Summary Liveness probe
// @Tags health
// @Produce  json
// @Success 200 {object} map[string]string "Service is up"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// scopeFromQuery parses the optional scope identifiers from query params.
// On a malformed UUID it writes a 400 response and returns ok=false.
func scopeFromQuery(c *gin.Context) (*models.PivotRequest, bool) {
	req := &models.PivotRequest{}
	for param, target := range map[string]**uuid.UUID{
		"user_id":        &req.UserID,
		"project_id":     &req.ProjectID,
		"version_id":     &req.VersionID,
		"file_upload_id": &req.FileUploadID,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidIDFormat,
				"Invalid ID format for "+param, gin.H{param: raw})
			return nil, false
		}
		*target = &id
	}
	return req, true
}
