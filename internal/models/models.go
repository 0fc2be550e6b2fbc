package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValidAggregationFunctions defines the allowed aggregation functions for pivot values.
var ValidAggregationFunctions = map[string]bool{
	"COUNT":          true,
	"COUNT_DISTINCT": true,
	"SUM":            true,
	"AVG":            true,
	"MIN":            true,
	"MAX":            true,
}

const (
	DefaultPivotLimit = 1000
	MaxPivotLimit     = 10000

	// MaxSelectedParameters bounds the in-memory unpivot: each selected
	// parameter becomes one column on every reconstructed wide row.
	MaxSelectedParameters = 100
)

// CSVDataRow is one imported fact in the long entity-attribute-value layout:
// one row per (element, parameter name, parameter value). Rows are written by
// the external import pipeline; this service only reads them.
// @Description CSVDataRow is one imported EAV fact row.
type CSVDataRow struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	FileUploadID uuid.UUID `json:"file_upload_id" gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ProjectID    uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	VersionID    uuid.UUID `json:"version_id" gorm:"type:uuid;not null;index"`

	// 1-based row ordinal from the source CSV, informational only.
	RowNumber int `json:"row_number" gorm:"not null"`

	ModelName      string `json:"model_name" gorm:"type:varchar(255)"`
	ElementID      string `json:"element_id" gorm:"type:varchar(255);index"`
	Category       string `json:"category" gorm:"type:varchar(255);index"`
	ParameterName  string `json:"parameter_name" gorm:"type:varchar(255);index"`
	ParameterValue string `json:"parameter_value" gorm:"type:text"`

	// Raw source row, kept for flexibility; never interpreted by the engine.
	Data json.RawMessage `json:"data,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// PivotAggregation describes one value aggregation of a pivot request.
// @Description PivotAggregation describes one value aggregation (field + function).
type PivotAggregation struct {
	Field       string `json:"field" binding:"required,min=1,max=255"`
	Function    string `json:"function" binding:"required,oneof=COUNT COUNT_DISTINCT SUM AVG MIN MAX"`
	DisplayName string `json:"display_name,omitempty" binding:"max=255"`
}

// Label returns the key under which this aggregation's result appears in
// cell values: the display name, or a generated "FUNCTION(field)".
func (a PivotAggregation) Label() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return fmt.Sprintf("%s(%s)", a.Function, a.Field)
}

// PivotRequest defines the request payload for building a pivot table.
// @Description PivotRequest defines scope filters, grouping axes, aggregations
// @Description and the optional parameter set to unpivot.
type PivotRequest struct {
	// Scope filters for data isolation, all optional and ANDed.
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	ProjectID    *uuid.UUID `json:"project_id,omitempty"`
	VersionID    *uuid.UUID `json:"version_id,omitempty"`
	FileUploadID *uuid.UUID `json:"file_upload_id,omitempty"`

	// Ordered grouping axes; order matters for key composition.
	Rows    []string           `json:"rows"`
	Columns []string           `json:"columns"`
	Values  []PivotAggregation `json:"values" binding:"omitempty,dive"`

	// Parameter names to turn into columns first (unpivot mode when non-empty).
	SelectedParameters []string `json:"selected_parameters,omitempty"`

	// Cascading filters: values OR'd per field, fields ANDed.
	Filters map[string][]string `json:"filters,omitempty"`

	// Bounds the number of grouped result rows in direct mode.
	Limit int `json:"limit" binding:"omitempty,min=1,max=10000"`
}

// Validate rejects malformed requests before any data access. Binding tags
// cover HTTP callers; this covers the engine's non-HTTP entry points too.
func (r *PivotRequest) Validate() error {
	for _, agg := range r.Values {
		if !ValidAggregationFunctions[agg.Function] {
			return fmt.Errorf("unknown aggregation function %q", agg.Function)
		}
	}
	if r.Limit < 0 || r.Limit > MaxPivotLimit {
		return fmt.Errorf("limit must be between 1 and %d", MaxPivotLimit)
	}
	if len(r.SelectedParameters) > MaxSelectedParameters {
		return fmt.Errorf("at most %d selected parameters are allowed, got %d",
			MaxSelectedParameters, len(r.SelectedParameters))
	}
	return nil
}

// PivotCell holds the aggregated values for one (row key, column key) pair.
// Cells exist only for pairs with at least one matching source row.
// @Description PivotCell holds aggregated values for one row/column key pair.
type PivotCell struct {
	RowKey    string             `json:"row_key"`
	ColumnKey string             `json:"column_key"`
	Values    map[string]float64 `json:"values"`
}

// PivotResponse is the computed pivot table. RowsFields/ColumnsFields always
// echo the request's axes, even when empty or when no cells were produced.
// @Description PivotResponse is the computed pivot table.
type PivotResponse struct {
	Rows          []string           `json:"rows"`
	Columns       []string           `json:"columns"`
	Cells         []PivotCell        `json:"cells"`
	Aggregations  []PivotAggregation `json:"aggregations"`
	TotalRows     int                `json:"total_rows"`
	RowsFields    []string           `json:"rows_fields"`
	ColumnsFields []string           `json:"columns_fields"`
}

// FieldInfo describes one catalog field for UI field discovery.
// @Description FieldInfo describes one pivot field with sample values.
type FieldInfo struct {
	Field        string   `json:"field"`
	DisplayName  string   `json:"display_name"`
	Type         string   `json:"type"`
	SampleValues []string `json:"sample_values"`
	UniqueCount  int      `json:"unique_count"`
}

// FilterValuesResponse wraps the candidate values of one dropdown.
// @Description FilterValuesResponse wraps the candidate values of one field.
type FilterValuesResponse struct {
	Values []string `json:"values"`
}
