package pivot

import (
	"fmt"
	"log"
	"sort"

	"gorm.io/gorm"

	"datalab-service/internal/models"
)

// fieldColumns maps catalog fields to their storage columns for the
// distinct-value scans. Only closed-catalog names ever reach SQL.
var fieldColumns = map[string]string{
	FieldModelName:      "model_name",
	FieldElementID:      "element_id",
	FieldCategory:       "category",
	FieldParameterName:  "parameter_name",
	FieldParameterValue: "parameter_value",
}

// scopedQuery applies the ANDed isolation filters of the request.
func scopedQuery(db *gorm.DB, req *models.PivotRequest) *gorm.DB {
	q := db.Model(&models.CSVDataRow{})
	if req.UserID != nil {
		q = q.Where("user_id = ?", *req.UserID)
	}
	if req.ProjectID != nil {
		q = q.Where("project_id = ?", *req.ProjectID)
	}
	if req.VersionID != nil {
		q = q.Where("version_id = ?", *req.VersionID)
	}
	if req.FileUploadID != nil {
		q = q.Where("file_upload_id = ?", *req.FileUploadID)
	}
	return q
}

// BuildPivot computes a pivot table for the request. With selected parameters
// present, EAV rows are first unpivoted into one wide row per entity;
// otherwise EAV rows feed the aggregator directly. Either way one scoped scan
// fetches the source rows, and filtering plus grouping happen in memory.
func BuildPivot(db *gorm.DB, req *models.PivotRequest) (*models.PivotResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if len(req.SelectedParameters) > 0 {
		return buildPivotWithUnpivot(db, req)
	}
	return buildPivotDirect(db, req)
}

func buildPivotDirect(db *gorm.DB, req *models.PivotRequest) (*models.PivotResponse, error) {
	var rows []models.CSVDataRow
	if err := scopedQuery(db, req).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetching rows: %w", err)
	}

	source := ApplyFilters(WrapEAVRows(rows), req.Filters, "")

	limit := req.Limit
	if limit == 0 {
		limit = models.DefaultPivotLimit
	}
	return Aggregate(source, req.Rows, req.Columns, req.Values, limit), nil
}

func buildPivotWithUnpivot(db *gorm.DB, req *models.PivotRequest) (*models.PivotResponse, error) {
	var rows []models.CSVDataRow
	q := scopedQuery(db, req).Where("parameter_name IN ?", req.SelectedParameters)
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetching rows: %w", err)
	}

	wide := Reconstruct(rows, req.SelectedParameters)
	source := ApplyFilters(WrapWideRows(wide), req.Filters, "")

	// The wide table is computed in memory; limit is deliberately not
	// applied in this mode.
	return Aggregate(source, req.Rows, req.Columns, req.Values, 0), nil
}

// GetFilterValues returns the sorted distinct non-empty values a field may
// take under the other active filters, excluding the field's own filter.
// With selected parameters the values come from the reconstructed wide rows;
// otherwise from a direct distinct scan of the EAV rows.
func GetFilterValues(db *gorm.DB, req *models.PivotRequest, field string) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if len(req.SelectedParameters) > 0 {
		var rows []models.CSVDataRow
		q := scopedQuery(db, req).Where("parameter_name IN ?", req.SelectedParameters)
		if err := q.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("fetching rows: %w", err)
		}

		wide := ApplyFilters(WrapWideRows(Reconstruct(rows, req.SelectedParameters)), req.Filters, field)

		unique := make(map[string]struct{})
		for _, r := range wide {
			if v, ok := r.FieldValue(field); ok {
				unique[v] = struct{}{}
			}
		}
		values := make([]string, 0, len(unique))
		for v := range unique {
			values = append(values, v)
		}
		sort.Strings(values)
		return values, nil
	}

	column, ok := fieldColumns[field]
	if !ok {
		return []string{}, nil
	}

	if len(req.Filters) > 0 {
		// Cascading filters still apply in direct mode, with the queried
		// field's own filter excluded.
		var rows []models.CSVDataRow
		if err := scopedQuery(db, req).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("fetching rows: %w", err)
		}
		source := ApplyFilters(WrapEAVRows(rows), req.Filters, field)
		unique := make(map[string]struct{})
		for _, r := range source {
			if v, ok := r.FieldValue(field); ok {
				unique[v] = struct{}{}
			}
		}
		values := make([]string, 0, len(unique))
		for v := range unique {
			values = append(values, v)
		}
		sort.Strings(values)
		return values, nil
	}

	var values []string
	err := scopedQuery(db, req).
		Distinct(column).
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("fetching distinct values for %s: %w", field, err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// GetAvailableFields lists the catalog fields with up to 10 sample values
// each, drawn from at most 100 distinct values under the request's scope.
// A failing per-field query degrades to an empty sample list for that field
// only; the overall response still returns.
func GetAvailableFields(db *gorm.DB, req *models.PivotRequest) []models.FieldInfo {
	fields := make([]models.FieldInfo, 0, len(catalogOrder))
	for _, field := range catalogOrder {
		column := fieldColumns[field]

		var values []string
		err := scopedQuery(db, req).
			Distinct(column).
			Where(column + " IS NOT NULL").
			Limit(100).
			Pluck(column, &values).Error
		if err != nil {
			log.Printf("GetAvailableFields: sampling %s failed: %v", field, err)
			values = nil
		}

		samples := values
		if len(samples) > 10 {
			samples = samples[:10]
		}
		if samples == nil {
			samples = []string{}
		}
		fields = append(fields, models.FieldInfo{
			Field:        field,
			DisplayName:  FieldDisplayName(field),
			Type:         "string", // all catalog fields are textual
			SampleValues: samples,
			UniqueCount:  len(values),
		})
	}
	return fields
}
