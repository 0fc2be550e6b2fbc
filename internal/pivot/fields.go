package pivot

import "datalab-service/internal/models"

// Canonical field names of the EAV row catalog.
const (
	FieldModelName      = "model_name"
	FieldElementID      = "element_id"
	FieldCategory       = "category"
	FieldParameterName  = "parameter_name"
	FieldParameterValue = "parameter_value"
)

// Row is the projection the filter evaluator and aggregator work against.
// Implementations are the raw EAV row and the reconstructed wide row.
type Row interface {
	// FieldValue resolves the named field on this row. ok is false when the
	// field is unknown for this projection or the value is absent.
	FieldValue(name string) (string, bool)
	// HasField reports whether the field exists in this projection at all,
	// regardless of whether this particular row carries a value for it.
	HasField(name string) bool
}

// Closed catalog of storage accessors; unknown names resolve to "no value"
// instead of erring, so a client typo degrades to an "(empty)" bucket.
var fieldAccessors = map[string]func(*models.CSVDataRow) string{
	FieldModelName:      func(r *models.CSVDataRow) string { return r.ModelName },
	FieldElementID:      func(r *models.CSVDataRow) string { return r.ElementID },
	FieldCategory:       func(r *models.CSVDataRow) string { return r.Category },
	FieldParameterName:  func(r *models.CSVDataRow) string { return r.ParameterName },
	FieldParameterValue: func(r *models.CSVDataRow) string { return r.ParameterValue },
}

var fieldDisplayNames = map[string]string{
	FieldModelName:      "Model name",
	FieldElementID:      "Element ID",
	FieldCategory:       "Category",
	FieldParameterName:  "Parameter name",
	FieldParameterValue: "Parameter value",
}

// catalogOrder fixes the field order of discovery responses.
var catalogOrder = []string{
	FieldModelName,
	FieldElementID,
	FieldCategory,
	FieldParameterName,
	FieldParameterValue,
}

// CatalogFields returns the known field names in their catalog order.
func CatalogFields() []string {
	fields := make([]string, len(catalogOrder))
	copy(fields, catalogOrder)
	return fields
}

// IsCatalogField reports whether name is a base EAV field.
func IsCatalogField(name string) bool {
	_, ok := fieldAccessors[name]
	return ok
}

// FieldDisplayName returns the human-readable label for a field,
// falling back to the field name itself.
func FieldDisplayName(field string) string {
	if label, ok := fieldDisplayNames[field]; ok {
		return label
	}
	return field
}

// EAVRow adapts a raw CSVDataRow to the Row projection used in direct mode.
type EAVRow struct {
	row *models.CSVDataRow
}

func (e EAVRow) FieldValue(name string) (string, bool) {
	accessor, ok := fieldAccessors[name]
	if !ok {
		return "", false
	}
	v := accessor(e.row)
	return v, v != ""
}

func (e EAVRow) HasField(name string) bool {
	return IsCatalogField(name)
}

// WrapEAVRows converts fetched EAV rows into the Row projection.
func WrapEAVRows(rows []models.CSVDataRow) []Row {
	out := make([]Row, len(rows))
	for i := range rows {
		out[i] = EAVRow{row: &rows[i]}
	}
	return out
}
