package pivot

import "datalab-service/internal/models"

// WideRow is one reconstructed entity: the identity triple plus one column
// per selected parameter, holding that parameter's value when present.
type WideRow struct {
	ElementID string
	Category  string
	ModelName string
	Params    map[string]string

	// identity fields + every selected parameter; shared across all rows
	// of one reconstruction.
	known map[string]bool
}

func (w *WideRow) FieldValue(name string) (string, bool) {
	var v string
	switch name {
	case FieldElementID:
		v = w.ElementID
	case FieldCategory:
		v = w.Category
	case FieldModelName:
		v = w.ModelName
	default:
		if !w.known[name] {
			return "", false
		}
		v = w.Params[name]
	}
	return v, v != ""
}

func (w *WideRow) HasField(name string) bool {
	return w.known[name]
}

// Reconstruct turns EAV rows into one wide row per distinct identity triple
// (element_id, category, model_name). Only rows whose parameter_name is in
// selectedParameters enter the grouping; entities with none of the selected
// parameters do not appear in the output.
//
// When a group carries duplicate rows for the same parameter name, the last
// scanned row wins; this is non-deterministic unless the caller guarantees
// row ordering upstream.
//
// Single pass, O(len(rows)); memory is O(distinct entities x selected params).
func Reconstruct(rows []models.CSVDataRow, selectedParameters []string) []*WideRow {
	selected := make(map[string]bool, len(selectedParameters))
	known := make(map[string]bool, len(selectedParameters)+3)
	known[FieldElementID] = true
	known[FieldCategory] = true
	known[FieldModelName] = true
	for _, name := range selectedParameters {
		selected[name] = true
		known[name] = true
	}

	type identity struct {
		elementID string
		category  string
		modelName string
	}

	index := make(map[identity]*WideRow)
	var out []*WideRow

	for i := range rows {
		r := &rows[i]
		if !selected[r.ParameterName] {
			continue
		}
		key := identity{r.ElementID, r.Category, r.ModelName}
		w, ok := index[key]
		if !ok {
			w = &WideRow{
				ElementID: r.ElementID,
				Category:  r.Category,
				ModelName: r.ModelName,
				Params:    make(map[string]string, len(selectedParameters)),
				known:     known,
			}
			index[key] = w
			out = append(out, w)
		}
		w.Params[r.ParameterName] = r.ParameterValue
	}
	return out
}

// WrapWideRows converts reconstructed wide rows into the Row projection.
func WrapWideRows(rows []*WideRow) []Row {
	out := make([]Row, len(rows))
	for i, w := range rows {
		out[i] = w
	}
	return out
}
