package pivot

import (
	"sort"
	"strings"

	"datalab-service/internal/models"
)

const (
	// EmptySentinel stands in for "no value present" in keys and filters.
	EmptySentinel = "(empty)"
	// AllKey is the single row or column key of an ungrouped axis.
	AllKey = "All"

	keySeparator = " | "

	// CountField is the synthetic aggregation field that counts every row.
	CountField = "id"
)

// bucket accumulates raw values for one (row key, column key, label) triple
// before reduction.
type bucket struct {
	count    int
	nums     []float64
	distinct map[string]struct{}
}

type cellKey struct {
	row string
	col string
}

// Aggregate is the grouping core: it computes row and column keys from the
// chosen field lists, accumulates per-cell values for each requested
// aggregation and reduces them. limit, when positive, caps the number of distinct
// (row key, column key) groups created during accumulation; rows falling
// into new groups beyond the cap are skipped, existing groups still
// accumulate. Pass 0 for no cap.
//
// With no aggregations a single COUNT labeled "Count" is used; with an empty
// rowFields or columnFields axis all rows collapse into the "All" key.
func Aggregate(rows []Row, rowFields, columnFields []string, aggregations []models.PivotAggregation, limit int) *models.PivotResponse {
	if len(aggregations) == 0 {
		aggregations = []models.PivotAggregation{{Field: CountField, Function: "COUNT", DisplayName: "Count"}}
	}

	cells := make(map[cellKey]map[string]*bucket)
	for _, r := range rows {
		key := cellKey{
			row: composeKey(r, rowFields),
			col: composeKey(r, columnFields),
		}
		cell, ok := cells[key]
		if !ok {
			if limit > 0 && len(cells) >= limit {
				continue
			}
			cell = make(map[string]*bucket, len(aggregations))
			cells[key] = cell
		}
		for _, agg := range aggregations {
			accumulate(cell, agg, r)
		}
	}

	rowKeys := make(map[string]struct{})
	colKeys := make(map[string]struct{})
	for key := range cells {
		rowKeys[key.row] = struct{}{}
		colKeys[key.col] = struct{}{}
	}
	sortedRows := sortedKeys(rowKeys)
	sortedCols := sortedKeys(colKeys)

	// Row-major over the sorted keys, existing cells only: deterministic
	// output with no dense cross-product padding.
	outCells := make([]models.PivotCell, 0, len(cells))
	for _, rk := range sortedRows {
		for _, ck := range sortedCols {
			cell, ok := cells[cellKey{row: rk, col: ck}]
			if !ok {
				continue
			}
			values := make(map[string]float64, len(aggregations))
			for _, agg := range aggregations {
				label := agg.Label()
				values[label] = cell[label].reduce(agg.Function)
			}
			outCells = append(outCells, models.PivotCell{
				RowKey:    rk,
				ColumnKey: ck,
				Values:    values,
			})
		}
	}

	return &models.PivotResponse{
		Rows:          sortedRows,
		Columns:       sortedCols,
		Cells:         outCells,
		Aggregations:  aggregations,
		TotalRows:     len(outCells),
		RowsFields:    nonNil(rowFields),
		ColumnsFields: nonNil(columnFields),
	}
}

// composeKey joins the row's per-field values with " | ", substituting the
// empty sentinel for missing values, in the exact field order given.
func composeKey(r Row, fields []string) string {
	if len(fields) == 0 {
		return AllKey
	}
	parts := make([]string, len(fields))
	for i, field := range fields {
		if v, ok := r.FieldValue(field); ok {
			parts[i] = v
		} else {
			parts[i] = EmptySentinel
		}
	}
	return strings.Join(parts, keySeparator)
}

func accumulate(cell map[string]*bucket, agg models.PivotAggregation, r Row) {
	label := agg.Label()
	b, ok := cell[label]
	if !ok {
		b = &bucket{}
		cell[label] = b
	}

	switch agg.Function {
	case "COUNT":
		// The synthetic "id" field counts every row; otherwise only rows
		// with a value for the source field count, numeric or not.
		if agg.Field == CountField {
			b.count++
		} else if _, present := r.FieldValue(agg.Field); present {
			b.count++
		}
	case "COUNT_DISTINCT":
		v, present := r.FieldValue(agg.Field)
		if !present {
			v = EmptySentinel
		}
		if b.distinct == nil {
			b.distinct = make(map[string]struct{})
		}
		b.distinct[v] = struct{}{}
	default: // SUM, AVG, MIN, MAX
		v, present := r.FieldValue(agg.Field)
		if !present {
			return
		}
		// Unparseable values are excluded from the bucket, never coerced to 0.
		if n, ok := ExtractNumeric(v); ok {
			b.nums = append(b.nums, n)
		}
	}
}

func (b *bucket) reduce(function string) float64 {
	switch function {
	case "COUNT":
		return float64(b.count)
	case "COUNT_DISTINCT":
		return float64(len(b.distinct))
	case "SUM":
		var sum float64
		for _, n := range b.nums {
			sum += n
		}
		return sum
	case "AVG":
		if len(b.nums) == 0 {
			return 0
		}
		var sum float64
		for _, n := range b.nums {
			sum += n
		}
		return sum / float64(len(b.nums))
	case "MIN":
		if len(b.nums) == 0 {
			return 0
		}
		min := b.nums[0]
		for _, n := range b.nums[1:] {
			if n < min {
				min = n
			}
		}
		return min
	case "MAX":
		if len(b.nums) == 0 {
			return 0
		}
		max := b.nums[0]
		for _, n := range b.nums[1:] {
			if n > max {
				max = n
			}
		}
		return max
	}
	return 0
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func nonNil(fields []string) []string {
	if fields == nil {
		return []string{}
	}
	return fields
}
