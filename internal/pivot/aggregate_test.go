package pivot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"datalab-service/internal/models"
)

func TestAggregate_KeyComposition(t *testing.T) {
	rows := WrapEAVRows([]models.CSVDataRow{
		eavRow("ModelX", "E1", "Wall", "Height", "3"),
		eavRow("ModelX", "E2", "", "Height", "4"),
	})

	resp := Aggregate(rows, []string{FieldCategory, FieldElementID}, nil, nil, 0)

	assert.Equal(t, []string{"(empty) | E2", "Wall | E1"}, resp.Rows)
	assert.Equal(t, []string{"All"}, resp.Columns)
	assert.Equal(t, []string{FieldCategory, FieldElementID}, resp.RowsFields)
	assert.Equal(t, []string{}, resp.ColumnsFields)
}

func TestAggregate_EmptyAxesDefaultToAll(t *testing.T) {
	rows := WrapEAVRows([]models.CSVDataRow{
		eavRow("M", "E1", "Wall", "Height", "3"),
		eavRow("M", "E2", "Door", "Height", "4"),
	})

	resp := Aggregate(rows, nil, nil, nil, 0)

	assert.Equal(t, []string{"All"}, resp.Rows)
	assert.Equal(t, []string{"All"}, resp.Columns)
	assert.Len(t, resp.Cells, 1)
	assert.Equal(t, 2.0, resp.Cells[0].Values["Count"])
}

func TestAggregate_DefaultCountAggregation(t *testing.T) {
	rows := WrapEAVRows([]models.CSVDataRow{
		eavRow("M", "E1", "Wall", "Height", "3"),
	})

	resp := Aggregate(rows, nil, nil, nil, 0)

	assert.Len(t, resp.Aggregations, 1)
	assert.Equal(t, "COUNT", resp.Aggregations[0].Function)
	assert.Equal(t, "Count", resp.Aggregations[0].DisplayName)
}

func TestAggregate_CountVersusNumericAggregation(t *testing.T) {
	// COUNT counts non-empty values regardless of numeric validity;
	// SUM only sums what parses.
	rows := WrapEAVRows([]models.CSVDataRow{
		eavRow("M", "E1", "Wall", "p", "10"),
		eavRow("M", "E2", "Wall", "p", ""),
		eavRow("M", "E3", "Wall", "p", "bad"),
	})

	resp := Aggregate(rows, nil, nil, []models.PivotAggregation{
		{Field: FieldParameterValue, Function: "COUNT"},
		{Field: FieldParameterValue, Function: "SUM"},
	}, 0)

	assert.Len(t, resp.Cells, 1)
	values := resp.Cells[0].Values
	assert.Equal(t, 2.0, values["COUNT(parameter_value)"])
	assert.Equal(t, 10.0, values["SUM(parameter_value)"])
}

func TestAggregate_NumericFunctions(t *testing.T) {
	rows := WrapEAVRows([]models.CSVDataRow{
		eavRow("M", "E1", "Wall", "p", "2"),
		eavRow("M", "E2", "Wall", "p", "4"),
		eavRow("M", "E3", "Wall", "p", "6 m²"),
		eavRow("M", "E4", "Wall", "p", "junk"),
	})

	resp := Aggregate(rows, nil, nil, []models.PivotAggregation{
		{Field: FieldParameterValue, Function: "SUM", DisplayName: "total"},
		{Field: FieldParameterValue, Function: "AVG", DisplayName: "mean"},
		{Field: FieldParameterValue, Function: "MIN", DisplayName: "lo"},
		{Field: FieldParameterValue, Function: "MAX", DisplayName: "hi"},
	}, 0)

	values := resp.Cells[0].Values
	assert.Equal(t, 12.0, values["total"])
	assert.Equal(t, 4.0, values["mean"])
	assert.Equal(t, 2.0, values["lo"])
	assert.Equal(t, 6.0, values["hi"])
}

func TestAggregate_CountDistinct(t *testing.T) {
	rows := WrapEAVRows([]models.CSVDataRow{
		eavRow("M", "E1", "Wall", "p", "a"),
		eavRow("M", "E2", "Wall", "p", "a"),
		eavRow("M", "E3", "Wall", "p", "b"),
		eavRow("M", "E4", "Wall", "p", ""),
		eavRow("M", "E5", "Wall", "p", ""),
	})

	resp := Aggregate(rows, nil, nil, []models.PivotAggregation{
		{Field: FieldParameterValue, Function: "COUNT_DISTINCT", DisplayName: "distinct"},
	}, 0)

	// a, b, and one shared representation of "no value".
	assert.Equal(t, 3.0, resp.Cells[0].Values["distinct"])
}

func TestAggregate_Sparsity(t *testing.T) {
	// Wall only appears in ModelX, Door only in ModelY: no cells for the
	// missing combinations.
	rows := WrapEAVRows([]models.CSVDataRow{
		eavRow("ModelX", "E1", "Wall", "p", "1"),
		eavRow("ModelY", "E2", "Door", "p", "2"),
	})

	resp := Aggregate(rows, []string{FieldCategory}, []string{FieldModelName}, nil, 0)

	assert.Equal(t, []string{"Door", "Wall"}, resp.Rows)
	assert.Equal(t, []string{"ModelX", "ModelY"}, resp.Columns)
	assert.Len(t, resp.Cells, 2)
	assert.Equal(t, resp.TotalRows, len(resp.Cells))
	for _, cell := range resp.Cells {
		pair := cell.RowKey + "/" + cell.ColumnKey
		assert.Contains(t, []string{"Wall/ModelX", "Door/ModelY"}, pair)
	}
}

func TestAggregate_UnknownGroupingFieldDegradesToEmptyKey(t *testing.T) {
	rows := WrapEAVRows([]models.CSVDataRow{
		eavRow("M", "E1", "Wall", "p", "1"),
	})

	resp := Aggregate(rows, []string{"typo_field"}, nil, []models.PivotAggregation{
		{Field: "typo_field", Function: "SUM", DisplayName: "s"},
	}, 0)

	assert.Equal(t, []string{EmptySentinel}, resp.Rows)
	assert.Equal(t, 0.0, resp.Cells[0].Values["s"])
}

func TestAggregate_LimitCapsDistinctGroups(t *testing.T) {
	rows := WrapEAVRows([]models.CSVDataRow{
		eavRow("M", "E1", "A", "p", "1"),
		eavRow("M", "E2", "B", "p", "1"),
		eavRow("M", "E3", "C", "p", "1"),
		eavRow("M", "E4", "A", "p", "1"), // existing group keeps accumulating
	})

	resp := Aggregate(rows, []string{FieldCategory}, nil, nil, 2)

	assert.Len(t, resp.Cells, 2)
	assert.Equal(t, []string{"A", "B"}, resp.Rows)
	for _, cell := range resp.Cells {
		if cell.RowKey == "A" {
			assert.Equal(t, 2.0, cell.Values["Count"])
		}
	}
}

func TestAggregate_DeterministicOutput(t *testing.T) {
	rows := WrapEAVRows([]models.CSVDataRow{
		eavRow("ModelY", "E2", "Door", "p", "2"),
		eavRow("ModelX", "E1", "Wall", "p", "1"),
		eavRow("ModelX", "E3", "Door", "p", "3"),
	})

	first, _ := json.Marshal(Aggregate(rows, []string{FieldCategory}, []string{FieldModelName}, nil, 0))
	for i := 0; i < 5; i++ {
		again, _ := json.Marshal(Aggregate(rows, []string{FieldCategory}, []string{FieldModelName}, nil, 0))
		assert.Equal(t, string(first), string(again))
	}
}

func TestAggregate_NoRows(t *testing.T) {
	resp := Aggregate(nil, []string{FieldCategory}, []string{FieldModelName}, nil, 0)

	assert.Empty(t, resp.Cells)
	assert.Empty(t, resp.Rows)
	assert.Empty(t, resp.Columns)
	assert.Equal(t, 0, resp.TotalRows)
	// Axis echoes survive an empty result.
	assert.Equal(t, []string{FieldCategory}, resp.RowsFields)
	assert.Equal(t, []string{FieldModelName}, resp.ColumnsFields)
}
