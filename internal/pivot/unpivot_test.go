package pivot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"datalab-service/internal/models"
)

func eavRow(model, element, category, param, value string) models.CSVDataRow {
	return models.CSVDataRow{
		ModelName:      model,
		ElementID:      element,
		Category:       category,
		ParameterName:  param,
		ParameterValue: value,
	}
}

func TestReconstruct_GroupsByIdentityTriple(t *testing.T) {
	rows := []models.CSVDataRow{
		eavRow("ModelX", "E1", "CategoryA", "Height", "3.5 m"),
		eavRow("ModelX", "E1", "CategoryA", "Width", "2 m"),
		eavRow("ModelX", "E2", "CategoryB", "Height", "4,0 m"),
	}

	wide := Reconstruct(rows, []string{"Height", "Width"})
	assert.Len(t, wide, 2)

	byElement := map[string]*WideRow{}
	for _, w := range wide {
		byElement[w.ElementID] = w
	}
	assert.Equal(t, "3.5 m", byElement["E1"].Params["Height"])
	assert.Equal(t, "2 m", byElement["E1"].Params["Width"])
	assert.Equal(t, "4,0 m", byElement["E2"].Params["Height"])
	_, hasWidth := byElement["E2"].Params["Width"]
	assert.False(t, hasWidth, "E2 has no Width row")
}

func TestReconstruct_FiltersToSelectedParameters(t *testing.T) {
	rows := []models.CSVDataRow{
		eavRow("M", "E1", "C", "Height", "3"),
		eavRow("M", "E1", "C", "Material", "Concrete"),
	}

	wide := Reconstruct(rows, []string{"Height"})
	assert.Len(t, wide, 1)
	_, hasMaterial := wide[0].Params["Material"]
	assert.False(t, hasMaterial)
}

func TestReconstruct_EntitiesWithoutSelectedParametersAreAbsent(t *testing.T) {
	rows := []models.CSVDataRow{
		eavRow("M", "E1", "C", "Height", "3"),
		eavRow("M", "E2", "C", "Material", "Concrete"),
	}

	wide := Reconstruct(rows, []string{"Height"})
	assert.Len(t, wide, 1)
	assert.Equal(t, "E1", wide[0].ElementID)
}

func TestReconstruct_DuplicateParameterLastWins(t *testing.T) {
	rows := []models.CSVDataRow{
		eavRow("M", "E1", "C", "Height", "3"),
		eavRow("M", "E1", "C", "Height", "5"),
	}

	wide := Reconstruct(rows, []string{"Height"})
	assert.Len(t, wide, 1)
	assert.Equal(t, "5", wide[0].Params["Height"])
}

func TestWideRow_FieldValue(t *testing.T) {
	wide := Reconstruct([]models.CSVDataRow{
		eavRow("ModelX", "E1", "CategoryA", "Height", "3.5 m"),
	}, []string{"Height", "Width"})
	w := wide[0]

	v, ok := w.FieldValue(FieldCategory)
	assert.True(t, ok)
	assert.Equal(t, "CategoryA", v)

	v, ok = w.FieldValue("Height")
	assert.True(t, ok)
	assert.Equal(t, "3.5 m", v)

	// Selected but absent on this entity: known field, no value.
	_, ok = w.FieldValue("Width")
	assert.False(t, ok)
	assert.True(t, w.HasField("Width"))

	// Never selected: unknown to this projection.
	_, ok = w.FieldValue("Material")
	assert.False(t, ok)
	assert.False(t, w.HasField("Material"))
}
