package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()

	data, err := exporter.Render(Dataset{
		Headers: []string{"unit", "quantity", "cost_sar"},
		Rows: [][]string{
			{"Standard Classroom", "249", "298302"},
			{"Exam Hall, 300 candidates", "1", "5188454"},
		},
	})
	require.NoError(t, err)

	want := "unit,quantity,cost_sar\n" +
		"Standard Classroom,249,298302\n" +
		"\"Exam Hall, 300 candidates\",1,5188454\n"
	assert.Equal(t, want, string(data))
}

func TestCSVExporterRejectsRaggedRows(t *testing.T) {
	exporter := NewCSVExporter()

	_, err := exporter.Render(Dataset{
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"only one"}},
	})
	require.Error(t, err)
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()

	_, err := exporter.Render(Dataset{})
	require.Error(t, err)
}
