package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/report"
)

func sampleTrips() []domain.Trip {
	return []domain.Trip{
		{TripNo: 1, VehicleNo: 1, WorkStart: 300, PlantDeparture: 305, SiteArrival: 325, DischargeStart: 330, SiteDeparture: 345, BufferTime: 5, PlantArrival: 365, RoundTrip: 65, QuantityPerTrip: 10, CumulativeQuantity: 10},
		{TripNo: 2, VehicleNo: 2, WorkStart: 345, PlantDeparture: 350, SiteArrival: 370, DischargeStart: 375, SiteDeparture: 390, BufferTime: 5, PlantArrival: 410, RoundTrip: 65, QuantityPerTrip: 10, CumulativeQuantity: 20},
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format string
		ext    string
	}{
		{"csv", "csv"},
		{"CSV", "csv"},
		{"xlsx", "xlsx"},
		{"excel", "xlsx"},
		{"text", "txt"},
		{"", "txt"},
	}
	for _, tc := range tests {
		e, err := ForFormat(tc.format)
		require.NoError(t, err, tc.format)
		assert.Equal(t, tc.ext, e.FileExt(), tc.format)
	}

	_, err := ForFormat("pdf")
	require.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "tm_scheduler.xlsx", FileName(XLSXExporter{}))
	assert.Equal(t, "tm_scheduler.csv", FileName(CSVExporter{}))
}

func TestCSVExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSVExporter{}.Export(&buf, sampleTrips()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, report.Headers, records[0])
	assert.Equal(t, []string{"1", "1", "05:00", "05:05", "05:25", "05:30", "05:45", "5", "06:05", "65", "10", "10"}, records[1])
	assert.Equal(t, "20", records[2][11])
}

func TestCSVExporterEmptyWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSVExporter{}.Export(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestXLSXExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XLSXExporter{}.Export(&buf, sampleTrips()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(DefaultSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, report.Headers, rows[0])
	assert.Equal(t, "05:45", rows[2][2])
	assert.Equal(t, "06:50", rows[2][8])
	assert.Equal(t, "20", rows[2][11])
}

func TestTextExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TextExporter{}.Export(&buf, sampleTrips()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Trip No."))
	assert.Contains(t, lines[1], "05:00")
	assert.Contains(t, lines[2], "06:50")
}

func TestTextExporterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TextExporter{}.Export(&buf, []domain.Trip{}))
	assert.Equal(t, "no trips\n", buf.String())
}
