package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/report"
)

// CSVExporter writes one header row and one formatted row per trip.
type CSVExporter struct{}

func (CSVExporter) ContentType() string { return "text/csv" }
func (CSVExporter) FileExt() string     { return "csv" }

func (CSVExporter) Export(w io.Writer, trips []domain.Trip) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(report.Headers); err != nil {
		return fmt.Errorf("export csv: write header: %w", err)
	}
	for _, row := range report.Rows(trips) {
		if err := cw.Write(row.Cells()); err != nil {
			return fmt.Errorf("export csv: write trip %d: %w", row.TripNo, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export csv: flush: %w", err)
	}
	return nil
}
