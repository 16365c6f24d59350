package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/report"
)

const DefaultSheet = "Schedule"

// XLSXExporter writes the schedule as a single-sheet workbook.
// Timestamps are stored as HH:MM text, counts and durations as numbers.
type XLSXExporter struct {
	Sheet string
}

func (XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXExporter) FileExt() string { return "xlsx" }

func (e XLSXExporter) Export(w io.Writer, trips []domain.Trip) error {
	sheet := e.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("export xlsx: rename sheet: %w", err)
	}

	header := make([]any, 0, len(report.Headers))
	for _, h := range report.Headers {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("export xlsx: write header: %w", err)
	}

	for i, r := range report.Rows(trips) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export xlsx: cell for trip %d: %w", r.TripNo, err)
		}

		values := []any{
			r.TripNo,
			r.VehicleNo,
			r.WorkStart,
			r.PlantDeparture,
			r.SiteArrival,
			r.DischargeStart,
			r.SiteDeparture,
			r.BufferTime,
			r.PlantArrival,
			r.RoundTrip,
			r.QuantityPerTrip,
			r.CumulativeQuantity,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("export xlsx: write trip %d: %w", r.TripNo, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export xlsx: write workbook: %w", err)
	}
	return nil
}
