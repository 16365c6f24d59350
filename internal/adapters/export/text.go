package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/report"
)

// TextExporter renders an aligned plain-text table for terminals.
type TextExporter struct{}

func (TextExporter) ContentType() string { return "text/plain; charset=utf-8" }
func (TextExporter) FileExt() string     { return "txt" }

func (TextExporter) Export(w io.Writer, trips []domain.Trip) error {
	if len(trips) == 0 {
		_, err := fmt.Fprintln(w, "no trips")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, strings.Join(report.Headers, "\t")); err != nil {
		return fmt.Errorf("export text: write header: %w", err)
	}
	for _, row := range report.Rows(trips) {
		if _, err := fmt.Fprintln(tw, strings.Join(row.Cells(), "\t")); err != nil {
			return fmt.Errorf("export text: write trip %d: %w", row.TripNo, err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("export text: flush: %w", err)
	}
	return nil
}
