package ports

import (
	"io"
	"transit-mixer-scheduler/internal/domain"
)

// Contract for serializing a trip sequence to a downloadable table,
// one row per trip, columns in Trip field order.
type Exporter interface {
	Export(w io.Writer, trips []domain.Trip) error
	ContentType() string
	FileExt() string
}
