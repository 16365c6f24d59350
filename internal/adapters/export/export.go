package export

import (
	"fmt"
	"strings"

	"transit-mixer-scheduler/internal/ports"
)

// Base name of downloaded schedule files.
const FileBase = "tm_scheduler"

// ForFormat returns the exporter registered for format (csv, xlsx, text).
func ForFormat(format string) (ports.Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVExporter{}, nil
	case "xlsx", "excel":
		return XLSXExporter{Sheet: DefaultSheet}, nil
	case "text", "txt", "":
		return TextExporter{}, nil
	default:
		return nil, fmt.Errorf("export: unsupported format %q", format)
	}
}

// FileName returns the attachment name for e.
func FileName(e ports.Exporter) string {
	return FileBase + "." + e.FileExt()
}
