package render

import (
	"fmt"
	"io"
	"strings"

	"mosreport/internal/application"
)

// Format names a report layout
type Format string

const (
	FormatCSV   Format = "csv"
	FormatTable Format = "table"
)

// Formats lists the supported layouts
var Formats = []Format{FormatCSV, FormatTable}

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	if err := application.ValidateRequired("format", name); err != nil {
		return "", err
	}

	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", &application.ValidationError{
		Field:   "format",
		Message: fmt.Sprintf("unknown format %q (expected csv or table)", name),
	}
}

// Report writes a report in the given format
func Report(w io.Writer, report *application.Report, format Format) error {
	switch format {
	case FormatCSV:
		return CSV(w, report)
	case FormatTable:
		return Table(w, report)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// String renders a report to a string
func String(report *application.Report, format Format) (string, error) {
	var sb strings.Builder
	if err := Report(&sb, report, format); err != nil {
		return "", err
	}
	return sb.String(), nil
}
