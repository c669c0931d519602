package render

import (
	"bufio"
	"io"

	"mosreport/internal/application"
)

// CSV writes the fixed header and one ", "-separated line per row
func CSV(w io.Writer, report *application.Report) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(application.HeaderLine() + "\n"); err != nil {
		return err
	}
	for _, row := range report.Rows {
		if _, err := bw.WriteString(row.String() + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
