package application

import "mosreport/internal/domain"

// Report is re-exported for use by adapters
type Report = domain.Report

// HeaderLine returns the fixed report header line
func HeaderLine() string {
	return domain.HeaderLine()
}
