// Package output renders estimation reports for humans and machines.
package output

import (
	"io"
	"time"

	"tripcost/core/types"
	"tripcost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is a human-readable CLI report
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatPDF is a printable quote document
	FormatPDF Format = "pdf"
)

// TripEstimate is one estimated trip in a report
type TripEstimate struct {
	// Name is the trip label from the plan file
	Name string `json:"name"`

	// Params are the trip parameters that were estimated
	Params types.TripParams `json:"params"`

	// Budget is the three-tier recommendation
	Budget types.BudgetRecommendation `json:"budget"`
}

// Report is a complete estimation report
type Report struct {
	// GeneratedAt is when the report was produced
	GeneratedAt time.Time `json:"generated_at"`

	// Currency is the report currency
	Currency types.Currency `json:"currency"`

	// Trips are the estimated trips
	Trips []TripEstimate `json:"trips"`
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the report
	Render(w io.Writer, report *Report) error
}

// NewFormatter returns the formatter for a format name
func NewFormatter(format Format, showBreakdown bool) (Formatter, error) {
	switch format {
	case FormatText, "":
		return &TextFormatter{ShowBreakdown: showBreakdown}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatPDF:
		return &PDFFormatter{}, nil
	}
	return nil, errors.NotSupported("output format " + string(format))
}
