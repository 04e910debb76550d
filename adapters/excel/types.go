package excel

import "gocoach/domain/factors"

// RawRowData represents a row of raw sheet data keyed by header
type RawRowData map[string]string

// SheetData represents a complete sheet or CSV file
type SheetData struct {
	Headers []string
	Rows    []RawRowData
}

// Record is one researcher's Decision Factors read from a cohort sheet
type Record struct {
	Label   string
	Factors factors.Factors
}

// LabelColumn is the optional column naming the researcher on each row
const LabelColumn = "name"

const (
	summarySheet  = "Summary"
	matrixSheet   = "Matrix"
	decisionSheet = "Decisions"
	rowsSheet     = "Rows"
)
