package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gocoach/domain/factors"
)

// DataReader reads cohort sheets from Excel or CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	logger   *zap.Logger
}

// NewDataReader creates a reader; the file type is chosen by extension
func NewDataReader(filePath string, logger *zap.Logger) *DataReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType, logger: logger}
}

// ReadData reads the first sheet (or the CSV file) into header-keyed rows
func (r *DataReader) ReadData() (*SheetData, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	start := time.Now()
	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s file must have at least a header row and one data row", strings.ToUpper(r.fileType))
	}

	data := processRows(rows)
	r.logger.Debug("Cohort sheet read",
		zap.String("path", r.filePath),
		zap.String("type", r.fileType),
		zap.Int("columns", len(data.Headers)),
		zap.Int("rows", len(data.Rows)),
		zap.Duration("elapsed", time.Since(start)))
	return data, nil
}

// ReadFactors reads one Decision Factors record per data row.
// Headers are matched to factor field names case-insensitively. Missing
// columns and unparseable month values stay empty and are reported as
// unmapped by the engine's callers rather than rejected here.
func (r *DataReader) ReadFactors() ([]Record, error) {
	data, err := r.ReadData()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(data.Rows))
	for i, row := range data.Rows {
		label := row[LabelColumn]
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		months, _ := strconv.Atoi(row[strings.ToLower(string(factors.FieldTimeConstraint))])
		records = append(records, Record{
			Label: label,
			Factors: factors.Factors{
				Country:           factors.Country(row[string(factors.FieldCountry)]),
				Discipline:        factors.Discipline(row[string(factors.FieldDiscipline)]),
				Stage:             factors.Stage(row[string(factors.FieldStage)]),
				Goal:              factors.Goal(row[string(factors.FieldGoal)]),
				TimeConstraint:    months,
				BudgetSensitivity: factors.Budget(row[strings.ToLower(string(factors.FieldBudgetSensitivity))]),
			},
		})
	}
	return records, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheets[0], err)
	}
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// processRows converts raw string rows into header-keyed rows.
// Headers are lower-cased; cell values are trimmed but otherwise kept as is.
func processRows(rows [][]string) *SheetData {
	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(header))
	}

	dataRows := make([]RawRowData, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rowData := make(RawRowData, len(headers))
		empty := true
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
				if rowData[headers[j]] != "" {
					empty = false
				}
			}
		}
		if !empty {
			dataRows = append(dataRows, rowData)
		}
	}

	return &SheetData{Headers: headers, Rows: dataRows}
}
