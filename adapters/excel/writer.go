package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"gocoach/domain/factors"
	"gocoach/domain/strategy"
	"gocoach/domain/verdict"
	"gocoach/internal/errors"
	"gocoach/internal/sweep"
)

// Decision pairs a cohort record with its evaluation
type Decision struct {
	Record   Record
	Result   strategy.Result
	Unmapped []factors.Field
}

var resultHeaders = []interface{}{
	"verdict", "conferenceTotal", "journalTotal", "delta",
	"speed", "depth", "weight", "risk", "cost",
}

// WriteSweep writes a sweep report as a workbook with a Summary sheet and a
// Matrix sheet holding one row per (country, discipline, goal) profile.
// Reports that kept their rows also get a Rows sheet with every input.
func WriteSweep(w io.Writer, report *sweep.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return errors.ExportFailed("xlsx", err)
	}

	summary := [][]interface{}{
		{"sweep", report.ID.String()},
		{"ruleset", report.Ruleset.String()},
		{"evaluated", report.Evaluated},
	}
	for _, v := range verdict.All() {
		summary = append(summary, []interface{}{"verdict " + v.Label(), report.Verdicts[v]})
	}
	summary = append(summary,
		[]interface{}{"conferenceTotal min", report.ConferenceTotal.Min},
		[]interface{}{"conferenceTotal max", report.ConferenceTotal.Max},
		[]interface{}{"journalTotal min", report.JournalTotal.Min},
		[]interface{}{"journalTotal max", report.JournalTotal.Max},
		[]interface{}{"delta min", report.Delta.Min},
		[]interface{}{"delta max", report.Delta.Max},
		[]interface{}{"delta mean", report.Delta.Mean},
		[]interface{}{"delta stddev", report.Delta.StdDev},
		[]interface{}{"conference reachable", report.ConferenceReachable},
		[]interface{}{"inert fields hold", report.InertFieldsHold},
	)
	if err := writeRows(f, summarySheet, summary); err != nil {
		return err
	}

	if _, err := f.NewSheet(matrixSheet); err != nil {
		return errors.ExportFailed("xlsx", err)
	}
	header := append([]interface{}{"country", "discipline", "goal"}, resultHeaders...)
	rows := [][]interface{}{header}
	for _, p := range report.Profiles {
		row := []interface{}{string(p.Factors.Country), string(p.Factors.Discipline), string(p.Factors.Goal)}
		rows = append(rows, append(row, resultCells(p.Result)...))
	}
	if err := writeRows(f, matrixSheet, rows); err != nil {
		return err
	}

	if len(report.Rows) > 0 {
		if _, err := f.NewSheet(rowsSheet); err != nil {
			return errors.ExportFailed("xlsx", err)
		}
		header := []interface{}{}
		for _, field := range factors.Fields() {
			header = append(header, string(field))
		}
		rows := [][]interface{}{append(header, resultHeaders...)}
		for _, r := range report.Rows {
			row := make([]interface{}, 0, len(rows[0]))
			for _, field := range factors.Fields() {
				row = append(row, r.Factors.Value(field))
			}
			rows = append(rows, append(row, resultCells(r.Result)...))
		}
		if err := writeRows(f, rowsSheet, rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return errors.ExportFailed("xlsx", err)
	}
	return nil
}

// WriteDecisions writes one row per cohort member with inputs and results
func WriteDecisions(w io.Writer, decisions []Decision) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", decisionSheet); err != nil {
		return errors.ExportFailed("xlsx", err)
	}

	header := []interface{}{LabelColumn}
	for _, field := range factors.Fields() {
		header = append(header, string(field))
	}
	header = append(header, resultHeaders...)
	header = append(header, "unmapped")

	rows := [][]interface{}{header}
	for _, d := range decisions {
		row := []interface{}{d.Record.Label}
		for _, field := range factors.Fields() {
			row = append(row, d.Record.Factors.Value(field))
		}
		row = append(row, resultCells(d.Result)...)
		row = append(row, joinFields(d.Unmapped))
		rows = append(rows, row)
	}
	if err := writeRows(f, decisionSheet, rows); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return errors.ExportFailed("xlsx", err)
	}
	return nil
}

func resultCells(res strategy.Result) []interface{} {
	cells := []interface{}{res.Verdict.Label(), res.ConferenceTotal, res.JournalTotal, res.Delta}
	for _, d := range strategy.Dimensions() {
		cells = append(cells, res.DimensionVector[d])
	}
	return cells
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.ExportFailed("xlsx", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.ExportFailed("xlsx", fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err))
		}
	}
	return nil
}

func joinFields(fields []factors.Field) string {
	out := ""
	for i, f := range fields {
		if i > 0 {
			out += ","
		}
		out += string(f)
	}
	return out
}
