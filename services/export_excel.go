package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates an Excel workbook from the projected quote
// and returns the file contents as a byte slice. The sheet mirrors the
// PDF block order: info, sections, summary, terms, payment, timeline.
func GenerateQuoteExcel(data QuoteExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names are capped at 31 chars by the format.
	sheetName := data.Brand.DocumentTitle
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Cotizacion"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through G).
	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 44, 10, 10, 14, 14, 12}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16, Color: "#38B2AC"},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	infoStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
	})
	if err != nil {
		return nil, fmt.Errorf("create info style: %w", err)
	}

	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F1F5F9"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 10},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#38B2AC"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Title + info block ──────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Brand.CompanyName+" — "+data.Brand.DocumentTitle))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	rowNum := 3
	for _, info := range data.Info {
		cell := fmt.Sprintf("A%d", rowNum)
		if err := f.MergeCell(sheetName, cell, fmt.Sprintf("%s%d", lastCol, rowNum)); err != nil {
			return nil, fmt.Errorf("merge info row: %w", err)
		}
		f.SetCellValue(sheetName, cell, sanitizeExcelCell(info.Label+": "+info.Value))
		f.SetCellStyle(sheetName, cell, cell, infoStyle)
		rowNum++
	}
	rowNum++

	// ── Introduction (software variant) ─────────────────────────────────

	if data.Introduction != nil {
		parts := []struct{ title, body string }{
			{"Descripción General", data.Introduction.Overview},
			{"Objetivos", data.Introduction.Objectives},
			{"Beneficios", data.Introduction.Benefits},
		}
		for _, p := range parts {
			if p.body == "" {
				continue
			}
			cell := fmt.Sprintf("A%d", rowNum)
			f.SetCellValue(sheetName, cell, p.title)
			f.SetCellStyle(sheetName, cell, cell, infoStyle)
			rowNum++
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), sanitizeExcelCell(p.body))
			rowNum++
		}
		rowNum++
	}

	// ── Section tables ──────────────────────────────────────────────────

	tableHeaders := []string{"#", "Descripción", "Cant.", "Unidad", "Precio Unit.", "Subtotal", "IVA"}

	for _, sec := range data.Sections {
		cell := fmt.Sprintf("A%d", rowNum)
		if err := f.MergeCell(sheetName, cell, fmt.Sprintf("%s%d", lastCol, rowNum)); err != nil {
			return nil, fmt.Errorf("merge section title: %w", err)
		}
		f.SetCellValue(sheetName, cell, sanitizeExcelCell(sec.Name))
		f.SetCellStyle(sheetName, cell, fmt.Sprintf("%s%d", lastCol, rowNum), sectionStyle)
		rowNum++

		for i, h := range tableHeaders {
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", columns[i], rowNum), h)
		}
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), headerStyle)
		rowNum++

		for _, r := range sec.Rows {
			rowStr := fmt.Sprintf("%d", rowNum)
			f.SetCellValue(sheetName, "A"+rowStr, r.RowNo)
			f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Description))
			f.SetCellValue(sheetName, "C"+rowStr, r.Qty)
			f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.Unit))
			f.SetCellValue(sheetName, "E"+rowStr, FormatMoney(r.UnitPrice))
			f.SetCellValue(sheetName, "F"+rowStr, FormatMoney(r.Subtotal))
			f.SetCellValue(sheetName, "G"+rowStr, FormatMoney(r.Tax))
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, itemStyle)
			rowNum++
		}
		rowNum++
	}

	// ── Summary ─────────────────────────────────────────────────────────

	summaryRows := []struct {
		label string
		value float64
	}{
		{"Costo Directo Total:", data.TotalDirectCost},
		{fmt.Sprintf("IVA (%s):", FormatPercent(data.TaxRatePercent)), data.TaxAmount},
		{"Total:", data.Total},
	}
	for _, sr := range summaryRows {
		rowStr := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "E"+rowStr, sr.label)
		f.SetCellStyle(sheetName, "E"+rowStr, "E"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "F"+rowStr, FormatMoney(sr.value))
		f.SetCellStyle(sheetName, "F"+rowStr, "F"+rowStr, summaryValueStyle)
		rowNum++
	}
	rowNum++

	// ── Terms, payment, timeline ────────────────────────────────────────

	rowNum = writeBulletBlock(f, sheetName, rowNum, infoStyle, "Términos y Condiciones", data.Terms)

	var paymentLines []string
	for _, p := range data.Payment {
		paymentLines = append(paymentLines, p.Label+": "+p.Value)
	}
	rowNum = writeBulletBlock(f, sheetName, rowNum, infoStyle, "Información de Pago", paymentLines)

	var timelineLines []string
	for _, marker := range data.Timeline {
		timelineLines = append(timelineLines, marker.Date+" — "+marker.Description)
	}
	rowNum = writeBulletBlock(f, sheetName, rowNum, infoStyle, "Cronograma del Proyecto", timelineLines)

	// ── Footer ──────────────────────────────────────────────────────────

	footer := fmt.Sprintf("%s | Tel: %s | Email: %s | %s",
		data.Brand.CompanyName, data.Footer.Phone, data.Footer.Email, data.Footer.Address)
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), sanitizeExcelCell(footer))
	rowNum++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), sanitizeExcelCell(data.Copyright))

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// writeBulletBlock writes a labeled list block and returns the next
// free row. Empty lists are skipped entirely.
func writeBulletBlock(f *excelize.File, sheet string, rowNum, labelStyle int, title string, lines []string) int {
	if len(lines) == 0 {
		return rowNum
	}

	cell := fmt.Sprintf("A%d", rowNum)
	f.SetCellValue(sheet, cell, title)
	f.SetCellStyle(sheet, cell, cell, labelStyle)
	rowNum++

	for _, l := range lines {
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), sanitizeExcelCell("• "+l))
		rowNum++
	}
	return rowNum + 1
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
