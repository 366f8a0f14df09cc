package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/markdave123-py/FinSheet/internal/models"
)

const sheet = "Financial Data"

// Workbook layout constants. The data grid is fixed: title row, two metadata
// rows, a blank row, the header row, then one row per vocabulary entry.
const (
	headerRow    = 5
	firstItemRow = 6
)

var numFmt = "#,##0.00"

// BuildWorkbook renders a FinancialRecord into XLSX bytes with a fixed,
// deterministic layout. Pure formatting; all decisions happened upstream.
func BuildWorkbook(rec *models.FinancialRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	styles, err := newStyleSet(f)
	if err != nil {
		return nil, err
	}

	// Title and metadata.
	company := rec.CompanyName
	if company == "" {
		company = "Unknown Company"
	}
	setCell(f, 1, 1, fmt.Sprintf("Financial Statement - %s", company))
	applyStyle(f, 1, 1, styles.title)
	if err := f.MergeCell(sheet, "A1", "E1"); err != nil {
		return nil, err
	}
	currency := rec.Currency
	if currency == "" {
		currency = "Unknown"
	}
	units := rec.Units
	if units == "" {
		units = "Actual"
	}
	setCell(f, 1, 2, fmt.Sprintf("Currency: %s", currency))
	setCell(f, 1, 3, fmt.Sprintf("Units: %s", units))

	// Header row: "Line Item" plus one column per fiscal year.
	setCell(f, 1, headerRow, "Line Item")
	applyStyle(f, 1, headerRow, styles.header)
	for i, year := range rec.FiscalYears {
		col := 2 + i
		setCell(f, col, headerRow, fmt.Sprintf("FY %s", year))
		applyStyle(f, col, headerRow, styles.header)
	}

	// One row per vocabulary entry, fixed order. Missing values render as a
	// highlighted "N/A" so gaps stay visible in the sheet.
	row := firstItemRow
	for _, item := range models.LineItems {
		setCell(f, 1, row, item.Label)
		applyStyle(f, 1, row, styles.label)

		for i, year := range rec.FiscalYears {
			col := 2 + i
			if v, ok := rec.Value(item.Key, year); ok {
				setCell(f, col, row, v)
				applyStyle(f, col, row, styles.value)
			} else {
				setCell(f, col, row, "N/A")
				applyStyle(f, col, row, styles.missing)
			}
		}
		row++
	}

	// Notes section: heading, then one bulleted row per note.
	row += 2
	setCell(f, 1, row, "Notes & Assumptions:")
	applyStyle(f, 1, row, styles.notesHead)
	for _, note := range rec.Notes {
		row++
		setCell(f, 1, row, fmt.Sprintf("• %s", note))
		start, _ := excelize.CoordinatesToCellName(1, row)
		end, _ := excelize.CoordinatesToCellName(5, row)
		if err := f.MergeCell(sheet, start, end); err != nil {
			return nil, err
		}
	}

	// Fixed widths: wide label column, uniform narrower year columns.
	if err := f.SetColWidth(sheet, "A", "A", 25); err != nil {
		return nil, err
	}
	if n := len(rec.FiscalYears); n > 0 {
		last, _ := excelize.ColumnNumberToName(1 + n)
		if err := f.SetColWidth(sheet, "B", last, 18); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

type styleSet struct {
	title     int
	header    int
	label     int
	value     int
	missing   int
	notesHead int
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, len(sides))
	for i, s := range sides {
		borders[i] = excelize.Border{Type: s, Style: 1, Color: "000000"}
	}
	return borders
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	var s styleSet
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	}); err != nil {
		return nil, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F4E78"}},
		Font:   &excelize.Font{Bold: true, Color: "FFFFFF", Size: 12},
		Border: thinBorder(),
	}); err != nil {
		return nil, err
	}
	if s.label, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: thinBorder(),
	}); err != nil {
		return nil, err
	}
	if s.value, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right"},
		Border:       thinBorder(),
	}); err != nil {
		return nil, err
	}
	if s.missing, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFC7CE"}},
		Font:      &excelize.Font{Italic: true, Color: "9C0006"},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    thinBorder(),
	}); err != nil {
		return nil, err
	}
	if s.notesHead, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err != nil {
		return nil, err
	}
	return &s, nil
}

func setCell(f *excelize.File, col, row int, v any) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	_ = f.SetCellValue(sheet, cell, v)
}

func applyStyle(f *excelize.File, col, row, style int) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	_ = f.SetCellStyle(sheet, cell, cell, style)
}
