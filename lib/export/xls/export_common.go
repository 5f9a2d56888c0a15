package xlsexport

import "github.com/xuri/excelize/v2"

const columnWidth = 22

func writeCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func newStyle(f *excelize.File, bold bool, horizontal string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: horizontal,
			Vertical:   "center",
		},
		Font: &excelize.Font{
			Bold:   bold,
			Family: "Calibri",
			Size:   11,
		},
	})
}

func applyStyle(f *excelize.File, sheet string, style, colFrom, rowFrom, colTo, rowTo int) error {
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, style)
}

// writeHeader - bold header in the first row, returns the row number
func writeHeader(f *excelize.File, sheet string, headers []string) (int, error) {
	row := 1
	style, err := newStyle(f, true, "center")
	if err != nil {
		return row, err
	}
	if err = applyStyle(f, sheet, style, 1, row, len(headers), row); err != nil {
		return row, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
		return row, err
	}
	for idx, value := range headers {
		if err = writeCell(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}
