package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"worktally/worklog"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, entries []worklog.Entry) error {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, entryRow(entry))
	}
	return writeExcel(path, entryHeaders, rows)
}

func writeExcel(path string, headers []string, rows [][]string) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, values := range rows {
		row := i + 2
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
