package export

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx"
)

// WriteXLSX encodes rows as a single-sheet Excel workbook and writes it
// to w. It is the file-format collaborator behind the row builders.
func WriteXLSX(w io.Writer, sheetName string, rows []Row) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet %q: %w", sheetName, err)
	}

	for _, row := range rows {
		sheetRow := sheet.AddRow()
		for _, value := range row {
			sheetRow.AddCell().SetValue(value)
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
