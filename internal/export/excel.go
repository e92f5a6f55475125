// Package export renders allocation snapshots as spreadsheet files.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/campus-visualizer/backend/internal/models"
)

var allocationHeader = []string{
	"Room",
	"Block",
	"Capacity",
	"Course Code",
	"Course Name",
	"Section",
	"Instructor",
	"Department",
	"Schedule",
	"Students",
}

var allocationColumnWidths = []float64{
	18, // Room
	10, // Block
	10, // Capacity
	14, // Course Code
	36, // Course Name
	10, // Section
	28, // Instructor
	28, // Department
	14, // Schedule
	10, // Students
}

// AllocationsWorkbook builds an .xlsx workbook listing the given
// allocations, one row per room/course pair, in input order.
func AllocationsWorkbook(allocations []models.Allocation) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so Close only on the error paths.

	sheetName := "Allocations"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range allocationHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i := range allocationHeader {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, allocationColumnWidths[i]); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for rowIdx, alloc := range allocations {
		row := rowIdx + 2
		values := []interface{}{
			alloc.Room.Name,
			alloc.Room.Block,
			alloc.Room.Capacity,
			alloc.Course.Code,
			alloc.Course.Name,
			alloc.Course.Section,
			alloc.Course.Instructor,
			alloc.Course.Department,
			alloc.Course.Schedule,
			alloc.Course.Students,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}

	return buf.Bytes(), nil
}
