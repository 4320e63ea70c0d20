package report

import (
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jeanpaul/university/internal/person"
)

const (
	StudentsSheet = "Students"
	TeachersSheet = "Teachers"
)

// ExportXLSX writes students and teachers to a workbook with one sheet each.
func ExportXLSX(path string, students []*person.Student, teachers []*person.Teacher, today time.Time) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing workbook: %v", err)
		}
	}()

	// The new workbook starts with a single "Sheet1"
	if err := f.SetSheetName("Sheet1", StudentsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(TeachersSheet); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", TeachersSheet, err)
	}

	if err := writeSheet(f, StudentsSheet, StudentRows(students, today)); err != nil {
		return err
	}
	if err := writeSheet(f, TeachersSheet, TeacherRows(teachers, today)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]string) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of sheet %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
