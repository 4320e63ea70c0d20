// Package report renders the directory as tables: markdown for the
// terminal and spreadsheets for sharing. Reports are never read back.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/jeanpaul/university/internal/person"
)

var (
	studentHeader = []string{"Lastname", "Name", "Patronymic", "Birth date", "Age", "Course", "Group", "Score"}
	teacherHeader = []string{"Lastname", "Name", "Patronymic", "Birth date", "Age", "Department", "Experience", "Position"}
)

func profileCells(p person.Profile, today time.Time) []string {
	return []string{
		p.Lastname,
		p.Name,
		p.Patronymic,
		p.BirthDate.Format(person.DateLayout),
		strconv.Itoa(p.Age(today)),
	}
}

// StudentRows returns a header row followed by one row per student.
func StudentRows(students []*person.Student, today time.Time) [][]string {
	rows := [][]string{studentHeader}
	for _, s := range students {
		rows = append(rows, append(profileCells(s.Profile, today),
			strconv.Itoa(s.Course),
			strconv.Itoa(s.Group),
			strconv.FormatFloat(s.Score, 'f', -1, 64),
		))
	}
	return rows
}

// TeacherRows returns a header row followed by one row per teacher.
func TeacherRows(teachers []*person.Teacher, today time.Time) [][]string {
	rows := [][]string{teacherHeader}
	for _, t := range teachers {
		rows = append(rows, append(profileCells(t.Profile, today),
			t.Department,
			strconv.Itoa(t.Experience),
			t.Position.String(),
		))
	}
	return rows
}

// Markdown converts rows into a markdown table. The first row is the header.
func Markdown(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder

	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	writeRow := func(row []string) {
		cells := make([]string, maxCols)
		for j := range cells {
			if j < len(row) {
				// Escape pipes and flatten newlines so the table stays intact
				c := strings.ReplaceAll(row[j], "|", "\\|")
				cells[j] = strings.ReplaceAll(c, "\n", " ")
			}
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	writeRow(rows[0])

	sb.WriteString("|")
	for i := 0; i < maxCols; i++ {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	for _, row := range rows[1:] {
		writeRow(row)
	}

	return sb.String()
}
