package person

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

const (
	fieldSeparator = ";"

	// recordFields is the field count of an input record line.
	recordFields = 7
	// formattedFields is the field count of a formatted line: the three
	// names share the first field and the age is appended.
	formattedFields = 6

	// DateLayout is the birth-date layout used when formatting (dd-MM-yyyy).
	DateLayout = "02-01-2006"
)

// birthDateLayouts are tried in order before falling back to dateparse.
var birthDateLayouts = []string{
	"2006-01-02",
	DateLayout,
	"02.01.2006",
	"2006/01/02",
}

func splitFields(line string) []string {
	parts := strings.Split(line, fieldSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// FieldCount reports how many delimited fields a line has.
func FieldCount(line string) int {
	return len(strings.Split(line, fieldSeparator))
}

func parseBirthDate(s string, now time.Time) (time.Time, error) {
	loc := now.Location()

	var (
		parsed time.Time
		err    error
	)
	for _, layout := range birthDateLayouts {
		parsed, err = time.ParseInLocation(layout, s, loc)
		if err == nil {
			break
		}
	}
	if err != nil {
		parsed, err = dateparse.ParseIn(s, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: birth date %q is not a date", ErrFormat, s)
		}
	}

	birth := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, loc)
	if birth.After(now) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrFutureBirthDate, birth.Format(DateLayout))
	}
	return birth, nil
}

// checkNames requires each name to be a single non-empty word, since the
// formatted line joins the three names with spaces.
func checkNames(lastname, name, patronymic string) error {
	for _, n := range []struct{ field, value string }{
		{"last name", lastname},
		{"first name", name},
		{"patronymic", patronymic},
	} {
		if n.value == "" {
			return fmt.Errorf("%w: %s is empty", ErrFormat, n.field)
		}
		if strings.ContainsFunc(n.value, unicode.IsSpace) {
			return fmt.Errorf("%w: %s %q contains whitespace", ErrFormat, n.field, n.value)
		}
	}
	return nil
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrFormat, field, value)
	}
	return n, nil
}

func parseScore(value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: score %q is not a number", ErrFormat, value)
	}
	return f, nil
}

func expectFields(parts []string, want int) error {
	if len(parts) != want {
		return fmt.Errorf("%w: expected %d fields separated by %q, got %d", ErrFormat, want, fieldSeparator, len(parts))
	}
	return nil
}

// ParseStudent parses "Lastname;FirstName;Patronymic;BirthDate;Course;Group;Score".
func ParseStudent(line string) (*Student, error) {
	return ParseStudentAt(line, time.Now())
}

// ParseStudentAt is ParseStudent with an explicit current moment.
func ParseStudentAt(line string, now time.Time) (*Student, error) {
	parts := splitFields(line)
	if err := expectFields(parts, recordFields); err != nil {
		return nil, err
	}
	if err := checkNames(parts[0], parts[1], parts[2]); err != nil {
		return nil, err
	}
	birth, err := parseBirthDate(parts[3], now)
	if err != nil {
		return nil, err
	}
	return studentFromFields(parts[0], parts[1], parts[2], birth, parts[4:])
}

// ParseTeacher parses "Lastname;FirstName;Patronymic;BirthDate;Department;Experience;Position".
func ParseTeacher(line string) (*Teacher, error) {
	return ParseTeacherAt(line, time.Now())
}

// ParseTeacherAt is ParseTeacher with an explicit current moment.
func ParseTeacherAt(line string, now time.Time) (*Teacher, error) {
	parts := splitFields(line)
	if err := expectFields(parts, recordFields); err != nil {
		return nil, err
	}
	if err := checkNames(parts[0], parts[1], parts[2]); err != nil {
		return nil, err
	}
	birth, err := parseBirthDate(parts[3], now)
	if err != nil {
		return nil, err
	}
	return teacherFromFields(parts[0], parts[1], parts[2], birth, parts[4:])
}

func studentFromFields(lastname, name, patronymic string, birth time.Time, rest []string) (*Student, error) {
	course, err := parseInt("course", rest[0])
	if err != nil {
		return nil, err
	}
	group, err := parseInt("group", rest[1])
	if err != nil {
		return nil, err
	}
	score, err := parseScore(rest[2])
	if err != nil {
		return nil, err
	}
	return NewStudent(lastname, name, patronymic, birth, course, group, score), nil
}

func teacherFromFields(lastname, name, patronymic string, birth time.Time, rest []string) (*Teacher, error) {
	experience, err := parseInt("experience", rest[1])
	if err != nil {
		return nil, err
	}
	position, err := ParsePosition(rest[2])
	if err != nil {
		return nil, err
	}
	return NewTeacher(lastname, name, patronymic, birth, rest[0], experience, position), nil
}

// FormatStudent renders "Lastname Name Patronymic; dd-MM-yyyy; Course; Group; Score; Age".
func FormatStudent(s *Student, today time.Time) string {
	return formatLine(s.Profile, today,
		strconv.Itoa(s.Course),
		strconv.Itoa(s.Group),
		strconv.FormatFloat(s.Score, 'f', -1, 64),
	)
}

// FormatTeacher renders "Lastname Name Patronymic; dd-MM-yyyy; Department; Experience; Position; Age".
func FormatTeacher(t *Teacher, today time.Time) string {
	return formatLine(t.Profile, today,
		t.Department,
		strconv.Itoa(t.Experience),
		t.Position.String(),
	)
}

// Format renders any record with the age computed against today.
func Format(p Person, today time.Time) string {
	switch v := p.(type) {
	case *Student:
		return FormatStudent(v, today)
	case *Teacher:
		return FormatTeacher(v, today)
	default:
		return p.GetProfile().FullName()
	}
}

func formatLine(p Profile, today time.Time, fields ...string) string {
	out := make([]string, 0, len(fields)+3)
	out = append(out, p.FullName(), p.BirthDate.Format(DateLayout))
	out = append(out, fields...)
	out = append(out, strconv.Itoa(p.Age(today)))
	return strings.Join(out, fieldSeparator+" ")
}

// ParseFormattedStudent reads back a line produced by FormatStudent.
// The trailing age is checked to be a number and otherwise ignored.
func ParseFormattedStudent(line string, now time.Time) (*Student, error) {
	parts, birth, err := parseFormatted(line, now)
	if err != nil {
		return nil, err
	}
	names := strings.Fields(parts[0])
	return studentFromFields(names[0], names[1], names[2], birth, parts[2:5])
}

// ParseFormattedTeacher reads back a line produced by FormatTeacher.
func ParseFormattedTeacher(line string, now time.Time) (*Teacher, error) {
	parts, birth, err := parseFormatted(line, now)
	if err != nil {
		return nil, err
	}
	names := strings.Fields(parts[0])
	return teacherFromFields(names[0], names[1], names[2], birth, parts[2:5])
}

func parseFormatted(line string, now time.Time) ([]string, time.Time, error) {
	parts := splitFields(line)
	if err := expectFields(parts, formattedFields); err != nil {
		return nil, time.Time{}, err
	}
	if n := len(strings.Fields(parts[0])); n != 3 {
		return nil, time.Time{}, fmt.Errorf("%w: expected lastname, name and patronymic, got %d names", ErrFormat, n)
	}
	parsed, err := time.ParseInLocation(DateLayout, parts[1], now.Location())
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: birth date %q is not dd-MM-yyyy", ErrFormat, parts[1])
	}
	if parsed.After(now) {
		return nil, time.Time{}, fmt.Errorf("%w: %s", ErrFutureBirthDate, parts[1])
	}
	if _, err := parseInt("age", parts[5]); err != nil {
		return nil, time.Time{}, err
	}
	return parts, parsed, nil
}
