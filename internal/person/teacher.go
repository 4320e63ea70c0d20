package person

import (
	"fmt"
	"time"
)

// Position is a teacher's rank. The declaration order is the sort order
// used when listing teachers by position.
type Position int

const (
	Postgraduate Position = iota
	Professor
	Docent
	SeniorLecturer
	JuniorResearcher
	Researcher
)

var positionNames = [...]string{
	Postgraduate:     "Postgraduate",
	Professor:        "Professor",
	Docent:           "Docent",
	SeniorLecturer:   "Senior_Lecturer",
	JuniorResearcher: "Junior_Researcher",
	Researcher:       "Researcher",
}

func (p Position) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// Positions lists every rank in ascending order.
func Positions() []Position {
	out := make([]Position, len(positionNames))
	for i := range positionNames {
		out[i] = Position(i)
	}
	return out
}

// ParsePosition matches name against the rank names exactly (case-sensitive).
func ParsePosition(name string) (Position, error) {
	for i, n := range positionNames {
		if n == name {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown position %q", ErrFormat, name)
}

// Teacher is a member of a department's staff.
type Teacher struct {
	Profile
	Department string
	Experience int // years
	Position   Position
}

// NewTeacher builds a Teacher with a fresh identifier.
func NewTeacher(lastname, name, patronymic string, birth time.Time, department string, experience int, position Position) *Teacher {
	return &Teacher{
		Profile:    newProfile(lastname, name, patronymic, birth),
		Department: department,
		Experience: experience,
		Position:   position,
	}
}

func (t *Teacher) Kind() Kind { return KindTeacher }

func (t *Teacher) String() string {
	return FormatTeacher(t, time.Now())
}
