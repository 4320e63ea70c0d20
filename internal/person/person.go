// Package person defines the records kept by the university directory
// (students and teachers) and the semicolon-delimited line format they are
// read from and written to.
package person

import (
	"time"

	"github.com/google/uuid"
)

// Kind tells the two record variants apart.
type Kind int

const (
	KindStudent Kind = iota
	KindTeacher
)

func (k Kind) String() string {
	switch k {
	case KindStudent:
		return "student"
	case KindTeacher:
		return "teacher"
	default:
		return "unknown"
	}
}

// Person is the capability set shared by Student and Teacher.
// *Student and *Teacher are the only implementations.
type Person interface {
	GetProfile() Profile
	Age(today time.Time) int
	Kind() Kind
	String() string
}

// Profile holds the identity fields every record carries.
type Profile struct {
	ID         uuid.UUID
	Lastname   string
	Name       string
	Patronymic string
	BirthDate  time.Time
}

func (p Profile) GetProfile() Profile { return p }

// FullName returns "Lastname Name Patronymic".
func (p Profile) FullName() string {
	return p.Lastname + " " + p.Name + " " + p.Patronymic
}

// Age returns the number of full years between BirthDate and today.
func (p Profile) Age(today time.Time) int {
	return CalculateAge(p.BirthDate, today)
}

// CalculateAge counts full years between birth and today, subtracting one
// when the birthday has not happened yet this year.
func CalculateAge(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

func newProfile(lastname, name, patronymic string, birth time.Time) Profile {
	return Profile{
		ID:         uuid.New(),
		Lastname:   lastname,
		Name:       name,
		Patronymic: patronymic,
		BirthDate:  birth,
	}
}
