// Package university keeps the in-memory directory of students and teachers
// and answers the sorted and filtered queries the console asks for.
package university

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/jeanpaul/university/internal/person"
)

// University is an insertion-ordered collection of person records.
// Duplicates are allowed. Queries never reorder the underlying slice.
type University struct {
	persons []person.Person
}

// New creates an empty directory.
func New() *University {
	return &University{}
}

// Add appends p to the directory.
func (u *University) Add(p person.Person) {
	u.persons = append(u.persons, p)
}

// Remove deletes the first record identical to p: the same record, or one
// carrying the same non-nil ID. It reports whether anything was removed.
func (u *University) Remove(p person.Person) bool {
	if p == nil {
		return false
	}
	id := p.GetProfile().ID
	for i, x := range u.persons {
		if x == p || (id != uuid.Nil && x.GetProfile().ID == id) {
			u.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveByID deletes the record with the given identifier.
func (u *University) RemoveByID(id uuid.UUID) bool {
	if id == uuid.Nil {
		return false
	}
	for i, x := range u.persons {
		if x.GetProfile().ID == id {
			u.removeAt(i)
			return true
		}
	}
	return false
}

func (u *University) removeAt(i int) {
	copy(u.persons[i:], u.persons[i+1:])
	u.persons[len(u.persons)-1] = nil
	u.persons = u.persons[:len(u.persons)-1]
}

// Len returns the number of records.
func (u *University) Len() int {
	return len(u.persons)
}

// Persons returns every record ordered by last name.
func (u *University) Persons() []person.Person {
	out := make([]person.Person, len(u.persons))
	copy(out, u.persons)
	sortByLastname(out, func(p person.Person) string { return p.GetProfile().Lastname })
	return out
}

// Students returns every student ordered by last name.
func (u *University) Students() []*person.Student {
	out := u.students()
	sortByLastname(out, func(s *person.Student) string { return s.Lastname })
	return out
}

// Teachers returns every teacher ordered by last name.
func (u *University) Teachers() []*person.Teacher {
	out := u.teachers()
	sortByLastname(out, func(t *person.Teacher) string { return t.Lastname })
	return out
}

// FindByLastName returns the records whose last name equals lastname,
// ignoring case, in insertion order.
func (u *University) FindByLastName(lastname string) []person.Person {
	out := []person.Person{}
	for _, p := range u.persons {
		if strings.EqualFold(p.GetProfile().Lastname, lastname) {
			out = append(out, p)
		}
	}
	return out
}

// FindByAvrPoint returns students scoring strictly above threshold, best
// score first. Equal scores keep insertion order.
func (u *University) FindByAvrPoint(threshold float64) []*person.Student {
	out := []*person.Student{}
	for _, s := range u.students() {
		if s.Score > threshold {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// FindByDepartment returns teachers whose department contains text, ignoring
// case, ordered by position rank.
func (u *University) FindByDepartment(text string) []*person.Teacher {
	needle := strings.ToLower(text)
	out := []*person.Teacher{}
	for _, t := range u.teachers() {
		if strings.Contains(strings.ToLower(t.Department), needle) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

func (u *University) students() []*person.Student {
	out := []*person.Student{}
	for _, p := range u.persons {
		if s, ok := p.(*person.Student); ok {
			out = append(out, s)
		}
	}
	return out
}

func (u *University) teachers() []*person.Teacher {
	out := []*person.Teacher{}
	for _, p := range u.persons {
		if t, ok := p.(*person.Teacher); ok {
			out = append(out, t)
		}
	}
	return out
}

// sortByLastname orders by ordinal (byte-wise) comparison, keeping
// insertion order among equal names.
func sortByLastname[T any](items []T, lastname func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return lastname(items[i]) < lastname(items[j])
	})
}
