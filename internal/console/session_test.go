package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/university/internal/person"
	"github.com/jeanpaul/university/internal/store"
	"github.com/jeanpaul/university/internal/university"
)

var now = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

type harness struct {
	uni *university.University
	fs  afero.Fs
	st  *store.FileStore
}

func newHarness() *harness {
	fs := afero.NewMemMapFs()
	return &harness{
		uni: university.New(),
		fs:  fs,
		st:  store.New(fs, "data", "Students.txt", "Teachers.txt", nil),
	}
}

func (h *harness) run(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(h.uni, h.st, strings.NewReader(script), &out).WithClock(func() time.Time { return now })
	require.NoError(t, s.Run())
	return out.String()
}

func birth(year int) time.Time {
	return time.Date(year, time.January, 2, 0, 0, 0, 0, time.UTC)
}

func TestSession_AddAndPrintStudent(t *testing.T) {
	h := newHarness()

	out := h.run(t, "1\nSmith;Jane;Anne;2000-05-10;3;2;4.5\n7\n11\n")

	assert.Contains(t, out, "Student added.")
	assert.Contains(t, out, "Smith Jane Anne; 10-05-2000; 3; 2; 4.5; 26")
	assert.Contains(t, out, "Goodbye.")
	assert.Equal(t, 1, h.uni.Len())
}

func TestSession_AddTeacherRejectsBadInput(t *testing.T) {
	h := newHarness()

	out := h.run(t, "2\nPetrov;Ivan;Sergeevich;1970-03-15;Physics;25;Dean\n2\nfoo\n11\n")

	assert.Equal(t, 2, strings.Count(out, "Error:"))
	assert.Contains(t, out, "Professor")
	assert.Zero(t, h.uni.Len())
}

func TestSession_FutureBirthDate(t *testing.T) {
	h := newHarness()

	out := h.run(t, "1\nYoung;Tom;Lee;2030-01-01;1;1;3\n11\n")

	assert.Contains(t, out, person.ErrFutureBirthDate.Error())
	assert.Zero(t, h.uni.Len())
}

func TestSession_NonNumericChoiceReprompts(t *testing.T) {
	h := newHarness()

	out := h.run(t, "abc\n11\n")

	assert.Contains(t, out, ErrInput.Error())
	assert.Equal(t, 2, strings.Count(out, "University directory"), "menu shown again after bad input")
}

func TestSession_WrongChoice(t *testing.T) {
	h := newHarness()

	out := h.run(t, "0\n42\n11\n")

	assert.Equal(t, 2, strings.Count(out, "Wrong choice."))
}

func TestSession_EndOfInput(t *testing.T) {
	h := newHarness()

	// Input ends in the middle of an add: nothing is added and Run returns cleanly.
	out := h.run(t, "1\n")

	assert.NotContains(t, out, "Goodbye.")
	assert.Zero(t, h.uni.Len())
}

func TestSession_FindByLastName(t *testing.T) {
	h := newHarness()
	h.uni.Add(person.NewStudent("Ivanov", "Anna", "Petrovna", birth(2001), 2, 1, 4.1))
	h.uni.Add(person.NewTeacher("Sidorov", "Oleg", "Ivanovich", birth(1960), "Math", 30, person.Professor))

	out := h.run(t, "3\nIVANOV\n3\nNobody\n11\n")

	assert.Contains(t, out, "Ivanov Anna Petrovna")
	assert.NotContains(t, out, "Sidorov Oleg Ivanovich;")
	assert.Contains(t, out, "No person found with the specified last name.")
}

func TestSession_FindByScore(t *testing.T) {
	h := newHarness()
	h.uni.Add(person.NewStudent("Low", "A", "A", birth(2001), 1, 1, 3.0))
	h.uni.Add(person.NewStudent("High", "B", "B", birth(2001), 1, 1, 4.8))

	out := h.run(t, "4\nabc\n4\n4.0\n4\n5\n11\n")

	assert.Contains(t, out, "Invalid format. Please enter a valid number.")
	assert.Contains(t, out, "High B B")
	assert.NotContains(t, out, "Low A A")
	assert.Contains(t, out, "No students found with a score above the given value.")
}

func TestSession_RemoveSingleMatch(t *testing.T) {
	h := newHarness()
	h.uni.Add(person.NewTeacher("Petrov", "Ivan", "Sergeevich", birth(1970), "Physics", 25, person.Docent))
	h.uni.Add(person.NewStudent("Petrov", "Pavel", "Ivanovich", birth(2002), 1, 1, 4.0))

	out := h.run(t, "6\npetrov\n11\n")

	assert.Contains(t, out, "Deleted.")
	assert.Empty(t, h.uni.Teachers())
	assert.Len(t, h.uni.Students(), 1, "only teachers are considered")
}

func TestSession_RemoveDisambiguatesByFirstName(t *testing.T) {
	h := newHarness()
	h.uni.Add(person.NewStudent("Ivanov", "Anna", "Petrovna", birth(2001), 2, 1, 4.1))
	h.uni.Add(person.NewStudent("Ivanov", "Boris", "Petrovich", birth(2000), 3, 1, 3.9))

	out := h.run(t, "5\nIvanov\nboris\n11\n")

	assert.Contains(t, out, "Multiple students found with the same last name:")
	assert.Contains(t, out, "Deleted.")
	students := h.uni.Students()
	require.Len(t, students, 1)
	assert.Equal(t, "Anna", students[0].Name)
}

func TestSession_RemoveNoMatch(t *testing.T) {
	h := newHarness()
	h.uni.Add(person.NewStudent("Ivanov", "Anna", "Petrovna", birth(2001), 2, 1, 4.1))
	h.uni.Add(person.NewStudent("Ivanov", "Boris", "Petrovich", birth(2000), 3, 1, 3.9))

	out := h.run(t, "5\nIvanov\nGleb\n5\nSmirnov\n6\nIvanov\n11\n")

	assert.Contains(t, out, "No student found with the specified name and last name.")
	assert.Contains(t, out, "No student found with the specified last name.")
	assert.Contains(t, out, "No teacher found with the specified last name.")
	assert.Equal(t, 2, h.uni.Len())
}

func TestSession_PrintEmpty(t *testing.T) {
	h := newHarness()

	out := h.run(t, "7\n8\n11\n")

	assert.Contains(t, out, "There are no students.")
	assert.Contains(t, out, "There are no teachers.")
}

func TestSession_SaveStudentsAndTeachers(t *testing.T) {
	h := newHarness()
	h.uni.Add(person.NewStudent("Smith", "Jane", "Anne", time.Date(2000, time.May, 10, 0, 0, 0, 0, time.UTC), 3, 2, 4.5))
	h.uni.Add(person.NewTeacher("Petrov", "Ivan", "Sergeevich", time.Date(1970, time.March, 15, 0, 0, 0, 0, time.UTC), "Physics", 25, person.Docent))

	out := h.run(t, "9\n10\n11\n")

	assert.Contains(t, out, "Saved 1 students to "+h.st.StudentsPath())
	assert.Contains(t, out, "Saved 1 teachers to "+h.st.TeachersPath())

	data, err := afero.ReadFile(h.fs, h.st.StudentsPath())
	require.NoError(t, err)
	assert.Equal(t, "Smith Jane Anne; 10-05-2000; 3; 2; 4.5; 26\n", string(data))

	data, err = afero.ReadFile(h.fs, h.st.TeachersPath())
	require.NoError(t, err)
	assert.Equal(t, "Petrov Ivan Sergeevich; 15-03-1970; Physics; 25; Docent; 56\n", string(data))
}

func TestSession_SaveReportsStoreErrors(t *testing.T) {
	h := newHarness()
	h.st = store.New(afero.NewReadOnlyFs(afero.NewMemMapFs()), "data", "Students.txt", "Teachers.txt", nil)

	out := h.run(t, "9\n11\n")

	assert.Contains(t, out, "Error:")
	assert.NotContains(t, out, "Saved")
}

func TestSession_OversizedLineIsNotFatal(t *testing.T) {
	h := newHarness()
	long := strings.Repeat("7", 200*1024)

	out := h.run(t, long+"\n1\n"+strings.Repeat("x", 100*1024)+"\n11\n")

	assert.Contains(t, out, ErrInput.Error())
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "Goodbye.")
	assert.Zero(t, h.uni.Len())
}

func TestSession_LastLineWithoutNewline(t *testing.T) {
	h := newHarness()

	out := h.run(t, "1\nSmith;Jane;Anne;2000-05-10;3;2;4.5\n11")

	assert.Contains(t, out, "Student added.")
	assert.Contains(t, out, "Goodbye.")
}

func TestSession_RejectsSpacedNames(t *testing.T) {
	h := newHarness()

	out := h.run(t, "1\nvan Dyke;Jan;Pieter;2000-01-01;1;1;4\n1\nIvanov;Petr;;2000-01-01;1;1;4\n11\n")

	assert.Equal(t, 2, strings.Count(out, "Error:"))
	assert.Zero(t, h.uni.Len())
}
