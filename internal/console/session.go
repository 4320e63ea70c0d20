// Package console runs the numbered menu that drives the directory from a
// terminal or any line-oriented input.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jeanpaul/university/internal/person"
	"github.com/jeanpaul/university/internal/tui"
	"github.com/jeanpaul/university/internal/university"
)

// ErrInput marks a menu choice or threshold that is not a number.
var ErrInput = errors.New("invalid input")

// Saver persists the students and teachers views.
type Saver interface {
	SaveStudents(students []*person.Student, today time.Time) error
	SaveTeachers(teachers []*person.Teacher, today time.Time) error
	StudentsPath() string
	TeachersPath() string
}

// Menu choices.
const (
	ChoiceAddStudent = iota + 1
	ChoiceAddTeacher
	ChoiceFindByLastName
	ChoiceFindByScore
	ChoiceRemoveStudent
	ChoiceRemoveTeacher
	ChoicePrintStudents
	ChoicePrintTeachers
	ChoiceSaveStudents
	ChoiceSaveTeachers
	ChoiceExit
)

var menu = []string{
	ChoiceAddStudent - 1:     "Add a student",
	ChoiceAddTeacher - 1:     "Add a teacher",
	ChoiceFindByLastName - 1: "Find by last name",
	ChoiceFindByScore - 1:    "Show students with a score above a value",
	ChoiceRemoveStudent - 1:  "Remove a student",
	ChoiceRemoveTeacher - 1:  "Remove a teacher",
	ChoicePrintStudents - 1:  "Print all students",
	ChoicePrintTeachers - 1:  "Print all teachers",
	ChoiceSaveStudents - 1:   "Save students to file",
	ChoiceSaveTeachers - 1:   "Save teachers to file",
	ChoiceExit - 1:           "Exit",
}

// Session is one interactive run over a directory.
type Session struct {
	uni   *university.University
	store Saver
	in    *bufio.Reader
	out   io.Writer
	now   func() time.Time
}

// NewSession wires a session to its directory, store and streams.
func NewSession(uni *university.University, store Saver, in io.Reader, out io.Writer) *Session {
	return &Session{
		uni:   uni,
		store: store,
		in:    bufio.NewReader(in),
		out:   out,
		now:   time.Now,
	}
}

// WithClock replaces the wall clock used for parsing and ages.
func (s *Session) WithClock(now func() time.Time) *Session {
	s.now = now
	return s
}

// Run shows the menu until the user exits or the input ends.
func (s *Session) Run() error {
	for {
		s.printMenu()

		line, err := s.readLine()
		if err != nil {
			return endOfInput(err)
		}

		choice, err := parseChoice(line)
		if err != nil {
			s.failf("%v", err)
			continue
		}
		if choice == ChoiceExit {
			s.println(tui.HelpStyle.Render("Goodbye."))
			return nil
		}

		if err := s.dispatch(choice); err != nil {
			return endOfInput(err)
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Session) dispatch(choice int) error {
	switch choice {
	case ChoiceAddStudent:
		return s.addStudent()
	case ChoiceAddTeacher:
		return s.addTeacher()
	case ChoiceFindByLastName:
		return s.findByLastName()
	case ChoiceFindByScore:
		return s.findByScore()
	case ChoiceRemoveStudent:
		return s.remove(person.KindStudent)
	case ChoiceRemoveTeacher:
		return s.remove(person.KindTeacher)
	case ChoicePrintStudents:
		s.printStudents()
	case ChoicePrintTeachers:
		s.printTeachers()
	case ChoiceSaveStudents:
		s.saveStudents()
	case ChoiceSaveTeachers:
		s.saveTeachers()
	default:
		s.failf("Wrong choice.")
	}
	return nil
}

func parseChoice(line string) (int, error) {
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: menu choice %q is not a number", ErrInput, line)
	}
	return n, nil
}

func (s *Session) printMenu() {
	s.println("")
	s.println(tui.MenuTitleStyle.Render("University directory"))
	for i, item := range menu {
		s.println(fmt.Sprintf("%s %s", tui.MenuNumberStyle.Render(fmt.Sprintf("%2d.", i+1)), tui.MenuItemStyle.Render(item)))
	}
	s.print(tui.PromptStyle.Render("> "))
}

func (s *Session) addStudent() error {
	line, err := s.prompt("Enter the student's details (Last name; First name; Patronymic; Date of birth; Course; Group; Score):")
	if err != nil {
		return err
	}
	st, err := person.ParseStudentAt(line, s.now())
	if err != nil {
		s.failf("Error: %v", err)
		return nil
	}
	s.uni.Add(st)
	s.succeed("Student added.")
	return nil
}

func (s *Session) addTeacher() error {
	names := make([]string, 0, len(person.Positions()))
	for _, p := range person.Positions() {
		names = append(names, p.String())
	}
	line, err := s.prompt(fmt.Sprintf("Enter the teacher's details (Last name; First name; Patronymic; Date of birth; Department; Experience; Position (%s)):", strings.Join(names, ", ")))
	if err != nil {
		return err
	}
	t, err := person.ParseTeacherAt(line, s.now())
	if err != nil {
		s.failf("Error: %v", err)
		return nil
	}
	s.uni.Add(t)
	s.succeed("Teacher added.")
	return nil
}

func (s *Session) findByLastName() error {
	lastname, err := s.prompt("Enter the last name to search for:")
	if err != nil {
		return err
	}
	found := s.uni.FindByLastName(lastname)
	if len(found) == 0 {
		s.warn("No person found with the specified last name.")
		return nil
	}
	for _, p := range found {
		s.printRecord(p)
	}
	return nil
}

func (s *Session) findByScore() error {
	line, err := s.prompt("Enter the minimum score:")
	if err != nil {
		return err
	}
	threshold, err := strconv.ParseFloat(line, 64)
	if err != nil {
		s.failf("Invalid format. Please enter a valid number.")
		return nil
	}
	students := s.uni.FindByAvrPoint(threshold)
	if len(students) == 0 {
		s.warn("No students found with a score above the given value.")
		return nil
	}
	for _, st := range students {
		s.printRecord(st)
	}
	return nil
}

// remove deletes one record of the given kind by last name. When several
// share the last name the user picks one by first name.
func (s *Session) remove(kind person.Kind) error {
	lastname, err := s.prompt(fmt.Sprintf("Enter the last name of the %s to remove:", kind))
	if err != nil {
		return err
	}

	var matches []person.Person
	for _, p := range s.uni.FindByLastName(lastname) {
		if p.Kind() == kind {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		s.warn(fmt.Sprintf("No %s found with the specified last name.", kind))
		return nil
	case 1:
		s.uni.Remove(matches[0])
		s.succeed("Deleted.")
		return nil
	}

	s.warn(fmt.Sprintf("Multiple %ss found with the same last name:", kind))
	for _, p := range matches {
		s.printRecord(p)
	}
	name, err := s.prompt("Please enter the first name to delete:")
	if err != nil {
		return err
	}
	for _, p := range matches {
		if strings.EqualFold(p.GetProfile().Name, name) {
			s.uni.Remove(p)
			s.succeed("Deleted.")
			return nil
		}
	}
	s.warn(fmt.Sprintf("No %s found with the specified name and last name.", kind))
	return nil
}

func (s *Session) printStudents() {
	students := s.uni.Students()
	if len(students) == 0 {
		s.warn("There are no students.")
		return
	}
	for _, st := range students {
		s.printRecord(st)
	}
}

func (s *Session) printTeachers() {
	teachers := s.uni.Teachers()
	if len(teachers) == 0 {
		s.warn("There are no teachers.")
		return
	}
	for _, t := range teachers {
		s.printRecord(t)
	}
}

func (s *Session) saveStudents() {
	students := s.uni.Students()
	if err := s.store.SaveStudents(students, s.now()); err != nil {
		s.failf("Error: %v", err)
		return
	}
	s.succeed(fmt.Sprintf("Saved %d students to %s.", len(students), s.store.StudentsPath()))
}

func (s *Session) saveTeachers() {
	teachers := s.uni.Teachers()
	if err := s.store.SaveTeachers(teachers, s.now()); err != nil {
		s.failf("Error: %v", err)
		return
	}
	s.succeed(fmt.Sprintf("Saved %d teachers to %s.", len(teachers), s.store.TeachersPath()))
}

func (s *Session) prompt(text string) (string, error) {
	s.println(tui.PromptStyle.Render(text))
	return s.readLine()
}

// readLine returns the next trimmed line of any length, or io.EOF once input
// is exhausted. A final line without a newline is still returned.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) printRecord(p person.Person) {
	s.println(tui.RecordStyle.Render(person.Format(p, s.now())))
}

func (s *Session) succeed(msg string) { s.println(tui.SuccessStyle.Render(msg)) }
func (s *Session) warn(msg string) { s.println(tui.WarningStyle.Render(msg)) }

func (s *Session) failf(format string, args ...any) {
	s.println(tui.ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

func (s *Session) print(text string) { fmt.Fprint(s.out, text) }
func (s *Session) println(text string) { fmt.Fprintln(s.out, text) }
