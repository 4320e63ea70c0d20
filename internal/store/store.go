// Package store reads and writes the Students.txt and Teachers.txt files
// the directory is loaded from on startup and saved to on demand.
package store

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/jeanpaul/university/internal/person"
	"github.com/jeanpaul/university/internal/university"
)

// LineError describes a line that could not be loaded.
type LineError struct {
	File string
	Line int
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e LineError) Unwrap() error { return e.Err }

// LoadResult summarizes a Load call.
type LoadResult struct {
	Students int
	Teachers int
	Skipped  []LineError
}

// FileStore persists students and teachers as one formatted line per record.
type FileStore struct {
	fs           afero.Fs
	dir          string
	studentsFile string
	teachersFile string
	logger       *log.Logger
}

// New creates a store rooted at dir. A nil logger discards diagnostics.
func New(fs afero.Fs, dir, studentsFile, teachersFile string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &FileStore{
		fs:           fs,
		dir:          dir,
		studentsFile: studentsFile,
		teachersFile: teachersFile,
		logger:       logger,
	}
}

// NewOS creates a store on the real filesystem.
func NewOS(dir, studentsFile, teachersFile string) *FileStore {
	return New(afero.NewOsFs(), dir, studentsFile, teachersFile, log.New(os.Stderr, "store: ", log.LstdFlags))
}

// StudentsPath returns the resolved path of the students file.
func (s *FileStore) StudentsPath() string {
	return filepath.Join(s.dir, s.studentsFile)
}

// TeachersPath returns the resolved path of the teachers file.
func (s *FileStore) TeachersPath() string {
	return filepath.Join(s.dir, s.teachersFile)
}

// Paths returns the students and teachers file paths.
func (s *FileStore) Paths() (students, teachers string) {
	return s.StudentsPath(), s.TeachersPath()
}

// Exists reports whether path is present on the store's filesystem.
func (s *FileStore) Exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)
	return err == nil && ok
}

// Load adds every valid record found in the data files to u. Missing files
// are skipped; bad lines are logged and reported but do not stop the load.
func (s *FileStore) Load(u *university.University, now time.Time) (LoadResult, error) {
	var res LoadResult

	students, skipped, err := s.readLines(s.StudentsPath(), func(line string) (person.Person, error) {
		if person.FieldCount(line) == 7 {
			return person.ParseStudentAt(line, now)
		}
		return person.ParseFormattedStudent(line, now)
	})
	if err != nil {
		return res, err
	}
	res.Skipped = append(res.Skipped, skipped...)
	for _, p := range students {
		u.Add(p)
	}
	res.Students = len(students)

	teachers, skipped, err := s.readLines(s.TeachersPath(), func(line string) (person.Person, error) {
		if person.FieldCount(line) == 7 {
			return person.ParseTeacherAt(line, now)
		}
		return person.ParseFormattedTeacher(line, now)
	})
	if err != nil {
		return res, err
	}
	res.Skipped = append(res.Skipped, skipped...)
	for _, p := range teachers {
		u.Add(p)
	}
	res.Teachers = len(teachers)

	return res, nil
}

func (s *FileStore) readLines(path string, parse func(string) (person.Person, error)) ([]person.Person, []LineError, error) {
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !exists {
		s.logger.Printf("%s not found, starting without it", path)
		return nil, nil, nil
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var (
		records []person.Person
		skipped []LineError
	)
	// Lines have no length limit.
	for i, raw := range strings.Split(string(data), "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		p, err := parse(line)
		if err != nil {
			le := LineError{File: path, Line: lineNo, Err: err}
			s.logger.Printf("skipping %v", le)
			skipped = append(skipped, le)
			continue
		}
		records = append(records, p)
	}
	return records, skipped, nil
}

// SaveStudents overwrites the students file with one line per student.
func (s *FileStore) SaveStudents(students []*person.Student, today time.Time) error {
	lines := make([]string, len(students))
	for i, st := range students {
		lines[i] = person.FormatStudent(st, today)
	}
	return s.writeLines(s.StudentsPath(), lines)
}

// SaveTeachers overwrites the teachers file with one line per teacher.
func (s *FileStore) SaveTeachers(teachers []*person.Teacher, today time.Time) error {
	lines := make([]string, len(teachers))
	for i, t := range teachers {
		lines[i] = person.FormatTeacher(t, today)
	}
	return s.writeLines(s.TeachersPath(), lines)
}

func (s *FileStore) writeLines(path string, lines []string) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := afero.WriteFile(s.fs, path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.logger.Printf("wrote %d records to %s", len(lines), path)
	return nil
}
