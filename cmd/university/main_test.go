package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/university/internal/config"
	"github.com/jeanpaul/university/internal/person"
	"github.com/jeanpaul/university/internal/store"
	"github.com/jeanpaul/university/internal/university"
)

var today = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

func sample() *university.University {
	u := university.New()
	u.Add(person.NewStudent("Smith", "Jane", "Anne", time.Date(2000, time.May, 10, 0, 0, 0, 0, time.UTC), 3, 2, 4.5))
	u.Add(person.NewTeacher("Petrov", "Ivan", "Sergeevich", time.Date(1970, time.March, 15, 0, 0, 0, 0, time.UTC), "Applied Physics", 25, person.Docent))
	u.Add(person.NewTeacher("Orlova", "Maria", "Ilyinichna", time.Date(1965, time.June, 1, 0, 0, 0, 0, time.UTC), "Physics", 35, person.Professor))
	return u
}

// TestFlagDefaults verifies the flags fall back to the default data files
func TestFlagDefaults(t *testing.T) {
	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--no-load", "list", "students"}))

	students, _ := flags.GetString("students")
	assert.Equal(t, "Students.txt", students)
	noLoad, _ := flags.GetBool("no-load")
	assert.True(t, noLoad)
	assert.Equal(t, []string{"list", "students"}, flags.Args())
}

func TestFlagShortHelp(t *testing.T) {
	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"-h"}))
	help, _ := flags.GetBool("help")
	assert.True(t, help)
}

func TestCmdList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cmdList(&out, sample(), "teachers", 100, today))
	assert.Contains(t, out.String(), "Petrov")
	assert.NotContains(t, out.String(), "Smith")

	out.Reset()
	require.NoError(t, cmdList(&out, sample(), "all", 100, today))
	assert.Contains(t, out.String(), "Smith")
	assert.Contains(t, out.String(), "Orlova")

	assert.Error(t, cmdList(&out, sample(), "deans", 100, today))
}

func TestCmdFind(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 1, cmdFind(&out, sample(), "smith", today))
	assert.Contains(t, out.String(), "Smith Jane Anne; 10-05-2000; 3; 2; 4.5; 26")

	out.Reset()
	assert.Zero(t, cmdFind(&out, sample(), "Nobody", today))
	assert.Contains(t, out.String(), "No person found")
}

func TestCmdDepartment(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 2, cmdDepartment(&out, sample(), "physics", today))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Orlova", "Professor ranks before Docent")
	assert.Contains(t, lines[1], "Petrov")
}

func TestCmdDoctor(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := config.DefaultConfig()
	fs := afero.NewMemMapFs()
	st := store.New(fs, cfg.DataDir, cfg.StudentsFile, cfg.TeachersFile, nil)

	var out bytes.Buffer
	assert.True(t, cmdDoctor(&out, cfg, st, today), "missing files are fine")
	assert.Contains(t, out.String(), "not found")
	assert.Contains(t, out.String(), "Using defaults")

	require.NoError(t, afero.WriteFile(fs, st.StudentsPath(), []byte(
		"Smith;Jane;Anne;2000-05-10;3;2;4.5\nbroken line\n"), 0644))

	out.Reset()
	assert.False(t, cmdDoctor(&out, cfg, st, today))
	assert.Contains(t, out.String(), "1 records")
	assert.Contains(t, out.String(), "1 invalid line(s)")
	assert.Contains(t, out.String(), "Students.txt:2")
}

func TestCmdDoctor_ReportsConfigFileInUse(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.File = "./university.yaml"
	st := store.New(afero.NewMemMapFs(), cfg.DataDir, cfg.StudentsFile, cfg.TeachersFile, nil)

	var out bytes.Buffer
	assert.True(t, cmdDoctor(&out, cfg, st, today))
	assert.Contains(t, out.String(), "✓ ./university.yaml")
	assert.NotContains(t, out.String(), "Using defaults")
}
