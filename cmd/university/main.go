package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/jeanpaul/university/internal/config"
	"github.com/jeanpaul/university/internal/console"
	"github.com/jeanpaul/university/internal/person"
	"github.com/jeanpaul/university/internal/report"
	"github.com/jeanpaul/university/internal/store"
	"github.com/jeanpaul/university/internal/tui"
	"github.com/jeanpaul/university/internal/university"
	"github.com/jeanpaul/university/pkg/version"
)

func newFlagSet() *pflag.FlagSet {
	def := config.DefaultConfig()
	flags := pflag.NewFlagSet("university", pflag.ContinueOnError)
	flags.String("config", "", "Config file (default: search ., $XDG_CONFIG_HOME/university, ~/.config/university)")
	flags.String("data-dir", def.DataDir, "Directory holding the data files")
	flags.String("students", def.StudentsFile, "Students file name")
	flags.String("teachers", def.TeachersFile, "Teachers file name")
	flags.Bool("no-load", false, "Start with an empty directory")
	flags.Bool("version", false, "Print version")
	flags.BoolP("help", "h", false, "Show help")
	flags.Usage = showHelp
	return flags
}

func main() {
	flags := newFlagSet()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fatal("%v", err)
	}

	if help, _ := flags.GetBool("help"); help {
		showHelp()
		os.Exit(0)
	}
	if v, _ := flags.GetBool("version"); v {
		fmt.Printf("university %s (%s)\n", version.Version, version.Commit)
		os.Exit(0)
	}

	args := flags.Args()
	command := ""
	if len(args) > 0 {
		command = args[0]
	}

	// Commands that need no data
	switch command {
	case "help":
		showHelp()
		return
	case "config":
		cmdConfig(args[1:])
		return
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fatal("config error: %s", err)
	}

	if command == "doctor" {
		quiet := store.New(afero.NewOsFs(), cfg.DataDir, cfg.StudentsFile, cfg.TeachersFile, nil)
		if !cmdDoctor(os.Stdout, cfg, quiet, time.Now()) {
			os.Exit(1)
		}
		return
	}

	st := store.NewOS(cfg.DataDir, cfg.StudentsFile, cfg.TeachersFile)
	uni := university.New()
	noLoad, _ := flags.GetBool("no-load")
	if cfg.AutoLoad && !noLoad {
		if _, err := st.Load(uni, time.Now()); err != nil {
			fatal("failed to load data: %s", err)
		}
	}

	switch command {
	case "":
		fmt.Print(tui.RenderBanner())
		session := console.NewSession(uni, st, os.Stdin, os.Stdout)
		if err := session.Run(); err != nil {
			fatal("%s", err)
		}
	case "list":
		target := "all"
		if len(args) > 1 {
			target = args[1]
		}
		if err := cmdList(os.Stdout, uni, target, cfg.ReportWidth, time.Now()); err != nil {
			fatal("%s", err)
		}
	case "find":
		if len(args) < 2 {
			fatal("usage: university find <lastname>")
		}
		cmdFind(os.Stdout, uni, strings.Join(args[1:], " "), time.Now())
	case "department":
		if len(args) < 2 {
			fatal("usage: university department <text>")
		}
		cmdDepartment(os.Stdout, uni, strings.Join(args[1:], " "), time.Now())
	case "export":
		if len(args) < 2 {
			fatal("usage: university export <file.xlsx>")
		}
		if err := report.ExportXLSX(args[1], uni.Students(), uni.Teachers(), time.Now()); err != nil {
			fatal("export failed: %s", err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Exported to " + args[1]))
	case "browse":
		if err := tui.Browse(uni.Persons(), time.Now()); err != nil {
			fatal("%s", err)
		}
	default:
		fatal("unknown command: %s (see 'university help')", command)
	}
}

func cmdList(w io.Writer, uni *university.University, target string, width int, today time.Time) error {
	var md strings.Builder
	switch target {
	case "students":
		md.WriteString(report.Markdown(report.StudentRows(uni.Students(), today)))
	case "teachers":
		md.WriteString(report.Markdown(report.TeacherRows(uni.Teachers(), today)))
	case "all":
		md.WriteString("## Students\n\n")
		md.WriteString(report.Markdown(report.StudentRows(uni.Students(), today)))
		md.WriteString("\n## Teachers\n\n")
		md.WriteString(report.Markdown(report.TeacherRows(uni.Teachers(), today)))
	default:
		return fmt.Errorf("unknown list target %q (students, teachers or all)", target)
	}

	out, err := report.Render(md.String(), width)
	if err != nil {
		return err
	}
	fmt.Fprint(w, out)
	return nil
}

func cmdFind(w io.Writer, uni *university.University, lastname string, today time.Time) int {
	found := uni.FindByLastName(lastname)
	if len(found) == 0 {
		fmt.Fprintln(w, tui.WarningStyle.Render("No person found with the specified last name."))
		return 0
	}
	for _, p := range found {
		fmt.Fprintf(w, "%s %s\n", tui.LabelStyle.Render(p.Kind().String()), tui.RecordStyle.Render(person.Format(p, today)))
	}
	return len(found)
}

func cmdDepartment(w io.Writer, uni *university.University, text string, today time.Time) int {
	teachers := uni.FindByDepartment(text)
	if len(teachers) == 0 {
		fmt.Fprintln(w, tui.WarningStyle.Render("No teacher found in a matching department."))
		return 0
	}
	for _, t := range teachers {
		fmt.Fprintln(w, tui.RecordStyle.Render(person.FormatTeacher(t, today)))
	}
	return len(teachers)
}

// cmdDoctor reports on the config and data files. It returns false when a
// data file holds lines that cannot be loaded.
func cmdDoctor(w io.Writer, cfg *config.Config, st *store.FileStore, now time.Time) bool {
	fmt.Fprintln(w, tui.BannerStyle.Render("  Directory Health Check"))
	fmt.Fprintln(w)

	bullet := tui.MenuNumberStyle.Render("●")

	fmt.Fprintf(w, "  %s %s ... ", bullet, tui.LabelStyle.Render("config"))
	if cfg.File != "" {
		fmt.Fprintln(w, tui.SuccessStyle.Render("✓ "+cfg.File))
	} else {
		fmt.Fprintln(w, tui.HelpStyle.Render("- Using defaults (run 'university config init' to create "+config.Path()+")"))
	}

	fmt.Fprintf(w, "  %s %s ... %s\n", bullet, tui.LabelStyle.Render("data dir"), tui.HelpStyle.Render(cfg.DataDir))

	res, err := st.Load(university.New(), now)
	if err != nil {
		fmt.Fprintf(w, "  %s %s\n", bullet, tui.ErrorStyle.Render("✗ "+err.Error()))
		return false
	}

	studentsPath, teachersPath := st.Paths()
	dataFile := func(label, path string, loaded int) {
		fmt.Fprintf(w, "  %s %s ... ", bullet, tui.LabelStyle.Render(label))
		if !st.Exists(path) {
			fmt.Fprintln(w, tui.HelpStyle.Render("- "+path+" not found (starts empty)"))
			return
		}
		fmt.Fprintln(w, tui.SuccessStyle.Render(fmt.Sprintf("✓ %s: %d records", path, loaded)))
	}
	dataFile("students", studentsPath, res.Students)
	dataFile("teachers", teachersPath, res.Teachers)

	fmt.Fprintln(w)
	if len(res.Skipped) == 0 {
		fmt.Fprintln(w, tui.SuccessStyle.Render("  All data files are valid!"))
		return true
	}
	fmt.Fprintln(w, tui.ErrorStyle.Render(fmt.Sprintf("  %d invalid line(s):", len(res.Skipped))))
	for _, le := range res.Skipped {
		fmt.Fprintln(w, tui.HelpStyle.Render("    "+le.Error()))
	}
	return false
}

func cmdConfig(args []string) {
	if len(args) == 0 || args[0] != "init" {
		fatal("usage: university config init [path]")
	}
	path := config.Path()
	if len(args) > 1 {
		path = args[1]
	}
	if err := config.WriteDefault(path); err != nil {
		fatal("%s", err)
	}
	fmt.Println(tui.SuccessStyle.Render("✓ Wrote " + path))
}

func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("error: "+msg))
	os.Exit(1)
}

func showHelp() {
	help := `
` + tui.BannerStyle.Render("University") + ` - student and teacher directory for your terminal

` + tui.LabelStyle.Render("USAGE:") + `
  university [flags]              Start the interactive menu
  university <command> [args]     Run a command

` + tui.LabelStyle.Render("COMMANDS:") + `
  list [students|teachers|all]    Print records as a table
  find <lastname>                 Find students and teachers by last name
  department <text>               Find teachers by department
  export <file.xlsx>              Write a spreadsheet report
  browse                          Browse records interactively
  doctor                          Check the config and data files
  config init [path]              Write the default config file
  help                            Show this help

` + tui.LabelStyle.Render("FLAGS:") + `
  --config <path>                 Use a specific config file
  --data-dir <dir>                Directory holding the data files
  --students <name>               Students file name (default Students.txt)
  --teachers <name>               Teachers file name (default Teachers.txt)
  --no-load                       Start with an empty directory
  --version                       Show version
  --help, -h                      Show this help

` + tui.LabelStyle.Render("ENVIRONMENT:") + `
  UNIVERSITY_DATA_DIR, UNIVERSITY_STUDENTS_FILE, UNIVERSITY_TEACHERS_FILE,
  UNIVERSITY_AUTO_LOAD, UNIVERSITY_REPORT_WIDTH

` + tui.LabelStyle.Render("RECORD LINES:") + `
  Student  Lastname;FirstName;Patronymic;BirthDate;Course;Group;Score
  Teacher  Lastname;FirstName;Patronymic;BirthDate;Department;Experience;Position
`
	fmt.Println(help)
}
