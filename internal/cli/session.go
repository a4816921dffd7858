package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"organizer/internal/orchestrator"
)

// Session is the interactive terminal loop. Reader and writer are
// injected so the loop can be driven from tests.
type Session struct {
	org     *orchestrator.Organizer
	scanner *bufio.Scanner
	writer  io.Writer
}

// NewSession creates an interactive session bound to an Organizer.
func NewSession(org *orchestrator.Organizer, reader io.Reader, writer io.Writer) *Session {
	return &Session{
		org:     org,
		scanner: bufio.NewScanner(reader),
		writer:  writer,
	}
}

// Run reads commands until exit or EOF.
func (s *Session) Run() {
	s.banner()

	for {
		fmt.Fprint(s.writer, "organizer> ")
		if !s.scanner.Scan() {
			return
		}
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, " ", 2)
		cmd := strings.ToLower(parts[0])
		arg := ""
		if len(parts) > 1 {
			arg = strings.TrimSpace(parts[1])
		}

		switch cmd {
		case "exit", "quit":
			return
		case "help":
			s.help()
		case "organize":
			s.handleOrganize(arg)
		case "undo":
			s.handleUndo()
		case "stats":
			fmt.Fprint(s.writer, s.org.SummaryText())
		case "categories":
			s.handleCategories(arg)
		case "exclude":
			s.handleExclude(arg)
		case "save":
			if err := s.org.SaveConfig(); err != nil {
				fmt.Fprintf(s.writer, "Error: %v\n", err)
			} else {
				fmt.Fprintln(s.writer, "Settings saved.")
			}
		default:
			fmt.Fprintf(s.writer, "Unknown command: %s\nType 'help' to see available commands\n", cmd)
		}
	}
}

func (s *Session) banner() {
	fmt.Fprintln(s.writer, strings.Repeat("=", 60))
	fmt.Fprintln(s.writer, "                     FILE ORGANIZER")
	fmt.Fprintln(s.writer, strings.Repeat("=", 60))
	fmt.Fprintln(s.writer, "Type 'help' to see available commands")
}

func (s *Session) help() {
	fmt.Fprint(s.writer, `
Available commands:
  organize <directory>    Organize files in the given directory
  undo                    Undo the last operation
  stats                   Show last run statistics
  categories              List configured categories
  categories add <name> <ext>...   Add a category
  categories edit <n> <ext>...     Replace a category's extensions
  categories remove <n>   Remove a category by number
  exclude add <pattern>   Add an exclude pattern
  exclude remove <n>      Remove an exclude pattern by number
  exclude list            List exclude patterns
  save                    Save settings
  help                    Show this help message
  exit                    Exit

`)
}

func (s *Session) handleOrganize(directory string) {
	if directory == "" {
		fmt.Fprintln(s.writer, "Usage: organize <directory>")
		return
	}

	byDate := s.promptYesNo("Organize by date?", false)
	copyMode := s.promptYesNo("Copy files instead of moving?", false)

	if !copyMode {
		if !s.promptYesNo("This will move files in the selected directory. Continue?", false) {
			return
		}
	}

	start := time.Now()
	if _, err := s.org.Run(directory, byDate, copyMode); err != nil {
		fmt.Fprintf(s.writer, "Error: %v\n", err)
		return
	}

	fmt.Fprint(s.writer, s.org.SummaryText())
	fmt.Fprintf(s.writer, "Operation completed in %.2f seconds\n", time.Since(start).Seconds())
}

func (s *Session) handleUndo() {
	if s.org.UndoLast() {
		fmt.Fprintln(s.writer, "Last operation has been undone.")
	} else {
		fmt.Fprintln(s.writer, "No operations to undo or undo failed.")
	}
}

func (s *Session) handleExclude(arg string) {
	parts := strings.SplitN(arg, " ", 2)
	sub := strings.ToLower(parts[0])

	switch sub {
	case "list", "":
		patterns := s.org.Config().ExcludePatterns
		if len(patterns) == 0 {
			fmt.Fprintln(s.writer, "No patterns defined.")
			return
		}
		for i, pattern := range patterns {
			fmt.Fprintf(s.writer, "%d. %s\n", i+1, pattern)
		}
	case "add":
		if len(parts) < 2 {
			fmt.Fprintln(s.writer, "Usage: exclude add <pattern>")
			return
		}
		if err := s.org.AddExcludePattern(parts[1]); err != nil {
			fmt.Fprintf(s.writer, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(s.writer, "Pattern %q added.\n", parts[1])
	case "remove":
		if len(parts) < 2 {
			fmt.Fprintln(s.writer, "Usage: exclude remove <number>")
			return
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			fmt.Fprintln(s.writer, "Please enter a valid number.")
			return
		}
		if err := s.org.RemoveExcludePattern(n - 1); err != nil {
			fmt.Fprintf(s.writer, "Error: %v\n", err)
			return
		}
		fmt.Fprintln(s.writer, "Pattern removed.")
	default:
		fmt.Fprintln(s.writer, "Usage: exclude [list|add <pattern>|remove <number>]")
	}
}

func (s *Session) handleCategories(arg string) {
	parts := strings.Fields(arg)
	sub := "list"
	if len(parts) > 0 {
		sub = strings.ToLower(parts[0])
	}

	switch sub {
	case "list":
		for i, rule := range s.org.Config().Categories {
			fmt.Fprintf(s.writer, "%d. %s: %s\n", i+1, rule.Name, strings.Join(rule.Extensions, ", "))
		}
	case "add":
		if len(parts) < 3 {
			fmt.Fprintln(s.writer, "Usage: categories add <name> <ext> [ext...]")
			return
		}
		if !s.org.Config().AddCategory(parts[1], parts[2:]) {
			fmt.Fprintf(s.writer, "Category %q already exists.\n", parts[1])
			return
		}
		fmt.Fprintf(s.writer, "Category %q added.\n", parts[1])
	case "edit":
		if len(parts) < 3 {
			fmt.Fprintln(s.writer, "Usage: categories edit <number> <ext> [ext...]")
			return
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			fmt.Fprintln(s.writer, "Please enter a valid number.")
			return
		}
		if err := s.org.Config().SetCategoryExtensions(n-1, parts[2:]); err != nil {
			fmt.Fprintf(s.writer, "Error: %v\n", err)
			return
		}
		fmt.Fprintln(s.writer, "Category updated.")
	case "remove":
		if len(parts) < 2 {
			fmt.Fprintln(s.writer, "Usage: categories remove <number>")
			return
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			fmt.Fprintln(s.writer, "Please enter a valid number.")
			return
		}
		if err := s.org.Config().RemoveCategory(n - 1); err != nil {
			fmt.Fprintf(s.writer, "Error: %v\n", err)
			return
		}
		fmt.Fprintln(s.writer, "Category removed.")
	default:
		fmt.Fprintln(s.writer, "Usage: categories [list|add <name> <ext>...|edit <number> <ext>...|remove <number>]")
	}
}

func (s *Session) promptYesNo(question string, def bool) bool {
	defStr := "y/N"
	if def {
		defStr = "Y/n"
	}
	fmt.Fprintf(s.writer, "%s [%s]: ", question, defStr)
	if !s.scanner.Scan() {
		return def
	}
	response := strings.ToLower(strings.TrimSpace(s.scanner.Text()))
	if response == "" {
		return def
	}
	return strings.HasPrefix(response, "y")
}
