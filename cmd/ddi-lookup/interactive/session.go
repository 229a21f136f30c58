// Package interactive provides the command interpreter behind ddi-lookup,
// both for one-shot invocations and the readline prompt.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
	"github.com/open-agriculture/isobus-ddi/pkg/procdata"
)

// maxResults caps the output of find.
const maxResults = 50

// Session executes lookup commands against a dictionary.
type Session struct {
	dict *ddi.Dictionary
	out  io.Writer
}

// NewSession creates a session writing to out. A nil dict uses the
// standard dictionary.
func NewSession(dict *ddi.Dictionary, out io.Writer) *Session {
	if dict == nil {
		dict = ddi.Standard()
	}
	return &Session{dict: dict, out: out}
}

// Execute runs one command line. It returns false when the line asks to
// quit and an error when the command failed.
func (s *Session) Execute(line string) (bool, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true, nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	// A bare identifier is shorthand for get.
	if _, err := parseDDI(cmd); err == nil {
		return true, s.cmdGet(parts)
	}

	switch cmd {
	case "help", "?":
		s.PrintHelp()
		return true, nil
	case "get", "g":
		return true, s.cmdGet(args)
	case "find", "f":
		return true, s.cmdFind(args)
	case "format", "fmt":
		return true, s.cmdFormat(args)
	case "decode", "d":
		return true, s.cmdDecode(args)
	case "quit", "exit", "q":
		return false, nil
	default:
		return true, fmt.Errorf("unknown command: %s (type 'help' for commands)", cmd)
	}
}

// PrintHelp lists the available commands.
func (s *Session) PrintHelp() {
	fmt.Fprintln(s.out, `
DDI Lookup Commands:
  get <ddi>...          - Show entries (a bare number works too)
  find <text>           - Search entry names
  format <ddi> <value>  - Render a raw process data value
  decode <frame>        - Decode a candump process data frame (ID#DATA)
  help                  - Show this help
  exit                  - Leave`)
}

func parseDDI(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid DDI %q", s)
	}
	return uint16(v), nil
}

func (s *Session) cmdGet(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: get <ddi>...")
	}
	for _, a := range args {
		id, err := parseDDI(a)
		if err != nil {
			return err
		}
		s.printEntry(id, s.dict.Lookup(id))
	}
	return nil
}

func (s *Session) printEntry(id uint16, e ddi.Entry) {
	if e.IsDefault() {
		fmt.Fprintf(s.out, "DDI %d: not defined\n", id)
		return
	}
	fmt.Fprintf(s.out, "DDI %d (0x%04X): %s\n", e.DDI, e.DDI, e.Name)
	if u := e.Units(); u != "" {
		fmt.Fprintf(s.out, "  Unit:          %s\n", u)
	}
	fmt.Fprintf(s.out, "  Resolution:    %s\n", ddi.FormatFloat(e.Resolution))
	fmt.Fprintf(s.out, "  Display range: %s .. %s\n",
		ddi.FormatFloat(e.DisplayRange.Min), ddi.FormatFloat(e.DisplayRange.Max))
}

func (s *Session) cmdFind(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: find <text>")
	}
	q := strings.Join(args, " ")
	matches := s.dict.Search(q)
	if len(matches) == 0 {
		fmt.Fprintf(s.out, "No entries match %q\n", q)
		return nil
	}
	for i, e := range matches {
		if i == maxResults {
			fmt.Fprintf(s.out, "... %d more\n", len(matches)-maxResults)
			break
		}
		fmt.Fprintf(s.out, "%5d  %s\n", e.DDI, e.Name)
	}
	return nil
}

func (s *Session) cmdFormat(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: format <ddi> <value>")
	}
	id, err := parseDDI(args[0])
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(args[1], 0, 32)
	if err != nil {
		return fmt.Errorf("invalid value %q", args[1])
	}
	fmt.Fprintf(s.out, "%s = %s\n", s.dict.Name(id), s.dict.FormatValue(id, int32(v)))
	return nil
}

func (s *Session) cmdDecode(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: decode <ID#DATA>")
	}
	m, err := procdata.ParseCandump(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, m.Describe(s.dict))
	return nil
}

// Run reads commands from a readline prompt until exit, EOF or ctx is done.
func Run(ctx context.Context, dict *ddi.Dictionary) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ddi> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("get"),
			readline.PcItem("find"),
			readline.PcItem("format"),
			readline.PcItem("decode"),
			readline.PcItem("help"),
			readline.PcItem("exit"),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s := NewSession(dict, rl.Stdout())
	s.PrintHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}

		more, err := s.Execute(line)
		if err != nil {
			fmt.Fprintf(rl.Stdout(), "Error: %v\n", err)
		}
		if !more {
			return nil
		}
	}
}
