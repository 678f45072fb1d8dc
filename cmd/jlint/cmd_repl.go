package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/jlint/format"
	"github.com/dhamidi/jlint/java/parser"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const historyFile = ".jlint_history"

const replHelp = `Type Java source to parse it. Input continues on the next line while it
is incomplete; an empty line forces it through.

  :expr  :stmt  :sig  :unit   choose what the input is parsed as
  :tree  :java  :json         choose how the result is shown
  :help                       show this text
  :quit                       leave
`

type replMode string

const (
	modeExpr replMode = "expr"
	modeStmt replMode = "stmt"
	modeSig  replMode = "sig"
	modeUnit replMode = "unit"
)

type repl struct {
	out    io.Writer
	mode   replMode
	output string
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse Java snippets interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.OutOrStdout())
		},
	}
}

func runRepl(out io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	r := &repl{out: out, mode: modeExpr, output: "tree"}
	fmt.Fprintf(out, "jlint %s. Type :help for help.\n", version)
	for {
		src, ok := r.read(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if !r.eval(src) {
			return nil
		}
	}
}

// read collects lines until they form a complete snippet.
func (r *repl) read(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := string(r.mode) + "> "
		if b.Len() > 0 {
			prompt = strings.Repeat(" ", len(prompt)-2) + ". "
		}
		line, err := ln.Prompt(prompt)
		if err != nil {
			// io.EOF on Ctrl-D, liner.ErrPromptAborted on Ctrl-C
			return "", false
		}

		if b.Len() > 0 {
			if strings.TrimSpace(line) == "" {
				return b.String(), true
			}
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, diags := r.parse([]byte(src)); !incomplete(diags) {
			return src, true
		}
	}
}

// eval handles one command or snippet and reports whether to keep going.
func (r *repl) eval(src string) bool {
	if cmd := strings.TrimSpace(src); strings.HasPrefix(cmd, ":") {
		switch cmd {
		case ":quit", ":q":
			return false
		case ":help":
			fmt.Fprint(r.out, replHelp)
		case ":expr", ":stmt", ":sig", ":unit":
			r.mode = replMode(cmd[1:])
		case ":tree", ":java", ":json":
			r.output = cmd[1:]
		default:
			fmt.Fprintf(r.out, "unknown command %s. Type :help for help.\n", cmd)
		}
		return true
	}

	node, diags := r.parse([]byte(src))
	for _, d := range diags {
		fmt.Fprintf(r.out, "%s: %s\n", d.Kind, d.Error())
	}
	enc, _ := format.NewEncoder(r.output, r.out)
	if err := enc.Encode(node); err != nil {
		fmt.Fprintf(r.out, "error: %s\n", err)
	}
	return true
}

func (r *repl) parse(src []byte) (parser.Node, parser.Diagnostics) {
	switch r.mode {
	case modeStmt:
		return parser.ParseStatement(src)
	case modeSig:
		return parser.ParseMethodSignature(src)
	case modeUnit:
		return parser.ParseCompilationUnit(src)
	}
	return parser.ParseExpression(src)
}

// incomplete reports whether the input ended before the parser was done
// with it, so that more lines may complete it.
func incomplete(diags parser.Diagnostics) bool {
	for _, d := range diags {
		if d.Got.Kind == parser.TokenEOF && d.Kind == parser.SyntaxError {
			return true
		}
	}
	return false
}
