// Package errors formats the three compiler error kinds (lexical,
// syntactic, semantic) into a diagnostic with source context and a
// caret pointing at the offending column, colorized via fatih/color
// when requested.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/arabicc/arabicc/internal/lexer"
	"github.com/arabicc/arabicc/internal/parser"
	"github.com/arabicc/arabicc/internal/semantic"
	"github.com/arabicc/arabicc/internal/token"
)

// Diagnostic is a single compiler error ready for display: its
// category, its message, the source line it came from (when known),
// and the position within it. SemanticError carries no position, so
// HasPos is false and line/column are omitted from the output.
type Diagnostic struct {
	Category string
	Message  string
	File     string
	Source   string
	Pos      token.Position
	HasPos   bool
}

// Categorize wraps err — which must be a *lexer.Error, *parser.Error,
// or *semantic.Error — into a Diagnostic. Any other error is reported
// under the category "error" with no position.
func Categorize(err error, source, file string) *Diagnostic {
	switch e := err.(type) {
	case *lexer.Error:
		return &Diagnostic{Category: "lex error", Message: e.Message, File: file, Source: source, Pos: e.Pos, HasPos: true}
	case *parser.Error:
		return &Diagnostic{Category: "parse error", Message: e.Message, File: file, Source: source, Pos: e.Pos, HasPos: true}
	case *semantic.Error:
		return &Diagnostic{Category: "semantic error", Message: e.Message, File: file, Source: source}
	default:
		return &Diagnostic{Category: "error", Message: err.Error(), File: file, Source: source}
	}
}

// Format renders the diagnostic as a multi-line string: a header
// naming the category and location, the offending source line with a
// caret beneath the error column, and the message. When colorEnabled
// is false no ANSI escapes are written, regardless of the terminal.
func (d *Diagnostic) Format(colorEnabled bool) string {
	var sb strings.Builder

	header := color.New(color.FgRed, color.Bold)
	header.EnableColor()
	if !colorEnabled {
		header.DisableColor()
	}

	if d.HasPos {
		if d.File != "" {
			sb.WriteString(header.Sprintf("%s: %s:%d:%d", d.Category, d.File, d.Pos.Line, d.Pos.Column))
		} else {
			sb.WriteString(header.Sprintf("%s: %d:%d", d.Category, d.Pos.Line, d.Pos.Column))
		}
		sb.WriteByte('\n')

		if line := sourceLine(d.Source, d.Pos.Line); line != "" {
			gutter := fmt.Sprintf("%4d | ", d.Pos.Line)
			sb.WriteString(gutter)
			sb.WriteString(line)
			sb.WriteByte('\n')

			sb.WriteString(strings.Repeat(" ", len(gutter)+d.Pos.Column-1))
			caret := color.New(color.FgRed, color.Bold)
			caret.EnableColor()
			if !colorEnabled {
				caret.DisableColor()
			}
			sb.WriteString(caret.Sprint("^"))
			sb.WriteByte('\n')
		}
	} else {
		if d.File != "" {
			sb.WriteString(header.Sprintf("%s: %s", d.Category, d.File))
		} else {
			sb.WriteString(header.Sprint(d.Category))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(d.Message)
	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
