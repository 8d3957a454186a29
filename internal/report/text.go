package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/scan-io-git/solint/internal/analyzer"
	"github.com/scan-io-git/solint/internal/scanner"
)

type palette struct {
	error, warning, information, path, faint *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		error:       color.New(color.FgRed, color.Bold),
		warning:     color.New(color.FgYellow),
		information: color.New(color.FgCyan),
		path:        color.New(color.Bold),
		faint:       color.New(color.Faint),
	}
	if noColor {
		for _, c := range []*color.Color{p.error, p.warning, p.information, p.path, p.faint} {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s analyzer.Severity) *color.Color {
	switch s {
	case analyzer.SeverityError:
		return p.error
	case analyzer.SeverityWarning:
		return p.warning
	default:
		return p.information
	}
}

// writeText prints one line per finding as path:line:col with 1-based numbers,
// followed by a summary.
func writeText(w io.Writer, result *scanner.Result, noColor bool) error {
	p := newPalette(noColor)
	bw := bufio.NewWriter(w)

	unreadable := 0
	if result != nil {
		for _, file := range result.Files {
			if file.Err != nil {
				unreadable++
				fmt.Fprintf(bw, "%s: %s %s\n", p.path.Sprint(file.Path), p.error.Sprint("error"), file.Err)
				continue
			}
			for _, f := range file.Findings {
				fmt.Fprintf(bw, "%s:%d:%d: %s %s %s\n",
					p.path.Sprint(file.Path),
					f.Range.Start.Line+1,
					f.Range.Start.Character+1,
					p.severity(f.Severity).Sprint(f.Severity.String()),
					p.faint.Sprint(string(f.Code)),
					f.Message,
				)
			}
		}
	}

	s := CollectSeverityInfo(result)
	if s.Total == 0 {
		fmt.Fprintln(bw, "no problems found")
	} else {
		fmt.Fprintf(bw, "\n%d %s (%d errors, %d warnings, %d information)\n",
			s.Total, plural(s.Total, "problem", "problems"), s.Error, s.Warning, s.Information)
	}
	if unreadable > 0 {
		fmt.Fprintf(bw, "%d %s could not be read\n", unreadable, plural(unreadable, "file", "files"))
	}
	return bw.Flush()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
