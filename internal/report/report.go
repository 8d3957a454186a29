// Package report renders scan results as text, JSON or SARIF.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/solint/internal/sarif"
	"github.com/scan-io-git/solint/internal/scanner"
	"github.com/scan-io-git/solint/pkg/shared/vcsurl"
)

// Format is an output format name.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatSARIF Format = "sarif"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatSARIF}

// ParseFormat converts a --format value. An empty value selects text.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatSARIF:
		return FormatSARIF, nil
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("the 'format' flag must be one of %s: %q", strings.Join(names, ", "), raw)
}

// Extension returns the file extension used for reports of this format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatSARIF:
		return "sarif"
	default:
		return "txt"
	}
}

// Options controls rendering.
type Options struct {
	Format  Format
	NoColor bool

	// SARIF only.
	ToolVersion string
	RepoRoot    string // artifact URIs are made relative to it when set
	Provenance  sarif.Provenance
	Repository  *vcsurl.Repository
}

// Write renders result to w.
func Write(w io.Writer, result *scanner.Result, opts Options, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatSARIF:
		return writeSARIF(w, result, opts, logger)
	case FormatText, "":
		return writeText(w, result, opts.NoColor)
	}
	return fmt.Errorf("unsupported report format %q", opts.Format)
}
