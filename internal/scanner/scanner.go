package scanner

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/solint/internal/analyzer"
	"github.com/scan-io-git/solint/pkg/shared"
	"github.com/scan-io-git/solint/pkg/shared/files"
)

// StdinArg selects standard input as a target. Its findings are reported under StdinPath.
const (
	StdinArg  = "-"
	StdinPath = "<stdin>"
)

// Options configures what the scanner analyses and how.
type Options struct {
	Rules       analyzer.Rules
	MaxFindings int
	Naming      *analyzer.NamingConfig
	Parser      analyzer.TreeParser // nil disables the assisted pass
	Extensions  []string
	ExcludeDirs []string
	Threads     int
}

// Target is one document to analyse.
type Target struct {
	Path  string // filesystem path, or StdinPath
	stdin bool
}

// FileResult holds the findings of one document.
type FileResult struct {
	Path     string             `json:"path"`
	Findings []analyzer.Finding `json:"findings"`
	Err      error              `json:"-"`
}

// Result is the outcome of a scan, sorted by path.
type Result struct {
	Files    []FileResult
	Launches shared.GenericLaunchesResult
}

// Findings returns the number of findings across all files.
func (r Result) Findings() int {
	total := 0
	for _, f := range r.Files {
		total += len(f.Findings)
	}
	return total
}

// Scanner runs the analyzer over files with bounded concurrency.
type Scanner struct {
	opts   Options
	logger hclog.Logger
	stdin  io.Reader
}

// New creates a Scanner reading "-" targets from os.Stdin.
func New(opts Options, logger hclog.Logger) *Scanner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Scanner{opts: opts, logger: logger, stdin: os.Stdin}
}

// WithStdin replaces the reader used for "-" targets.
func (s *Scanner) WithStdin(r io.Reader) *Scanner {
	s.stdin = r
	return s
}

// CollectTargets expands the command-line paths into documents. Directories are walked
// for the configured extensions; explicit files are taken regardless of extension.
// Duplicates are dropped and the result is sorted by path.
func (s *Scanner) CollectTargets(paths []string) ([]Target, error) {
	seen := make(map[string]struct{})
	var targets []Target
	for _, p := range paths {
		if p == StdinArg {
			if _, ok := seen[StdinPath]; !ok {
				seen[StdinPath] = struct{}{}
				targets = append(targets, Target{Path: StdinPath, stdin: true})
			}
			continue
		}

		expanded, err := files.ExpandPath(p)
		if err != nil {
			return nil, fmt.Errorf("failed to expand path %q: %w", p, err)
		}
		found, err := files.CollectFiles(expanded, s.opts.Extensions, s.opts.ExcludeDirs)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			s.logger.Warn("no matching files found", "path", p, "extensions", s.opts.Extensions)
		}
		for _, f := range found {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			targets = append(targets, Target{Path: f})
		}
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].Path < targets[j].Path })
	return targets, nil
}

// ScanTargets analyses every target. A document that cannot be read is recorded as a
// failed launch and the remaining documents are still analysed.
func (s *Scanner) ScanTargets(targets []Target) Result {
	s.logger.Info("analysis starting", "files", len(targets), "goroutines", s.opts.Threads)

	out := make([]FileResult, len(targets))
	values := make([]interface{}, len(targets))
	for i := range targets {
		values[i] = targets[i]
	}

	shared.ForEveryStringWithBoundedGoroutines(s.opts.Threads, values, func(i int, value interface{}) {
		target := value.(Target)
		out[i] = s.scanOne(target)
	})

	var result Result
	for _, fr := range out {
		launch := shared.GenericResult{Args: fr.Path, Result: len(fr.Findings), Status: shared.StatusOK}
		if fr.Err != nil {
			launch.Status = shared.StatusFailed
			launch.Message = fr.Err.Error()
		}
		result.Launches.Launches = append(result.Launches.Launches, launch)
		result.Files = append(result.Files, fr)
	}

	s.logger.Info("analysis finished", "files", len(result.Files), "findings", result.Findings(), "failed", len(result.Launches.Failed()))
	return result
}

// Scan collects and analyses paths.
func (s *Scanner) Scan(paths []string) (Result, error) {
	targets, err := s.CollectTargets(paths)
	if err != nil {
		return Result{}, err
	}
	return s.ScanTargets(targets), nil
}

func (s *Scanner) scanOne(target Target) FileResult {
	fr := FileResult{Path: target.Path, Findings: []analyzer.Finding{}}

	source, err := s.read(target)
	if err != nil {
		s.logger.Error("failed to read file", "path", target.Path, "error", err)
		fr.Err = err
		return fr
	}

	fr.Findings = analyzer.Analyze(string(source), s.opts.Rules, s.opts.MaxFindings, s.opts.Naming, s.opts.Parser)
	s.logger.Debug("file analysed", "path", target.Path, "findings", len(fr.Findings))
	return fr
}

func (s *Scanner) read(target Target) ([]byte, error) {
	if target.stdin {
		if s.stdin == nil {
			return nil, fmt.Errorf("standard input is not available")
		}
		return io.ReadAll(s.stdin)
	}
	data, err := os.ReadFile(target.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", target.Path, err)
	}
	return data, nil
}

// Retain drops every finding for which keep returns false.
func (r *Result) Retain(keep func(path string, f analyzer.Finding) bool) {
	for i := range r.Files {
		kept := r.Files[i].Findings[:0]
		for _, f := range r.Files[i].Findings {
			if keep(r.Files[i].Path, f) {
				kept = append(kept, f)
			}
		}
		r.Files[i].Findings = kept
	}
}
