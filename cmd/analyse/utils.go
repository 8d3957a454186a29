package analyse

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/scan-io-git/solint/internal/analyzer"
	"github.com/scan-io-git/solint/internal/assist"
	"github.com/scan-io-git/solint/internal/ci"
	internalconfig "github.com/scan-io-git/solint/internal/config"
	"github.com/scan-io-git/solint/internal/git"
	"github.com/scan-io-git/solint/internal/sarif"
	"github.com/scan-io-git/solint/internal/scanner"
	"github.com/scan-io-git/solint/pkg/shared/config"
	"github.com/scan-io-git/solint/pkg/shared/files"
	"github.com/scan-io-git/solint/pkg/shared/vcsurl"
)

// mergeConfig fills options that were not set on the command line from cfg.
func mergeConfig(flags *pflag.FlagSet, cfg *config.Config, options *RunOptionsAnalyse) {
	if cfg == nil {
		return
	}
	if !flags.Changed("threads") && cfg.Analyzer.Threads > 0 {
		options.Threads = cfg.Analyzer.Threads
	}
	if !flags.Changed("max-problems") {
		options.MaxProblems = config.GetIntValue(cfg, "Analyzer.MaxProblems", options.MaxProblems)
	}
	if !flags.Changed("assisted") {
		options.Assisted = config.GetBoolValue(cfg, "Analyzer.AssistedParse", options.Assisted)
	}
	if !flags.Changed("fail-on") {
		options.FailOn = config.SetThen(cfg.Analyzer.FailOn, options.FailOn)
	}
}

// prepareScanOptions resolves rules, naming patterns and the assisted parser.
func prepareScanOptions(cfg *config.Config, options RunOptionsAnalyse, logger hclog.Logger) (scanner.Options, error) {
	rules := internalconfig.Rules(cfg)
	if err := internalconfig.Disable(&rules, options.Disable); err != nil {
		return scanner.Options{}, err
	}

	scanOpts := scanner.Options{
		Rules:       rules,
		MaxFindings: options.MaxProblems,
		Naming:      internalconfig.Naming(cfg),
		Parser:      assistedParser(options.Assisted, logger),
		Extensions:  config.DefaultExtensions,
		ExcludeDirs: config.DefaultExcludeDirs,
		Threads:     options.Threads,
	}
	if cfg != nil {
		scanOpts.Extensions = config.SetThen(cfg.Analyzer.Extensions, scanOpts.Extensions)
		if cfg.Analyzer.ExcludeDirs != nil {
			scanOpts.ExcludeDirs = cfg.Analyzer.ExcludeDirs
		}
	}
	return scanOpts, nil
}

// assistedParser returns the registered Solidity grammar, or nil when assisted checks
// are off or no grammar is available.
func assistedParser(enabled bool, logger hclog.Logger) analyzer.TreeParser {
	if !enabled {
		return nil
	}
	parser, ok := assist.Lookup(assist.DefaultLanguage)
	if !ok {
		logger.Warn("assisted parsing requested but no grammar is registered, running heuristics only",
			"language", assist.DefaultLanguage, "registered", assist.Languages())
		return nil
	}
	return parser
}

// origin is where the analysed sources come from.
type origin struct {
	Root       string // repository worktree root, empty outside git
	Provenance sarif.Provenance
	Repository *vcsurl.Repository
}

// resolveOrigin reads provenance from the repository enclosing the first target path,
// and fills whatever git cannot tell from the CI environment.
func resolveOrigin(args []string, logger hclog.Logger) origin {
	var o origin
	var remote string

	if target, ok := firstPath(args); ok {
		md, err := git.New(logger).CollectRepositoryMetadata(target)
		if err != nil {
			logger.Debug("target is not inside a git repository", "path", target, "error", err)
		} else {
			o.Root = md.RootFolder
			o.Provenance.RevisionID = md.CommitHash
			o.Provenance.Branch = md.BranchName
			remote = md.RemoteURL
		}
	}

	if remote == "" || o.Provenance.RevisionID == "" || o.Provenance.Branch == "" {
		if env, ok := ci.Resolve(logger, nil); ok {
			remote = config.SetThen(remote, env.RepositoryURL)
			o.Provenance.RevisionID = config.SetThen(o.Provenance.RevisionID, env.CommitHash)
			o.Provenance.Branch = config.SetThen(o.Provenance.Branch, env.Branch)
		}
	}

	if remote == "" {
		return o
	}
	repo, err := vcsurl.Parse(remote)
	if err != nil {
		logger.Debug("failed to normalise remote url", "remote", remote, "error", err)
		o.Provenance.RepositoryURI = remote
		return o
	}
	o.Repository = repo
	o.Provenance.RepositoryURI = repo.HTTPURL()
	return o
}

func firstPath(args []string) (string, bool) {
	for _, target := range args {
		if target != scanner.StdinArg {
			return target, true
		}
	}
	return "", false
}

// applyDiffFilter keeps only findings on lines added since base. Findings outside the
// repository, including stdin, are dropped.
func applyDiffFilter(result *scanner.Result, root, base string, logger hclog.Logger) error {
	if root == "" {
		return fmt.Errorf("the 'diff-base' flag needs the targets to be inside a git repository")
	}
	added, err := git.New(logger).AddedLines(root, base, "", nil)
	if err != nil {
		return err
	}

	before := result.Findings()
	result.Retain(func(path string, f analyzer.Finding) bool {
		if path == scanner.StdinPath {
			return false
		}
		rel, err := files.RelativeToRoot(root, path)
		if err != nil {
			return false
		}
		return added[rel].Has(f.Range.Start.Line + 1)
	})
	logger.Debug("applied diff filter", "base", base, "changed_files", len(added), "kept", result.Findings(), "dropped", before-result.Findings())
	return nil
}
