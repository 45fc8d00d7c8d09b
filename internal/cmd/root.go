// Package cmd wires the reposafety command tree.
package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/reposafety/reposafety/pkg/checker"
	"github.com/reposafety/reposafety/pkg/config"
	"github.com/reposafety/reposafety/pkg/git"
	"github.com/reposafety/reposafety/pkg/logging"
	"github.com/reposafety/reposafety/pkg/scanner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is set via ldflags during build.
var Version = "dev"

// ErrIssuesFound signals that the scan completed and produced findings, as
// opposed to an environment failure. The entrypoint maps it to exit code 1.
var ErrIssuesFound = errors.New("issues found")

var (
	verbose    bool
	threads    int
	configPath string
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "reposafety [paths...]",
		Short:   "Fail commits when likely secrets or notebook outputs are present",
		Long:    "Reposafety is a pre-commit gate. It scans the given paths, or every git-tracked file, for likely secrets, disallowed filenames and uncleared notebook outputs, and blocks the commit when it finds any.",
		Args:    cobra.ArbitraryArgs,
		Version: Version,
		RunE:    runCheck,
		// Stdout carries the findings report; keep cobra quiet.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (defaults to .reposafety.yml in the repository root)")
	rootCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of concurrent file scans, 0 uses the config value or default")

	rootCmd.AddCommand(NewRulesCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	logging.Setup()
	return NewRootCmd().Execute()
}

func runCheck(cmd *cobra.Command, args []string) error {
	logging.SetLogLevel(verbose)

	root, err := git.RepoRoot()
	if err != nil {
		return err
	}

	cfg, rules, err := loadConfiguredRules(root)
	if err != nil {
		return err
	}

	targets, err := checker.Targets(args, root)
	if err != nil {
		return err
	}
	log.Debug().Int("targets", len(targets)).Str("root", root).Msg("Scanning")

	c := &checker.Checker{Rules: rules, ExtraBlocked: cfg.BlockedFilenames}
	findings := c.Run(cmd.Context(), targets, scanThreads(cfg))

	if len(findings) > 0 {
		checker.WriteReport(os.Stdout, findings)
		return ErrIssuesFound
	}
	return nil
}

// loadConfiguredRules combines the built-in registry with rules from the
// repo config file. Config rules are appended so built-ins keep their
// report-order precedence.
func loadConfiguredRules(root string) (config.Config, []scanner.Rule, error) {
	path := configPath
	if path == "" {
		path = filepath.Join(root, config.DefaultFileName)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	rules := scanner.DefaultRules()
	for _, rc := range cfg.Rules {
		rule, err := scanner.CompileRule(rc.Name, rc.Regex)
		if err != nil {
			return cfg, nil, err
		}
		rules = append(rules, rule)
	}
	if len(cfg.Rules) > 0 {
		log.Debug().Int("count", len(cfg.Rules)).Msg("Loaded config rules")
	}

	return cfg, rules, nil
}

const defaultThreads = 4

func scanThreads(cfg config.Config) int {
	if threads > 0 {
		return threads
	}
	if cfg.Threads > 0 {
		return cfg.Threads
	}
	return defaultThreads
}
