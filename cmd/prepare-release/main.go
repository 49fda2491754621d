package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/multi-package-release-tool/pkg/config"
	"github.com/multi-package-release-tool/pkg/dlogger"
	"github.com/multi-package-release-tool/pkg/release"
	"github.com/multi-package-release-tool/pkg/reporter"
	"github.com/multi-package-release-tool/pkg/vcs"
	"github.com/multi-package-release-tool/pkg/version"
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "prepare-release",
		Short:   "Bump, commit, and tag a multi-package repository release",
		Long: `Prepares a release of a multi-package source repository: verifies all
packages share one version, bumps it, checks changelog entries, rewrites the
manifests, commits, tags, and optionally pushes. Works on git, hg, bzr, and
svn working trees; without --push the remote commands are printed for manual
execution instead of run.`,
		Version:      fmt.Sprintf("%s (%s)", buildVersion, buildCommit),
		RunE:         run,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	rootCmd.Flags().String("bump", "patch", "Version segment to bump: major | minor | patch")
	rootCmd.Flags().BoolP("push", "p", false, "Execute remote operations instead of printing them")
	rootCmd.Flags().BoolP("non-interactive", "y", false, "Never prompt; proceed past missing changelogs")
	rootCmd.Flags().String("output", "table", "Output format: table | json")
	rootCmd.Flags().String("config", ".prepare-release.yml", "Path to config file")
	rootCmd.Flags().String("log-level", dlogger.LogLevelNone, "Log level: none | info | debug")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: could not load config file: %v (using defaults)\n", err)
		}
		cfg = config.Default()
	}
	cfg = config.MergeFlags(cfg, cmd.Flags())

	if !version.ValidBump(cfg.Bump) {
		return fmt.Errorf("invalid --bump value %q (want major, minor, or patch)", cfg.Bump)
	}

	logger, err := dlogger.GetLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	orch := release.New(afero.NewOsFs(), wd, vcs.NewExecRunner(logger), logger)
	result, err := orch.Run(release.Options{
		Bump:           cfg.Bump,
		Push:           cfg.Push,
		NonInteractive: cfg.NonInteractive,
		ChangelogFile:  cfg.Changelog,
		Ignore:         cfg.Ignore,
	})
	if err != nil {
		return err
	}
	return reporter.New(cfg.Output, os.Stdout).Report(result)
}
