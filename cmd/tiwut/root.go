// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for tiwut.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tiwut-cli/internal/config"
	"tiwut-cli/internal/issue"
	"tiwut-cli/internal/jail"
	"tiwut-cli/internal/session"
	"tiwut-cli/internal/shell"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging of command dispatch
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// rootDirFlag overrides the configured sandbox root
	rootDirFlag string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "tiwut",
		Short: "A sandboxed interactive file terminal",
		Long: TitleStyle.Render("tiwut") + SubtitleStyle.Render(" - A sandboxed interactive file terminal") + `

tiwut starts an interactive shell whose file operations are confined
to a single root directory. Paths that resolve outside the root,
including through symlinks, are rejected.

` + SubtitleStyle.Render("Built-in commands:") + `
  ls, cd, pwd, mkdir, rmdir, rm [-r], cp, cat, help, exit

` + SubtitleStyle.Render("Examples:") + `
  tiwut                     Start the shell in the configured root
  tiwut --root ./sandbox    Start the shell in ./sandbox
  tiwut config show         Show current configuration`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context())
		},
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/tiwut/config.toml)")
	rootCmd.Flags().StringVar(&rootDirFlag, "root", "", "sandbox root directory (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig wires the --config flag into the config package before any
// command loads configuration.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}
}

// runShell loads configuration, prepares the sandbox root, and runs the
// interactive loop until exit.
func runShell(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId)
		return err
	}
	if rootDirFlag != "" {
		cfg.RootDir = rootDirFlag
	}
	if verbose {
		cfg.UI.Verbose = true
	}

	if err := os.MkdirAll(cfg.RootDir, 0o755); err != nil {
		renderIssue(issue.RootUnavailableId)
		return fmt.Errorf("preparing root directory %s: %w", cfg.RootDir, err)
	}

	j, err := jail.New(cfg.RootDir)
	if err != nil {
		renderIssue(issue.RootUnavailableId)
		return fmt.Errorf("preparing root directory %s: %w", cfg.RootDir, err)
	}

	level := log.WarnLevel
	if cfg.UI.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
		Prefix:          "tiwut",
	})

	sh := shell.New(session.New(j), shell.Options{
		Stdin:        os.Stdin,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Logger:       logger,
		TerminalName: cfg.Terminal.Name,
		CatMaxBytes:  cfg.Cat.MaxBytes,
		Theme:        cfg.UI.ColorScheme.GlamourTheme(),
		Interactive:  term.IsTerminal(int(os.Stdin.Fd())),
	})
	return sh.Run(ctx)
}

// renderIssue prints the actionable help card for the given issue id.
func renderIssue(id issue.Id) {
	rendered, err := issue.Get(id).Render("dark")
	if err != nil {
		return
	}
	fmt.Fprint(os.Stderr, rendered)
}
