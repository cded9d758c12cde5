// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tiwut-cli/internal/config"
	"tiwut-cli/internal/issue"
)

// configCmd is the `tiwut config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tiwut configuration",
	Long: `Manage tiwut configuration.

Configuration is stored in:
  - Linux: ~/.config/tiwut/config.toml
  - macOS: ~/Library/Application Support/tiwut/config.toml
  - Windows: %APPDATA%\tiwut\config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})
}

func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId)
		return err
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	path, pathErr := config.ConfigFilePath()
	if pathErr == nil && fileExists(path) {
		fmt.Printf("%s: %s\n", CmdStyle.Render("Config file"), path)
	} else {
		fmt.Printf("%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", CmdStyle.Render("root_dir"), SuccessStyle.Render(cfg.RootDir))
	fmt.Printf("%s: %s\n", CmdStyle.Render("terminal.name"), SuccessStyle.Render(cfg.Terminal.Name))
	fmt.Printf("%s: %s\n", CmdStyle.Render("ui.color_scheme"), SuccessStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Printf("%s: %s\n", CmdStyle.Render("ui.verbose"), SuccessStyle.Render(fmt.Sprintf("%t", cfg.UI.Verbose)))
	fmt.Printf("%s: %s\n", CmdStyle.Render("cat.max_bytes"), SuccessStyle.Render(fmt.Sprintf("%d", cfg.Cat.MaxBytes)))
	return nil
}

func initConfig() error {
	path, err := config.WriteDefaultFile()
	if err != nil {
		renderIssue(issue.ConfigWriteFailedId)
		return err
	}
	fmt.Println(SuccessStyle.Render("Created config file: ") + path)
	return nil
}

func showConfigPath() error {
	path, err := config.ConfigFilePath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
