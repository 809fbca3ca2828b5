package cmd

import (
	"fmt"

	appui "github.com/OpenTraceLab/CircuitTikZ/internal/ui"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive editor",
	Long: `Launch the schematic editor window. Settings are read from the user
config directory and fall back to defaults when the file is missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appui.LoadConfig()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v, using defaults\n", err)
			cfg = appui.DefaultConfig()
		}
		if verbose {
			if path, err := appui.ConfigPath(); err == nil {
				fmt.Printf("Config: %s\n", path)
			}
			fmt.Printf("Theme: %s, grid: %t\n", cfg.Theme, cfg.ShowGrid)
		}

		state := appui.NewState()
		state.SetAppVersion(rootCmd.Version)
		return appui.Run(cfg, state)
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
