// Package main implements dockwave, a dock for X11 desktops.
// Dockwave shows rows of icons along a screen edge that magnify in a wave
// under the pointer, with icons opening sub-panels of their own.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/dockwave/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode           bool
	configPath          string
	themeName           string
	listThemes          bool
	maxWidth            int
	amplitude           float64
	position            string
	visibility          string
	backgroundImage     string
	noSubPanelAnimation bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dockwave",
		Short: "A magnifying dock for X11",
		Long: `dockwave - a magnifying dock for X11

Shows panels of launchers along a screen edge. Icons grow in a wave under
the pointer, and container icons open sub-panels of their own. The panels
reserve screen space, stay on top or hide until the pointer reaches them.`,
		Example: `  # Run the dock
  dockwave

  # Run with debug logging
  dockwave --debug

  # Run on the left edge, hidden until the pointer reaches it
  dockwave --position left --visibility auto-hide

  # Run with a specific theme
  dockwave --theme dracula

  # Render the main panel to a PNG without a display
  dockwave preview --out dock.png

  # Print the layout of the tools sub-panel
  dockwave layout --panel tools

  # Edit configuration
  dockwave config edit`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if listThemes {
				if err := theme.Initialize("default"); err != nil {
					return fmt.Errorf("failed to initialize themes: %w", err)
				}
				for _, t := range tint.TintIDs() {
					fmt.Println(t)
				}
				return nil
			}
			return runDock()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file to use instead of the one in the XDG config directory")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use the built-in palette")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().IntVar(&maxWidth, "max-width", 0, "Maximum panel width in pixels (default: from config or the screen width)")
	rootCmd.PersistentFlags().Float64Var(&amplitude, "amplitude", 0, "Magnification amplitude, 1 doubles the pointed icon (default: from config or 1)")
	rootCmd.PersistentFlags().StringVar(&position, "position", "", "Screen edge of the top-level panels: bottom, top, left, right (default: from config)")
	rootCmd.PersistentFlags().StringVar(&visibility, "visibility", "", "Visibility of the top-level panels: normal, reserve, auto-hide (default: from config)")
	rootCmd.PersistentFlags().StringVar(&backgroundImage, "background", "", "Background image of the panels (default: from config or stripes)")
	rootCmd.PersistentFlags().BoolVar(&noSubPanelAnimation, "no-sub-panel-animation", false, "Show sub-panels without the unfold animation")

	var previewOut, previewPanel string

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a panel to a PNG file",
		Long: `Render a panel to a PNG file without a display server

The panel is laid out on a 1920x1080 screen with the pointer over its
middle at full magnification.`,
		Example: `  # Render the main panel
  dockwave preview --out dock.png

  # Render a sub-panel with a theme
  dockwave preview --panel tools --theme nord --out tools.png`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPreview(previewPanel, previewOut)
		},
	}

	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "dockwave.png", "Output PNG file")
	previewCmd.Flags().StringVarP(&previewPanel, "panel", "p", "main", "Panel to render")

	var layoutPanel string
	var layoutLogs bool

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the icon layout of a panel",
		Long: `Print the position and scale of every icon of a panel

The panel is laid out the same way as by the preview command.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLayout(layoutPanel, layoutLogs)
		},
	}

	layoutCmd.Flags().StringVarP(&layoutPanel, "panel", "p", "main", "Panel to lay out")
	layoutCmd.Flags().BoolVar(&layoutLogs, "logs", false, "Also print the messages logged while building the panels")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dockwave configuration",
		Long:  `Manage dockwave configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the dockwave configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the dockwave configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the dockwave configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	rootCmd.AddCommand(previewCmd, layoutCmd, configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
