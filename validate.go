package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/automoto/sigmaplatformer/assets"
	"github.com/automoto/sigmaplatformer/systems"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check every level map without opening a window",
	Long: `Loads each sigmamap<N>.tmx in dir and reports its layers.
A map fails when it cannot be parsed or has no Platform/Platforms layer.
Without dir the same directory the game would use is checked.

Examples:
  sigmaplatformer validate
  sigmaplatformer validate ./levels`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runValidate,
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func runValidate(cmd *cobra.Command, args []string) error {
	var dir string
	if len(args) == 1 {
		dir = args[0]
	} else {
		resolved, err := assets.ResolveMapsDir()
		if err != nil {
			return err
		}
		dir = resolved
	}

	reports, err := systems.ValidateLevels(os.DirFS(dir))
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		return fmt.Errorf("no sigmamap<N>.tmx files in %s", dir)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderReport(dir, reports))

	failed := 0
	for _, r := range reports {
		if !r.OK() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d maps failed validation", failed, len(reports))
	}
	return nil
}

func renderReport(dir string, reports []systems.LevelReport) string {
	rows := make([]string, 0, len(reports))
	for _, r := range reports {
		status := okStyle.Render("ok  ")
		detail := fmt.Sprintf("%d tiles, layers: %s", r.Tiles, strings.Join(r.Layers, ", "))
		if !r.OK() {
			status = failStyle.Render("FAIL")
			detail = r.Err.Error()
		}
		rows = append(rows, fmt.Sprintf("%s %-16s %s", status, r.Path, detailStyle.Render(detail)))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Levels in "+dir),
		tableStyle.Render(strings.Join(rows, "\n")),
	)
}
