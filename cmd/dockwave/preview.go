package main

import (
	"fmt"
	"os"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/Gaurav-Gosain/dockwave/internal/app"
	"github.com/Gaurav-Gosain/dockwave/internal/dock"
	"github.com/Gaurav-Gosain/dockwave/internal/headless"
	"github.com/Gaurav-Gosain/dockwave/internal/render"
	"github.com/Gaurav-Gosain/dockwave/internal/theme"
)

// previewScreen is the monitor panels are laid out on without a display.
var previewScreen = dock.Screen{Width: 1920, Height: 1080}

// buildHeadless builds every panel of the configuration on in-memory windows
// and runs the deferred work until the layout is settled.
func buildHeadless() (*app.App, error) {
	userConfig, _, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(os.Stderr, logLevel(userConfig))

	a := app.New(app.Options{
		Logger: logger,
		Params: userConfig.Params(),
	})
	newWindow := func(_ string, _ dock.Position) (dock.Window, error) {
		return headless.New(previewScreen), nil
	}
	if err := a.Build(userConfig, newWindow); err != nil {
		return nil, err
	}
	a.Loop.Drain(100)
	return a, nil
}

func findPanel(a *app.App, name string) (*dock.Panel, error) {
	p := a.Registry.PanelByName(name)
	if p == nil {
		return nil, fmt.Errorf("no panel named %q", name)
	}
	return p, nil
}

func runPreview(name, out string) error {
	a, err := buildHeadless()
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := findPanel(a, name)
	if err != nil {
		return err
	}
	if err := render.MakePreview(p, a.Painter, out); err != nil {
		return err
	}
	fmt.Printf("Preview of %s (%dx%d) written to %s\n", p.Name, p.MaxWidth, p.MaxHeight, out)
	return nil
}

func runLayout(name string, logs bool) error {
	a, err := buildHeadless()
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := findPanel(a, name)
	if err != nil {
		return err
	}
	if err := render.PointAtMiddle(p); err != nil {
		return err
	}

	rows := layoutRows(p)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.LayoutHeader()).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	pointedStyle := cellStyle.Foreground(theme.LayoutPointed()).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.LayoutDim())).
		Headers("#", "NAME", "KIND", "X", "Y", "SCALE", "WIDTH", "POINTED").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row][7] == "yes":
				return pointedStyle
			default:
				return cellStyle
			}
		})

	lipgloss.Println(t.String())
	fmt.Printf("%s: %dx%d, ratio %.2f, flat width %.0f\n", p.Name, p.MaxWidth, p.MaxHeight, p.Ratio, p.FlatWidth)

	if logs {
		dim := lipgloss.NewStyle().Foreground(theme.LayoutDim())
		for _, msg := range a.LogMessages {
			lipgloss.Println(dim.Render(msg.Time.Format("15:04:05")) + " " + msg.Level + " " + msg.Message)
		}
	}
	return nil
}

// layoutRows formats the laid out icons of p, one row per icon.
func layoutRows(p *dock.Panel) [][]string {
	rows := make([][]string, 0, len(p.Icons))
	for i, icon := range p.Icons {
		pointed := "no"
		if icon.Pointed {
			pointed = "yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			icon.Name,
			icon.Kind.String(),
			strconv.FormatFloat(icon.X, 'f', 1, 64),
			strconv.FormatFloat(icon.Y, 'f', 1, 64),
			strconv.FormatFloat(icon.Scale, 'f', 2, 64),
			strconv.FormatFloat(icon.Width*icon.Scale, 'f', 1, 64),
			pointed,
		})
	}
	return rows
}
