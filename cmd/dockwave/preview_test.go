package main

import (
	"testing"

	"github.com/Gaurav-Gosain/dockwave/internal/app"
	"github.com/Gaurav-Gosain/dockwave/internal/config"
	"github.com/Gaurav-Gosain/dockwave/internal/dock"
	"github.com/Gaurav-Gosain/dockwave/internal/headless"
	"github.com/Gaurav-Gosain/dockwave/internal/render"
)

func TestLayoutRows(t *testing.T) {
	cfg := config.DefaultConfig()
	a := app.New(app.Options{Params: cfg.Params()})
	newWindow := func(_ string, _ dock.Position) (dock.Window, error) {
		return headless.New(previewScreen), nil
	}
	if err := a.Build(cfg, newWindow); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	a.Loop.Drain(100)
	defer a.Close()

	p := a.Registry.PanelByName("main")
	if err := render.PointAtMiddle(p); err != nil {
		t.Fatalf("PointAtMiddle() error = %v", err)
	}

	rows := layoutRows(p)
	if len(rows) != len(p.Icons) {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(p.Icons))
	}
	pointed := 0
	for i, row := range rows {
		if len(row) != 8 {
			t.Errorf("row %d has %d columns, want 8", i, len(row))
		}
		if row[1] != p.Icons[i].Name {
			t.Errorf("row %d name = %q, want %q", i, row[1], p.Icons[i].Name)
		}
		if row[2] != p.Icons[i].Kind.String() {
			t.Errorf("row %d kind = %q, want %q", i, row[2], p.Icons[i].Kind.String())
		}
		if row[7] == "yes" {
			pointed++
		}
	}
	if pointed != 1 {
		t.Errorf("pointed rows = %d, want 1", pointed)
	}
}

func TestLayoutRowsEmptyPanel(t *testing.T) {
	p := dock.New(dock.Options{Name: "empty", Params: config.DefaultParams()})
	if rows := layoutRows(p); len(rows) != 0 {
		t.Errorf("layoutRows() = %v, want no rows", rows)
	}
}
