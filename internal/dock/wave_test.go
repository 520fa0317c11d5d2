package dock

import (
	"math"
	"testing"

	"github.com/Gaurav-Gosain/dockwave/internal/config"
)

func TestFlatWidth(t *testing.T) {
	par := config.DefaultParams()
	tests := []struct {
		name string
		n    int
		want float64
	}{
		{"empty", 0, 0},
		{"one icon", 1, 48},
		{"three icons", 3, 3*48 + 2*4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlatWidth(launchers(tt.n, par), par); got != tt.want {
				t.Errorf("FlatWidth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRestPositions(t *testing.T) {
	par := config.DefaultParams()
	icons := launchers(3, par)
	for i, want := range []float64{0, 52, 104} {
		if icons[i].XAtRest != want {
			t.Errorf("icons[%d].XAtRest = %v, want %v", i, icons[i].XAtRest, want)
		}
	}
}

func TestMagnitude(t *testing.T) {
	if got := Magnitude(0); got != 0 {
		t.Errorf("Magnitude(0) = %v, want 0", got)
	}
	if got := Magnitude(config.MagnitudeSteps); got != 1 {
		t.Errorf("Magnitude(max) = %v, want 1", got)
	}
	if got := Magnitude(config.MagnitudeSteps / 2); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("Magnitude(half) = %v, want 0.5", got)
	}
	prev := 0.0
	for i := 0; i <= config.MagnitudeSteps; i += 10 {
		m := Magnitude(i)
		if m < prev {
			t.Fatalf("Magnitude(%d) = %v is below Magnitude of a smaller index (%v)", i, m, prev)
		}
		prev = m
	}
}

func TestWaveAtZeroMagnitudeIsRest(t *testing.T) {
	par := config.DefaultParams()
	icons := launchers(5, par)
	flat := FlatWidth(icons, par)

	CalculateWave(icons, Wave{
		XAbs:        60,
		Magnitude:   0,
		FlatWidth:   flat,
		Width:       int(flat),
		Height:      100,
		Align:       0.5,
		DirectionUp: true,
	}, par)

	for i, icon := range icons {
		if icon.Scale != 1 {
			t.Errorf("icons[%d].Scale = %v, want 1", i, icon.Scale)
		}
		if math.Abs(icon.X-icon.XAtRest) > 1e-9 {
			t.Errorf("icons[%d].X = %v, want %v", i, icon.X, icon.XAtRest)
		}
	}
}

func TestWaveScalePeaksUnderPointer(t *testing.T) {
	par := config.DefaultParams()
	icons := launchers(5, par)
	flat := FlatWidth(icons, par)
	middle := int(icons[2].XAtRest + icons[2].Width/2)

	pointed := CalculateWave(icons, Wave{
		XAbs:        middle,
		Magnitude:   1,
		FlatWidth:   flat,
		Align:       0.5,
		DirectionUp: true,
	}, par)

	if pointed != icons[2] {
		t.Fatalf("pointed = %v, want icons[2]", pointed)
	}
	if want := 1 + par.Icons.Amplitude; math.Abs(icons[2].Scale-want) > 1e-9 {
		t.Errorf("pointed scale = %v, want %v", icons[2].Scale, want)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if icons[i].Scale >= icons[2].Scale || icons[i].Scale < 1 {
			t.Errorf("icons[%d].Scale = %v, want in [1, %v)", i, icons[i].Scale, icons[2].Scale)
		}
	}
	if icons[1].Scale <= icons[0].Scale {
		t.Errorf("scale does not decrease away from the pointer: %v <= %v", icons[1].Scale, icons[0].Scale)
	}
}

func TestWavePointedIcon(t *testing.T) {
	par := config.DefaultParams()
	tests := []struct {
		name  string
		xAbs  int
		width int
		want  int // index of the returned icon, -1 for nil
	}{
		{"inside the second icon", 76, 200, 1},
		{"left end", 0, 200, -1},
		{"beyond the left end is clamped", -30, 200, -1},
		{"right end", 152, 200, -1},
		{"beyond the right end is clamped", 400, 200, -1},
		{"in the gap, first match wins", 50, 200, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icons := launchers(3, par)
			got := CalculateWave(icons, Wave{
				XAbs:        tt.xAbs,
				Magnitude:   1,
				FlatWidth:   FlatWidth(icons, par),
				Width:       tt.width,
				Height:      100,
				Align:       0.5,
				DirectionUp: true,
			}, par)
			var want *Icon
			if tt.want >= 0 {
				want = icons[tt.want]
			}
			if got != want {
				t.Errorf("CalculateWave() = %v, want %v", got, want)
			}
		})
	}
}

func TestWaveFiveIcons(t *testing.T) {
	par := config.DefaultParams()
	icons := launchers(5, par)
	flat := FlatWidth(icons, par)
	if flat != 256 {
		t.Fatalf("FlatWidth() = %v, want 256", flat)
	}

	pointedCount := func() int {
		n := 0
		for _, icon := range icons {
			if icon.Pointed {
				n++
			}
		}
		return n
	}

	for _, magnitude := range []float64{0, 1} {
		wave := Wave{Magnitude: magnitude, FlatWidth: flat, Width: 400, Height: 100, Align: 0.5, DirectionUp: true}

		wave.XAbs = 9999
		CalculateWave(icons, wave, par)
		if last := icons[len(icons)-1]; last.Pointed {
			t.Errorf("magnitude %v: last icon pointed at XAbs=9999", magnitude)
		}

		for _, x := range []int{0, int(flat)} {
			wave.XAbs = x
			if got := CalculateWave(icons, wave, par); got != nil {
				t.Errorf("magnitude %v: CalculateWave() at XAbs=%d = %v, want nil", magnitude, x, got)
			}
			if n := pointedCount(); n != 0 {
				t.Errorf("magnitude %v: %d icons pointed at XAbs=%d, want 0", magnitude, n, x)
			}
		}

		for x := -20; x <= int(flat)+20; x++ {
			wave.XAbs = x
			CalculateWave(icons, wave, par)
			if n := pointedCount(); n > 1 {
				t.Fatalf("magnitude %v: %d icons pointed at XAbs=%d, want at most 1", magnitude, n, x)
			}
		}
	}
}

func TestWaveIsContinuous(t *testing.T) {
	par := config.DefaultParams()
	icons := launchers(5, par)
	flat := FlatWidth(icons, par)
	wave := Wave{Magnitude: 1, FlatWidth: flat, Align: 0.5, DirectionUp: true}

	prev := make([]float64, len(icons))
	for x := -20; x <= int(flat)+20; x++ {
		wave.XAbs = x
		CalculateWave(icons, wave, par)
		for i, icon := range icons {
			if x > -20 && math.Abs(icon.X-prev[i]) > 10 {
				t.Fatalf("icons[%d].X jumps from %v to %v at x=%d", i, prev[i], icon.X, x)
			}
			prev[i] = icon.X
		}
	}
}

func TestWaveIsTotal(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Params)
		n      int
	}{
		{"zero sinusoid width", func(p *config.Params) { p.Icons.SinusoidWidth = 0 }, 3},
		{"zero amplitude", func(p *config.Params) { p.Icons.Amplitude = 0 }, 3},
		{"single icon", nil, 1},
		{"no gap", func(p *config.Params) { p.Icons.Gap = 0 }, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			par := config.DefaultParams()
			if tt.mutate != nil {
				tt.mutate(&par)
			}
			icons := launchers(tt.n, par)
			for _, icon := range icons {
				icon.XMin, icon.XMax = -100, 1000
			}
			for _, x := range []int{-50, 0, 10, 75, 500} {
				CalculateWave(icons, Wave{
					XAbs: x, Magnitude: 1, FlatWidth: FlatWidth(icons, par),
					Width: 300, Height: 100, Align: 0.5, Folding: 0.5,
				}, par)
				for i, icon := range icons {
					for _, v := range []float64{icon.X, icon.Y, icon.Scale, icon.Phase} {
						if math.IsNaN(v) || math.IsInf(v, 0) {
							t.Fatalf("x=%d: icons[%d] has a non finite value %v", x, i, v)
						}
					}
				}
			}
		})
	}
}

func TestWaveEmptyList(t *testing.T) {
	if got := CalculateWave(nil, Wave{XAbs: 10, Magnitude: 1}, config.DefaultParams()); got != nil {
		t.Errorf("CalculateWave(nil) = %v, want nil", got)
	}
}

func TestMaxDockWidthEnvelope(t *testing.T) {
	tp := newTestPanel("main", 5, nil)
	flat := FlatWidth(tp.Icons, tp.params)
	RestPositions(tp.Icons, flat, tp.params)

	w := MaxDockWidth(tp.Panel, flat, 1, 0)
	if w <= flat {
		t.Errorf("MaxDockWidth() = %v, want more than the flat width %v", w, flat)
	}
	for i, icon := range tp.Icons {
		if icon.XMin > icon.XMax {
			t.Errorf("icons[%d] envelope [%v, %v] is empty", i, icon.XMin, icon.XMax)
		}
		if icon.Scale != 1 || icon.X != icon.XAtRest {
			t.Errorf("icons[%d] not put back at rest: scale %v, x %v", i, icon.Scale, icon.X)
		}
	}

	empty := newTestPanel("empty", 0, nil)
	par := empty.params
	want := 2*float64(par.Docks.Radius) + float64(par.Docks.LineWidth) + 2*float64(par.Docks.FrameMargin)
	if got := MaxDockWidth(empty.Panel, 0, 1, 0); got != want {
		t.Errorf("MaxDockWidth(empty) = %v, want %v", got, want)
	}
}

func TestFirstDrawnIndex(t *testing.T) {
	par := config.DefaultParams()
	tests := []struct {
		name    string
		pointed int
		want    int
	}{
		{"nothing pointed", -1, 0},
		{"first pointed", 0, 1},
		{"middle pointed", 1, 2},
		{"last pointed", 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icons := launchers(3, par)
			if tt.pointed >= 0 {
				icons[tt.pointed].Pointed = true
			}
			if got := FirstDrawnIndex(icons); got != tt.want {
				t.Errorf("FirstDrawnIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentDockWidth(t *testing.T) {
	empty := newTestPanel("empty", 0, nil)
	if got, want := CurrentDockWidth(empty.Panel), 1+2*float64(empty.params.Docks.FrameMargin); got != want {
		t.Errorf("CurrentDockWidth(empty) = %v, want %v", got, want)
	}

	tp := newTestPanel("main", 3, nil)
	RestPositions(tp.Icons, FlatWidth(tp.Icons, tp.params), tp.params)
	for _, icon := range tp.Icons {
		icon.X = icon.XAtRest
	}
	want := 152 + 2*float64(tp.params.Docks.FrameMargin)
	if got := CurrentDockWidth(tp.Panel); got != want {
		t.Errorf("CurrentDockWidth() = %v, want %v", got, want)
	}
}
