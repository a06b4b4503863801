package snow

import (
	"math"
	"testing"

	"github.com/lixenwraith/snowtree/constant"
)

func snapshot(l *Layer) []string {
	rows := make([]string, l.Height())
	for y := range rows {
		rows[y] = string(l.Row(y))
	}
	return rows
}

func TestNew_Dimensions(t *testing.T) {
	l := New(constant.SceneWidth, constant.SceneHeight, constant.SnowflakeChance, NewSeededSource(1))

	if l.Width() != constant.SceneWidth || l.Height() != constant.SceneHeight {
		t.Fatalf("Expected %dx%d, got %dx%d", constant.SceneWidth, constant.SceneHeight, l.Width(), l.Height())
	}
	for y := 0; y < l.Height(); y++ {
		row := l.Row(y)
		if len(row) != constant.SceneWidth {
			t.Fatalf("Row %d: expected %d cells, got %d", y, constant.SceneWidth, len(row))
		}
		for x, r := range row {
			if r != constant.SnowGlyph && r != constant.BlankGlyph {
				t.Fatalf("Unexpected glyph %q at (%d, %d)", r, x, y)
			}
		}
	}
}

func TestAdvance_ScrollsDown(t *testing.T) {
	l := New(64, 16, 50, NewSeededSource(42))
	before := snapshot(l)

	l.Advance()
	after := snapshot(l)

	for i := 1; i < l.Height(); i++ {
		if after[i] != before[i-1] {
			t.Errorf("Row %d: expected previous row %d content", i, i-1)
		}
	}
	// 64 cells at ~49% density: identical top rows are vanishingly unlikely
	if after[0] == before[0] {
		t.Error("Expected a freshly generated top row")
	}
}

func TestAdvance_DiscardsBottomRow(t *testing.T) {
	l := New(3, 3, 1, NewSeededSource(7)) // threshold 1 never yields a flake
	l.SetFlake(1, 2, true)

	l.Advance()

	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			if l.IsFlake(x, y) {
				t.Errorf("Flake at (%d, %d) should have scrolled off without wraparound", x, y)
			}
		}
	}
}

func TestAdvance_FlakeFalls(t *testing.T) {
	l := New(5, 4, 1, NewSeededSource(7))
	l.SetFlake(2, 0, true)

	for step := 1; step < l.Height(); step++ {
		l.Advance()
		if !l.IsFlake(2, step) {
			t.Fatalf("Step %d: expected flake at row %d", step, step)
		}
		if l.IsFlake(2, step-1) {
			t.Fatalf("Step %d: flake left behind at row %d", step, step-1)
		}
	}
}

func TestAdvance_DoesNotAllocate(t *testing.T) {
	l := New(constant.SceneWidth, constant.SceneHeight, constant.SnowflakeChance, NewSeededSource(3))
	allocs := testing.AllocsPerRun(100, l.Advance)
	if allocs != 0 {
		t.Errorf("Expected zero allocations per Advance, got %.1f", allocs)
	}
}

func TestGenerateRow_Density(t *testing.T) {
	l := New(1000, 1, constant.SnowflakeChance, NewSeededSource(2024))

	const rows = 100
	flakes := 0
	for i := 0; i < rows; i++ {
		for _, r := range l.GenerateRow() {
			if r == constant.SnowGlyph {
				flakes++
			}
		}
	}

	total := float64(rows * l.Width())
	got := float64(flakes) / total
	want := Probability(constant.SnowflakeChance)
	// 5 sigma for p=0.02 over 100k cells is ~0.0022
	if math.Abs(got-want) > 0.003 {
		t.Errorf("Density %.4f outside tolerance of %.4f", got, want)
	}
}

func TestProbability(t *testing.T) {
	tests := []struct {
		threshold int
		want      float64
	}{
		{-5, 0},
		{1, 0},
		{2, 0.01},
		{3, 0.02},
		{51, 0.5},
		{101, 1},
		{500, 1},
	}
	for _, tt := range tests {
		if got := Probability(tt.threshold); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Probability(%d) = %f, want %f", tt.threshold, got, tt.want)
		}
	}
}

func TestThresholdExtremes(t *testing.T) {
	empty := New(50, 5, 1, NewSeededSource(9))
	full := New(50, 5, 101, NewSeededSource(9))
	for y := 0; y < 5; y++ {
		for x := 0; x < 50; x++ {
			if empty.IsFlake(x, y) {
				t.Fatalf("Threshold 1 produced a flake at (%d, %d)", x, y)
			}
			if !full.IsFlake(x, y) {
				t.Fatalf("Threshold 101 left (%d, %d) empty", x, y)
			}
		}
	}
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := New(40, 10, 30, NewSeededSource(123))
	b := New(40, 10, 30, NewSeededSource(123))
	for i := 0; i < 5; i++ {
		a.Advance()
		b.Advance()
	}
	sa, sb := snapshot(a), snapshot(b)
	for y := range sa {
		if sa[y] != sb[y] {
			t.Fatalf("Row %d differs between equally seeded layers", y)
		}
	}
}

func TestNewSource_Unseeded(t *testing.T) {
	a := New(200, 4, 50, NewSource())
	b := New(200, 4, 50, NewSource())
	if string(a.Row(0)) == string(b.Row(0)) && string(a.Row(1)) == string(b.Row(1)) {
		t.Error("Entropy-seeded layers produced identical content")
	}
}

func TestClearAndBounds(t *testing.T) {
	l := New(4, 4, 101, NewSeededSource(1))
	l.Clear()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if l.IsFlake(x, y) {
				t.Fatalf("Expected cleared layer, flake at (%d, %d)", x, y)
			}
		}
	}
	if l.IsFlake(-1, 0) || l.IsFlake(0, 4) {
		t.Error("Out of bounds must report no flake")
	}
	l.SetFlake(10, 10, true) // ignored
	if l.Row(4) != nil {
		t.Error("Expected nil row out of range")
	}
}

func TestZeroHeightAdvance(t *testing.T) {
	l := New(10, 0, 3, NewSeededSource(1))
	l.Advance()
	if l.Height() != 0 {
		t.Error("Expected empty layer to stay empty")
	}
}
