package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
)

func intPtr(i int) *int { return &i }

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"FF00B050", "#00B050", true},
		{"00B050", "#00B050", true},
		{"#00b050", "#00B050", true},
		{" 7f4472c4 ", "#4472C4", true},
		{"FFF", "", false},
		{"GG0000", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Normalize(tt.input)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("Normalize(%q) = %q, %v, expected %q, %v", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestResolveDirect(t *testing.T) {
	r := NewResolver(nil)

	res, ok := r.ResolveFill(models.DirectFill("FF00B050"))
	require.True(t, ok)
	assert.Equal(t, "#00B050", res.Color)
	assert.Equal(t, StrategyDirect, res.Strategy)
}

func TestResolveAlphaRoundTrip(t *testing.T) {
	r := NewResolver(nil)
	for _, rgb := range []string{"4472C4", "00B050", "FFC000", "7030A0", "123456", "000000"} {
		for _, alpha := range []string{"FF", "00", "7F"} {
			withAlpha, ok1 := r.ResolveFill(models.DirectFill(alpha + rgb))
			stripped, ok2 := r.ResolveFill(models.DirectFill(rgb))
			require.True(t, ok1)
			require.True(t, ok2)
			assert.Equal(t, stripped, withAlpha, "alpha %s rgb %s", alpha, rgb)

			again, ok := r.ResolveFill(models.DirectFill(withAlpha.Color))
			require.True(t, ok)
			assert.Equal(t, withAlpha.Color, again.Color, "re-resolution must be idempotent")
		}
	}
}

func TestResolveWhiteSuppressedOnlyAtDirectStep(t *testing.T) {
	r := NewResolver(nil)

	_, ok := r.ResolveFill(models.DirectFill("FFFFFFFF"))
	assert.False(t, ok, "direct white is background")

	// White foreground with a themed background still resolves through the theme.
	fill := &models.FillStyle{
		Pattern:    "solid",
		Foreground: &models.ColorRef{RGB: "FFFFFF"},
		Background: &models.ColorRef{Theme: intPtr(9)},
	}
	res, ok := r.ResolveFill(fill)
	require.True(t, ok)
	assert.Equal(t, "#70AD47", res.Color)
	assert.Equal(t, StrategyThemed, res.Strategy)

	// Indexed white is an explicit palette reference and is kept.
	res, ok = r.ResolveFill(models.IndexedFill(9))
	require.True(t, ok)
	assert.Equal(t, White, res.Color)
}

func TestResolveIndexed(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		idx      int
		expected string
		ok       bool
	}{
		{17, "#008000", true},
		{80, "#0070C0", true},
		{81, "#FFC000", true},
		{120, NeutralGray, true},
		{SystemForeground, "", false},
		{SystemBackground, "", false},
	}

	for _, tt := range tests {
		res, ok := r.ResolveFill(&models.FillStyle{Foreground: &models.ColorRef{Indexed: intPtr(tt.idx)}})
		if tt.ok {
			require.True(t, ok, "index %d", tt.idx)
			assert.Equal(t, tt.expected, res.Color, "index %d", tt.idx)
		} else {
			assert.False(t, ok, "index %d", tt.idx)
		}
	}
}

func TestResolveThemeTint(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		theme    int
		tint     float64
		expected string
	}{
		{4, 0, "#4472C4"},
		{4, 0.5, "#A2B9E2"},
		{4, -0.5, "#223962"},
		{1, 1, "#FFFFFF"},
		{0, -1, "#000000"},
	}

	for _, tt := range tests {
		res, ok := r.ResolveFill(models.ThemedFill(tt.theme, tt.tint))
		require.True(t, ok)
		assert.Equal(t, tt.expected, res.Color, "theme %d tint %v", tt.theme, tt.tint)
	}

	_, ok := r.ResolveFill(models.ThemedFill(12, 0))
	assert.False(t, ok)
}

func TestResolvePatternOnly(t *testing.T) {
	r := NewResolver(nil)

	res, ok := r.ResolveFill(models.PatternOnlyFill("gray125"))
	require.True(t, ok)
	assert.Equal(t, NeutralGray, res.Color)
	assert.Equal(t, StrategyPattern, res.Strategy)

	_, ok = r.ResolveFill(models.PatternOnlyFill(models.PatternNone))
	assert.False(t, ok)

	_, ok = r.Resolve(models.Cell{Value: "x"})
	assert.False(t, ok)

	// A solid white fill is background, not intentional formatting.
	_, ok = r.ResolveFill(&models.FillStyle{
		Pattern:    "solid",
		Foreground: &models.ColorRef{RGB: "FFFFFFFF"},
		Background: &models.ColorRef{Indexed: intPtr(SystemForeground)},
	})
	assert.False(t, ok)
}

func TestResolveRedPriority(t *testing.T) {
	r := NewResolver(nil)

	fills := []*models.FillStyle{
		models.DirectFill("FFFF0000"),
		models.DirectFill("FE0000"),
		models.IndexedFill(2),
		models.IndexedFill(10),
		models.IndexedFill(60),
		models.IndexedFill(68),
		{Pattern: "solid", Foreground: &models.ColorRef{Theme: intPtr(4)}, Background: &models.ColorRef{RGB: "FFFF0000"}},
		{Pattern: "solid", Foreground: &models.ColorRef{RGB: "00B050"}, Background: &models.ColorRef{Indexed: intPtr(10)}},
	}

	for i, f := range fills {
		res, ok := r.ResolveFill(f)
		require.True(t, ok, "fill %d", i)
		assert.Equal(t, Red, res.Color, "fill %d", i)
		assert.Equal(t, StrategyRed, res.Strategy, "fill %d", i)
	}
}

func TestPaletteOverrides(t *testing.T) {
	p := NewPalette(
		WithIndexedColors([]string{"FF111111"}),
		WithCustomIndexed(map[int]string{92: "#ABCDEF", 200: "#000000"}),
		WithTheme([]string{"FEFEFE", "bogus"}),
		WithNeutral("#999999"),
	)

	c, ok := p.Indexed(0)
	require.True(t, ok)
	assert.Equal(t, "#111111", c)

	c, _ = p.Indexed(92)
	assert.Equal(t, "#ABCDEF", c)

	c, _ = p.Theme(0)
	assert.Equal(t, "#FEFEFE", c)
	c, _ = p.Theme(1)
	assert.Equal(t, "#000000", c, "unparseable theme entry keeps the default")

	c, _ = p.Indexed(99)
	assert.Equal(t, "#999999", c)
}
