package color

import (
	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
)

// Strategy names a step of the resolution chain.
type Strategy string

const (
	StrategyRed     Strategy = "red"
	StrategyDirect  Strategy = "direct"
	StrategyIndexed Strategy = "indexed"
	StrategyThemed  Strategy = "themed"
	StrategyPattern Strategy = "pattern"
)

// Resolution is a resolved colour and the strategy that produced it.
type Resolution struct {
	Color    string
	Strategy Strategy
}

// redRGB lists exact and near-exact red signatures written by common tools.
var redRGB = map[string]bool{
	"#FF0000": true,
	"#FE0000": true,
	"#FF0101": true,
	"#FD0000": true,
	"#FF0505": true,
}

// redIndexed lists the palette slots authors use for red.
var redIndexed = map[int]bool{2: true, 10: true, 60: true, 68: true}

type step struct {
	name    Strategy
	resolve func(f *models.FillStyle) (string, bool)
}

// Resolver resolves cell fills through an ordered list of strategies; the
// first strategy that yields a colour wins.
type Resolver struct {
	palette *Palette
	steps   []step
}

// NewResolver returns a resolver over the given palette (nil uses the default).
func NewResolver(p *Palette) *Resolver {
	if p == nil {
		p = NewPalette()
	}
	r := &Resolver{palette: p}
	r.steps = []step{
		{StrategyRed, r.red},
		{StrategyDirect, r.direct},
		{StrategyIndexed, r.indexed},
		{StrategyThemed, r.themed},
		{StrategyPattern, r.pattern},
	}
	return r
}

// Palette returns the resolver's palette.
func (r *Resolver) Palette() *Palette {
	return r.palette
}

// Resolve returns the effective fill colour of a cell. It never fails; false
// means no colour could be established.
func (r *Resolver) Resolve(c models.Cell) (Resolution, bool) {
	return r.ResolveFill(c.Fill)
}

// ResolveFill resolves a raw fill.
func (r *Resolver) ResolveFill(f *models.FillStyle) (Resolution, bool) {
	if f == nil {
		return Resolution{}, false
	}
	for _, s := range r.steps {
		if c, ok := s.resolve(f); ok {
			return Resolution{Color: c, Strategy: s.name}, true
		}
	}
	return Resolution{}, false
}

func (r *Resolver) red(f *models.FillStyle) (string, bool) {
	for _, ref := range []*models.ColorRef{f.Background, f.Foreground} {
		if ref == nil {
			continue
		}
		if ref.RGB != "" && IsRed(ref.RGB) {
			return Red, true
		}
		if ref.Indexed != nil && redIndexed[*ref.Indexed] {
			return Red, true
		}
	}
	return "", false
}

func (r *Resolver) direct(f *models.FillStyle) (string, bool) {
	if f.Pattern == models.PatternNone {
		return "", false
	}
	for _, ref := range []*models.ColorRef{f.Foreground, f.Background} {
		if ref == nil || ref.RGB == "" {
			continue
		}
		hex, ok := Normalize(ref.RGB)
		if !ok || hex == White {
			continue
		}
		return hex, true
	}
	return "", false
}

func (r *Resolver) indexed(f *models.FillStyle) (string, bool) {
	if f.Pattern == models.PatternNone {
		return "", false
	}
	for _, ref := range []*models.ColorRef{f.Foreground, f.Background} {
		if ref == nil || ref.Indexed == nil {
			continue
		}
		if hex, ok := r.palette.Indexed(*ref.Indexed); ok {
			return hex, true
		}
	}
	return "", false
}

func (r *Resolver) themed(f *models.FillStyle) (string, bool) {
	if f.Pattern == models.PatternNone {
		return "", false
	}
	for _, ref := range []*models.ColorRef{f.Foreground, f.Background} {
		if ref == nil || ref.Theme == nil {
			continue
		}
		if hex, ok := r.palette.Theme(*ref.Theme); ok {
			return ApplyTint(hex, ref.Tint), true
		}
	}
	return "", false
}

// pattern reports intentional formatting whose colour is unrecoverable. A
// fill that resolved to explicit white is background, not formatting.
func (r *Resolver) pattern(f *models.FillStyle) (string, bool) {
	if !f.HasPattern() || IsBackgroundFill(f) {
		return "", false
	}
	return r.palette.Neutral(), true
}

// IsBackgroundFill reports whether a fill paints explicit white, the default
// sheet background.
func IsBackgroundFill(f *models.FillStyle) bool {
	if f == nil {
		return false
	}
	for _, ref := range []*models.ColorRef{f.Foreground, f.Background} {
		if ref != nil && ref.RGB != "" && IsWhite(ref.RGB) {
			return true
		}
	}
	return false
}

// IsRed reports whether a hex value carries a red signature.
func IsRed(hex string) bool {
	n, ok := Normalize(hex)
	if !ok {
		return false
	}
	if redRGB[n] {
		return true
	}
	cr, cg, cb, _ := channels(n)
	return cr >= 0xF0 && cg <= 0x10 && cb <= 0x10
}
