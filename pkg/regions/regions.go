// Package regions holds the source geometry of the skin texture grid.
//
// Every rectangle is expressed in 64-unit grid coordinates. The tables are
// static and never scaled here; callers multiply by the texture ratio.
package regions

import (
	"github.com/user/skinview/pkg/pipeline"
)

// Part names an anatomical face of the skin texture.
type Part int

const (
	HeadRight Part = iota
	HeadFront
	HeadLeft
	HeadBack
	HatRight
	HatFront
	HatLeft
	HatBack
	BodyFront
	BodyBack
	RightArmFront
	RightArmBack
	RightLegFront
	RightLegBack

	// Parts below only exist in double layer textures.
	LeftArmFront
	LeftArmBack
	LeftLegFront
	LeftLegBack
	BodyFrontOverlay
	BodyBackOverlay
	RightArmFrontOverlay
	RightArmBackOverlay
	LeftArmFrontOverlay
	LeftArmBackOverlay
	RightLegFrontOverlay
	RightLegBackOverlay
	LeftLegFrontOverlay
	LeftLegBackOverlay

	partCount
)

var partNames = [partCount]string{
	"head-right", "head-front", "head-left", "head-back",
	"hat-right", "hat-front", "hat-left", "hat-back",
	"body-front", "body-back",
	"right-arm-front", "right-arm-back",
	"right-leg-front", "right-leg-back",
	"left-arm-front", "left-arm-back",
	"left-leg-front", "left-leg-back",
	"body-front-overlay", "body-back-overlay",
	"right-arm-front-overlay", "right-arm-back-overlay",
	"left-arm-front-overlay", "left-arm-back-overlay",
	"right-leg-front-overlay", "right-leg-back-overlay",
	"left-leg-front-overlay", "left-leg-back-overlay",
}

// String returns the part name.
func (p Part) String() string {
	if p < 0 || p >= partCount {
		return "unknown"
	}
	return partNames[p]
}

// DoubleOnly reports whether the part is only authored in double layer textures.
func (p Part) DoubleOnly() bool {
	return p >= LeftArmFront && p < partCount
}

// Overlay reports whether the part belongs to the second layer.
// The hat is a second layer part that legacy textures also carry.
func (p Part) Overlay() bool {
	return (p >= HatRight && p <= HatBack) || (p >= BodyFrontOverlay && p < partCount)
}

// Parts returns every part in drawing order of the table.
func Parts() []Part {
	parts := make([]Part, partCount)
	for i := range parts {
		parts[i] = Part(i)
	}
	return parts
}

// Head returns the head face shown for a view angle.
func Head(view pipeline.ViewAngle) Part {
	switch view {
	case pipeline.ViewLeft:
		return HeadLeft
	case pipeline.ViewRight:
		return HeadRight
	case pipeline.ViewBack:
		return HeadBack
	default:
		return HeadFront
	}
}

// Hat returns the hat face drawn over Head(view).
func Hat(view pipeline.ViewAngle) Part {
	return Head(view) + (HatRight - HeadRight)
}

// The two variant sets are listed in full. Arm offsets in the overlay layer
// do not follow from the arm width alone, so nothing here is derived.
var tables = [2][partCount]pipeline.Rect{
	pipeline.ModelSteve: {
		HeadRight: {X: 0, Y: 8, W: 8, H: 8},
		HeadFront: {X: 8, Y: 8, W: 8, H: 8},
		HeadLeft:  {X: 16, Y: 8, W: 8, H: 8},
		HeadBack:  {X: 24, Y: 8, W: 8, H: 8},
		HatRight:  {X: 32, Y: 8, W: 8, H: 8},
		HatFront:  {X: 40, Y: 8, W: 8, H: 8},
		HatLeft:   {X: 48, Y: 8, W: 8, H: 8},
		HatBack:   {X: 56, Y: 8, W: 8, H: 8},

		BodyFront:     {X: 20, Y: 20, W: 8, H: 12},
		BodyBack:      {X: 32, Y: 20, W: 8, H: 12},
		RightArmFront: {X: 44, Y: 20, W: 4, H: 12},
		RightArmBack:  {X: 52, Y: 20, W: 4, H: 12},
		RightLegFront: {X: 4, Y: 20, W: 4, H: 12},
		RightLegBack:  {X: 12, Y: 20, W: 4, H: 12},

		LeftArmFront: {X: 36, Y: 52, W: 4, H: 12},
		LeftArmBack:  {X: 44, Y: 52, W: 4, H: 12},
		LeftLegFront: {X: 20, Y: 52, W: 4, H: 12},
		LeftLegBack:  {X: 28, Y: 52, W: 4, H: 12},

		BodyFrontOverlay:     {X: 20, Y: 36, W: 8, H: 12},
		BodyBackOverlay:      {X: 32, Y: 36, W: 8, H: 12},
		RightArmFrontOverlay: {X: 44, Y: 36, W: 4, H: 12},
		RightArmBackOverlay:  {X: 52, Y: 36, W: 4, H: 12},
		LeftArmFrontOverlay:  {X: 52, Y: 52, W: 4, H: 12},
		LeftArmBackOverlay:   {X: 60, Y: 52, W: 4, H: 12},
		RightLegFrontOverlay: {X: 4, Y: 36, W: 4, H: 12},
		RightLegBackOverlay:  {X: 12, Y: 36, W: 4, H: 12},
		LeftLegFrontOverlay:  {X: 4, Y: 52, W: 4, H: 12},
		LeftLegBackOverlay:   {X: 12, Y: 52, W: 4, H: 12},
	},
	pipeline.ModelAlex: {
		HeadRight: {X: 0, Y: 8, W: 8, H: 8},
		HeadFront: {X: 8, Y: 8, W: 8, H: 8},
		HeadLeft:  {X: 16, Y: 8, W: 8, H: 8},
		HeadBack:  {X: 24, Y: 8, W: 8, H: 8},
		HatRight:  {X: 32, Y: 8, W: 8, H: 8},
		HatFront:  {X: 40, Y: 8, W: 8, H: 8},
		HatLeft:   {X: 48, Y: 8, W: 8, H: 8},
		HatBack:   {X: 56, Y: 8, W: 8, H: 8},

		BodyFront:     {X: 20, Y: 20, W: 8, H: 12},
		BodyBack:      {X: 32, Y: 20, W: 8, H: 12},
		RightArmFront: {X: 44, Y: 20, W: 3, H: 12},
		RightArmBack:  {X: 51, Y: 20, W: 3, H: 12},
		RightLegFront: {X: 4, Y: 20, W: 4, H: 12},
		RightLegBack:  {X: 12, Y: 20, W: 4, H: 12},

		LeftArmFront: {X: 36, Y: 52, W: 3, H: 12},
		LeftArmBack:  {X: 43, Y: 52, W: 3, H: 12},
		LeftLegFront: {X: 20, Y: 52, W: 4, H: 12},
		LeftLegBack:  {X: 28, Y: 52, W: 4, H: 12},

		BodyFrontOverlay:     {X: 20, Y: 36, W: 8, H: 12},
		BodyBackOverlay:      {X: 32, Y: 36, W: 8, H: 12},
		RightArmFrontOverlay: {X: 44, Y: 36, W: 3, H: 12},
		RightArmBackOverlay:  {X: 51, Y: 36, W: 3, H: 12},
		LeftArmFrontOverlay:  {X: 52, Y: 52, W: 3, H: 12},
		LeftArmBackOverlay:   {X: 59, Y: 52, W: 3, H: 12},
		RightLegFrontOverlay: {X: 4, Y: 36, W: 4, H: 12},
		RightLegBackOverlay:  {X: 12, Y: 36, W: 4, H: 12},
		LeftLegFrontOverlay:  {X: 4, Y: 52, W: 4, H: 12},
		LeftLegBackOverlay:   {X: 12, Y: 52, W: 4, H: 12},
	},
}

// Lookup returns the source rectangle of a part for a model.
func Lookup(model pipeline.ModelVariant, part Part) (pipeline.Rect, bool) {
	if !model.Valid() || part < 0 || part >= partCount {
		return pipeline.Rect{}, false
	}
	return tables[model][part], true
}

// MustLookup is like Lookup but panics on an unknown model or part.
// It is meant for static pose tables whose keys are known at compile time.
func MustLookup(model pipeline.ModelVariant, part Part) pipeline.Rect {
	r, ok := Lookup(model, part)
	if !ok {
		panic("regions: unknown model or part")
	}
	return r
}

// Table returns every part present for the model and layer mode.
func Table(model pipeline.ModelVariant, layer pipeline.LayerMode) map[Part]pipeline.Rect {
	if !model.Valid() {
		return nil
	}
	out := make(map[Part]pipeline.Rect, partCount)
	for p := Part(0); p < partCount; p++ {
		if p.DoubleOnly() && layer != pipeline.LayerDouble {
			continue
		}
		out[p] = tables[model][p]
	}
	return out
}
