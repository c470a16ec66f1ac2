package pipeline

import (
	"fmt"
	"image"
	"image/color"
)

// =============================================================================
// Common Types
// =============================================================================

// Buffer is the pixel buffer every stage produces.
// Pixels are non-premultiplied RGBA, row-major, with bounds starting at (0,0).
type Buffer = image.NRGBA

// Rect is a rectangle in 64-unit texture grid coordinates.
// Callers multiply by the texture ratio before touching pixels.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Scale returns the pixel rectangle for the given ratio.
func (r Rect) Scale(ratio int) image.Rectangle {
	return image.Rect(r.X*ratio, r.Y*ratio, (r.X+r.W)*ratio, (r.Y+r.H)*ratio)
}

// =============================================================================
// Texture Layout
// =============================================================================

// LayerMode tells whether a skin carries the second (overlay) layer.
type LayerMode int

const (
	// LayerSingle is the legacy 64x32 layout without overlay parts.
	LayerSingle LayerMode = iota
	// LayerDouble is the 64x64 layout with overlay parts.
	LayerDouble
)

// String returns the string representation of the layer mode.
func (m LayerMode) String() string {
	switch m {
	case LayerSingle:
		return "single"
	case LayerDouble:
		return "double"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m LayerMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// TextureLayout is the resolved geometry of a decoded skin.
type TextureLayout struct {
	Ratio  int       `json:"ratio"`
	Layer  LayerMode `json:"layer"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
}

// =============================================================================
// Render Parameters
// =============================================================================

// ModelVariant selects the arm width a skin is authored against.
type ModelVariant int

const (
	// ModelSteve has 4 unit wide arms.
	ModelSteve ModelVariant = iota
	// ModelAlex has 3 unit wide arms.
	ModelAlex
)

// String returns the string representation of the model.
func (m ModelVariant) String() string {
	switch m {
	case ModelSteve:
		return "steve"
	case ModelAlex:
		return "alex"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a known model.
func (m ModelVariant) Valid() bool {
	return m == ModelSteve || m == ModelAlex
}

// ParseModel parses a model name. "slim" is accepted as an alias of alex.
func ParseModel(s string) (ModelVariant, error) {
	switch s {
	case "steve", "default", "":
		return ModelSteve, nil
	case "alex", "slim":
		return ModelAlex, nil
	default:
		return 0, fmt.Errorf("%w: unknown model %q", ErrInvalidParameter, s)
	}
}

// ViewAngle selects which face of the head an avatar shows.
type ViewAngle int

const (
	ViewFront ViewAngle = iota
	ViewLeft
	ViewRight
	ViewBack
)

// String returns the string representation of the view.
func (v ViewAngle) String() string {
	switch v {
	case ViewFront:
		return "front"
	case ViewLeft:
		return "left"
	case ViewRight:
		return "right"
	case ViewBack:
		return "back"
	default:
		return "unknown"
	}
}

// Valid reports whether v is a known view.
func (v ViewAngle) Valid() bool {
	return v >= ViewFront && v <= ViewBack
}

// ParseView parses a view name. Single letter forms (f, l, r, b) are accepted.
func ParseView(s string) (ViewAngle, error) {
	switch s {
	case "front", "f", "":
		return ViewFront, nil
	case "left", "l":
		return ViewLeft, nil
	case "right", "r":
		return ViewRight, nil
	case "back", "b":
		return ViewBack, nil
	default:
		return 0, fmt.Errorf("%w: unknown view %q", ErrInvalidParameter, s)
	}
}

// Side selects which poses a preview shows.
type Side int

const (
	SideBoth Side = iota
	SideFront
	SideBack
)

// String returns the string representation of the side.
func (s Side) String() string {
	switch s {
	case SideBoth:
		return "both"
	case SideFront:
		return "front"
	case SideBack:
		return "back"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a known side.
func (s Side) Valid() bool {
	return s >= SideBoth && s <= SideBack
}

// ParseSide parses a side name.
func ParseSide(s string) (Side, error) {
	switch s {
	case "both", "":
		return SideBoth, nil
	case "front":
		return SideFront, nil
	case "back":
		return SideBack, nil
	default:
		return 0, fmt.Errorf("%w: unknown side %q", ErrInvalidParameter, s)
	}
}

// =============================================================================
// Stage Inputs
// =============================================================================

// AvatarInput contains parameters for avatar rendering.
type AvatarInput struct {
	Texture image.Image
	Size    int // Output edge length in pixels
	View    ViewAngle
	Model   ModelVariant
}

// PreviewInput contains parameters for full body preview rendering.
type PreviewInput struct {
	Texture image.Image
	Size    int // Output height in pixels
	Side    Side
	Model   ModelVariant
	Gap     int // Gap between front and back poses, in grid units
}

// DefaultGap is the gap between front and back poses when none is configured.
const DefaultGap = 4

// CapeInput contains parameters for cape preview rendering.
type CapeInput struct {
	Texture image.Image
}

// RegionMapInput contains parameters for the annotated texture map.
type RegionMapInput struct {
	Name       string // Used to name debug artifacts
	Texture    image.Image
	Model      ModelVariant
	Scale      int         // Screen pixels per grid unit; 0 picks DefaultRegionMapScale
	Background color.Color // nil picks a dark grey
}

// DefaultRegionMapScale upscales a 64 unit wide texture to 512 pixels.
const DefaultRegionMapScale = 8

// Cape preview canvas geometry.
const (
	CapeCanvasWidth  = 250
	CapeCanvasHeight = 166
	CapeFrontWidth   = 64
	CapeFrontHeight  = 100
	CapeFrontX       = (CapeCanvasWidth - CapeFrontWidth) / 2
	CapeFrontY       = 30
)

// =============================================================================
// Stage Results
// =============================================================================

// RenderResult contains a rendered image.
type RenderResult struct {
	Image  *Buffer
	Layout TextureLayout // Zero for cape renders
	Canvas *Buffer       // Unscaled composition, previews only
}

// RegionMapResult contains an annotated texture map.
type RegionMapResult struct {
	Image   image.Image
	Layout  TextureLayout
	Regions int // Number of outlined parts
}
