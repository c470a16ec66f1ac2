// Package blit provides the pixel copy primitives used by the compositing stages.
//
// Every function writes only into the destination it is given and reads the
// source without modifying it, so concurrent calls on distinct destinations
// need no locking.
package blit

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// NewCanvas returns a fully transparent buffer of the given size.
func NewCanvas(width, height int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// Normalize returns img as an NRGBA buffer whose bounds start at (0,0).
// The input is returned unchanged when it already has that form; otherwise
// a converted copy is made. Callers must treat the result as read-only.
func Normalize(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return Crop(img, img.Bounds())
}

// Crop copies r out of src into a new buffer with bounds starting at (0,0).
// Pixels of r that fall outside src stay transparent.
func Crop(src image.Image, r image.Rectangle) *image.NRGBA {
	dst := NewCanvas(r.Dx(), r.Dy())
	n, ok := src.(*image.NRGBA)
	if !ok {
		draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
		return dst
	}

	// Row copy keeps the exact bytes, including colour of transparent pixels.
	in := r.Intersect(n.Rect)
	for y := in.Min.Y; y < in.Max.Y; y++ {
		from := n.Pix[n.PixOffset(in.Min.X, y):n.PixOffset(in.Max.X, y)]
		copy(dst.Pix[dst.PixOffset(in.Min.X-r.Min.X, y-r.Min.Y):], from)
	}
	return dst
}

// ScaledCopy copies sr of src into dr of dst using nearest-neighbour sampling.
// When dr and sr have the same size the copy is 1:1.
//
// Parts of sr outside the source bounds are dropped and dr shrinks in
// proportion; parts of dr outside the destination are clipped. Use draw.Over
// to alpha-blend or draw.Src to replace destination pixels. A Src copy between
// two NRGBA buffers keeps the source bytes exactly, partial alpha included.
func ScaledCopy(dst draw.Image, dr image.Rectangle, src image.Image, sr image.Rectangle, op draw.Op) {
	dr, sr = clipSource(dr, sr, src.Bounds())
	if dr.Empty() || sr.Empty() {
		return
	}
	if op == draw.Src {
		d, dok := dst.(*image.NRGBA)
		s, sok := src.(*image.NRGBA)
		if dok && sok {
			copyNearest(d, dr, s, sr)
			return
		}
	}
	draw.NearestNeighbor.Scale(dst, dr, src, sr, op, nil)
}

// copyNearest samples the same source pixels as draw.NearestNeighbor but
// copies bytes instead of going through premultiplied colour.
func copyNearest(dst *image.NRGBA, dr image.Rectangle, src *image.NRGBA, sr image.Rectangle) {
	out := dr.Intersect(dst.Rect)
	sw, sh := sr.Dx(), sr.Dy()
	dw, dh := dr.Dx(), dr.Dy()
	for y := out.Min.Y; y < out.Max.Y; y++ {
		sy := sr.Min.Y + (2*(y-dr.Min.Y)+1)*sh/(2*dh)
		for x := out.Min.X; x < out.Max.X; x++ {
			sx := sr.Min.X + (2*(x-dr.Min.X)+1)*sw/(2*dw)
			si := src.PixOffset(sx, sy)
			di := dst.PixOffset(x, y)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
}

// MirroredCopy is ScaledCopy with the source flipped horizontally.
//
// Source columns are walked left to right while destination columns are
// filled right to left, one column strip at a time, so no intermediate
// buffer is allocated.
func MirroredCopy(dst draw.Image, dr image.Rectangle, src image.Image, sr image.Rectangle, op draw.Op) {
	if dr.Empty() || sr.Empty() {
		return
	}
	sw, dw := sr.Dx(), dr.Dx()
	for i := dw - 1; i >= 0; i-- {
		j := dw - 1 - i
		sx := sr.Min.X + (2*j+1)*sw/(2*dw)
		ScaledCopy(dst,
			image.Rect(dr.Min.X+i, dr.Min.Y, dr.Min.X+i+1, dr.Max.Y),
			src,
			image.Rect(sx, sr.Min.Y, sx+1, sr.Max.Y),
			op,
		)
	}
}

// KeyTransparency clears the alpha of every pixel exactly equal to key.
// It returns the number of pixels changed.
func KeyTransparency(buf *image.NRGBA, key color.NRGBA) int {
	if key.A == 0 {
		return 0
	}
	n := 0
	b := buf.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := buf.Pix[buf.PixOffset(b.Min.X, y):buf.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			if row[i] == key.R && row[i+1] == key.G && row[i+2] == key.B && row[i+3] == key.A {
				row[i+3] = 0
				n++
			}
		}
	}
	return n
}

// ColorAt returns the pixel at (x, y) as non-premultiplied RGBA.
func ColorAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

// clipSource intersects sr with the source bounds and shrinks dr by the
// same proportion.
func clipSource(dr, sr, bounds image.Rectangle) (image.Rectangle, image.Rectangle) {
	if dr.Empty() || sr.Empty() {
		return image.Rectangle{}, image.Rectangle{}
	}
	clipped := sr.Intersect(bounds)
	if clipped == sr {
		return dr, sr
	}
	if clipped.Empty() {
		return image.Rectangle{}, image.Rectangle{}
	}

	sw, sh := sr.Dx(), sr.Dy()
	dw, dh := dr.Dx(), dr.Dy()
	out := image.Rect(
		dr.Min.X+(clipped.Min.X-sr.Min.X)*dw/sw,
		dr.Min.Y+(clipped.Min.Y-sr.Min.Y)*dh/sh,
		dr.Min.X+(clipped.Max.X-sr.Min.X)*dw/sw,
		dr.Min.Y+(clipped.Max.Y-sr.Min.Y)*dh/sh,
	)
	return out, clipped
}
