package render

import (
	"image/color"

	"infinite-life/pkg/core"
)

// CellReader reports whether a cell is alive.
type CellReader interface {
	Alive(p core.Point) bool
}

// SampleWindow copies the cells of view into dst (row-major, 1 = alive),
// reallocating dst when it has the wrong size.
func SampleWindow(dst []uint8, src CellReader, view core.Rect) []uint8 {
	if len(dst) != view.Area() {
		dst = make([]uint8, view.Area())
	}
	for ry := 0; ry < view.H; ry++ {
		for rx := 0; rx < view.W; rx++ {
			var v uint8
			if src.Alive(view.At(rx, ry)) {
				v = 1
			}
			dst[ry*view.W+rx] = v
		}
	}
	return dst
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
