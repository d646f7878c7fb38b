// SPDX-License-Identifier: Unlicense OR MIT

package f32

// Affine2D is an affine transform between two coordinate spaces. The
// zero value is the identity transform.
type Affine2D struct {
	// The matrix
	//
	//	[sx, hx, ox]
	//	[hy, sy, oy]
	//	[ 0,  0,  1]
	//
	// is stored with the identity subtracted, so a = sx-1 and e = sy-1.
	a, b, c float32
	d, e, f float32
}

// Offset returns the transform followed by a translation.
func (a Affine2D) Offset(offset Point) Affine2D {
	a.c += offset.X
	a.f += offset.Y
	return a
}

// Invert returns the inverse transform. A singular transform yields
// infinities.
func (a Affine2D) Invert() Affine2D {
	if a.a == 0 && a.b == 0 && a.d == 0 && a.e == 0 {
		return Affine2D{c: -a.c, f: -a.f}
	}
	sx, sy := a.a+1, a.e+1
	det := sx*sy - a.b*a.d
	isx, isy := sy/det, sx/det
	ihx, ihy := -a.b/det, -a.d/det
	return Affine2D{
		a: isx - 1, b: ihx, c: -isx*a.c - ihx*a.f,
		d: ihy, e: isy - 1, f: -ihy*a.c - isy*a.f,
	}
}

// Transform maps p through the transform.
func (a Affine2D) Transform(p Point) Point {
	return Point{
		X: p.X*(a.a+1) + p.Y*a.b + a.c,
		Y: p.X*a.d + p.Y*(a.e+1) + a.f,
	}
}
