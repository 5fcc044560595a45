package model

// FixedLocation is a 2D position with a 28-bit signed whole part and a
// 4-bit unsigned fraction packed per axis. On the wire each axis is a single
// 32-bit integer (whole<<4)|frac. Arithmetic composes whole and fraction
// independently; callers are responsible for normalizing overflowed
// fractions into the whole part.
type FixedLocation struct {
	WholeX int32
	FracX  uint8
	WholeY int32
	FracY  uint8
}

const (
	fixedWholeBits = 28
	fixedFracMask  = 0xF
	fixedWholeMin  = -(1 << (fixedWholeBits - 1))
	fixedWholeMax  = (1 << (fixedWholeBits - 1)) - 1
)

// PackAxis combines a whole/fraction pair into the wire representation for
// one axis: (whole<<4)|frac.
func PackAxis(whole int32, frac uint8) int32 {
	return (whole << 4) | int32(frac&fixedFracMask)
}

// UnpackAxis splits a packed wire value back into whole and fraction.
func UnpackAxis(packed int32) (whole int32, frac uint8) {
	return packed >> 4, uint8(packed & fixedFracMask)
}

// NewFixedLocation builds a FixedLocation from unpacked whole/fraction pairs.
func NewFixedLocation(wholeX int32, fracX uint8, wholeY int32, fracY uint8) FixedLocation {
	return FixedLocation{WholeX: wholeX, FracX: fracX & fixedFracMask, WholeY: wholeY, FracY: fracY & fixedFracMask}
}

// FixedLocationFromPacked rebuilds a FixedLocation from the two packed axis
// values as transmitted on the wire.
func FixedLocationFromPacked(packedX, packedY int32) FixedLocation {
	wx, fx := UnpackAxis(packedX)
	wy, fy := UnpackAxis(packedY)
	return FixedLocation{WholeX: wx, FracX: fx, WholeY: wy, FracY: fy}
}

// PackedX returns this location's X axis in wire form.
func (f FixedLocation) PackedX() int32 {
	return PackAxis(f.WholeX, f.FracX)
}

// PackedY returns this location's Y axis in wire form.
func (f FixedLocation) PackedY() int32 {
	return PackAxis(f.WholeY, f.FracY)
}

// Add composes two FixedLocations axis-wise with no carry between fraction
// and whole parts.
func (f FixedLocation) Add(o FixedLocation) FixedLocation {
	return FixedLocation{
		WholeX: f.WholeX + o.WholeX,
		FracX:  f.FracX + o.FracX,
		WholeY: f.WholeY + o.WholeY,
		FracY:  f.FracY + o.FracY,
	}
}
