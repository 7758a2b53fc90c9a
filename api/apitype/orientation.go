package apitype

import (
	"fmt"
	"strings"
)

// Orientation is the value of the EXIF orientation tag (0x0112).
// Only values 1-8 have a meaning, anything else is treated as no transform.
type Orientation int

const (
	OrientationUnknown       Orientation = 0
	OrientationNormal        Orientation = 1
	OrientationFlipped       Orientation = 2
	OrientationRotate180     Orientation = 3
	OrientationFlipped180    Orientation = 4
	OrientationTranspose     Orientation = 5
	OrientationRotateRight90 Orientation = 6
	OrientationTransverse    Orientation = 7
	OrientationRotateLeft90  Orientation = 8
)

func (s Orientation) Valid() bool {
	return s >= OrientationNormal && s <= OrientationRotateLeft90
}

func (s Orientation) String() string {
	switch s {
	case OrientationNormal:
		return "normal"
	case OrientationFlipped:
		return "flipped"
	case OrientationRotate180:
		return "rotate-180"
	case OrientationFlipped180:
		return "flipped-180"
	case OrientationTranspose:
		return "transpose"
	case OrientationRotateRight90:
		return "rotate-right-90"
	case OrientationTransverse:
		return "transverse"
	case OrientationRotateLeft90:
		return "rotate-left-90"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// RotationFlip is a rigid transform applied about the centre of the drawing
// surface after placement. Angle is clockwise in screen space. The rotation
// is applied first and the horizontal mirror second.
type RotationFlip struct {
	Angle          int  `json:"angle"`
	FlipHorizontal bool `json:"flipHorizontal"`
}

const (
	noRotate  = 0
	rotate180 = 180
	right90   = 90
	left90    = -90

	noHorizontalFlip = false
	horizontalFlip   = true
)

var identityRotationFlip = RotationFlip{Angle: noRotate, FlipHorizontal: noHorizontalFlip}

func RotationFlipFor(orientation Orientation) RotationFlip {
	switch orientation {
	case OrientationNormal:
		return RotationFlip{noRotate, noHorizontalFlip}
	case OrientationFlipped:
		return RotationFlip{noRotate, horizontalFlip}
	case OrientationRotate180:
		return RotationFlip{rotate180, noHorizontalFlip}
	case OrientationFlipped180:
		return RotationFlip{rotate180, horizontalFlip}
	case OrientationTranspose:
		return RotationFlip{right90, horizontalFlip}
	case OrientationRotateRight90:
		return RotationFlip{right90, noHorizontalFlip}
	case OrientationTransverse:
		return RotationFlip{left90, horizontalFlip}
	case OrientationRotateLeft90:
		return RotationFlip{left90, noHorizontalFlip}
	default:
		return identityRotationFlip
	}
}

func (s RotationFlip) IsIdentity() bool {
	return s == identityRotationFlip
}

// SwapsAxes is true when the transformed surface is displayed with its
// width and height exchanged.
func (s RotationFlip) SwapsAxes() bool {
	return s.Angle == right90 || s.Angle == left90
}

// CSSTransform formats the descriptor as a CSS transform value. Functions in
// a CSS transform list apply right to left, so the mirror is listed first.
func (s RotationFlip) CSSTransform() string {
	var parts []string
	if s.FlipHorizontal {
		parts = append(parts, "scaleX(-1)")
	}
	if s.Angle != noRotate {
		parts = append(parts, fmt.Sprintf("rotate(%ddeg)", s.Angle))
	}
	return strings.Join(parts, " ")
}
