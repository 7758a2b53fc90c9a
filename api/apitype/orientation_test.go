package apitype

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRotationFlipFor(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		orientation Orientation
		angle       int
		flipped     bool
	}{
		{orientation: 1, angle: 0, flipped: false},
		{orientation: 2, angle: 0, flipped: true},
		{orientation: 3, angle: 180, flipped: false},
		{orientation: 4, angle: 180, flipped: true},
		{orientation: 5, angle: 90, flipped: true},
		{orientation: 6, angle: 90, flipped: false},
		{orientation: 7, angle: -90, flipped: true},
		{orientation: 8, angle: -90, flipped: false},
	}
	for _, tt := range tests {
		t.Run(tt.orientation.String(), func(t *testing.T) {
			got := RotationFlipFor(tt.orientation)
			a.Equal(tt.angle, got.Angle)
			a.Equal(tt.flipped, got.FlipHorizontal)
			a.True(tt.orientation.Valid())
		})
	}
}

func TestRotationFlipFor_OutOfRangeIsIdentity(t *testing.T) {
	a := assert.New(t)

	for _, orientation := range []Orientation{-2, -1, 0, 9, 255, 0xFFFF} {
		got := RotationFlipFor(orientation)
		a.False(orientation.Valid())
		a.True(got.IsIdentity(), "orientation %d", orientation)
		a.Equal(RotationFlip{Angle: 0, FlipHorizontal: false}, got)
	}
}

func TestRotationFlip_SwapsAxes(t *testing.T) {
	a := assert.New(t)

	a.False(RotationFlipFor(OrientationNormal).SwapsAxes())
	a.False(RotationFlipFor(OrientationFlipped180).SwapsAxes())
	a.True(RotationFlipFor(OrientationTranspose).SwapsAxes())
	a.True(RotationFlipFor(OrientationRotateLeft90).SwapsAxes())
}

func TestRotationFlip_CSSTransform(t *testing.T) {
	a := assert.New(t)

	a.Equal("", RotationFlipFor(OrientationNormal).CSSTransform())
	a.Equal("scaleX(-1)", RotationFlipFor(OrientationFlipped).CSSTransform())
	a.Equal("rotate(180deg)", RotationFlipFor(OrientationRotate180).CSSTransform())
	a.Equal("scaleX(-1) rotate(90deg)", RotationFlipFor(OrientationTranspose).CSSTransform())
	a.Equal("rotate(-90deg)", RotationFlipFor(OrientationRotateLeft90).CSSTransform())
}

func TestOrientation_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("rotate-right-90", OrientationRotateRight90.String())
	a.Equal("unknown(-2)", Orientation(-2).String())
}
