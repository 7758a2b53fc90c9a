package apitype

import (
	"errors"
	"fmt"
	"image"
)

var ErrInvalidDimensions = errors.New("invalid dimensions")

type Size struct {
	width  int
	height int
}

func (s Size) Height() int {
	return s.height
}

func (s Size) Width() int {
	return s.width
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

func (s Size) IsPositive() bool {
	return s.width > 0 && s.height > 0
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

// PlacementRect is where a source image is drawn inside a frame.
type PlacementRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bounds rounds the rectangle to whole pixels.
func (s PlacementRect) Bounds() image.Rectangle {
	x := roundToInt(s.X)
	y := roundToInt(s.Y)
	return image.Rect(x, y, x+roundToInt(s.Width), y+roundToInt(s.Height))
}

func roundToInt(value float64) int {
	if value < 0 {
		return -int(-value + 0.5)
	}
	return int(value + 0.5)
}

// ComputePlacement scales source to fit inside frame keeping the aspect ratio
// and centres it. The result touches the frame on the limiting axis.
func ComputePlacement(source Size, frame Size) (PlacementRect, error) {
	if !source.IsPositive() {
		return PlacementRect{}, fmt.Errorf("%w: source %s", ErrInvalidDimensions, source)
	}
	if !frame.IsPositive() {
		return PlacementRect{}, fmt.Errorf("%w: frame %s", ErrInvalidDimensions, frame)
	}

	frameWidth := float64(frame.width)
	frameHeight := float64(frame.height)
	diff := float64(source.width) / float64(source.height)

	var width, height float64
	if source.height > source.width {
		height = frameHeight
		width = height * diff
		if width > frameWidth {
			width = frameWidth
			height = width / diff
		}
	} else {
		width = frameWidth
		height = width / diff
		if height > frameHeight {
			height = frameHeight
			width = height * diff
		}
	}

	return PlacementRect{
		X:      (frameWidth - width) / 2,
		Y:      (frameHeight - height) / 2,
		Width:  width,
		Height: height,
	}, nil
}
