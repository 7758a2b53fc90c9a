package apitype

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"testing"
)

func TestComputePlacement(t *testing.T) {
	a := assert.New(t)
	type args struct {
		sourceWidth  int
		sourceHeight int
		frameWidth   int
		frameHeight  int
	}
	tests := []struct {
		name      string
		args      args
		placement PlacementRect
	}{
		{name: "400x200->100x100", args: args{sourceWidth: 400, sourceHeight: 200, frameWidth: 100, frameHeight: 100}, placement: PlacementRect{X: 0, Y: 25, Width: 100, Height: 50}},
		{name: "200x400->100x100", args: args{sourceWidth: 200, sourceHeight: 400, frameWidth: 100, frameHeight: 100}, placement: PlacementRect{X: 25, Y: 0, Width: 50, Height: 100}},
		{name: "100x100->100x100", args: args{sourceWidth: 100, sourceHeight: 100, frameWidth: 100, frameHeight: 100}, placement: PlacementRect{X: 0, Y: 0, Width: 100, Height: 100}},
		{name: "100x100->200x100", args: args{sourceWidth: 100, sourceHeight: 100, frameWidth: 200, frameHeight: 100}, placement: PlacementRect{X: 50, Y: 0, Width: 100, Height: 100}},
		// Downscale
		{name: "400x300->100x100", args: args{sourceWidth: 400, sourceHeight: 300, frameWidth: 100, frameHeight: 100}, placement: PlacementRect{X: 0, Y: 12.5, Width: 100, Height: 75}},
		{name: "400x300->100x50", args: args{sourceWidth: 400, sourceHeight: 300, frameWidth: 100, frameHeight: 50}, placement: PlacementRect{X: 50.0 / 3, Y: 0, Width: 200.0 / 3, Height: 50}},
		{name: "300x400->100x50", args: args{sourceWidth: 300, sourceHeight: 400, frameWidth: 100, frameHeight: 50}, placement: PlacementRect{X: 31.25, Y: 0, Width: 37.5, Height: 50}},
		{name: "300x400->50x100", args: args{sourceWidth: 300, sourceHeight: 400, frameWidth: 50, frameHeight: 100}, placement: PlacementRect{X: 0, Y: 50.0 / 3, Width: 50, Height: 200.0 / 3}},
		// Upscale
		{name: "40x30  ->400x400", args: args{sourceWidth: 40, sourceHeight: 30, frameWidth: 400, frameHeight: 400}, placement: PlacementRect{X: 0, Y: 50, Width: 400, Height: 300}},
		{name: "30x40  ->400x100", args: args{sourceWidth: 30, sourceHeight: 40, frameWidth: 400, frameHeight: 100}, placement: PlacementRect{X: 162.5, Y: 0, Width: 75, Height: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePlacement(SizeOf(tt.args.sourceWidth, tt.args.sourceHeight), SizeOf(tt.args.frameWidth, tt.args.frameHeight))
			a.Nil(err)
			a.InDelta(tt.placement.X, got.X, 1e-9)
			a.InDelta(tt.placement.Y, got.Y, 1e-9)
			a.InDelta(tt.placement.Width, got.Width, 1e-9)
			a.InDelta(tt.placement.Height, got.Height, 1e-9)

			a.LessOrEqual(got.Width, float64(tt.args.frameWidth)+1e-9)
			a.LessOrEqual(got.Height, float64(tt.args.frameHeight)+1e-9)
		})
	}
}

func TestComputePlacement_InvalidDimensions(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		name   string
		source Size
		frame  Size
	}{
		{name: "Zero source width", source: SizeOf(0, 10), frame: SizeOf(100, 100)},
		{name: "Zero source height", source: SizeOf(10, 0), frame: SizeOf(100, 100)},
		{name: "Negative source", source: SizeOf(-10, 10), frame: SizeOf(100, 100)},
		{name: "Zero frame", source: SizeOf(10, 10), frame: SizeOf(0, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputePlacement(tt.source, tt.frame)
			a.ErrorIs(err, ErrInvalidDimensions)
		})
	}
}

func TestComputePlacement_IsRepeatable(t *testing.T) {
	r := require.New(t)

	first, err := ComputePlacement(SizeOf(4032, 3024), SizeOf(333, 217))
	r.Nil(err)
	for i := 0; i < 10; i++ {
		got, err := ComputePlacement(SizeOf(4032, 3024), SizeOf(333, 217))
		r.Nil(err)
		r.Equal(first, got)
	}
}

func TestPlacementRect_Bounds(t *testing.T) {
	a := assert.New(t)

	a.Equal(image.Rect(0, 25, 100, 75), PlacementRect{X: 0, Y: 25, Width: 100, Height: 50}.Bounds())
	a.Equal(image.Rect(17, 0, 84, 50), PlacementRect{X: 50.0 / 3, Y: 0, Width: 200.0 / 3, Height: 50}.Bounds())
}

func TestSizeOf(t *testing.T) {
	a := assert.New(t)

	got := SizeOf(200, 100)
	a.Equal(200, got.Width())
	a.Equal(100, got.Height())
	a.Equal("200x100", got.String())
	a.Equal(SizeOf(20, 10), SizeFromRectangle(image.Rect(5, 5, 25, 15)))
}
