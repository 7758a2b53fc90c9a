package preview

import (
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"image"
	"image/color"
	"vincit.fi/image-preview/api/apitype"
	"vincit.fi/image-preview/common/util"
)

type Renderer struct {
	background color.Color
}

func NewRenderer(background color.Color) *Renderer {
	return &Renderer{background: background}
}

// Render draws img scaled into the placement of a frame sized surface and
// then turns the whole surface by the rotation of the preview.
func (s *Renderer) Render(img image.Image, preview *apitype.Preview) *image.NRGBA {
	bounds := preview.Placement.Bounds()
	width := util.MaxInt(bounds.Dx(), 1)
	height := util.MaxInt(bounds.Dy(), 1)

	scaled := resize.Resize(uint(width), uint(height), img, resize.Bilinear)
	surface := imaging.New(preview.Frame.Width(), preview.Frame.Height(), s.background)
	surface = imaging.Paste(surface, scaled, bounds.Min)

	return ApplyRotationFlip(surface, preview.Rotation)
}

// ApplyRotationFlip rotates img clockwise by the angle and then mirrors it
// horizontally if needed.
func ApplyRotationFlip(img image.Image, rotationFlip apitype.RotationFlip) *image.NRGBA {
	var rotated *image.NRGBA
	switch rotationFlip.Angle {
	case 90:
		rotated = imaging.Rotate270(img)
	case -90:
		rotated = imaging.Rotate90(img)
	case 180:
		rotated = imaging.Rotate180(img)
	default:
		rotated = imaging.Clone(img)
	}

	if rotationFlip.FlipHorizontal {
		return imaging.FlipH(rotated)
	}
	return rotated
}
