package preview

import (
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"image/color"
	"math/rand"
	"testing"
	"vincit.fi/image-preview/api/apitype"
)

func randomImage(width int, height int) *image.NRGBA {
	random := rand.New(rand.NewSource(int64(width*1000 + height)))
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = uint8(random.Intn(256))
	}
	return img
}

// uprightFromExif is the EXIF definition of each orientation written with
// imaging primitives.
func uprightFromExif(img image.Image, orientation apitype.Orientation) *image.NRGBA {
	switch orientation {
	case apitype.OrientationFlipped:
		return imaging.FlipH(img)
	case apitype.OrientationRotate180:
		return imaging.Rotate180(img)
	case apitype.OrientationFlipped180:
		return imaging.FlipV(img)
	case apitype.OrientationTranspose:
		return imaging.Transpose(img)
	case apitype.OrientationRotateRight90:
		return imaging.Rotate270(img)
	case apitype.OrientationTransverse:
		return imaging.Transverse(img)
	case apitype.OrientationRotateLeft90:
		return imaging.Rotate90(img)
	default:
		return imaging.Clone(img)
	}
}

func TestApplyRotationFlip_ShowsImageUpright(t *testing.T) {
	a := assert.New(t)

	stored := randomImage(5, 3)
	for orientation := apitype.OrientationNormal; orientation <= apitype.OrientationRotateLeft90; orientation++ {
		t.Run(orientation.String(), func(t *testing.T) {
			expected := uprightFromExif(stored, orientation)
			got := ApplyRotationFlip(stored, apitype.RotationFlipFor(orientation))

			a.Equal(expected.Bounds(), got.Bounds())
			a.Equal(expected.Pix, got.Pix)
		})
	}
}

func TestApplyRotationFlip_UnknownOrientationIsIdentity(t *testing.T) {
	a := assert.New(t)

	stored := randomImage(4, 2)
	got := ApplyRotationFlip(stored, apitype.RotationFlipFor(apitype.Orientation(42)))
	a.Equal(stored.Pix, got.Pix)
}

func TestRenderer_Render(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	red := color.NRGBA{R: 255, A: 255}
	black := color.NRGBA{A: 255}
	source := imaging.New(400, 200, red)

	renderer := NewRenderer(black)

	t.Run("Wide image is centred vertically", func(t *testing.T) {
		preview, err := apitype.NewPreview(apitype.OrientationNormal, apitype.SizeOf(400, 200), apitype.SizeOf(100, 100))
		r.Nil(err)

		rendered := renderer.Render(source, preview)
		a.Equal(image.Rect(0, 0, 100, 100), rendered.Bounds())
		a.Equal(black, rendered.NRGBAAt(50, 10))
		a.Equal(red, rendered.NRGBAAt(50, 50))
		a.Equal(black, rendered.NRGBAAt(50, 90))
	})

	t.Run("Rotated surface has its bands on the sides", func(t *testing.T) {
		preview, err := apitype.NewPreview(apitype.OrientationRotateRight90, apitype.SizeOf(400, 200), apitype.SizeOf(100, 100))
		r.Nil(err)

		rendered := renderer.Render(source, preview)
		a.Equal(image.Rect(0, 0, 100, 100), rendered.Bounds())
		a.Equal(black, rendered.NRGBAAt(10, 50))
		a.Equal(red, rendered.NRGBAAt(50, 50))
		a.Equal(black, rendered.NRGBAAt(90, 50))
	})

	t.Run("Non square frame swaps its axes", func(t *testing.T) {
		preview, err := apitype.NewPreview(apitype.OrientationRotateLeft90, apitype.SizeOf(400, 200), apitype.SizeOf(200, 100))
		r.Nil(err)

		rendered := renderer.Render(source, preview)
		a.Equal(image.Rect(0, 0, 100, 200), rendered.Bounds())
	})

	t.Run("Tiny placement", func(t *testing.T) {
		preview, err := apitype.NewPreview(apitype.OrientationNormal, apitype.SizeOf(1000, 1), apitype.SizeOf(10, 10))
		r.Nil(err)

		rendered := renderer.Render(imaging.New(1000, 1, red), preview)
		a.Equal(image.Rect(0, 0, 10, 10), rendered.Bounds())
	})
}
