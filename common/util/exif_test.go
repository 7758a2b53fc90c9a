package util

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"vincit.fi/image-preview/api/apitype"
	"vincit.fi/image-preview/common/imagereader/jpegtest"
)

func TestLoadExifOrientation(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	t.Run("Rotated image", func(t *testing.T) {
		data, err := jpegtest.Jpeg(8, 8, jpegtest.ExifSegment(jpegtest.BigEndian, jpegtest.OrientationEntry(6)))
		r.Nil(err)

		orientation, err := LoadExifOrientation(data)
		a.Nil(err)
		a.Equal(apitype.OrientationRotateRight90, orientation)
	})

	t.Run("No orientation tag", func(t *testing.T) {
		data, err := jpegtest.Jpeg(8, 8, jpegtest.ExifSegment(jpegtest.LittleEndian, jpegtest.ShortEntry(jpegtest.TagImageWidth, 8)))
		r.Nil(err)

		orientation, err := LoadExifOrientation(data)
		a.NotNil(err)
		a.Equal(apitype.OrientationUnknown, orientation)
	})

	t.Run("No EXIF", func(t *testing.T) {
		data, err := jpegtest.Jpeg(8, 8)
		r.Nil(err)

		_, err = LoadExifOrientation(data)
		a.NotNil(err)
	})
}

func TestLoadExifTags(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	data, err := jpegtest.Jpeg(8, 8, jpegtest.ExifSegment(jpegtest.BigEndian,
		jpegtest.ShortEntry(jpegtest.TagImageWidth, 8),
		jpegtest.OrientationEntry(3)))
	r.Nil(err)

	tags, err := LoadExifTags(data)
	r.Nil(err)
	a.Equal("3", tags["Orientation"])
	a.Equal("8", tags["ImageWidth"])

	_, err = LoadExifTags([]byte("not exif"))
	a.NotNil(err)
}
