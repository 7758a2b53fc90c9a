package util

import (
	"bytes"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	"strings"
	"vincit.fi/image-preview/api/apitype"
)

// LoadExifOrientation decodes the whole EXIF block of data and returns its
// orientation tag.
func LoadExifOrientation(data []byte) (apitype.Orientation, error) {
	decodedExif, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return apitype.OrientationUnknown, err
	}
	if tag, err := decodedExif.Get(exif.Orientation); err != nil {
		return apitype.OrientationUnknown, err
	} else if value, err := tag.Int(0); err != nil {
		return apitype.OrientationUnknown, err
	} else {
		return apitype.Orientation(value), nil
	}
}

// LoadExifTags decodes the EXIF block of data into tag name and value pairs.
// Empty values are left out.
func LoadExifTags(data []byte) (map[string]string, error) {
	decodedExif, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	walker := newMapExifWalker()
	if err := decodedExif.Walk(walker); err != nil {
		return nil, err
	}
	return walker.values, nil
}

type mapExifWalker struct {
	values map[string]string

	exif.Walker
}

func newMapExifWalker() *mapExifWalker {
	return &mapExifWalker{
		values: map[string]string{},
	}
}

func (s *mapExifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tagValue := strings.Trim(tag.String(), " \t\""); tagValue != "" {
		s.values[string(name)] = tagValue
	}
	return nil
}
