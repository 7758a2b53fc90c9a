// Package jpegtest builds JPEG byte streams with hand made EXIF segments for
// tests.
package jpegtest

import (
	"bytes"
	"encoding/binary"
	"github.com/pixiv/go-libjpeg/jpeg"
	"image"
	"image/color"
)

const (
	MarkerSOI  = 0xFFD8
	MarkerApp0 = 0xFFE0
	MarkerApp1 = 0xFFE1

	TagOrientation = 0x0112
	TagImageWidth  = 0x0100
	TagMake        = 0x010F

	typeShort = 3
)

var (
	LittleEndian binary.ByteOrder = binary.LittleEndian
	BigEndian    binary.ByteOrder = binary.BigEndian

	ExifHeader = []byte("Exif\x00\x00")
)

type Entry struct {
	Tag   uint16
	Type  uint16
	Count uint32
	Value uint16
}

func OrientationEntry(orientation uint16) Entry {
	return Entry{Tag: TagOrientation, Type: typeShort, Count: 1, Value: orientation}
}

func ShortEntry(tag uint16, value uint16) Entry {
	return Entry{Tag: tag, Type: typeShort, Count: 1, Value: value}
}

// Tiff returns a TIFF header followed by a single IFD holding entries.
func Tiff(order binary.ByteOrder, entries ...Entry) []byte {
	buf := &bytes.Buffer{}
	if order == binary.LittleEndian {
		buf.WriteString("II")
	} else {
		buf.WriteString("MM")
	}
	write(buf, order, uint16(0x002A))
	write(buf, order, uint32(8))

	write(buf, order, uint16(len(entries)))
	for _, entry := range entries {
		write(buf, order, entry.Tag)
		write(buf, order, entry.Type)
		write(buf, order, entry.Count)
		value := make([]byte, 4)
		order.PutUint16(value, entry.Value)
		buf.Write(value)
	}
	write(buf, order, uint32(0))
	return buf.Bytes()
}

func write(buf *bytes.Buffer, order binary.ByteOrder, value interface{}) {
	// Writing to a bytes.Buffer never fails
	_ = binary.Write(buf, order, value)
}

// Segment returns marker, the big endian length and payload.
func Segment(marker uint16, payload []byte) []byte {
	buf := &bytes.Buffer{}
	write(buf, binary.BigEndian, marker)
	write(buf, binary.BigEndian, uint16(len(payload)+2))
	buf.Write(payload)
	return buf.Bytes()
}

func ExifSegment(order binary.ByteOrder, entries ...Entry) []byte {
	return ExifSegmentWithHeader(ExifHeader, order, entries...)
}

func ExifSegmentWithHeader(header []byte, order binary.ByteOrder, entries ...Entry) []byte {
	payload := append(append([]byte{}, header...), Tiff(order, entries...)...)
	return Segment(MarkerApp1, payload)
}

func JfifSegment() []byte {
	return Segment(MarkerApp0, []byte{'J', 'F', 'I', 'F', 0, 1, 1, 0, 0, 1, 0, 1, 0, 0})
}

// Header returns SOI followed by segments.
func Header(segments ...[]byte) []byte {
	buf := &bytes.Buffer{}
	write(buf, binary.BigEndian, uint16(MarkerSOI))
	for _, segment := range segments {
		buf.Write(segment)
	}
	return buf.Bytes()
}

// Jpeg encodes a width x height image and inserts segments right after SOI.
func Jpeg(width int, height int, segments ...[]byte) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / width), G: uint8(y * 255 / height), B: 128, A: 255})
		}
	}

	encoded := &bytes.Buffer{}
	if err := jpeg.Encode(encoded, img, &jpeg.EncoderOptions{Quality: 90}); err != nil {
		return nil, err
	}
	data := encoded.Bytes()
	return append(Header(segments...), data[2:]...), nil
}
