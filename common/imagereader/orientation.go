package imagereader

import (
	"encoding/binary"
	"errors"
	"vincit.fi/image-preview/api/apitype"
	"vincit.fi/image-preview/common/logger"
)

var (
	ErrNotJpeg   = errors.New("not a JPEG stream")
	ErrNoExif    = errors.New("no EXIF orientation")
	ErrTruncated = errors.New("truncated JPEG header")
)

const (
	markerStartOfImage = 0xFFD8
	markerApp1         = 0xFFE1
	markerClassMask    = 0xFF00

	// "Exif" followed by two NUL bytes, then the TIFF header
	exifSignature    = 0x45786966
	exifPadding      = 0x0000
	tiffHeaderShift  = 6
	tiffLittleEndian = 0x4949
	tiffIfdOffsetAt  = 4

	ifdEntrySize        = 12
	ifdEntryValueOffset = 8
	tagOrientation      = 0x0112
)

type ScanOptions struct {
	// StrictSignature also requires the two NUL bytes after "Exif".
	StrictSignature bool
}

// ScanOrientation walks the JPEG marker segments in buffer and returns the
// orientation tag of IFD0 in the APP1/Exif segment.
func ScanOrientation(buffer []byte) (apitype.Orientation, error) {
	return ScanOrientationWithOptions(buffer, ScanOptions{})
}

func ScanOrientationWithOptions(buffer []byte, options ScanOptions) (apitype.Orientation, error) {
	view := byteView{buffer: buffer}
	if soi, err := view.Uint16(0, binary.BigEndian); err != nil || soi != markerStartOfImage {
		return apitype.OrientationUnknown, ErrNotJpeg
	}

	offset := 2
	for offset < view.Len() {
		marker, err := view.Uint16(offset, binary.BigEndian)
		if err != nil {
			return apitype.OrientationUnknown, err
		}
		offset += 2

		if marker == markerApp1 {
			return scanExifSegment(view, offset+2, options)
		} else if marker&markerClassMask != markerClassMask {
			return apitype.OrientationUnknown, ErrNoExif
		}

		length, err := view.Uint16(offset, binary.BigEndian)
		if err != nil {
			return apitype.OrientationUnknown, err
		}
		if offset, err = view.Advance(offset, uint32(length)); err != nil {
			return apitype.OrientationUnknown, err
		}
	}
	return apitype.OrientationUnknown, ErrNoExif
}

// scanExifSegment reads the TIFF structure that follows the signature at
// signatureStart.
func scanExifSegment(view byteView, signatureStart int, options ScanOptions) (apitype.Orientation, error) {
	if signature, err := view.Uint32(signatureStart, binary.BigEndian); err != nil {
		return apitype.OrientationUnknown, err
	} else if signature != exifSignature {
		return apitype.OrientationUnknown, ErrNoExif
	}
	if options.StrictSignature {
		if padding, err := view.Uint16(signatureStart+4, binary.BigEndian); err != nil {
			return apitype.OrientationUnknown, err
		} else if padding != exifPadding {
			return apitype.OrientationUnknown, ErrNoExif
		}
	}

	tiffStart := signatureStart + tiffHeaderShift
	byteOrderMark, err := view.Uint16(tiffStart, binary.BigEndian)
	if err != nil {
		return apitype.OrientationUnknown, err
	}
	var order binary.ByteOrder = binary.BigEndian
	if byteOrderMark == tiffLittleEndian {
		order = binary.LittleEndian
	}

	ifdOffset, err := view.Uint32(tiffStart+tiffIfdOffsetAt, order)
	if err != nil {
		return apitype.OrientationUnknown, err
	}
	ifdStart, err := view.Advance(tiffStart, ifdOffset)
	if err != nil {
		return apitype.OrientationUnknown, err
	}

	entryCount, err := view.Uint16(ifdStart, order)
	if err != nil {
		return apitype.OrientationUnknown, err
	}
	entries := ifdStart + 2
	for i := 0; i < int(entryCount); i++ {
		entry := entries + i*ifdEntrySize
		tag, err := view.Uint16(entry, order)
		if err != nil {
			return apitype.OrientationUnknown, err
		}
		if tag == tagOrientation {
			value, err := view.Uint16(entry+ifdEntryValueOffset, order)
			if err != nil {
				return apitype.OrientationUnknown, err
			}
			return apitype.Orientation(value), nil
		}
	}
	return apitype.OrientationUnknown, ErrNoExif
}

// OrientationOrNormal collapses a failed or meaningless scan result to
// OrientationNormal so the image is shown unrotated.
func OrientationOrNormal(orientation apitype.Orientation, err error) apitype.Orientation {
	if err != nil {
		if errors.Is(err, ErrTruncated) {
			logger.Warn.Printf("Could not resolve orientation: %s", err)
		} else {
			logger.Debug.Printf("No orientation: %s", err)
		}
		return apitype.OrientationNormal
	}
	if !orientation.Valid() {
		logger.Debug.Printf("Orientation value %d out of range", int(orientation))
		return apitype.OrientationNormal
	}
	return orientation
}

// ResolveOrientation scans buffer and falls back to OrientationNormal on any
// failure.
func ResolveOrientation(buffer []byte) apitype.Orientation {
	return OrientationOrNormal(ScanOrientation(buffer))
}
