package imagereader

import (
	"encoding/binary"
	"fmt"
)

// byteView is a read-only window over a buffer where every read is checked
// against the buffer length.
type byteView struct {
	buffer []byte
}

func (s byteView) Len() int {
	return len(s.buffer)
}

func (s byteView) slice(offset int, size int) ([]byte, error) {
	if offset < 0 || size < 0 || uint64(offset)+uint64(size) > uint64(len(s.buffer)) {
		return nil, fmt.Errorf("%w: %d bytes at offset %d, buffer length %d", ErrTruncated, size, offset, len(s.buffer))
	}
	return s.buffer[offset : offset+size], nil
}

func (s byteView) Uint16(offset int, order binary.ByteOrder) (uint16, error) {
	if b, err := s.slice(offset, 2); err != nil {
		return 0, err
	} else {
		return order.Uint16(b), nil
	}
}

func (s byteView) Uint32(offset int, order binary.ByteOrder) (uint32, error) {
	if b, err := s.slice(offset, 4); err != nil {
		return 0, err
	} else {
		return order.Uint32(b), nil
	}
}

// Advance moves offset forward by distance. The result may point to the end
// of the buffer but not past it.
func (s byteView) Advance(offset int, distance uint32) (int, error) {
	next := uint64(offset) + uint64(distance)
	if next > uint64(len(s.buffer)) {
		return 0, fmt.Errorf("%w: offset %d beyond buffer length %d", ErrTruncated, next, len(s.buffer))
	}
	return int(next), nil
}
