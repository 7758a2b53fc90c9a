package imagereader

import (
	"bytes"
	"errors"
	"github.com/disintegration/imaging"
	"github.com/pixiv/go-libjpeg/jpeg"
	"image"
	"time"
	"vincit.fi/image-preview/api/apitype"
	"vincit.fi/image-preview/common/logger"
)

var options = &jpeg.DecoderOptions{}

func IsJpeg(data []byte) bool {
	return len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8
}

func LoadImage(data []byte) (image.Image, error) {
	return loadImage(data, options)
}

// LoadScaledImage lets libjpeg pick the smallest DCT scale that still covers
// size. Other formats are decoded at full size.
func LoadScaledImage(data []byte, size apitype.Size) (image.Image, error) {
	return loadImage(data, &jpeg.DecoderOptions{ScaleTarget: image.Rect(0, 0, size.Width(), size.Height())})
}

func loadImage(data []byte, options *jpeg.DecoderOptions) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}

	start := time.Now()
	var decoded image.Image
	var err error
	if IsJpeg(data) {
		decoded, err = jpeg.Decode(bytes.NewReader(data), options)
	} else {
		decoded, err = imaging.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Decoding %s image: %s", apitype.SizeFromRectangle(decoded.Bounds()), time.Since(start))
	}
	return decoded, nil
}

// DecodeConfig reads the stored pixel size without decoding pixel data.
func DecodeConfig(data []byte) (apitype.Size, error) {
	var config image.Config
	var err error
	if IsJpeg(data) {
		config, err = jpeg.DecodeConfig(bytes.NewReader(data))
	} else {
		config, _, err = image.DecodeConfig(bytes.NewReader(data))
	}
	if err != nil {
		return apitype.Size{}, err
	}
	return apitype.SizeOf(config.Width, config.Height), nil
}
