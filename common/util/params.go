package util

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"vincit.fi/image-preview/api/apitype"
)

const (
	defaultFrameWidth  = 300
	defaultFrameHeight = 300
)

type Params struct {
	frameWidth   int
	frameHeight  int
	logLevel     string
	outputDir    string
	defaultImage string
	strictExif   bool
	verifyExif   bool
	serve        bool
	httpPort     int
	metricsFile  string
	queueSize    int
	files        []string
}

func NewEmptyParams() *Params {
	return &Params{
		frameWidth:  defaultFrameWidth,
		frameHeight: defaultFrameHeight,
		logLevel:    "INFO",
		queueSize:   100,
		files:       []string{},
	}
}

func ParseParams() (*Params, error) {
	return ParseParamsFrom(os.Args[0], os.Args[1:])
}

func ParseParamsFrom(name string, args []string) (*Params, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	frameWidth := flags.Int("frameWidth", defaultFrameWidth, "Width of the preview frame in pixels")
	frameHeight := flags.Int("frameHeight", defaultFrameHeight, "Height of the preview frame in pixels")
	logLevel := flags.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	outputDir := flags.String("outputDir", "", "Directory for rendered preview PNGs. Empty only prints the transforms.")
	defaultImage := flags.String("defaultImage", "", "Image shown in the frame before any file is selected")
	strictExif := flags.Bool("strictExif", false, "Require the full 'Exif\\0\\0' signature")
	verifyExif := flags.Bool("verifyExif", false, "Cross-check orientation with a full EXIF decoder")
	serve := flags.Bool("serve", false, "Start the HTTP upload endpoint")
	httpPort := flags.Int("httpPort", 8080, "HTTP port for -serve")
	metricsFile := flags.String("metricsFile", "", "Write metrics in text format to this file on exit")
	queueSize := flags.Int("queueSize", 100, "Event bus queue size")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	params := &Params{
		frameWidth:   *frameWidth,
		frameHeight:  *frameHeight,
		logLevel:     *logLevel,
		outputDir:    *outputDir,
		defaultImage: *defaultImage,
		strictExif:   *strictExif,
		verifyExif:   *verifyExif,
		serve:        *serve,
		httpPort:     *httpPort,
		metricsFile:  *metricsFile,
		queueSize:    *queueSize,
		files:        flags.Args(),
	}
	return params, params.Validate()
}

func (s *Params) Validate() error {
	if s.frameWidth <= 0 || s.frameHeight <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", s.frameWidth, s.frameHeight)
	}
	if s.queueSize <= 0 {
		return fmt.Errorf("invalid queue size %d", s.queueSize)
	}
	if s.serve && (s.httpPort <= 0 || s.httpPort > 65535) {
		return fmt.Errorf("invalid HTTP port %d", s.httpPort)
	}
	if !s.serve && len(s.files) == 0 && s.defaultImage == "" {
		return errors.New("nothing to do: give image files, -defaultImage or -serve")
	}
	return nil
}

func (s *Params) FrameSize() apitype.Size {
	return apitype.SizeOf(s.frameWidth, s.frameHeight)
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) OutputDir() string {
	return s.outputDir
}

func (s *Params) DefaultImage() string {
	return s.defaultImage
}

func (s *Params) StrictExif() bool {
	return s.strictExif
}

func (s *Params) VerifyExif() bool {
	return s.verifyExif
}

func (s *Params) Serve() bool {
	return s.serve
}

func (s *Params) HttpPort() int {
	return s.httpPort
}

func (s *Params) MetricsFile() string {
	return s.metricsFile
}

func (s *Params) QueueSize() int {
	return s.queueSize
}

func (s *Params) Files() []string {
	return s.files
}
