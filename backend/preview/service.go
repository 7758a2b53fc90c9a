package preview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"vincit.fi/image-preview/api"
	"vincit.fi/image-preview/api/apitype"
	"vincit.fi/image-preview/common/imagereader"
	"vincit.fi/image-preview/common/logger"
	"vincit.fi/image-preview/common/metrics"
	"vincit.fi/image-preview/common/util"
)

type Service struct {
	sender      api.Sender
	frame       apitype.Size
	scanOptions imagereader.ScanOptions
	verifyExif  bool
	metrics     *metrics.Metrics
	progress    *Progress

	api.PreviewService
}

func NewService(sender api.Sender, params *util.Params, metrics *metrics.Metrics, progress *Progress) *Service {
	return &Service{
		sender:      sender,
		frame:       params.FrameSize(),
		scanOptions: imagereader.ScanOptions{StrictSignature: params.StrictExif()},
		verifyExif:  params.VerifyExif(),
		metrics:     metrics,
		progress:    progress,
	}
}

// Compute scans data for orientation and fits the image into frame.
func (s *Service) Compute(name string, data []byte, frame apitype.Size) (*apitype.Preview, error) {
	return s.compute(name, data, frame, true)
}

// ComputeDefault places data into frame without orientation correction.
func (s *Service) ComputeDefault(name string, data []byte, frame apitype.Size) (*apitype.Preview, error) {
	return s.compute(name, data, frame, false)
}

func (s *Service) compute(name string, data []byte, frame apitype.Size, correctOrientation bool) (*apitype.Preview, error) {
	start := time.Now()

	orientation := apitype.OrientationNormal
	if correctOrientation {
		scanned, err := imagereader.ScanOrientationWithOptions(data, s.scanOptions)
		s.metrics.RecordScan(err)
		if s.verifyExif {
			s.verifyOrientation(name, data, scanned, err)
		}
		orientation = imagereader.OrientationOrNormal(scanned, err)
	}

	source, err := imagereader.DecodeConfig(data)
	if err != nil {
		s.metrics.RecordPreview(metrics.PreviewFailed, time.Since(start))
		return nil, fmt.Errorf("could not read size of '%s': %w", name, err)
	}

	preview, err := apitype.NewPreview(orientation, source, frame)
	if err != nil {
		if errors.Is(err, apitype.ErrInvalidDimensions) {
			s.metrics.RecordPreview(metrics.PreviewInvalid, time.Since(start))
		} else {
			s.metrics.RecordPreview(metrics.PreviewFailed, time.Since(start))
		}
		return nil, fmt.Errorf("could not place '%s': %w", name, err)
	}

	s.metrics.RecordPreview(metrics.PreviewOk, time.Since(start))
	logger.Debug.Printf("Preview for '%s': %s %s in %s at %+v rotation %+v",
		name, source, orientation, frame, preview.Placement, preview.Rotation)
	return preview, nil
}

func (s *Service) verifyOrientation(name string, data []byte, scanned apitype.Orientation, scanErr error) {
	decoded, err := util.LoadExifOrientation(data)
	switch {
	case err != nil && scanErr != nil:
		logger.Trace.Printf("No orientation in '%s' by either reader", name)
	case err != nil:
		logger.Warn.Printf("Orientation %d found in '%s' but EXIF decoder failed: %s", int(scanned), name, err)
	case scanErr != nil:
		logger.Warn.Printf("EXIF decoder found orientation %d in '%s' but scan failed: %s", int(decoded), name, scanErr)
	case decoded != scanned:
		logger.Warn.Printf("Orientation mismatch in '%s': scanned %d, decoded %d", name, int(scanned), int(decoded))
		if logger.IsLogLevel(logger.TRACE) {
			if tags, err := util.LoadExifTags(data); err == nil {
				logger.Trace.Printf("EXIF tags of '%s': %v", name, tags)
			}
		}
	}
}

func (s *Service) FileSelected(command *api.FileSelectedCommand) {
	name := filepath.Base(command.Path)
	data, err := os.ReadFile(command.Path)
	if err != nil {
		s.fail(name, "Could not read "+command.Path, err)
		return
	}

	var preview *apitype.Preview
	if command.Default {
		preview, err = s.ComputeDefault(name, data, s.frame)
	} else {
		preview, err = s.Compute(name, data, s.frame)
	}
	if err != nil {
		s.fail(name, "Could not compute preview", err)
		return
	}

	s.sender.SendCommandToTopic(api.PreviewComputed, &api.PreviewComputedCommand{
		CommandBase: command.CommandBase,
		Name:        name,
		Data:        data,
		Preview:     preview,
	})
}

func (s *Service) fail(name string, message string, err error) {
	s.sender.SendError(message, err)
	s.progress.Fail(name)
}
