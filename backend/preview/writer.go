package preview

import (
	"encoding/json"
	"fmt"
	"github.com/disintegration/imaging"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"vincit.fi/image-preview/api"
	"vincit.fi/image-preview/api/apitype"
	"vincit.fi/image-preview/common/imagereader"
	"vincit.fi/image-preview/common/logger"
)

type Result struct {
	Id        string           `json:"id"`
	Name      string           `json:"name"`
	Preview   *apitype.Preview `json:"preview"`
	Transform string           `json:"transform"`
	Output    string           `json:"output,omitempty"`
}

// Writer prints one JSON line per computed preview and renders the preview
// image when an output directory is given.
type Writer struct {
	sender    api.Sender
	renderer  *Renderer
	outputDir string
	progress  *Progress

	out   io.Writer
	mutex sync.Mutex
}

func NewWriter(sender api.Sender, renderer *Renderer, outputDir string, out io.Writer, progress *Progress) *Writer {
	return &Writer{
		sender:    sender,
		renderer:  renderer,
		outputDir: outputDir,
		out:       out,
		progress:  progress,
	}
}

func (s *Writer) PreviewComputed(command *api.PreviewComputedCommand) {
	result := &Result{
		Id:        command.CommandId().String(),
		Name:      command.Name,
		Preview:   command.Preview,
		Transform: command.Preview.Transform(),
	}

	if s.outputDir != "" {
		if output, err := s.render(command); err != nil {
			s.sender.SendError("Could not render "+command.Name, err)
			s.progress.Fail(command.Name)
			return
		} else {
			result.Output = output
		}
	}

	s.mutex.Lock()
	err := json.NewEncoder(s.out).Encode(result)
	s.mutex.Unlock()
	if err != nil {
		logger.Error.Printf("Could not write result for '%s': %s", command.Name, err)
		s.progress.Fail(command.Name)
		return
	}
	s.progress.Step(command.Name)
}

func (s *Writer) render(command *api.PreviewComputedCommand) (string, error) {
	placement := command.Preview.Placement.Bounds()
	img, err := imagereader.LoadScaledImage(command.Data, apitype.SizeFromRectangle(placement))
	if err != nil {
		return "", err
	}

	rendered := s.renderer.Render(img, command.Preview)
	output := filepath.Join(s.outputDir, previewFileName(command.Name))
	if err := imaging.Save(rendered, output); err != nil {
		return "", err
	}
	logger.Info.Printf("Saved preview of '%s' to '%s'", command.Name, output)
	return output, nil
}

func previewFileName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return fmt.Sprintf("%s.preview.png", base)
}
