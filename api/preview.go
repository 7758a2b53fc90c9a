package api

import "vincit.fi/image-preview/api/apitype"

type ErrorCommand struct {
	apitype.CommandBase

	Message string
}

// FileSelectedCommand asks for a preview of the file at Path. Default images
// are placed without orientation correction.
type FileSelectedCommand struct {
	apitype.CommandBase

	Path    string
	Default bool
}

type PreviewComputedCommand struct {
	apitype.CommandBase

	Name    string
	Data    []byte
	Preview *apitype.Preview
}

type UpdateProgressCommand struct {
	apitype.CommandBase

	Name    string
	Current int
	Total   int
}

type PreviewService interface {
	Compute(name string, data []byte, frame apitype.Size) (*apitype.Preview, error)
	FileSelected(command *FileSelectedCommand)
}
