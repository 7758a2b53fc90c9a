package apitype

import "encoding/json"

// Preview is everything a renderer needs to paint a source image upright
// inside a frame.
type Preview struct {
	Orientation Orientation   `json:"orientation"`
	Source      Size          `json:"source"`
	Frame       Size          `json:"frame"`
	Placement   PlacementRect `json:"placement"`
	Rotation    RotationFlip  `json:"rotation"`
}

func NewPreview(orientation Orientation, source Size, frame Size) (*Preview, error) {
	placement, err := ComputePlacement(source, frame)
	if err != nil {
		return nil, err
	}
	return &Preview{
		Orientation: orientation,
		Source:      source,
		Frame:       frame,
		Placement:   placement,
		Rotation:    RotationFlipFor(orientation),
	}, nil
}

func (s *Preview) Transform() string {
	return s.Rotation.CSSTransform()
}

type sizeJson struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal(sizeJson{Width: s.width, Height: s.height})
}

func (s *Size) UnmarshalJSON(data []byte) error {
	var value sizeJson
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	s.width = value.Width
	s.height = value.Height
	return nil
}
