package api

type Topic string

const (
	FileSelected         Topic = "event-file-selected"
	PreviewComputed      Topic = "event-preview-computed"
	ProcessStatusUpdated Topic = "event-process-status-updated"
	ShowError            Topic = "event-show-error"
)
