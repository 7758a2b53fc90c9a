package preview

import (
	"sync/atomic"
	"vincit.fi/image-preview/api"
)

// Progress counts files that are finished, successfully or not.
type Progress struct {
	reporter api.ProgressReporter
	total    int
	done     int64
	failed   int64
}

func NewProgress(reporter api.ProgressReporter, total int) *Progress {
	return &Progress{
		reporter: reporter,
		total:    total,
	}
}

func (s *Progress) Step(name string) {
	if s == nil {
		return
	}
	done := atomic.AddInt64(&s.done, 1)
	s.reporter.Update(name, int(done), s.total)
}

func (s *Progress) Fail(name string) {
	if s == nil {
		return
	}
	atomic.AddInt64(&s.failed, 1)
	s.Step(name)
}

func (s *Progress) Failed() int {
	return int(atomic.LoadInt64(&s.failed))
}

func (s *Progress) Total() int {
	return s.total
}
