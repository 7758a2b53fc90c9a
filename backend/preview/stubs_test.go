package preview

import (
	"sync"
	"vincit.fi/image-preview/api"
	"vincit.fi/image-preview/api/apitype"
)

type StubSender struct {
	api.Sender

	mutex    sync.Mutex
	commands map[api.Topic][]apitype.Command
	errors   []string
}

func NewStubSender() *StubSender {
	return &StubSender{commands: map[api.Topic][]apitype.Command{}}
}

func (s *StubSender) SendToTopic(topic api.Topic) {
	s.SendCommandToTopic(topic, nil)
}

func (s *StubSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.commands[topic] = append(s.commands[topic], command)
}

func (s *StubSender) SendError(message string, err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if err != nil {
		message = message + ": " + err.Error()
	}
	s.errors = append(s.errors, message)
}

func (s *StubSender) Commands(topic api.Topic) []apitype.Command {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.commands[topic]
}

func (s *StubSender) Errors() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.errors
}

type StubProgressReporter struct {
	api.ProgressReporter

	mutex   sync.Mutex
	updates []string
}

func (s *StubProgressReporter) Update(name string, current int, total int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.updates = append(s.updates, name)
}

func (s *StubProgressReporter) Updates() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.updates
}
