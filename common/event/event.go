package event

import (
	"fmt"
	messagebus "github.com/vardius/message-bus"
	"vincit.fi/image-preview/api"
	"vincit.fi/image-preview/api/apitype"
	"vincit.fi/image-preview/common/logger"
)

type Broker struct {
	bus messagebus.MessageBus

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

// Subscribe registers fn for topic. fn is called on its own goroutine with
// the command sent to the topic.
func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	err := s.bus.Subscribe(string(topic), fn)
	if err != nil {
		logger.Error.Panicf("Could not subscribe to '%s': %s", topic, err)
	}
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command %s to '%s'", command.CommandId(), topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := ""
	if err != nil {
		formattedMessage = fmt.Sprintf("%s: %s", message, err.Error())
	} else {
		formattedMessage = message
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{
		CommandBase: apitype.NewCommandBase(),
		Message:     formattedMessage,
	})
}

func (s *Broker) Close(topics ...api.Topic) {
	for _, topic := range topics {
		s.bus.Close(string(topic))
	}
}
