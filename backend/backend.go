package backend

import (
	"image/color"
	"io"
	"sync"
	"vincit.fi/image-preview/api"
	"vincit.fi/image-preview/api/apitype"
	"vincit.fi/image-preview/backend/preview"
	"vincit.fi/image-preview/backend/server"
	"vincit.fi/image-preview/common/event"
	"vincit.fi/image-preview/common/logger"
	"vincit.fi/image-preview/common/metrics"
	"vincit.fi/image-preview/common/util"
)

type Brokers struct {
	Broker *event.Broker
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker: event.InitBus(eventBusQueueSize),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

type Services struct {
	PreviewService *preview.Service
	Writer         *preview.Writer
	Metrics        *metrics.Metrics
	Progress       *preview.Progress
}

func InitializeServices(params *util.Params, brokers *Brokers, out io.Writer) *Services {
	logger.Debug.Printf("Initialize services...")
	serviceMetrics := metrics.NewMetrics()
	progress := preview.NewProgress(api.NewSenderProgressReporter(brokers.Broker), len(selections(params)))
	services := &Services{
		PreviewService: preview.NewService(brokers.Broker, params, serviceMetrics, progress),
		Writer:         preview.NewWriter(brokers.Broker, preview.NewRenderer(color.Black), params.OutputDir(), out, progress),
		Metrics:        serviceMetrics,
		Progress:       progress,
	}

	brokers.Broker.Subscribe(api.FileSelected, services.PreviewService.FileSelected)
	brokers.Broker.Subscribe(api.PreviewComputed, services.Writer.PreviewComputed)
	logger.Debug.Printf("Services initialized")
	return services
}

// selections is the default image first, as it is shown before anything is
// selected, followed by the given files.
func selections(params *util.Params) []*api.FileSelectedCommand {
	var commands []*api.FileSelectedCommand
	if params.DefaultImage() != "" {
		commands = append(commands, &api.FileSelectedCommand{
			CommandBase: apitype.NewCommandBase(),
			Path:        params.DefaultImage(),
			Default:     true,
		})
	}
	for _, file := range params.Files() {
		commands = append(commands, &api.FileSelectedCommand{
			CommandBase: apitype.NewCommandBase(),
			Path:        file,
		})
	}
	return commands
}

// RunBatch sends every selected file through the broker and waits until each
// one is finished. Returns the number of failed files.
func RunBatch(params *util.Params, brokers *Brokers, services *Services) int {
	commands := selections(params)

	var waitGroup sync.WaitGroup
	waitGroup.Add(len(commands))
	brokers.Broker.Subscribe(api.ProcessStatusUpdated, func(command *api.UpdateProgressCommand) {
		logger.Info.Printf("Processed '%s' (%d/%d)", command.Name, command.Current, command.Total)
		waitGroup.Done()
	})
	brokers.Broker.Subscribe(api.ShowError, func(command *api.ErrorCommand) {
		logger.Debug.Printf("Error shown: %s", command.Message)
	})

	for _, command := range commands {
		brokers.Broker.SendCommandToTopic(api.FileSelected, command)
	}
	waitGroup.Wait()

	return services.Progress.Failed()
}

func Serve(params *util.Params, services *Services) error {
	return server.NewServer(services.PreviewService, services.Metrics, params.FrameSize()).Run(params.HttpPort())
}

func (s *Services) Close(params *util.Params) {
	if params.MetricsFile() != "" {
		if err := s.Metrics.WriteToTextfile(params.MetricsFile()); err != nil {
			logger.Error.Printf("Could not write metrics to '%s': %s", params.MetricsFile(), err)
		}
	}
}

func (s *Brokers) Close() {
	s.Broker.Close(api.FileSelected, api.PreviewComputed, api.ProcessStatusUpdated, api.ShowError)
}
