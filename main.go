package main

import (
	"errors"
	"flag"
	"os"
	"vincit.fi/image-preview/backend"
	"vincit.fi/image-preview/common/logger"
	"vincit.fi/image-preview/common/util"
)

func main() {
	os.Exit(run())
}

func run() int {
	params, err := util.ParseParams()
	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return 2
	}

	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))
	defer logger.Sync()

	brokers := backend.InitializeEventBrokers(params.QueueSize())
	services := backend.InitializeServices(params, brokers, os.Stdout)
	defer services.Close(params)

	if params.Serve() {
		if err := backend.Serve(params, services); err != nil {
			logger.Error.Printf("Server stopped: %s", err)
			return 1
		}
		return 0
	}

	failed := backend.RunBatch(params, brokers, services)
	brokers.Close()
	if failed > 0 {
		logger.Warn.Printf("%d of %d files failed", failed, services.Progress.Total())
		return 1
	}
	return 0
}
