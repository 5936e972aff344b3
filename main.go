package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/api"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/config"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/tracing"
	"github.com/gofiber/fiber/v2"
)

const (
	serviceName    = "cpu-scheduler"
	serviceVersion = "0.1.0"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	if err := execute(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func execute(args []string, r io.Reader, w io.Writer) error {
	command := "serve"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}
	switch command {
	case "serve":
		return serve()
	case "run":
		return runBatch(args, w)
	case "interactive":
		return runInteractive(r, w)
	}
	return fmt.Errorf("%w: unknown command %q (want serve, run or interactive)", ErrInvalidArgs, command)
}

func serve() error {
	cfg := config.GetSchedulerConfig()
	if cfg.Tracing.Enabled {
		if err := tracing.Init(serviceName, serviceVersion, cfg.Tracing.Output); err != nil {
			return fmt.Errorf("initialising tracing: %w", err)
		}
		defer func() { _ = tracing.Shutdown(context.Background()) }()
	}

	app := fiber.New()
	api.Register(app, api.NewSchedulerHandlerImpl(cfg))

	log.Printf("listening on :%d", cfg.Port)
	return app.Listen(fmt.Sprintf(":%d", cfg.Port))
}
