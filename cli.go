package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/config"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/report"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/requests"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/responses"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/schedulers"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/workload"
)

// runBatch handles "run [-algorithm a] [-quantum q] <file>".
func runBatch(args []string, w io.Writer) error {
	flags := flag.NewFlagSet("run", flag.ContinueOnError)
	flags.SetOutput(w)
	algorithmName := flags.String("algorithm", "all", "fcfs, sjf, rr, priority, priority-preemptive, 1-5 or all")
	quantum := flags.Int("quantum", 0, "round robin time quantum (overrides the file)")
	configDir := flags.String("config", "./", "directory holding config.yaml, for the default quantum")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}

	request, err := workload.Load(flags.Arg(0))
	if err != nil {
		return err
	}
	if *quantum != 0 {
		request.TimeQuantum = *quantum
	}
	if request.TimeQuantum == 0 {
		cfg, err := config.Load(*configDir)
		if err != nil {
			return err
		}
		request.TimeQuantum = cfg.RoundRobinTimeQuantum
	}

	algorithms := schedulers.Algorithms
	if *algorithmName != "all" {
		algorithm, err := schedulers.ParseAlgorithm(*algorithmName)
		if err != nil {
			return err
		}
		algorithms = []schedulers.Algorithm{algorithm}
	}
	return scheduleAndReport(w, algorithms, request)
}

// scheduleAndReport runs every algorithm first and prints only when all of
// them succeeded.
func scheduleAndReport(w io.Writer, algorithms []schedulers.Algorithm, request *requests.ScheduleRequests) error {
	results := make([]responses.ScheduleResponse, len(algorithms))
	for i, algorithm := range algorithms {
		response, err := schedulers.Schedule(algorithm, request)
		if err != nil {
			return fmt.Errorf("%s: %w", algorithm, err)
		}
		results[i] = response
	}
	for i, algorithm := range algorithms {
		title := algorithm.Title()
		if algorithm.NeedsQuantum() {
			title = fmt.Sprintf("%s (quantum %d)", title, request.TimeQuantum)
		}
		report.Write(w, title, results[i])
	}
	return nil
}
