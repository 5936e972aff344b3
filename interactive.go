package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/requests"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/schedulers"
)

// runInteractive prompts for the process set, the algorithm and, for round
// robin only, the quantum; then prints the result.
func runInteractive(r io.Reader, w io.Writer) error {
	in := bufio.NewReader(r)

	var n int
	_, _ = fmt.Fprint(w, "Enter number of processes: ")
	if _, err := fmt.Fscan(in, &n); err != nil {
		return fmt.Errorf("%w: reading process count: %v", ErrInvalidArgs, err)
	}
	if n <= 0 {
		return fmt.Errorf("%w: process count must be positive, got %d", ErrInvalidArgs, n)
	}

	request := &requests.ScheduleRequests{Jobs: make([]requests.Job, n)}
	_, _ = fmt.Fprintln(w, "Enter Arrival Time, Burst Time and Priority for each process:")
	for i := range request.Jobs {
		_, _ = fmt.Fprintf(w, "Process %d: ", i+1)
		job := &request.Jobs[i]
		if _, err := fmt.Fscan(in, &job.ArrivalTime, &job.BurstTime, &job.Priority); err != nil {
			return fmt.Errorf("%w: reading process %d: %v", ErrInvalidArgs, i+1, err)
		}
	}

	_, _ = fmt.Fprintln(w, "\nChoose scheduling algorithm:")
	for i, algorithm := range schedulers.Algorithms {
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, algorithm.Title())
	}
	_, _ = fmt.Fprint(w, "Choice: ")
	var choice string
	if _, err := fmt.Fscan(in, &choice); err != nil {
		return fmt.Errorf("%w: reading choice: %v", ErrInvalidArgs, err)
	}
	algorithm, err := schedulers.ParseAlgorithm(choice)
	if err != nil {
		return err
	}
	if algorithm.NeedsQuantum() {
		_, _ = fmt.Fprint(w, "Enter Time Quantum: ")
		if _, err := fmt.Fscan(in, &request.TimeQuantum); err != nil {
			return fmt.Errorf("%w: reading quantum: %v", ErrInvalidArgs, err)
		}
	}
	_, _ = fmt.Fprintln(w)
	return scheduleAndReport(w, []schedulers.Algorithm{algorithm}, request)
}
