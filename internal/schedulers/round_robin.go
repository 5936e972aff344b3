package schedulers

import (
	"log"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/core"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/requests"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/responses"
)

func ScheduleRoundRobin(request *requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	log.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)
	if err := core.ValidateQuantum(timeQuantum); err != nil {
		return responses.ScheduleResponse{}, err
	}
	processes, err := request.Processes()
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(RoundRobin, timeQuantum, roundRobin(processes, timeQuantum))
}

// roundRobin serves a FIFO ready queue in slices of at most timeQuantum.
// After each slice, processes that arrived meanwhile are queued in input
// order first, then the preempted process goes to the back.
func roundRobin(processes []core.Process, timeQuantum int) *core.RunState {
	state := core.NewRunState(processes)
	queued := make([]bool, len(state.Processes))
	queue := make([]int, 0, len(state.Processes))

	enqueueArrived := func() {
		for i, p := range state.Processes {
			if !queued[i] && p.ArrivalTime <= state.Clock {
				queued[i] = true
				queue = append(queue, i)
			}
		}
	}

	enqueueArrived()
	for !state.Finished() {
		if len(queue) == 0 {
			state.IdleUntil(nextArrival(state.Processes, queued))
			enqueueArrived()
			continue
		}
		i := queue[0]
		queue = queue[1:]
		finished := state.Execute(i, timeQuantum)
		enqueueArrived()
		if !finished {
			queue = append(queue, i)
		}
	}
	return state
}

// nextArrival returns the earliest arrival among processes not yet queued.
func nextArrival(processes []core.Process, queued []bool) int {
	next := -1
	for i, p := range processes {
		if !queued[i] && (next < 0 || p.ArrivalTime < next) {
			next = p.ArrivalTime
		}
	}
	return next
}
