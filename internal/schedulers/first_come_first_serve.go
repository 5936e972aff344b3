package schedulers

import (
	"log"
	"sort"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/core"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/requests"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/responses"
)

func ScheduleFirstComeFirstServe(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running fcfs algorithm ...")
	processes, err := request.Processes()
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(FirstComeFirstServe, 0, firstComeFirstServe(processes))
}

func firstComeFirstServe(processes []core.Process) *core.RunState {
	state := core.NewRunState(processes)
	runInOrder(state, arrivalOrder(state.Processes))
	return state
}

// runInOrder runs each process to completion in the given order, idling
// until a process arrives when the CPU is free too early.
func runInOrder(state *core.RunState, order []int) {
	for _, i := range order {
		state.IdleUntil(state.Processes[i].ArrivalTime)
		state.Execute(i, state.Remaining(i))
	}
}

// sortedOrder returns input indices stably sorted by less.
func sortedOrder(processes []core.Process, less func(a, b core.Process) bool) []int {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return less(processes[order[i]], processes[order[j]])
	})
	return order
}
