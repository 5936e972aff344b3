package schedulers

import (
	"log"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/core"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/requests"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/responses"
)

func SchedulePriority(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running priority algorithm ...")
	processes, err := request.Processes()
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(Priority, 0, priorityNonPreemptive(processes))
}

// priorityNonPreemptive orders by arrival and then priority, and never
// interrupts a running process.
func priorityNonPreemptive(processes []core.Process) *core.RunState {
	state := core.NewRunState(processes)
	order := sortedOrder(state.Processes, func(a, b core.Process) bool {
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.Priority < b.Priority
	})
	runInOrder(state, order)
	return state
}
