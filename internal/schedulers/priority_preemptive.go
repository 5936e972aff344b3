package schedulers

import (
	"log"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/core"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/requests"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/responses"
)

func SchedulePriorityPreemptive(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running preemptive priority algorithm ...")
	processes, err := request.Processes()
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(PriorityPreemptive, 0, priorityPreemptive(processes))
}

// priorityPreemptive re-evaluates every time unit: the arrived process with
// the lowest priority value runs for one unit, the lowest input index wins a
// tie. Each unit becomes its own timeline slot.
func priorityPreemptive(processes []core.Process) *core.RunState {
	state := core.NewRunState(processes)
	admit := newAdmitter(state, func(p core.Process) int { return p.Priority })
	for !state.Finished() {
		admit.fill()
		if state.Execute(admit.ready.peek(), 1) {
			admit.ready.pop()
		}
	}
	return state
}
