package schedulers

import (
	"log"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/core"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/requests"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/responses"
)

func ScheduleShortestJobFirst(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running sjf algorithm ...")
	processes, err := request.Processes()
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(ShortestJobFirst, 0, shortestJobFirst(processes))
}

// shortestJobFirst picks the arrived process with the smallest burst each
// time the CPU frees up; the lowest input index wins a tie.
func shortestJobFirst(processes []core.Process) *core.RunState {
	state := core.NewRunState(processes)
	admit := newAdmitter(state, func(p core.Process) int { return p.BurstTime })
	for !state.Finished() {
		admit.fill()
		i := admit.ready.pop()
		state.Execute(i, state.Remaining(i))
	}
	return state
}
