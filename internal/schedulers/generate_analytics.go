package schedulers

import (
	"log"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/core"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/responses"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/util"
)

func generateResponse(algorithm Algorithm, timeQuantum int, state *core.RunState) (responses.ScheduleResponse, error) {
	details := generateProcessDetails(state.Results())
	averageWaitingTime, averageResponseTime, averageTimeAroundTime, err := util.CalculateAverage(details)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	timeline := make([]responses.TimeSlice, len(state.Timeline))
	for i, slot := range state.Timeline {
		timeline[i] = responses.TimeSlice{ProcessId: slot.ProcessId, Start: slot.Start, Stop: slot.Stop}
	}

	metric := state.Metric()
	// every burst is positive, so TotalTime > 0 here
	var response = responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		TimeQuantum:           timeQuantum,
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		CpuUtilization:        float64(metric.UtilizationTime) / float64(metric.TotalTime),
		CpuThroughput:         float64(len(details)) / float64(metric.TotalTime),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Timeline:              timeline,
		Details:               details,
	}
	log.Printf("%s done: total_time=%d idle_time=%d average_waiting_time=%.2f",
		algorithm, response.TotalTime, response.IdleTime, response.AverageWaitingTime)
	return response, nil
}

func generateProcessDetails(results []core.Result) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, len(results))
	for i, r := range results {
		details[i] = responses.ProcessResponse{
			ProcessId:      r.Id,
			ArrivalTime:    r.ArrivalTime,
			BurstTime:      r.BurstTime,
			Priority:       r.Priority,
			CompletionTime: r.CompletionTime,
			ResponseTime:   r.ResponseTime,
			TurnAroundTime: r.TurnaroundTime,
			WaitingTime:    r.WaitingTime,
		}
	}
	return details
}
