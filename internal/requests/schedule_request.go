package requests

import "github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/core"

type Job struct {
	ProcessId   int `json:"process_id,omitempty" yaml:"process_id,omitempty"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs" yaml:"jobs"`
	TimeQuantum int   `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}

// Processes validates the jobs and turns them into the process set.
func (r *ScheduleRequests) Processes() ([]core.Process, error) {
	if r == nil {
		return nil, core.ErrNoProcesses
	}
	attributes := make([]core.Attributes, len(r.Jobs))
	for i, job := range r.Jobs {
		attributes[i] = core.Attributes{
			Id:          job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		}
	}
	return core.NewProcesses(attributes)
}
