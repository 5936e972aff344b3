package core

import (
	"log"
)

// Slot records that ProcessId held the CPU during [Start, Stop).
type Slot struct {
	ProcessId int
	Start     int
	Stop      int
}

// Timeline is the ordered record of what ran when. Gaps between one slot's
// Stop and the next slot's Start are idle time.
type Timeline []Slot

// Coalesce merges adjacent slots of the same process that touch in time.
func (t Timeline) Coalesce() Timeline {
	merged := make(Timeline, 0, len(t))
	for _, s := range t {
		if n := len(merged); n > 0 && merged[n-1].ProcessId == s.ProcessId && merged[n-1].Stop == s.Start {
			merged[n-1].Stop = s.Stop
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// Executed returns the total number of units processId spent on the CPU.
func (t Timeline) Executed(processId int) int {
	var total int
	for _, s := range t {
		if s.ProcessId == processId {
			total += s.Stop - s.Start
		}
	}
	return total
}

// Result is a process together with the outputs of one run.
type Result struct {
	Process
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// RunState is the private, mutable state of a single simulation. Every policy
// invocation builds its own, so runs never share anything but the read-only
// input.
type RunState struct {
	Processes []Process
	Timeline  Timeline
	Clock     int

	remaining  []int
	firstStart []int
	completion []int
	done       []bool
	completed  int
}

func NewRunState(processes []Process) *RunState {
	n := len(processes)
	state := &RunState{
		Processes:  append([]Process(nil), processes...),
		Timeline:   make(Timeline, 0, n),
		remaining:  make([]int, n),
		firstStart: make([]int, n),
		completion: make([]int, n),
		done:       make([]bool, n),
	}
	for i, p := range state.Processes {
		state.remaining[i] = p.BurstTime
		state.firstStart[i] = -1
	}
	return state
}

// Remaining returns how many units process i still needs.
func (r *RunState) Remaining(i int) int { return r.remaining[i] }

// Done reports whether process i has completed.
func (r *RunState) Done(i int) bool { return r.done[i] }

// Finished reports whether every process has completed.
func (r *RunState) Finished() bool { return r.completed == len(r.Processes) }

// IdleUntil moves the clock forward to t; it never moves backwards.
func (r *RunState) IdleUntil(t int) {
	if t > r.Clock {
		r.Clock = t
	}
}

// Execute runs process i for units time units starting at the current clock,
// records the slot and finalizes the process once nothing remains. It returns
// true when the process completed.
func (r *RunState) Execute(i, units int) bool {
	if units > r.remaining[i] {
		units = r.remaining[i]
	}
	r.Timeline = append(r.Timeline, Slot{
		ProcessId: r.Processes[i].Id,
		Start:     r.Clock,
		Stop:      r.Clock + units,
	})
	if r.firstStart[i] < 0 {
		r.firstStart[i] = r.Clock
	}
	r.Clock += units
	r.remaining[i] -= units
	if r.remaining[i] > 0 {
		return false
	}
	r.completion[i] = r.Clock
	r.done[i] = true
	r.completed++
	log.Println("pid:", r.Processes[i].Id, "completed at", r.Clock)
	return true
}

// Results derives turnaround, waiting and response time for every process,
// in input order.
func (r *RunState) Results() []Result {
	results := make([]Result, len(r.Processes))
	for i, p := range r.Processes {
		turnaround := r.completion[i] - p.ArrivalTime
		results[i] = Result{
			Process:        p,
			CompletionTime: r.completion[i],
			TurnaroundTime: turnaround,
			WaitingTime:    turnaround - p.BurstTime,
			ResponseTime:   r.firstStart[i] - p.ArrivalTime,
		}
	}
	return results
}

// Metric summarizes CPU usage over [0, last completion).
func (r *RunState) Metric() CpuMetric {
	var metric CpuMetric
	for i, p := range r.Processes {
		metric.UtilizationTime += p.BurstTime
		if r.completion[i] > metric.TotalTime {
			metric.TotalTime = r.completion[i]
		}
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}
