package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/requests"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/responses"
)

var ErrInvalidChoice = errors.New("invalid choice")

// Algorithm identifies one of the scheduling policies.
type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	RoundRobin          Algorithm = "rr"
	Priority            Algorithm = "priority"
	PriorityPreemptive  Algorithm = "priority-preemptive"
)

// Algorithms lists every policy in menu order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	RoundRobin,
	Priority,
	PriorityPreemptive,
}

func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First-come, first-serve"
	case ShortestJobFirst:
		return "Shortest-job-first"
	case RoundRobin:
		return "Round-robin"
	case Priority:
		return "Priority (non-preemptive)"
	case PriorityPreemptive:
		return "Priority (preemptive)"
	default:
		return string(a)
	}
}

// NeedsQuantum reports whether the policy takes a time quantum.
func (a Algorithm) NeedsQuantum() bool { return a == RoundRobin }

// ParseAlgorithm accepts a policy name or its 1-based menu number.
func ParseAlgorithm(choice string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "1", "fcfs":
		return FirstComeFirstServe, nil
	case "2", "sjf":
		return ShortestJobFirst, nil
	case "3", "rr", "round-robin":
		return RoundRobin, nil
	case "4", "priority":
		return Priority, nil
	case "5", "priority-preemptive":
		return PriorityPreemptive, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
}

// Schedule runs the given policy over the request. Round robin takes its
// quantum from request.TimeQuantum.
func Schedule(algorithm Algorithm, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(request)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(request)
	case RoundRobin:
		var quantum int
		if request != nil {
			quantum = request.TimeQuantum
		}
		return ScheduleRoundRobin(request, quantum)
	case Priority:
		return SchedulePriority(request)
	case PriorityPreemptive:
		return SchedulePriorityPreemptive(request)
	}
	return responses.ScheduleResponse{}, fmt.Errorf("%w: %q", ErrInvalidChoice, algorithm)
}
