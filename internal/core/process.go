package core

import (
	"errors"
	"fmt"
)

var (
	ErrNoProcesses        = errors.New("no processes to schedule")
	ErrInvalidProcessId   = errors.New("invalid process id")
	ErrDuplicateProcessId = errors.New("duplicate process id")
	ErrInvalidArrival     = errors.New("invalid arrival time")
	ErrInvalidBurst       = errors.New("invalid burst time")
	ErrInvalidQuantum     = errors.New("invalid time quantum")
)

// Process is the immutable description of one process. Policies never
// modify it; anything that changes during a run lives in RunState.
type Process struct {
	Id          int
	ArrivalTime int
	BurstTime   int
	Priority    int // lower value = higher priority
}

// Attributes is the caller-facing shape of a process before it gets an id.
type Attributes struct {
	Id          int // optional, 0 means "assign index+1"
	ArrivalTime int
	BurstTime   int
	Priority    int
}

// NewProcesses validates the given attributes and builds the process set.
// Ids default to the 1-based input position.
func NewProcesses(attributes []Attributes) ([]Process, error) {
	if len(attributes) == 0 {
		return nil, ErrNoProcesses
	}
	processes := make([]Process, len(attributes))
	for i, a := range attributes {
		id := a.Id
		if id == 0 {
			id = i + 1
		}
		processes[i] = Process{
			Id:          id,
			ArrivalTime: a.ArrivalTime,
			BurstTime:   a.BurstTime,
			Priority:    a.Priority,
		}
	}
	if err := Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

// Validate checks a process set before any simulation starts.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return ErrNoProcesses
	}
	seen := make(map[int]int, len(processes))
	for i, p := range processes {
		if p.Id <= 0 {
			return fmt.Errorf("%w: process #%d has id %d", ErrInvalidProcessId, i+1, p.Id)
		}
		if j, ok := seen[p.Id]; ok {
			return fmt.Errorf("%w: P%d used by process #%d and #%d", ErrDuplicateProcessId, p.Id, j+1, i+1)
		}
		seen[p.Id] = i
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: P%d arrives at %d", ErrInvalidArrival, p.Id, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: P%d needs %d units", ErrInvalidBurst, p.Id, p.BurstTime)
		}
	}
	return nil
}

// ValidateQuantum rejects a non-positive round robin quantum.
func ValidateQuantum(quantum int) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantum, quantum)
	}
	return nil
}
