package report

import (
	"bytes"
	"testing"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/responses"
	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	timeline := []responses.TimeSlice{{ProcessId: 1, Start: 0, Stop: 1}, {ProcessId: 1, Start: 1, Stop: 2}, {ProcessId: 2, Start: 2, Stop: 3}, {ProcessId: 1, Start: 4, Stop: 5}}
	assert.Equal(t, []responses.TimeSlice{{ProcessId: 1, Start: 0, Stop: 2}, {ProcessId: 2, Start: 2, Stop: 3}, {ProcessId: 1, Start: 4, Stop: 5}}, Coalesce(timeline))
}

func TestWrite(t *testing.T) {
	response := responses.ScheduleResponse{
		Timeline: []responses.TimeSlice{{ProcessId: 1, Start: 0, Stop: 1}, {ProcessId: 1, Start: 1, Stop: 2}, {ProcessId: 2, Start: 4, Stop: 7}},
		Details: []responses.ProcessResponse{
			{ProcessId: 1, BurstTime: 2, CompletionTime: 2, TurnAroundTime: 2},
			{ProcessId: 2, ArrivalTime: 4, BurstTime: 3, Priority: 1, CompletionTime: 7, TurnAroundTime: 3},
		},
		AverageTurnAroundTime: 2.5,
		CpuUtilization:        5.0 / 7,
		CpuThroughput:         2.0 / 7,
		IdleTime:              2,
	}

	var buf bytes.Buffer
	Write(&buf, "Priority (preemptive)", response)
	out := buf.String()

	assert.Contains(t, out, "Priority (preemptive)")
	assert.Contains(t, out, "|   P1   |   --   |   P2   |")
	assert.Contains(t, out, "0\t2\t4\t7")
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "2.50")
	assert.Contains(t, out, "idle time: 2")
}

func TestWrite_WideProcessId(t *testing.T) {
	response := responses.ScheduleResponse{
		Timeline: []responses.TimeSlice{{ProcessId: 123456789, Start: 0, Stop: 2}},
		Details:  []responses.ProcessResponse{{ProcessId: 123456789, BurstTime: 2, CompletionTime: 2, TurnAroundTime: 2}},
	}

	var buf bytes.Buffer
	assert.NotPanics(t, func() { Write(&buf, "First-come, first-serve", response) })
	assert.Contains(t, buf.String(), "|P123456789|")
}
