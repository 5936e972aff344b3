package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/core"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/responses"
	"github.com/olekukonko/tablewriter"
)

// Write prints the title, Gantt chart and results table of one run.
func Write(w io.Writer, title string, response responses.ScheduleResponse) {
	outputTitle(w, title)
	outputGantt(w, response.Timeline)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Coalesce merges contiguous slices of the same process for display.
func Coalesce(timeline []responses.TimeSlice) []responses.TimeSlice {
	slots := make(core.Timeline, len(timeline))
	for i, s := range timeline {
		slots[i] = core.Slot{ProcessId: s.ProcessId, Start: s.Start, Stop: s.Stop}
	}
	merged := slots.Coalesce()
	out := make([]responses.TimeSlice, len(merged))
	for i, s := range merged {
		out[i] = responses.TimeSlice{ProcessId: s.ProcessId, Start: s.Start, Stop: s.Stop}
	}
	return out
}

// outputGantt draws one cell per slice; idle gaps get a "--" cell.
func outputGantt(w io.Writer, timeline []responses.TimeSlice) {
	gantt := Coalesce(timeline)
	_, _ = fmt.Fprintln(w, "Gantt schedule")

	var (
		cells  []string
		starts []int
	)
	clock := 0
	for _, s := range gantt {
		if s.Start > clock {
			cells = append(cells, "--")
			starts = append(starts, clock)
		}
		cells = append(cells, "P"+fmt.Sprint(s.ProcessId))
		starts = append(starts, s.Start)
		clock = s.Stop
	}

	_, _ = fmt.Fprint(w, "|")
	for _, cell := range cells {
		padding := strings.Repeat(" ", max(0, (8-len(cell))/2))
		_, _ = fmt.Fprint(w, padding, cell, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for _, start := range starts {
		_, _ = fmt.Fprint(w, start, "\t")
	}
	_, _ = fmt.Fprint(w, clock)
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, len(response.Details))
	for i, d := range response.Details {
		rows[i] = []string{
			"P" + fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
		}
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%%, idle time: %d\n\n", response.CpuUtilization*100, response.IdleTime)
}
