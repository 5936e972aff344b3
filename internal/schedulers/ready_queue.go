package schedulers

import (
	"container/heap"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/core"
)

type readyItem struct {
	index int // position in the input
	key   int
}

// readyQueue implements heap.Interface over arrived processes.
// Lower key is popped first; equal keys fall back to the lower input index.
type readyQueue []readyItem

func (q readyQueue) Len() int { return len(q) }

func (q readyQueue) Less(i, j int) bool {
	if q[i].key != q[j].key {
		return q[i].key < q[j].key
	}
	return q[i].index < q[j].index
}

func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x any) { *q = append(*q, x.(readyItem)) }

func (q *readyQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

func (q *readyQueue) peek() int { return (*q)[0].index }

func (q *readyQueue) pop() int { return heap.Pop(q).(readyItem).index }

// arrivalOrder returns input indices sorted by arrival time, input order on ties.
func arrivalOrder(processes []core.Process) []int {
	return sortedOrder(processes, func(a, b core.Process) bool {
		return a.ArrivalTime < b.ArrivalTime
	})
}

// admitter feeds arrived processes into a readyQueue, jumping the clock to
// the next arrival when nothing is ready.
type admitter struct {
	state    *core.RunState
	arrivals []int
	next     int
	ready    readyQueue
	key      func(core.Process) int
}

func newAdmitter(state *core.RunState, key func(core.Process) int) *admitter {
	return &admitter{
		state:    state,
		arrivals: arrivalOrder(state.Processes),
		key:      key,
	}
}

// fill pushes every process that has arrived by the current clock. If the
// ready queue is still empty the clock skips to the next arrival.
func (a *admitter) fill() {
	for {
		for a.next < len(a.arrivals) {
			i := a.arrivals[a.next]
			p := a.state.Processes[i]
			if p.ArrivalTime > a.state.Clock {
				break
			}
			heap.Push(&a.ready, readyItem{index: i, key: a.key(p)})
			a.next++
		}
		if a.ready.Len() > 0 || a.next == len(a.arrivals) {
			return
		}
		a.state.IdleUntil(a.state.Processes[a.arrivals[a.next]].ArrivalTime)
	}
}
