package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcesses_AssignsIds(t *testing.T) {
	processes, err := NewProcesses([]Attributes{
		{ArrivalTime: 0, BurstTime: 5},
		{ArrivalTime: 1, BurstTime: 3, Priority: 2},
		{Id: 7, ArrivalTime: 2, BurstTime: 8},
	})
	require.NoError(t, err)
	require.Len(t, processes, 3)
	assert.Equal(t, 1, processes[0].Id)
	assert.Equal(t, 2, processes[1].Id)
	assert.Equal(t, 2, processes[1].Priority)
	assert.Equal(t, 7, processes[2].Id)
}

func TestNewProcesses_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		attributes []Attributes
		want       error
	}{
		{name: "empty", attributes: nil, want: ErrNoProcesses},
		{name: "negative arrival", attributes: []Attributes{{ArrivalTime: -1, BurstTime: 2}}, want: ErrInvalidArrival},
		{name: "zero burst", attributes: []Attributes{{BurstTime: 0}}, want: ErrInvalidBurst},
		{name: "negative burst", attributes: []Attributes{{BurstTime: -3}}, want: ErrInvalidBurst},
		{name: "negative id", attributes: []Attributes{{Id: -2, BurstTime: 1}}, want: ErrInvalidProcessId},
		{
			name:       "duplicate id",
			attributes: []Attributes{{Id: 2, BurstTime: 1}, {BurstTime: 1}},
			want:       ErrDuplicateProcessId,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			processes, err := NewProcesses(tc.attributes)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, processes)
		})
	}
}

func TestValidateQuantum(t *testing.T) {
	assert.NoError(t, ValidateQuantum(1))
	assert.ErrorIs(t, ValidateQuantum(0), ErrInvalidQuantum)
	assert.ErrorIs(t, ValidateQuantum(-4), ErrInvalidQuantum)
}
