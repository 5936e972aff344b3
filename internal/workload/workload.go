// Package workload reads process sets from files.
//
// CSV rows are "id,burst,arrival[,priority]" with an optional header row.
// YAML and JSON documents use the same shape as the HTTP request body:
//
//	jobs:
//	  - arrival_time: 0
//	    burst_time: 5
//	    priority: 1
//	time_quantum: 2
package workload

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/requests"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidWorkload = errors.New("invalid workload")
	ErrUnknownFormat   = errors.New("unknown workload format")
)

// Load opens path and decodes it according to its extension.
func Load(path string) (*requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening workload file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".json":
		return LoadJSON(f)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

func LoadCSV(r io.Reader) (*requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrInvalidWorkload, err)
	}
	if len(rows) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), "id") {
		rows = rows[1:]
	}

	request := &requests.ScheduleRequests{Jobs: make([]requests.Job, 0, len(rows))}
	for i, row := range rows {
		if len(row) != 3 && len(row) != 4 {
			return nil, fmt.Errorf("%w: row %d has %d fields", ErrInvalidWorkload, i+1, len(row))
		}
		values := make([]int, 4)
		for j, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidWorkload, i+1, err)
			}
			values[j] = v
		}
		request.Jobs = append(request.Jobs, requests.Job{
			ProcessId:   values[0],
			BurstTime:   values[1],
			ArrivalTime: values[2],
			Priority:    values[3],
		})
	}
	return request, nil
}

func LoadYAML(r io.Reader) (*requests.ScheduleRequests, error) {
	request := &requests.ScheduleRequests{}
	if err := yaml.NewDecoder(r).Decode(request); err != nil {
		return nil, fmt.Errorf("%w: reading YAML: %v", ErrInvalidWorkload, err)
	}
	return request, nil
}

func LoadJSON(r io.Reader) (*requests.ScheduleRequests, error) {
	request := &requests.ScheduleRequests{}
	if err := json.NewDecoder(r).Decode(request); err != nil {
		return nil, fmt.Errorf("%w: reading JSON: %v", ErrInvalidWorkload, err)
	}
	return request, nil
}
