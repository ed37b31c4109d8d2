package sysinfo

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrUnavailable is returned by NewSource when the platform cannot serve
// metrics at all.
var ErrUnavailable = errors.New("metric source unavailable")

// Metric names a single query of the source
type Metric string

const (
	MetricHost         Metric = "host"
	MetricCPU          Metric = "cpu"
	MetricMemory       Metric = "memory"
	MetricDisks        Metric = "disks"
	MetricProcesses    Metric = "processes"
	MetricNetwork      Metric = "network"
	MetricUptime       Metric = "uptime"
	MetricProcessCount Metric = "process count"
)

// QueryError is the failure of one metric query
type QueryError struct {
	Metric Metric
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Metric, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// IsPermission reports whether the query was denied by the OS
func (e *QueryError) IsPermission() bool {
	return errors.Is(e.Err, fs.ErrPermission)
}

func queryErr(metric Metric, err error) error {
	return &QueryError{Metric: metric, Err: err}
}
