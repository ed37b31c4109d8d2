// internal/sysinfo/interface.go
package sysinfo

import (
	"context"

	"github.com/rusenback/hostmon/internal/model"
)

// MetricSource interface mahdollistaa mockauksen testeissä.
// Every query is independently fallible and returns a *QueryError on failure.
type MetricSource interface {
	HostInfo(ctx context.Context) (model.HostInfo, error)
	CPUPercent(ctx context.Context) (float64, error)
	Memory(ctx context.Context) (model.MemoryStat, error)
	Disks(ctx context.Context) ([]model.DiskStat, error)
	Processes(ctx context.Context) ([]model.ProcessStat, error)
	Network(ctx context.Context) ([]model.NetworkStat, error)
	Uptime(ctx context.Context) (uint64, error)
	ProcessCount(ctx context.Context) (int, error)
	Close() error
}

// Primer is implemented by sources that need a baseline observation before
// their delta-based readings are meaningful.
type Primer interface {
	Prime(ctx context.Context) error
}

// Varmista että Source toteuttaa interfacet
var (
	_ MetricSource = (*Source)(nil)
	_ Primer       = (*Source)(nil)
)
