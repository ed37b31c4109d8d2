package collector

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/rusenback/hostmon/internal/model"
	"github.com/rusenback/hostmon/internal/sysinfo"
)

const (
	// DefaultTopN is the number of processes kept in a snapshot
	DefaultTopN = 5

	unknownHost = "Unknown"
)

// State of the collector
type State int

const (
	Uninitialized State = iota
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Collector builds one Snapshot per refresh cycle from a MetricSource.
// Failed queries degrade to zero values. Refresh and Close are serialized,
// so Close waits for a refresh still in flight at shutdown.
type Collector struct {
	mu sync.Mutex

	source sysinfo.MetricSource
	logger *slog.Logger
	topN   int
	now    func() time.Time

	host  model.HostInfo
	state State
}

// Option configures a Collector
type Option func(*Collector)

// WithTopN sets how many processes a snapshot keeps
func WithTopN(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.topN = n
		}
	}
}

// WithLogger sets the logger used for per-metric failures
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a collector and reads the host info once
func New(source sysinfo.MetricSource, opts ...Option) (*Collector, error) {
	if source == nil {
		return nil, errors.New("collector: nil metric source")
	}

	c := &Collector{
		source: source,
		logger: slog.New(slog.DiscardHandler),
		topN:   DefaultTopN,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	host, err := source.HostInfo(context.Background())
	if err != nil {
		c.logFailure(err)
		host = model.HostInfo{}
	}
	if host.OSName == "" {
		host.OSName = unknownHost
	}
	if host.HostName == "" {
		host.HostName = unknownHost
	}
	c.host = host

	return c, nil
}

// State returns whether the priming sample has been taken
func (c *Collector) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Host returns the host info read at construction
func (c *Collector) Host() model.HostInfo {
	return c.host
}

// Refresh queries every metric and assembles a new Snapshot. It never fails:
// a metric whose query errors is left at its zero value.
func (c *Collector) Refresh(ctx context.Context) model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Uninitialized {
		if p, ok := c.source.(sysinfo.Primer); ok {
			if err := p.Prime(ctx); err != nil {
				c.logFailure(err)
			}
		}
		c.state = Ready
	}

	snap := model.Snapshot{Host: c.host}

	if cpuPercent, err := c.source.CPUPercent(ctx); err != nil {
		c.logFailure(err)
	} else {
		snap.CPURaw = cpuPercent
		snap.CPUPercent = model.Clamp(cpuPercent)
	}

	if mem, err := c.source.Memory(ctx); err != nil {
		c.logFailure(err)
	} else {
		snap.Memory = mem
	}

	if disks, err := c.source.Disks(ctx); err != nil {
		c.logFailure(err)
	} else {
		snap.Disks = validDisks(disks)
	}

	if procs, err := c.source.Processes(ctx); err != nil {
		c.logFailure(err)
	} else {
		snap.Processes = TopN(procs, c.topN)
	}

	if networks, err := c.source.Network(ctx); err != nil {
		c.logFailure(err)
	} else {
		snap.Networks = networks
	}

	if count, err := c.source.ProcessCount(ctx); err != nil {
		c.logFailure(err)
	} else {
		snap.ProcessCount = count
	}

	if uptime, err := c.source.Uptime(ctx); err != nil {
		c.logFailure(err)
	} else {
		snap.UptimeSeconds = uptime
	}

	if snap.Disks == nil {
		snap.Disks = []model.DiskStat{}
	}
	if snap.Processes == nil {
		snap.Processes = []model.ProcessStat{}
	}
	if snap.Networks == nil {
		snap.Networks = []model.NetworkStat{}
	}

	snap.Timestamp = c.now()
	return snap
}

// Close sulkee metriikkalähteen
func (c *Collector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.source.Close()
}

// TopN returns the n processes with the highest CPU usage, descending.
// Ties keep their enumeration order. The input slice is not modified.
func TopN(procs []model.ProcessStat, n int) []model.ProcessStat {
	sorted := make([]model.ProcessStat, len(procs))
	copy(sorted, procs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CPUPercent > sorted[j].CPUPercent
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// validDisks drops volumes reporting zero size
func validDisks(disks []model.DiskStat) []model.DiskStat {
	result := make([]model.DiskStat, 0, len(disks))
	for _, d := range disks {
		if d.TotalBytes == 0 {
			continue
		}
		result = append(result, d)
	}
	return result
}

func (c *Collector) logFailure(err error) {
	metric := "unknown"
	var qe *sysinfo.QueryError
	if errors.As(err, &qe) {
		metric = string(qe.Metric)
	}
	c.logger.Debug("metric query failed",
		slog.String("metric", metric),
		slog.String("error", err.Error()))
}
