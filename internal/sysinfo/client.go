package sysinfo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/process"
)

// Config sisältää metriikkalähteen asetukset
type Config struct {
	// SettleDelay is the minimum wait between two CPU observations
	SettleDelay time.Duration
	// AllPartitions includes pseudo filesystems in the disk list
	AllPartitions bool
	// Timeout bounds the platform check done by NewSource
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		SettleDelay: 200 * time.Millisecond,
		Timeout:     5 * time.Second,
	}
}

// Source wrappaa gopsutil kyselyt.
// It keeps the previous CPU times and one *process.Process per pid so that
// CPU percentages are computed as deltas between refreshes. Not safe for
// concurrent use.
type Source struct {
	cfg    Config
	logger *slog.Logger

	readCPU func(ctx context.Context) (cpu.TimesStat, error)
	prevCPU *cpu.TimesStat

	readUsage func(ctx context.Context, path string) (*disk.UsageStat, error)

	procs map[int32]*process.Process
}

// NewSource luo uuden metriikkalähteen. It fails only when the platform
// cannot report CPU times at all.
func NewSource(cfg Config, logger *slog.Logger) (*Source, error) {
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = DefaultConfig().SettleDelay
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Source{
		cfg:     cfg,
		logger:  logger,
		readCPU:   readTotalCPUTimes,
		readUsage: readDiskUsage,
		procs:     make(map[int32]*process.Process),
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if _, err := s.readCPU(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return s, nil
}

// Prime takes the baseline CPU and per-process samples and waits the settle
// delay, so the next readings cover a real interval.
func (s *Source) Prime(ctx context.Context) error {
	cur, err := s.readCPU(ctx)
	if err != nil {
		return queryErr(MetricCPU, err)
	}
	s.prevCPU = &cur

	// Percent(0) on a fresh process only records its baseline
	if _, err := s.Processes(ctx); err != nil {
		s.logger.Debug("process baseline failed", slog.String("error", err.Error()))
	}

	return s.settle(ctx)
}

// Close vapauttaa välimuistissa olevat prosessit
func (s *Source) Close() error {
	s.procs = make(map[int32]*process.Process)
	s.prevCPU = nil
	return nil
}

// settle blocks for the settle delay or until ctx is done
func (s *Source) settle(ctx context.Context) error {
	timer := time.NewTimer(s.cfg.SettleDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
