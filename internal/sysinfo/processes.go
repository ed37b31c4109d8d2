package sysinfo

import (
	"context"
	"log/slog"

	"github.com/rusenback/hostmon/internal/model"
	"github.com/shirou/gopsutil/v4/process"
)

// Processes returns every readable process in pid enumeration order.
// CPU percent is measured since the previous call; a process seen for the
// first time reports 0.
func (s *Source) Processes(ctx context.Context) ([]model.ProcessStat, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, queryErr(MetricProcesses, err)
	}

	seen := make(map[int32]struct{}, len(pids))
	result := make([]model.ProcessStat, 0, len(pids))

	for _, pid := range pids {
		p, ok := s.procs[pid]
		if !ok {
			p, err = process.NewProcessWithContext(ctx, pid)
			if err != nil {
				// Exited between listing and lookup
				continue
			}
			s.procs[pid] = p
		}
		seen[pid] = struct{}{}

		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}

		cpuPercent, err := p.PercentWithContext(ctx, 0)
		if err != nil {
			cpuPercent = 0
		}

		var rss uint64
		if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
			rss = mi.RSS
		}

		result = append(result, model.ProcessStat{
			PID:         uint32(pid),
			Name:        name,
			CPUPercent:  float32(cpuPercent),
			MemoryBytes: rss,
		})
	}

	s.prune(seen)
	return result, nil
}

// ProcessCount returns the number of processes currently on the host
func (s *Source) ProcessCount(ctx context.Context) (int, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return 0, queryErr(MetricProcessCount, err)
	}
	return len(pids), nil
}

// prune drops cached processes that were not seen in the last listing
func (s *Source) prune(seen map[int32]struct{}) {
	removed := 0
	for pid := range s.procs {
		if _, ok := seen[pid]; !ok {
			delete(s.procs, pid)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Debug("pruned exited processes",
			slog.Int("removed", removed),
			slog.Int("tracked", len(s.procs)))
	}
}
