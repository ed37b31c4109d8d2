package sysinfo

import (
	"context"
	"errors"

	"github.com/shirou/gopsutil/v4/cpu"
)

// CPUPercent returns system-wide CPU busy percentage since the previous call.
// The first call, or a call with no elapsed ticks, samples twice with the
// settle delay in between.
func (s *Source) CPUPercent(ctx context.Context) (float64, error) {
	if s.prevCPU == nil {
		first, err := s.readCPU(ctx)
		if err != nil {
			return 0, queryErr(MetricCPU, err)
		}
		s.prevCPU = &first
		if err := s.settle(ctx); err != nil {
			return 0, queryErr(MetricCPU, err)
		}
	}

	cur, err := s.readCPU(ctx)
	if err != nil {
		return 0, queryErr(MetricCPU, err)
	}

	percent, ok := busyPercent(*s.prevCPU, cur)
	if !ok {
		if err := s.settle(ctx); err != nil {
			return 0, queryErr(MetricCPU, err)
		}
		if cur, err = s.readCPU(ctx); err != nil {
			return 0, queryErr(MetricCPU, err)
		}
		percent, _ = busyPercent(*s.prevCPU, cur)
	}

	s.prevCPU = &cur
	return percent, nil
}

func readTotalCPUTimes(ctx context.Context) (cpu.TimesStat, error) {
	times, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return cpu.TimesStat{}, err
	}
	if len(times) == 0 {
		return cpu.TimesStat{}, errors.New("no cpu times reported")
	}
	return times[0], nil
}

// busyPercent laskee CPU käytön kahden havainnon välillä.
// ok is false when no ticks elapsed between the two samples.
func busyPercent(prev, cur cpu.TimesStat) (float64, bool) {
	prevTotal, prevIdle := cpuTotals(prev)
	curTotal, curIdle := cpuTotals(cur)

	totalDelta := curTotal - prevTotal
	if totalDelta <= 0 {
		return 0, false
	}

	busyDelta := totalDelta - (curIdle - prevIdle)
	if busyDelta < 0 {
		busyDelta = 0
	}
	return busyDelta / totalDelta * 100.0, true
}

func cpuTotals(t cpu.TimesStat) (total, idle float64) {
	idle = t.Idle + t.Iowait
	total = t.User + t.Nice + t.System + t.Irq + t.Softirq + t.Steal + idle
	return total, idle
}
