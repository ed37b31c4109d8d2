// internal/sysinfo/stats.go
package sysinfo

import (
	"context"
	"strings"

	"github.com/rusenback/hostmon/internal/model"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

// HostInfo hakee käyttöjärjestelmän ja koneen nimen
func (s *Source) HostInfo(ctx context.Context) (model.HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return model.HostInfo{}, queryErr(MetricHost, err)
	}

	osName := strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	if osName == "" {
		osName = info.OS
	}

	return model.HostInfo{
		OSName:   osName,
		HostName: info.Hostname,
	}, nil
}

// Memory returns used and total physical memory in bytes
func (s *Source) Memory(ctx context.Context) (model.MemoryStat, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return model.MemoryStat{}, queryErr(MetricMemory, err)
	}

	return model.MemoryStat{
		UsedBytes:  vm.Used,
		TotalBytes: vm.Total,
	}, nil
}

// Disks returns one entry per physical device. Volumes whose usage cannot be
// read or that report zero size are skipped.
func (s *Source) Disks(ctx context.Context) ([]model.DiskStat, error) {
	partitions, err := disk.PartitionsWithContext(ctx, s.cfg.AllPartitions)
	if err != nil {
		return nil, queryErr(MetricDisks, err)
	}

	return foldPartitions(ctx, partitions, s.readUsage), nil
}

func readDiskUsage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

// foldPartitions turns partitions into disk stats, keeping the first
// readable mount of each device
func foldPartitions(ctx context.Context, partitions []disk.PartitionStat,
	usageOf func(ctx context.Context, path string) (*disk.UsageStat, error)) []model.DiskStat {
	seen := make(map[string]struct{}, len(partitions))
	result := make([]model.DiskStat, 0, len(partitions))
	for _, p := range partitions {
		// Same device mounted twice (bind mounts, subvolumes)
		if _, dup := seen[p.Device]; dup && p.Device != "" {
			continue
		}

		usage, err := usageOf(ctx, p.Mountpoint)
		if err != nil || usage == nil || usage.Total == 0 {
			continue
		}
		seen[p.Device] = struct{}{}

		name := p.Mountpoint
		if name == "" {
			name = p.Device
		}

		result = append(result, model.DiskStat{
			MountOrDevice: name,
			TotalBytes:    usage.Total,
			FreeBytes:     usage.Free,
		})
	}

	return result
}

// Network returns cumulative counters per interface in enumeration order
func (s *Source) Network(ctx context.Context) ([]model.NetworkStat, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, queryErr(MetricNetwork, err)
	}

	result := make([]model.NetworkStat, 0, len(counters))
	for _, c := range counters {
		result = append(result, model.NetworkStat{
			InterfaceName:    c.Name,
			BytesTransmitted: c.BytesSent,
			BytesReceived:    c.BytesRecv,
		})
	}

	return result, nil
}

// Uptime returns seconds since boot
func (s *Source) Uptime(ctx context.Context) (uint64, error) {
	uptime, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, queryErr(MetricUptime, err)
	}
	return uptime, nil
}
