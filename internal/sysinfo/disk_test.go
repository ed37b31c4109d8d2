package sysinfo

import (
	"context"
	"errors"
	"testing"

	"github.com/rusenback/hostmon/internal/model"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/stretchr/testify/assert"
)

// fakeUsage serves usage by mountpoint; unknown paths fail
func fakeUsage(byPath map[string]*disk.UsageStat) func(context.Context, string) (*disk.UsageStat, error) {
	return func(_ context.Context, path string) (*disk.UsageStat, error) {
		u, ok := byPath[path]
		if !ok {
			return nil, errors.New("permission denied")
		}
		return u, nil
	}
}

func TestFoldPartitions(t *testing.T) {
	usage := fakeUsage(map[string]*disk.UsageStat{
		"/":          {Total: 100, Free: 40},
		"/home":      {Total: 200, Free: 50},
		"/mnt/bind":  {Total: 200, Free: 50},
		"/boot/efi":  {Total: 0, Free: 0},
		"/snap/core": {Total: 0},
		"C:":         {Total: 300, Free: 100},
	})

	tests := []struct {
		name       string
		partitions []disk.PartitionStat
		want       []model.DiskStat
	}{
		{
			name:       "empty",
			partitions: nil,
			want:       []model.DiskStat{},
		},
		{
			name: "duplicate device keeps first mount",
			partitions: []disk.PartitionStat{
				{Device: "/dev/sda1", Mountpoint: "/"},
				{Device: "/dev/sda2", Mountpoint: "/home"},
				{Device: "/dev/sda2", Mountpoint: "/mnt/bind"},
			},
			want: []model.DiskStat{
				{MountOrDevice: "/", TotalBytes: 100, FreeBytes: 40},
				{MountOrDevice: "/home", TotalBytes: 200, FreeBytes: 50},
			},
		},
		{
			name: "zero size and unreadable skipped",
			partitions: []disk.PartitionStat{
				{Device: "/dev/sda3", Mountpoint: "/boot/efi"},
				{Device: "/dev/loop0", Mountpoint: "/snap/core"},
				{Device: "/dev/sdb1", Mountpoint: "/root/secret"},
				{Device: "/dev/sda1", Mountpoint: "/"},
			},
			want: []model.DiskStat{
				{MountOrDevice: "/", TotalBytes: 100, FreeBytes: 40},
			},
		},
		{
			name: "unreadable mount does not hide a later mount of the same device",
			partitions: []disk.PartitionStat{
				{Device: "/dev/sda2", Mountpoint: "/root/secret"},
				{Device: "/dev/sda2", Mountpoint: "/home"},
			},
			want: []model.DiskStat{
				{MountOrDevice: "/home", TotalBytes: 200, FreeBytes: 50},
			},
		},
		{
			name: "devices without a name are never deduplicated",
			partitions: []disk.PartitionStat{
				{Mountpoint: "/"},
				{Mountpoint: "/home"},
			},
			want: []model.DiskStat{
				{MountOrDevice: "/", TotalBytes: 100, FreeBytes: 40},
				{MountOrDevice: "/home", TotalBytes: 200, FreeBytes: 50},
			},
		},
		{
			name: "windows drive letter",
			partitions: []disk.PartitionStat{
				{Device: "C:", Mountpoint: "C:"},
			},
			want: []model.DiskStat{
				{MountOrDevice: "C:", TotalBytes: 300, FreeBytes: 100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := foldPartitions(context.Background(), tt.partitions, usage)
			assert.Equal(t, tt.want, got)
		})
	}
}
