package fallback

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/pkg/utils"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

const (
	bytesPerGB = 1 << 30
	bytesPerMB = 1 << 20

	DefaultCPUSampleInterval = time.Second
)

// HostSampler estimates a footprint from the machine the dashboard runs on,
// using the same power model as the benchmarking backend. The numbers are real
// usage but not the backend's, so they are still demo data.
type HostSampler struct {
	interval time.Duration
	now      func() time.Time
}

func NewHostSampler(interval time.Duration) *HostSampler {
	if interval <= 0 {
		interval = DefaultCPUSampleInterval
	}
	return &HostSampler{interval: interval, now: time.Now}
}

func (h *HostSampler) GenerateFootprint(ctx context.Context) (domain.SystemFootprint, error) {
	percents, err := cpu.PercentWithContext(ctx, h.interval, false)
	if err != nil {
		return domain.SystemFootprint{}, fmt.Errorf("sample cpu: %w", err)
	}
	if len(percents) == 0 {
		return domain.SystemFootprint{}, fmt.Errorf("sample cpu: no readings")
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return domain.SystemFootprint{}, fmt.Errorf("sample memory: %w", err)
	}

	var readMB, writeMB float64
	if counters, err := disk.IOCountersWithContext(ctx); err == nil {
		for _, c := range counters {
			readMB += float64(c.ReadBytes) / bytesPerMB
			writeMB += float64(c.WriteBytes) / bytesPerMB
		}
	}

	cpuPct := utils.RoundDecimal(percents[0], 2)
	memGB := utils.RoundDecimal(float64(vm.Used)/bytesPerGB, 2)
	est := domain.EstimateFootprint(cpuPct, memGB)

	return domain.SystemFootprint{
		CPUPercent:      cpuPct,
		MemoryUsedGB:    memGB,
		MemoryPercent:   utils.RoundDecimal(vm.UsedPercent, 2),
		DiskReadMB:      utils.RoundDecimal(readMB, 2),
		DiskWriteMB:     utils.RoundDecimal(writeMB, 2),
		PowerWatts:      utils.RoundDecimal(est.PowerWatts, 2),
		EnergyKWh:       utils.RoundDecimal(est.EnergyKWh, 4),
		CarbonKgPerHour: utils.RoundDecimal(est.CarbonKgPerHour, 4),
		Timestamp:       h.now().UTC(),
	}, nil
}
