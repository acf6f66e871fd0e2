package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
)

func (c *Client) SystemFootprint(ctx context.Context) (domain.SystemFootprint, error) {
	var resp footprintWire
	if err := c.do(ctx, http.MethodGet, "/system-footprint", nil, nil, &resp); err != nil {
		return domain.SystemFootprint{}, err
	}

	ts, err := time.Parse(time.RFC3339Nano, resp.Timestamp)
	if err != nil {
		ts = time.Now().UTC()
	}
	return domain.SystemFootprint{
		CPUPercent:      resp.CPUPercent,
		MemoryUsedGB:    resp.MemoryUsedGB,
		MemoryPercent:   resp.MemoryPercent,
		DiskReadMB:      resp.DiskReadMB,
		DiskWriteMB:     resp.DiskWriteMB,
		PowerWatts:      resp.PowerWatts,
		EnergyKWh:       resp.EnergyKWh,
		CarbonKgPerHour: resp.CarbonKgPerHour,
		Timestamp:       ts,
	}, nil
}

func (c *Client) EstimateFootprint(ctx context.Context, cpuPercent, memoryGB float64) (domain.FootprintEstimate, error) {
	if err := ValidateEstimate(cpuPercent, memoryGB); err != nil {
		return domain.FootprintEstimate{}, err
	}

	q := url.Values{}
	q.Set("cpu_percent", strconv.FormatFloat(cpuPercent, 'f', -1, 64))
	q.Set("memory_gb", strconv.FormatFloat(memoryGB, 'f', -1, 64))
	body := estimateRequestWire{CPUPercent: cpuPercent, MemoryGB: memoryGB}

	var resp estimateWire
	if err := c.do(ctx, http.MethodPost, "/system-footprint/estimate", q, body, &resp); err != nil {
		return domain.FootprintEstimate{}, err
	}
	return domain.FootprintEstimate{
		CPUPercent:      cpuPercent,
		MemoryGB:        memoryGB,
		PowerWatts:      resp.Output.PowerWatts,
		CarbonKgPerHour: resp.Output.CarbonKgPerHour,
		EnergyKWh:       resp.Output.EnergyKWh,
		Source:          domain.SourceLive,
	}, nil
}

// ValidateEstimate applies the backend's input rules locally so invalid input
// is rejected before any request is made.
func ValidateEstimate(cpuPercent, memoryGB float64) error {
	if cpuPercent < 0 || cpuPercent > 100 {
		return apperr.NewValidation("cpu_percent must be between 0 and 100")
	}
	if memoryGB < 0 {
		return apperr.NewValidation("memory_gb must be positive")
	}
	return nil
}
