package domain

import "time"

// Power model used by the benchmarking backend to turn resource usage into
// watts and carbon. Duration of one measurement is one hour.
const (
	BasePowerWatts       = 50.0
	PowerPerCPUPercent   = 0.05
	PowerPerGBMemory     = 0.4
	CarbonKgPerKWh       = 0.475
	EstimateDefaultCPU   = 35.0
	EstimateDefaultMemGB = 6.0
)

type SystemFootprint struct {
	CPUPercent      float64   `json:"cpu_percent"`
	MemoryUsedGB    float64   `json:"memory_used_gb"`
	MemoryPercent   float64   `json:"memory_percent"`
	DiskReadMB      float64   `json:"disk_read_mb"`
	DiskWriteMB     float64   `json:"disk_write_mb"`
	PowerWatts      float64   `json:"power_watts"`
	EnergyKWh       float64   `json:"energy_kwh"`
	CarbonKgPerHour float64   `json:"carbon_kg_per_hour"`
	Timestamp       time.Time `json:"timestamp"`
}

type FootprintEstimate struct {
	CPUPercent      float64 `json:"cpu_percent"`
	MemoryGB        float64 `json:"memory_gb"`
	PowerWatts      float64 `json:"power_watts"`
	CarbonKgPerHour float64 `json:"carbon_kg_per_hour"`
	EnergyKWh       float64 `json:"energy_kwh"`
	Source          Source  `json:"source"`
}

// EstimatePower applies the power model to cpu and memory usage.
func EstimatePower(cpuPercent, memoryGB float64) float64 {
	cpuPower := (cpuPercent / 100) * PowerPerCPUPercent * 100
	memPower := memoryGB * PowerPerGBMemory
	return BasePowerWatts + cpuPower + memPower
}

// EstimateFootprint computes power, energy and carbon for one hour of
// operation at the given usage.
func EstimateFootprint(cpuPercent, memoryGB float64) FootprintEstimate {
	power := EstimatePower(cpuPercent, memoryGB)
	energy := power / 1000
	return FootprintEstimate{
		CPUPercent:      cpuPercent,
		MemoryGB:        memoryGB,
		PowerWatts:      power,
		EnergyKWh:       energy,
		CarbonKgPerHour: energy * CarbonKgPerKWh,
	}
}
