package apiclient

type metricsWire struct {
	Time       float64 `json:"time"`
	Memory     float64 `json:"memory"`
	Energy     float64 `json:"energy"`
	CarbonGCO2 float64 `json:"carbon_gco2"`
}

type benchmarkStatusWire struct {
	Status              string   `json:"status"`
	AvailableAlgorithms []string `json:"available_algorithms"`
	Message             string   `json:"message"`
}

type runBenchmarkWire struct {
	AlgorithmsBenchmarked []string               `json:"algorithms_benchmarked"`
	DatasetSize           int                    `json:"dataset_size"`
	Results               map[string]metricsWire `json:"results"`
}

type benchmarkResultsWire struct {
	Algorithms []string               `json:"algorithms"`
	Results    map[string]metricsWire `json:"results"`
}

type comparedWire struct {
	Name        string  `json:"name"`
	TimeSeconds float64 `json:"time_seconds"`
	CarbonGCO2  float64 `json:"carbon_gco2"`
}

type compareWire struct {
	Comparison struct {
		Algorithm1 comparedWire `json:"algorithm_1"`
		Algorithm2 comparedWire `json:"algorithm_2"`
	} `json:"comparison"`
	Differences struct {
		TimeDifferencePercent   *float64 `json:"time_difference_percent"`
		CarbonDifferencePercent *float64 `json:"carbon_difference_percent"`
	} `json:"differences"`
	Winners struct {
		Fastest       string `json:"fastest"`
		MostEfficient string `json:"most_efficient"`
	} `json:"winners"`
}

type footprintWire struct {
	CPUPercent      float64 `json:"cpu_percent"`
	MemoryUsedGB    float64 `json:"memory_used_gb"`
	MemoryPercent   float64 `json:"memory_percent"`
	DiskReadMB      float64 `json:"disk_read_mb"`
	DiskWriteMB     float64 `json:"disk_write_mb"`
	PowerWatts      float64 `json:"power_watts"`
	CarbonKgPerHour float64 `json:"carbon_kg_per_hour"`
	EnergyKWh       float64 `json:"energy_kwh"`
	Timestamp       string  `json:"timestamp"`
}

type estimateWire struct {
	Input struct {
		CPUPercent float64 `json:"cpu_percent"`
		MemoryGB   float64 `json:"memory_gb"`
	} `json:"input"`
	Output struct {
		PowerWatts      float64 `json:"power_watts"`
		CarbonKgPerHour float64 `json:"carbon_kg_per_hour"`
		EnergyKWh       float64 `json:"energy_kwh"`
	} `json:"output"`
}

type alternativeWire struct {
	Algorithm   string  `json:"algorithm"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

type performanceWire struct {
	TimeSeconds     float64 `json:"time_seconds"`
	CarbonGCO2      float64 `json:"carbon_gco2"`
	EfficiencyScore float64 `json:"efficiency_score"`
}

type optimizeWire struct {
	Strategy            string                     `json:"strategy"`
	BestAlgorithm       string                     `json:"best_algorithm"`
	OptimizationScore   float64                    `json:"optimization_score"`
	Explanation         string                     `json:"explanation"`
	Alternatives        []alternativeWire          `json:"alternatives"`
	CarbonSavedAnnually float64                    `json:"carbon_saved_annually"`
	PerformanceMetrics  map[string]performanceWire `json:"performance_metrics"`
	StrategyApplied     string                     `json:"strategy_applied"`
}

type scenarioWire struct {
	Scenario         string            `json:"scenario"`
	CPUIntensive     bool              `json:"cpu_intensive"`
	MemoryIntensive  bool              `json:"memory_intensive"`
	LatencySensitive bool              `json:"latency_sensitive"`
	BestAlgorithm    string            `json:"best_algorithm"`
	Explanation      string            `json:"explanation"`
	Alternatives     []alternativeWire `json:"alternatives"`
}

type optimizeStatusWire struct {
	Status         string   `json:"status"`
	ModelAvailable bool     `json:"model_available"`
	Strategies     []string `json:"strategies"`
}

type algorithmWire struct {
	Name            string `json:"name"`
	TimeComplexity  string `json:"time_complexity"`
	SpaceComplexity string `json:"space_complexity"`
}

type algorithmsWire struct {
	Algorithms []algorithmWire `json:"algorithms"`
	Count      int             `json:"count"`
}

// Request bodies carry the same values as the query parameters.
type optimizeRequestWire struct {
	Strategy    string `json:"strategy"`
	DatasetSize int    `json:"dataset_size,omitempty"`
}

type scenarioRequestWire struct {
	CPUIntensive     bool `json:"cpu_intensive"`
	MemoryIntensive  bool `json:"memory_intensive"`
	LatencySensitive bool `json:"latency_sensitive"`
}

type estimateRequestWire struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemoryGB   float64 `json:"memory_gb"`
}
