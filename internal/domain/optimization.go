package domain

type Strategy string

const (
	StrategyCarbonFirst Strategy = "carbon_first"
	StrategySpeedFirst  Strategy = "speed_first"
	StrategyBalanced    Strategy = "balanced"
)

var Strategies = []Strategy{StrategyCarbonFirst, StrategySpeedFirst, StrategyBalanced}

func (s Strategy) Valid() bool {
	for _, v := range Strategies {
		if s == v {
			return true
		}
	}
	return false
}

type OptimizationRecommendation struct {
	Algorithm             string        `json:"algorithm"`
	CarbonSaved           string        `json:"carbonSaved"`
	PerformanceImpact     string        `json:"performanceImpact"`
	Description           string        `json:"description"`
	Strategy              Strategy      `json:"strategy"`
	Score                 float64       `json:"score"`
	Alternatives          []Alternative `json:"alternatives,omitempty"`
	CarbonSavedAnnuallyKg float64       `json:"carbon_saved_annually_kg"`
	StrategyApplied       string        `json:"strategy_applied,omitempty"`
	Source                Source        `json:"source"`
}

type Alternative struct {
	Algorithm   string  `json:"algorithm"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

type Scenario struct {
	CPUIntensive     bool `json:"cpu_intensive"`
	MemoryIntensive  bool `json:"memory_intensive"`
	LatencySensitive bool `json:"latency_sensitive"`
}

type ScenarioRecommendation struct {
	Scenario      string        `json:"scenario"`
	Input         Scenario      `json:"input"`
	BestAlgorithm string        `json:"best_algorithm"`
	Explanation   string        `json:"explanation"`
	Alternatives  []Alternative `json:"alternatives,omitempty"`
	Source        Source        `json:"source"`
}

type OptimizerStatus struct {
	Status         string     `json:"status"`
	ModelAvailable bool       `json:"model_available"`
	Strategies     []Strategy `json:"strategies"`
	Source         Source     `json:"source"`
}
