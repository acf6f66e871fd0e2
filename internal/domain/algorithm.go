package domain

import "strings"

const ComplexityNLogN = "O(n log n)"

type Algorithm struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	Category        string `json:"category" yaml:"category"`
	Complexity      string `json:"complexity" yaml:"complexity"`
	SpaceComplexity string `json:"space_complexity,omitempty" yaml:"space_complexity"`
}

// Efficient reports whether the algorithm belongs to the O(n log n) class.
// Every other class is treated as inefficient when synthesising data.
func (a Algorithm) Efficient() bool {
	return strings.TrimSpace(a.Complexity) == ComplexityNLogN
}

// DisplayName falls back to the id when the catalog has no name for it.
func (a Algorithm) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}
