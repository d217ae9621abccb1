// Package robust implements the dynamic scan pipeline: coverage discovery
// over a live target followed by LLM function-calling agent loops.
package robust

import "github.com/vibecheck/vibecheck/pkg/models"

// Budget bounds one agent run.
type Budget struct {
	MaxSteps        int
	MaxHTTPRequests int
	PerPathLimit    int
}

// DiscoveryLimits bound the pre-agent coverage BFS.
type DiscoveryLimits struct {
	SeedPaths     int
	MaxRequests   int
	MaxDiscovered int
}

// BudgetFor returns the agent budget for a depth; unknown depths get
// standard.
func BudgetFor(depth string) Budget {
	switch depth {
	case models.DepthQuick:
		return Budget{MaxSteps: 10, MaxHTTPRequests: 30, PerPathLimit: 2}
	case models.DepthDeep:
		return Budget{MaxSteps: 55, MaxHTTPRequests: 170, PerPathLimit: 4}
	default:
		return Budget{MaxSteps: 28, MaxHTTPRequests: 85, PerPathLimit: 3}
	}
}

// DiscoveryFor returns the coverage limits for a depth; unknown depths get
// standard.
func DiscoveryFor(depth string) DiscoveryLimits {
	switch depth {
	case models.DepthQuick:
		return DiscoveryLimits{SeedPaths: 15, MaxRequests: 12, MaxDiscovered: 25}
	case models.DepthDeep:
		return DiscoveryLimits{SeedPaths: 60, MaxRequests: 40, MaxDiscovered: 90}
	default:
		return DiscoveryLimits{SeedPaths: 35, MaxRequests: 24, MaxDiscovered: 55}
	}
}
