package engine

import "time"

// System is one phase of the frame; systems run in ascending Priority
type System interface {
	Name() string
	Priority() int
	Update(ctx *GameContext, dt time.Duration)
}

// SortSystems orders systems by priority, stable for equal priorities
func SortSystems(systems []System) {
	// Bubble sort, small N
	for i := 0; i < len(systems)-1; i++ {
		for j := 0; j < len(systems)-i-1; j++ {
			if systems[j].Priority() > systems[j+1].Priority() {
				systems[j], systems[j+1] = systems[j+1], systems[j]
			}
		}
	}
}
