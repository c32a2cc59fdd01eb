package constant

import "time"

// Camera
const (
	// DefaultZoom scales world units into normalized view space
	DefaultZoom = 0.25

	// CellAspect is the height/width ratio of one terminal cell
	CellAspect = 2.0
)

// Terminal front end
const (
	// StatusRows is the number of screen rows reserved below the playfield
	StatusRows = 1

	// InputHoldWindow is how long a key reads as held after its last terminal event
	// Terminals deliver key repeats, never key-up
	InputHoldWindow = 120 * time.Millisecond
)
