package island

import (
	"errors"

	"islandgen/internal/noise"
)

var (
	// ErrInvalidConfiguration is returned before any generation work starts.
	ErrInvalidConfiguration = errors.New("island: invalid configuration")
	// ErrLatticeBoundsExceeded aliases the noise engine's bounds guard.
	ErrLatticeBoundsExceeded = noise.ErrLatticeBounds
	// ErrEmptyAverageRegion marks a voxel cell with no in-bounds samples.
	ErrEmptyAverageRegion = errors.New("island: voxel cell has no samples")
)
