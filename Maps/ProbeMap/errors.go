package ProbeMap

import (
	"errors"
	"fmt"
)

// ErrFull is matched by every *CapacityError through errors.Is.
var ErrFull = errors.New("ProbeMap is full")

// CapacityError is returned by TryPut when a new key finds neither an empty nor a tombstone slot.
type CapacityError struct {
	Capacity uint
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("ProbeMap is full: no free slot after %d probes", e.Capacity)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrFull
}
