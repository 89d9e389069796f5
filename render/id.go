package render

import (
	"strconv"

	"github.com/google/uuid"
)

// ResourceID is an opaque key naming one backend resource across frames
// Callers must not reuse an id for a different object after disposal
type ResourceID string

// NewID returns a globally unique id, assigned once per logical object
func NewID() ResourceID {
	return ResourceID(uuid.NewString())
}

// Slot returns the composite id "<id>:<n>" addressing one sub-resource
func (id ResourceID) Slot(n int) ResourceID {
	return ResourceID(string(id) + ":" + strconv.Itoa(n))
}

// Slots returns id.Slot(0) .. id.Slot(n-1)
func (id ResourceID) Slots(n int) []ResourceID {
	ids := make([]ResourceID, n)
	for i := range ids {
		ids[i] = id.Slot(i)
	}
	return ids
}
