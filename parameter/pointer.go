package parameter

// Pointer / Pick
const (
	// DragThreshold is the pointer travel (cells) beyond which a click counts as a drag end
	DragThreshold = 5.0

	// OffCanvas is the NDC sentinel for a pointer outside the viewport
	OffCanvas = 10.0
)
