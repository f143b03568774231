package parameter

// Label Billboard Fade
const (
	// LabelReferenceDistance is the camera distance at which labels render at unit scale
	LabelReferenceDistance = 60.0

	LabelMinScale = 0.45
	LabelMaxScale = 1.6

	// Opacity ramps from max at LabelNearDistance to min at LabelFarDistance
	LabelNearDistance = 25.0
	LabelFarDistance  = 220.0
	LabelMinOpacity   = 0.2
	LabelMaxOpacity   = 1.0

	// LabelMaxChars is the visible character budget at unit scale
	LabelMaxChars = 18
)
