package parameter

// Camera
const (
	CameraFOV = 75.0

	CameraBaseX = 0.0
	CameraBaseY = 5.0

	// CameraRestZ and CameraHoldZ are the dolly targets; the camera eases in while charging
	CameraRestZ = 15.0
	CameraHoldZ = 12.9

	// CameraEase is the per-tick approach factor
	CameraEase = 0.1

	CameraNear = 0.1

	// Charge anchor, camera-relative
	AnchorOffsetX = 0.0
	AnchorOffsetY = -2.0
	AnchorOffsetZ = -6.0
)
