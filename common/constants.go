package common

// Logical screen size used by the windowed game. Scenes are authored against
// this width; door positions are normalized to it.
const (
	BaseWidth  = 960
	BaseHeight = 540
)
