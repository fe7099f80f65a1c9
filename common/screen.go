package common

const (
	// BaseWidth and BaseHeight are the logical size of the menu, options and
	// mini-game screens.
	BaseWidth  = 1366
	BaseHeight = 768

	// ViewWidth and ViewHeight are the logical size used while a level is
	// played. The level camera shows exactly this much of the map.
	ViewWidth  = 640
	ViewHeight = 360

	// TPS is the fixed logical tick rate. All gameplay tuning assumes it.
	TPS = 60
)
