package common

import (
	"image/color"
)

// Agent colors
var (
	AgentAColor = color.RGBA{76, 161, 255, 255} // Blue
	AgentBColor = color.RGBA{255, 92, 92, 255}  // Red
)

// Grid colors
var (
	WallColor     = color.RGBA{88, 94, 110, 255}
	CellColor     = color.RGBA{40, 44, 52, 255}
	MeetHighlight = color.RGBA{90, 214, 125, 255}
)

// UI colors
var (
	BackgroundColor = color.RGBA{15, 16, 20, 255}
	PanelColor      = color.RGBA{24, 26, 32, 255}
	TextColor       = color.RGBA{230, 230, 235, 255}
)
