package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/constants"
	"github.com/lixenwraith/lane-racer/core"
)

// DimFactor is the blend toward black applied to the field while the banner is shown
const DimFactor = 0.45

var (
	RgbHUDBackground    = core.MustParseHex(constants.HUDBackground)
	RgbBannerBackground = core.MustParseHex(constants.BannerBackground)
	RgbBannerForeground = core.MustParseHex(constants.BannerForeground)
)

// TcellColor converts a core color to a tcell truecolor value
func TcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style builds a tcell style from foreground and background colors
func Style(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(TcellColor(fg)).Background(TcellColor(bg))
}
