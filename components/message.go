package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is a singleton holding the announcement shown over the level.
// Fade drives Alpha from 0 up to 1 and back; a nil Fade hides the banner.
type BannerData struct {
	Text  string
	Color color.RGBA
	Fade  *gween.Sequence
	Alpha float32
}

var Banner = donburi.NewComponentType[BannerData]()
