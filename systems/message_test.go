package systems

import (
	"testing"

	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func advanceBannerFor(e *ecs.ECS, seconds float32) {
	const frame = float32(0.01)
	for elapsed := float32(0); elapsed < seconds; elapsed += frame {
		AdvanceBanner(e, frame)
	}
}

func TestBannerFadesInAndOut(t *testing.T) {
	cfg.Reset()
	e := ecs.NewECS(donburi.NewWorld())

	ShowBanner(e, "TREASURE", cfg.Gold)
	banner := getOrCreateBanner(e)
	require.NotNil(t, banner.Fade)
	assert.Equal(t, "TREASURE", banner.Text)

	advanceBannerFor(e, cfg.Banner.FadeIn+cfg.Banner.Hold/2)
	assert.InDelta(t, 1, banner.Alpha, 1e-4)

	advanceBannerFor(e, cfg.Banner.Hold+cfg.Banner.FadeOut+0.5)
	assert.Nil(t, banner.Fade)
	assert.Empty(t, banner.Text)
	assert.Zero(t, banner.Alpha)
}

func TestShowBannerReplacesCurrent(t *testing.T) {
	cfg.Reset()
	e := ecs.NewECS(donburi.NewWorld())

	ShowBanner(e, "first", cfg.White)
	advanceBannerFor(e, cfg.Banner.FadeIn)
	ShowBanner(e, "second", cfg.Red)

	assert.Equal(t, 1, donburi.NewQuery(filter.Contains(components.Banner)).Count(e.World))
	banner := getOrCreateBanner(e)
	assert.Equal(t, "second", banner.Text)
	assert.Zero(t, banner.Alpha)
}

func TestAdvanceBannerWithoutBanner(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	AdvanceBanner(e, 1)
	assert.Nil(t, getOrCreateBanner(e).Fade)
}
