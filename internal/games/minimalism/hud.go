package minimalism

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	scoreTweenSeconds  = 0.4
	bannerTweenSeconds = 0.5
)

// HUD holds the animated parts of the overlay: the displayed score eases
// toward the real one and the completion banner slides down from the top.
type HUD struct {
	score      float32
	scoreTween *gween.Tween

	bannerShown bool
	bannerY     float32
	bannerTween *gween.Tween
}

// NewHUD creates a HUD showing score without animation.
func NewHUD(score int) *HUD {
	return &HUD{score: float32(score)}
}

// SetScore starts easing the displayed score toward target.
func (h *HUD) SetScore(target int) {
	h.scoreTween = gween.New(h.score, float32(target), scoreTweenSeconds, ease.OutQuad)
}

// JumpScore shows score immediately, cancelling any running animation.
func (h *HUD) JumpScore(score int) {
	h.score = float32(score)
	h.scoreTween = nil
}

// ShowBanner slides the banner from fromY down to toY.
func (h *HUD) ShowBanner(fromY, toY int) {
	h.bannerShown = true
	h.bannerY = float32(fromY)
	h.bannerTween = gween.New(float32(fromY), float32(toY), bannerTweenSeconds, ease.OutQuad)
}

// HideBanner removes the banner.
func (h *HUD) HideBanner() {
	h.bannerShown = false
	h.bannerTween = nil
}

// Update advances running animations by dt seconds.
func (h *HUD) Update(dt float32) {
	if h.scoreTween != nil {
		var done bool
		h.score, done = h.scoreTween.Update(dt)
		if done {
			h.scoreTween = nil
		}
	}
	if h.bannerTween != nil {
		var done bool
		h.bannerY, done = h.bannerTween.Update(dt)
		if done {
			h.bannerTween = nil
		}
	}
}

// Score returns the score to display.
func (h *HUD) Score() int {
	return int(h.score + 0.5)
}

// Banner reports whether the banner is visible and its current row.
func (h *HUD) Banner() (int, bool) {
	return int(h.bannerY), h.bannerShown
}

// Animating reports whether any animation is still running.
func (h *HUD) Animating() bool {
	return h.scoreTween != nil || h.bannerTween != nil
}
