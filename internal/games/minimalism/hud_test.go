package minimalism

import "testing"

func TestHUDScoreEases(t *testing.T) {
	h := NewHUD(1000000)
	h.SetScore(900000)

	h.Update(0.1)
	mid := h.Score()
	if mid >= 1000000 || mid <= 900000 {
		t.Errorf("Score() mid-animation = %d, expected between 900000 and 1000000", mid)
	}
	if !h.Animating() {
		t.Error("Animating() should be true mid-animation")
	}

	h.Update(1)
	if h.Score() != 900000 {
		t.Errorf("Score() = %d, expected 900000", h.Score())
	}
	if h.Animating() {
		t.Error("Animating() should be false when finished")
	}
}

func TestHUDJumpScore(t *testing.T) {
	h := NewHUD(10)
	h.SetScore(0)
	h.JumpScore(500)
	h.Update(1)

	if h.Score() != 500 {
		t.Errorf("Score() = %d, expected 500", h.Score())
	}
}

func TestHUDBanner(t *testing.T) {
	h := NewHUD(0)
	if _, shown := h.Banner(); shown {
		t.Error("banner should start hidden")
	}

	h.ShowBanner(-5, 8)
	if y, shown := h.Banner(); !shown || y != -5 {
		t.Errorf("Banner() = %d, %v; expected -5, true", y, shown)
	}

	h.Update(1)
	if y, _ := h.Banner(); y != 8 {
		t.Errorf("Banner() row = %d, expected 8", y)
	}

	h.HideBanner()
	if _, shown := h.Banner(); shown {
		t.Error("HideBanner() should hide the banner")
	}
}
