package profile

import "testing"

func TestGet_Default(t *testing.T) {
	p := Get(DefaultName)
	if p.Quality != 85 || p.Colors != 256 || p.Format != "jpeg" {
		t.Errorf("default profile = %+v", p)
	}
}

func TestGet_UnknownFallsBack(t *testing.T) {
	p := Get("does-not-exist")
	if p.Name != "does-not-exist" {
		t.Errorf("name = %q, want requested name kept", p.Name)
	}
	if p.Quality != 85 || p.Format != "jpeg" {
		t.Errorf("fallback profile = %+v", p)
	}
	if Known("does-not-exist") {
		t.Error("Known reported an unknown profile")
	}
}

func TestOverride(t *testing.T) {
	p := Get("compact").Override(0, 16, "")
	if p.Quality != 75 || p.Colors != 16 || p.Format != "jpeg" {
		t.Errorf("override = %+v", p)
	}
	p = Get("pixel").Override(60, 0, "webp")
	if p.Quality != 60 || p.Colors != 32 || p.Format != "webp" {
		t.Errorf("override = %+v", p)
	}
}
