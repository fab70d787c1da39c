package math

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5,0,3) = %d, want 3", got)
	}
	if got := Clamp(-1.5, 0.0, 3.0); got != 0 {
		t.Errorf("Clamp(-1.5,0,3) = %f, want 0", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Errorf("Clamp(2,0,3) = %d, want 2", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(float32(0), 10, 0.5); got != 5 {
		t.Errorf("Lerp(0,10,0.5) = %f, want 5", got)
	}
	if got := Lerp(float32(2), 4, 0); got != 2 {
		t.Errorf("Lerp(2,4,0) = %f, want 2", got)
	}
	if got := Lerp(float32(2), 4, 1); got != 4 {
		t.Errorf("Lerp(2,4,1) = %f, want 4", got)
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	if got := RadToDeg(DegToRad(90)); kabs(got-90) > 1e-4 {
		t.Errorf("RadToDeg(DegToRad(90)) = %f, want 90", got)
	}
	if got := DegToRad(180); kabs(got-K_PI) > 1e-6 {
		t.Errorf("DegToRad(180) = %f, want pi", got)
	}
}
