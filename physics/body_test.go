package physics

import (
	"testing"
)

func TestHitboxFollowsOwner(t *testing.T) {
	b := NewBody(10, 20, 8, 6)
	b.Hitbox.Set(1, 2, 8, 6)

	if b.Hitbox.X() != 11 || b.Hitbox.Y() != 22 {
		t.Errorf("hitbox at %v,%v, want 11,22", b.Hitbox.X(), b.Hitbox.Y())
	}

	b.X = 30
	b.Y = 40
	if b.Hitbox.X() != 31 || b.Hitbox.Y() != 42 {
		t.Errorf("hitbox did not follow owner: %v,%v", b.Hitbox.X(), b.Hitbox.Y())
	}
}

func TestHitboxScale(t *testing.T) {
	b := NewBody(10, 20, 8, 6)
	b.Hitbox.Set(1, 2, 8, 6)
	b.ScaleX = 2
	b.ScaleY = 3

	if b.Hitbox.X() != 12 || b.Hitbox.Y() != 26 {
		t.Errorf("scaled hitbox at %v,%v, want 12,26", b.Hitbox.X(), b.Hitbox.Y())
	}
	if b.Hitbox.Width() != 16 || b.Hitbox.Height() != 18 {
		t.Errorf("scaled hitbox size %vx%v, want 16x18", b.Hitbox.Width(), b.Hitbox.Height())
	}
}

func TestHitboxPreviousPosition(t *testing.T) {
	b := NewBody(5, 5, 10, 10)
	b.SavePosition()
	b.X = 9
	b.Y = 2

	if b.Hitbox.X() != 9 || b.Hitbox.Y() != 2 {
		t.Errorf("current hitbox at %v,%v", b.Hitbox.X(), b.Hitbox.Y())
	}
	if b.Hitbox.PreviousX() != 5 || b.Hitbox.PreviousY() != 5 {
		t.Errorf("previous hitbox at %v,%v, want 5,5", b.Hitbox.PreviousX(), b.Hitbox.PreviousY())
	}
}

func TestTouchingLifecycle(t *testing.T) {
	b := NewBody(0, 0, 10, 10)

	b.Touching |= Down
	if !b.IsTouching(Floor) {
		t.Errorf("expected touching floor")
	}
	if !b.JustTouched(Floor) {
		t.Errorf("expected floor contact to be new")
	}

	b.AdvanceTouching()
	if b.Touching != None {
		t.Errorf("touching not cleared: %v", b.Touching)
	}
	if b.Touched != Down {
		t.Errorf("touched not rolled over: %v", b.Touched)
	}

	b.Touching |= Down
	if b.JustTouched(Floor) {
		t.Errorf("continuous contact reported as new")
	}
	if !b.IsTouching(Floor) {
		t.Errorf("expected touching floor on second tick")
	}
}

func TestIntegrate(t *testing.T) {
	b := NewBody(0, 0, 10, 10)
	b.Acceleration.X = 100
	b.MaxVelocity.X = 50

	b.Integrate(1)
	if b.Velocity.X != 50 {
		t.Errorf("velocity not clamped: %v", b.Velocity.X)
	}
	if b.X != 50 {
		t.Errorf("position %v, want 50", b.X)
	}

	b.Acceleration.X = 0
	b.AngularVelocity = 90
	b.Integrate(0.5)
	if b.X != 75 {
		t.Errorf("position %v, want 75", b.X)
	}
	if b.Rotation != 45 {
		t.Errorf("rotation %v, want 45", b.Rotation)
	}
}
