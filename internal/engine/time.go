package engine

import "time"

// Time is refreshed once per host frame before physics runs.
type Time struct {
	startup   time.Time
	lastFrame time.Time
	time      float32
	deltaTime float32
	frame     uint64
}

func NewTime() Time {
	now := time.Now()
	return Time{startup: now, lastFrame: now}
}

// Time returns seconds since startup.
func (t Time) Time() float32 {
	return t.time
}

// DeltaTime returns seconds elapsed during the last frame.
func (t Time) DeltaTime() float32 {
	return t.deltaTime
}

func (t Time) Frame() uint64 {
	return t.frame
}

// Update samples the wall clock.
func (t *Time) Update() {
	now := time.Now()
	t.deltaTime = float32(now.Sub(t.lastFrame).Seconds())
	t.time = float32(now.Sub(t.startup).Seconds())
	t.lastFrame = now
	t.frame++
}

// Advance moves time forward by a fixed step, for hosts that drive the clock themselves.
func (t *Time) Advance(dt float32) {
	t.deltaTime = dt
	t.time += dt
	t.frame++
}
