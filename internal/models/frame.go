package models

import (
	"image"
	"time"
)

// DefaultFrameDuration replaces missing or zero frame delays.
const DefaultFrameDuration = 100 * time.Millisecond

// Frame is one decoded animation frame and how long it stays on screen.
type Frame struct {
	Image    image.Image
	Duration time.Duration
}
