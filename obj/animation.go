package obj

// animate steps the frame index of the current state. Single-frame states stay
// on frame 0 and non-looping states hold their last frame.
func (c *Character) animate(dt float64) {
	def := c.StateDef()
	n := def.Frames
	if n <= 1 {
		c.frame = 0
		return
	}
	if c.frame >= n {
		c.frame %= n
	}

	c.animTimer += dt
	if c.animTimer < c.tuning.FrameTime {
		return
	}
	c.animTimer -= c.tuning.FrameTime

	if def.Loop || (def.LoopWhileFiring && c.input.Fire) {
		c.frame = (c.frame + 1) % n
	} else if c.frame < n-1 {
		c.frame++
	}
}

// Frame is the animation frame index within the current state's sheet.
func (c *Character) Frame() int {
	return c.frame
}

// SpriteFrame returns the sheet name and column to draw this tick.
func (c *Character) SpriteFrame() (sheet string, col int) {
	return c.StateDef().Sheet, c.frame
}
