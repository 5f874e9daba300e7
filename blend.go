package rgss

// BlendStack tracks the active blend mode for the duration of a draw. Drawables
// push their mode before submitting geometry and pop it afterwards, so nested
// draws always restore the mode of their caller. The bottom of the stack is
// BlendNormal and cannot be popped.
type BlendStack struct {
	modes []BlendMode
}

// Push makes mode the active blend mode.
func (s *BlendStack) Push(mode BlendMode) {
	s.modes = append(s.modes, mode)
}

// Pop restores the previously active blend mode. Popping an empty stack
// panics, since it means a Push/Pop pair was unbalanced.
func (s *BlendStack) Pop() {
	if len(s.modes) == 0 {
		panic("rgss: blend stack underflow")
	}
	s.modes = s.modes[:len(s.modes)-1]
}

// Top returns the active blend mode.
func (s *BlendStack) Top() BlendMode {
	if len(s.modes) == 0 {
		return BlendNormal
	}
	return s.modes[len(s.modes)-1]
}

// Depth returns the number of pushed modes.
func (s *BlendStack) Depth() int {
	return len(s.modes)
}
