package core

// InputState is the polled key state for one frame
type InputState struct {
	Forward     bool
	Back        bool
	TurnLeft    bool
	TurnRight   bool
	StrafeLeft  bool
	StrafeRight bool
	Fire        bool
	AltFire     bool
	Quit        bool
}

// Any reports whether a gameplay key is held
func (s InputState) Any() bool {
	return s.Forward || s.Back || s.TurnLeft || s.TurnRight ||
		s.StrafeLeft || s.StrafeRight || s.Fire || s.AltFire
}
