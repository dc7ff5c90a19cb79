package ui

// Notifier is a one-line message banner with a countdown timer and a short
// slide in/out animation.
type Notifier struct {
	msg        string
	timer      int
	timerStart int
}

const (
	// DefaultDuration is how long a notification stays up, in frames.
	DefaultDuration = 5 * 60

	// BannerHeight is the banner bar height in pixels and also the slide
	// distance, so the bar starts fully off screen.
	BannerHeight = 12

	// animFrames is the length of the slide in and slide out phases.
	animFrames = 30
)

// Notify replaces the current notification and restarts its timer.
func (n *Notifier) Notify(msg string, frames int) {
	n.msg = msg
	n.timer = frames
	n.timerStart = frames
}

// Countdown advances the timer by one frame.
func (n *Notifier) Countdown() {
	if n.timer > 0 {
		n.timer--
	}
}

// Active reports whether a notification is on screen.
func (n *Notifier) Active() bool { return n.timer > 0 }

// Message returns the current notification text.
func (n *Notifier) Message() string { return n.msg }

// SlideOffset returns the banner's vertical offset for the current frame:
// negative while sliding in or out, zero while fully visible.
func (n *Notifier) SlideOffset() int {
	elapsed := float64(n.timerStart - n.timer)
	left := float64(n.timer)
	switch {
	case elapsed < animFrames:
		return -int(BannerHeight * (1 - elapsed/animFrames))
	case left < animFrames:
		return -int(BannerHeight * (1 - left/animFrames))
	}
	return 0
}
