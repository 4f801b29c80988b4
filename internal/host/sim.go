package host

// Sim is an in-process host runtime used by cmd/storefront and the test
// suites.  It records calls so tests can assert on button state and
// outbound traffic, and its button can be "pressed" programmatically.
type Sim struct {
	initData string
	button   SimButton
	ready    int
	expand   int
	sent     [][]byte
}

// NewSim returns a simulated host whose InitData returns initData.
func NewSim(initData string) *Sim {
	return &Sim{initData: initData}
}

func (s *Sim) Ready()                 { s.ready++ }
func (s *Sim) Expand()                { s.expand++ }
func (s *Sim) InitData() string       { return s.initData }
func (s *Sim) MainButton() MainButton { return &s.button }

// Send records the payload and always succeeds.
func (s *Sim) Send(payload []byte) error {
	p := make([]byte, len(payload))
	copy(p, payload)
	s.sent = append(s.sent, p)
	return nil
}

// ReadyCalls reports how many times the app signaled readiness.
func (s *Sim) ReadyCalls() int { return s.ready }

// ExpandCalls reports how many times full-height presentation was requested.
func (s *Sim) ExpandCalls() int { return s.expand }

// Sent returns every payload delivered through the outbound channel, in
// order.
func (s *Sim) Sent() [][]byte { return s.sent }

// Button exposes the simulated primary-action control for direct
// inspection and pressing.
func (s *Sim) Button() *SimButton { return &s.button }

// SimButton is the simulated primary-action control.  It mirrors the
// host contract: one label, one visibility flag, at most one activation
// callback, where attaching a callback replaces the previous one.
type SimButton struct {
	label     string
	visible   bool
	onClick   func()
	activated int
}

func (b *SimButton) Show()                { b.visible = true }
func (b *SimButton) Hide()                { b.visible = false }
func (b *SimButton) SetLabel(text string) { b.label = text }
func (b *SimButton) OnActivate(fn func()) { b.onClick = fn }
func (b *SimButton) OffActivate()         { b.onClick = nil }

// Activate simulates the user pressing the control.  A hidden button or
// one without a callback does nothing, matching real host behavior.  The
// callback may detach itself mid-dispatch (navigation away releases the
// binding); the captured reference keeps the dispatch well-defined.
func (b *SimButton) Activate() {
	if !b.visible || b.onClick == nil {
		return
	}
	b.activated++
	fn := b.onClick
	fn()
}

// Label returns the current button text.
func (b *SimButton) Label() string { return b.label }

// Visible reports whether the button is shown.
func (b *SimButton) Visible() bool { return b.visible }

// Bound reports whether an activation callback is attached.
func (b *SimButton) Bound() bool { return b.onClick != nil }

// Activations reports how many presses actually dispatched a callback.
func (b *SimButton) Activations() int { return b.activated }
