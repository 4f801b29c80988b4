// Package host declares the surface of the surrounding chat-host runtime
// as consumed by the app: the identity blob handed over at startup, the
// single programmable primary-action control, and the one-way outbound
// message channel.  The real runtime lives outside this process; the
// package also ships a simulated host for cmd/storefront and tests.
package host

// Runtime is the host object the app acquires at connect time.
type Runtime interface {
	// Ready signals the host that the app has rendered and is visible.
	Ready()

	// Expand requests full-height presentation from the host.
	Expand()

	// InitData returns the signed identity blob the host attached to
	// this session.  It is read once at connect time.
	InitData() string

	// MainButton returns the host's primary-action control.  There is
	// exactly one; it is shared mutable state and must only be touched
	// through the bridge's bind/release discipline.
	MainButton() MainButton

	// Send delivers a one-way message to the host.  Fire-and-forget: no
	// acknowledgment is modeled, but transport errors are reported so
	// callers can log them.
	Send(payload []byte) error
}

// MainButton is the host's single primary-action control.  At most one
// activation callback can be attached; attaching a new one replaces any
// previous callback.
type MainButton interface {
	Show()
	Hide()
	SetLabel(text string)
	OnActivate(fn func())
	OffActivate()
}

// Locator reports the host runtime once it has announced itself.  Before
// that it returns (nil, false) and the caller must retry, displaying a
// waiting state in the meantime.
type Locator func() (Runtime, bool)
