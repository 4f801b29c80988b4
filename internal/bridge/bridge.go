// Package bridge is the single point of contact with the chat-host
// runtime.  It owns the host's primary-action control, which is the one
// shared mutable resource in the app: every screen that wants the control
// goes through bind/release so navigating away always leaves it hidden
// with no callback attached, and a stale callback can never fire after
// its originating screen is gone.
//
// The bridge, like the rest of the storefront core, is confined to the
// single UI goroutine; host callbacks and navigation run to completion
// one at a time, so no internal locking is needed.
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/eventory/miniapp-storefront/internal/host"
	"github.com/eventory/miniapp-storefront/internal/model"
)

// ErrNotReady is returned by Connect while the host runtime has not
// announced itself yet.  It is recoverable: the caller shows a waiting
// state and may retry.
var ErrNotReady = errors.New("host not ready")

// BindingToken identifies one installed primary-action callback.  Tokens
// are single-use: releasing a token that is no longer live is a silent
// no-op, which makes double-release safe by construction.
type BindingToken string

// NoBinding is the zero token.  Releasing it does nothing.
const NoBinding BindingToken = ""

// Bridge adapts the host runtime for the storefront.  The zero value is
// not usable; construct with New.
type Bridge struct {
	locate   host.Locator
	secret   string
	rt       host.Runtime
	identity model.Identity

	// live is the token of the currently installed primary-action
	// binding, or NoBinding.  At most one binding exists at a time.
	live BindingToken
}

// New builds a Bridge that acquires the host through locate and verifies
// host init data with secret (empty secret means unverified, for
// development hosts).
func New(locate host.Locator, secret string) *Bridge {
	return &Bridge{locate: locate, secret: secret}
}

// Connect attempts to acquire the host runtime.  Before the host has
// announced itself it returns ErrNotReady and does nothing else.  On
// first success it signals readiness, requests full-height presentation
// and reads the identity blob.  Further calls after success are no-ops:
// the host is not re-signaled and the same logical handle stays in use.
func (b *Bridge) Connect() error {
	if b.rt != nil {
		return nil
	}
	rt, ok := b.locate()
	if !ok || rt == nil {
		return ErrNotReady
	}
	b.rt = rt
	rt.Ready()
	rt.Expand()

	id, err := host.ParseIdentity(b.secret, rt.InitData())
	if err != nil {
		// A bad identity blob degrades to a guest session; it must not
		// block the storefront from rendering.
		log.Printf("bridge: %v; continuing as guest", err)
	}
	b.identity = id
	return nil
}

// Connected reports whether the host runtime has been acquired.
func (b *Bridge) Connected() bool {
	return b.rt != nil
}

// Identity returns the host-supplied user record.  It is the zero value
// (a guest) until Connect succeeds, and immutable afterwards.
func (b *Bridge) Identity() model.Identity {
	return b.identity
}

// BindPrimaryAction sets the control's label, shows it, and attaches
// onActivate as its sole activation callback.  If a previous binding is
// still live it is released first, so rebinding on a screen's data
// reload can never stack a duplicate callback.  The returned token must
// be passed to ReleasePrimaryAction when the owning screen unmounts.
func (b *Bridge) BindPrimaryAction(label string, onActivate func()) (BindingToken, error) {
	if b.rt == nil {
		return NoBinding, ErrNotReady
	}
	if b.live != NoBinding {
		b.ReleasePrimaryAction(b.live)
	}
	btn := b.rt.MainButton()
	btn.SetLabel(label)
	btn.OnActivate(onActivate)
	btn.Show()
	b.live = BindingToken(uuid.NewString())
	return b.live, nil
}

// ReleasePrimaryAction detaches the callback and hides the control.  A
// stale token — already released, or superseded by a later bind — is a
// silent no-op; double-release never errors and never detaches a newer
// binding by mistake.
func (b *Bridge) ReleasePrimaryAction(token BindingToken) {
	if token == NoBinding || token != b.live || b.rt == nil {
		return
	}
	btn := b.rt.MainButton()
	btn.OffActivate()
	btn.Hide()
	b.live = NoBinding
}

// Rebind is release-then-bind as one explicit transition.  Screens call
// it when the data parameterizing their binding changes (for example the
// displayed event was reloaded); the previous token passed in is
// released strictly before the new binding is installed.
func (b *Bridge) Rebind(prev BindingToken, label string, onActivate func()) (BindingToken, error) {
	b.ReleasePrimaryAction(prev)
	return b.BindPrimaryAction(label, onActivate)
}

// Emit sends a one-way message to the host.  Fire-and-forget: transport
// failures are logged and returned but carry no retry semantics.
func (b *Bridge) Emit(payload any) error {
	if b.rt == nil {
		return ErrNotReady
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("bridge: marshal payload: %w", err)
	}
	if err := b.rt.Send(body); err != nil {
		log.Printf("bridge: send failed: %v", err)
		return err
	}
	return nil
}

// bookPayload is the one outbound payload shape the app defines.
type bookPayload struct {
	Action  string `json:"action"`
	EventID string `json:"eventId"`
}

// EmitBookingIntent signals the host that the user wants to book the
// given event.
func (b *Bridge) EmitBookingIntent(eventID string) error {
	return b.Emit(bookPayload{Action: "book", EventID: eventID})
}
