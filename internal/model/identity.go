package model

// Identity describes the user record supplied by the chat host when the
// mini app starts.  It is read once at bridge-connect time and is
// immutable for the rest of the session.  Only the numeric ID is
// guaranteed to be present; the display fields are optional and may be
// empty depending on the host's privacy settings.
//
// Fields:
//  ID       – opaque numeric user identifier assigned by the host.
//  Name     – display name, may be empty.
//  Username – optional handle without any prefix symbol.
//  PhotoURL – optional avatar image reference.
type Identity struct {
	ID       int64
	Name     string
	Username string
	PhotoURL string
}

// IsGuest reports whether the identity is the zero value, i.e. the host
// did not supply a usable user record.
func (i Identity) IsGuest() bool {
	return i.ID == 0
}
