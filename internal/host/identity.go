package host

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eventory/miniapp-storefront/internal/model"
)

// ErrBadInitData indicates the host's identity blob could not be parsed
// or failed signature verification.  Callers treat the session as a
// guest session rather than aborting.
var ErrBadInitData = errors.New("invalid host init data")

// ParseIdentity decodes the host-supplied identity blob, an HS256 JWT
// whose claims carry the user record: sub (numeric user id), name,
// username and photo_url.  With a non-empty secret the signature is
// verified; with an empty secret the token is decoded unverified, which
// is how development hosts run.  The identity is read once per session,
// so there is no expiry handling here beyond what the JWT itself carries.
func ParseIdentity(secret, token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, ErrBadInitData
	}

	var (
		tok *jwt.Token
		err error
	)
	if secret == "" {
		tok, _, err = jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	} else {
		tok, err = jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			// Reject anything other than HMAC signing; the host and app
			// share a symmetric secret.
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err == nil && !tok.Valid {
			err = ErrBadInitData
		}
	}
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", ErrBadInitData, err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return model.Identity{}, ErrBadInitData
	}

	id := model.Identity{
		Name:     stringClaim(claims, "name"),
		Username: stringClaim(claims, "username"),
		PhotoURL: stringClaim(claims, "photo_url"),
	}
	// The subject is numeric but JSON decoding yields float64; string
	// subjects are tolerated for hosts that quote the id.
	switch v := claims["sub"].(type) {
	case float64:
		id.ID = int64(v)
	case string:
		var n int64
		if _, err := fmt.Sscan(v, &n); err == nil {
			id.ID = n
		}
	}
	if id.ID == 0 {
		return model.Identity{}, ErrBadInitData
	}
	return id, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

// SignIdentity produces an init-data blob for the given identity, signed
// with secret.  The real host does this on its side; the app only needs
// it for the simulated host and tests.
func SignIdentity(secret string, id model.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":  id.ID,
		"name": id.Name,
	}
	if id.Username != "" {
		claims["username"] = id.Username
	}
	if id.PhotoURL != "" {
		claims["photo_url"] = id.PhotoURL
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
