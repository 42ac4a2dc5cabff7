package session

import (
	"time"

	"github.com/footballower/backend/internal/domain/user"
)

// Session is one issued login. Token is an opaque random value handed to
// the client as a cookie; identity is always resolved through the store,
// never held in process-wide state.
type Session struct {
	Token     string
	Principal user.Principal
	ExpiresAt time.Time
}
