// Package auth manages the browser session cookie. The dashboard has no
// sign-in; the session exists so Logout can clear it and leave a one-time
// notice for the next page.
package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	// DefaultSessionName is used when no session name is configured.
	DefaultSessionName = "driverdash-session"

	// SignedOutMessage is flashed after Logout.
	SignedOutMessage = "You have been signed out."

	flashSuffix = "-flash"
	minKeyLen   = 32
)

// ErrEmptySessionKey is returned when NewSessionManager is given no key.
var ErrEmptySessionKey = errors.New("session key is empty; provide ≥32 random chars")

/*─────────────────────────────────────────────────────────────────────────────*
| SessionManager                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager owns the cookie store and the session cookie names.
type SessionManager struct {
	store     *sessions.CookieStore
	name      string
	flashName string
	log       *zap.Logger
}

// NewSessionManager builds a cookie-backed session store.
//
// In production (secure=true) cookies are Secure + SameSite=None.
// In local dev over http://localhost use secure=false so cookies are accepted.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, ErrEmptySessionKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(sessionKey) < minKeyLen {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = DefaultSessionName
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts
	store.MaxAge(opts.MaxAge)

	logger.Info("session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{
		store:     store,
		name:      name,
		flashName: name + flashSuffix,
		log:       logger,
	}, nil
}

// GenerateDevKey returns a random key for local runs without a configured
// session_key. Sessions do not survive a restart with it.
func GenerateDevKey() string {
	return string(securecookie.GenerateRandomKey(minKeyLen))
}

// GetSession returns the dashboard session for r. The session is non-nil
// even when err reports a cookie that failed to decode.
func (m *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return m.store.Get(r, m.name)
}

// Destroy expires the session cookie. An undecodable cookie is expired all
// the same.
func (m *SessionManager) Destroy(w http.ResponseWriter, r *http.Request) error {
	sess, err := m.GetSession(r)
	if err != nil {
		m.log.Warn("session decode failed during logout", zap.Error(err))
	}
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Flash messages                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// AddFlash stores msg in the flash cookie. It is kept apart from the main
// session so it survives Destroy in the same response.
func (m *SessionManager) AddFlash(w http.ResponseWriter, r *http.Request, msg string) error {
	sess, err := m.store.Get(r, m.flashName)
	if err != nil {
		m.log.Debug("discarding undecodable flash cookie", zap.Error(err))
	}
	sess.AddFlash(msg)
	return sess.Save(r, w)
}

// LoadFlash pops any pending flash messages and puts the first one in the
// request context for Flash to read.
func (m *SessionManager) LoadFlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.store.Get(r, m.flashName)
		if err != nil || sess.IsNew {
			next.ServeHTTP(w, r)
			return
		}
		flashes := sess.Flashes()
		if len(flashes) == 0 {
			next.ServeHTTP(w, r)
			return
		}
		if err := sess.Save(r, w); err != nil {
			m.log.Warn("clear flash failed", zap.Error(err))
		}
		if msg, ok := flashes[0].(string); ok {
			r = WithFlash(r, msg)
		}
		next.ServeHTTP(w, r)
	})
}

type ctxKey string

const flashKey ctxKey = "flash"

// Flash returns the flash message loaded for this request, if any.
func Flash(r *http.Request) string {
	msg, _ := r.Context().Value(flashKey).(string)
	return msg
}

// WithFlash returns r carrying msg as its flash message.
func WithFlash(r *http.Request, msg string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), flashKey, msg))
}
