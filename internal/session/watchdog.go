package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// Watchdog clears the session once the bearer token's exp claim has
// passed. The claim is read without signature verification: the console
// never validates tokens, it only avoids presenting one the API is
// guaranteed to reject.
type Watchdog struct {
	store    *Store
	interval time.Duration
	stopChan chan bool
}

// NewWatchdog creates a watchdog over the given store
func NewWatchdog(store *Store, interval time.Duration) *Watchdog {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Watchdog{
		store:    store,
		interval: interval,
		stopChan: make(chan bool),
	}
}

// Start starts the expiry check loop
func (w *Watchdog) Start() {
	go w.run()
	logrus.Info("Session watchdog started")
}

// Stop stops the expiry check loop
func (w *Watchdog) Stop() {
	w.stopChan <- true
	logrus.Info("Session watchdog stopped")
}

func (w *Watchdog) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.check()
		case <-w.stopChan:
			return
		}
	}
}

// check logs the session out when its token has expired
func (w *Watchdog) check() {
	token := w.store.Token()
	if token == "" {
		return
	}
	expiry, ok := tokenExpiry(token)
	if !ok {
		return
	}
	if time.Now().After(expiry) {
		logrus.Info("Bearer token expired, clearing session")
		w.store.Logout()
	}
}

// tokenExpiry decodes the exp claim of a JWT without verifying it.
// Tokens that are not JWTs or carry no exp claim never expire locally.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
