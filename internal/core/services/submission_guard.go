package services

import (
	"sync"

	"github.com/SscSPs/remittance_web/internal/apperrors"
)

// submissionGuard rejects a second concurrent submission of the same action for the same user.
// It only covers this process; the backend stays the real source of correctness.
type submissionGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func newSubmissionGuard() *submissionGuard {
	return &submissionGuard{inFlight: make(map[string]struct{})}
}

// acquire marks action as running for userID. The returned func releases it.
func (g *submissionGuard) acquire(userID, action string) (func(), error) {
	key := userID + "|" + action
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[key]; busy {
		return nil, apperrors.ErrSubmissionInProgress
	}
	g.inFlight[key] = struct{}{}
	return func() {
		g.mu.Lock()
		delete(g.inFlight, key)
		g.mu.Unlock()
	}, nil
}
