// Package session holds the per-client application state: language,
// current screen, profile and verification flag. Every read and write goes
// through State.Dispatch, which runs one handler at a time.
package session

import (
	"sort"
	"sync"
	"time"

	"github.com/myarea/app-myarea/internal/logging"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/navigation"
	"go.uber.org/zap"
)

// Snapshot is the persisted form of a session. Screen-scoped values such as
// an OTP challenge in progress are not part of it.
type Snapshot struct {
	ID           string              `json:"id"`
	Language     models.Language     `json:"language"`
	Screen       models.Screen       `json:"screen"`
	Selected     models.SelectorIDs  `json:"selected"`
	Profile      *models.UserProfile `json:"profile,omitempty"`
	IsVerified   bool                `json:"isVerified"`
	Identity     string              `json:"identity,omitempty"`
	PollVotes    map[string]int      `json:"pollVotes,omitempty"`
	JoinedEvents []string            `json:"joinedEvents,omitempty"`
	Version      uint64              `json:"version"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// State is one client session
type State struct {
	id string

	mu           sync.Mutex
	nav          *navigation.Controller
	language     models.Language
	profile      *models.UserProfile
	verified     bool
	identity     string
	pollVotes    map[string]int
	joinedEvents map[string]bool
	scope        *Scope
	closed       bool
	version      uint64
	createdAt    time.Time
	updatedAt    time.Time

	subMu       sync.Mutex
	subscribers []func(Snapshot)

	logger *zap.Logger
}

// New creates a session with default values
func New(id string) *State {
	now := time.Now()
	s := &State{
		id:           id,
		nav:          navigation.NewController(),
		language:     models.DefaultLanguage,
		pollVotes:    make(map[string]int),
		joinedEvents: make(map[string]bool),
		createdAt:    now,
		updatedAt:    now,
		logger:       logging.Logger.Named("session").With(zap.String("session_id", id)),
	}
	s.scope = newScope(s.nav.Current())
	return s
}

// Restore rebuilds a session from a snapshot
func Restore(snap Snapshot) *State {
	s := New(snap.ID)
	s.nav = navigation.Restore(snap.Screen, snap.Selected)
	if snap.Language.IsValid() {
		s.language = snap.Language
	}
	s.profile = snap.Profile
	s.verified = snap.IsVerified
	s.identity = snap.Identity
	for poll, option := range snap.PollVotes {
		s.pollVotes[poll] = option
	}
	for _, event := range snap.JoinedEvents {
		s.joinedEvents[event] = true
	}
	s.version = snap.Version
	if !snap.CreatedAt.IsZero() {
		s.createdAt = snap.CreatedAt
	}
	s.updatedAt = snap.UpdatedAt
	s.scope = newScope(s.nav.Current())
	return s
}

// ID returns the session id
func (s *State) ID() string {
	return s.id
}

// SetStrictNavigation makes off-table navigations log at error level
func (s *State) SetStrictNavigation(strict bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.SetStrict(strict)
}

// Subscribe registers fn to receive a snapshot after every dispatch that
// changed the session. fn runs outside the session lock.
func (s *State) Subscribe(fn func(Snapshot)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Dispatch runs fn with exclusive access to the session. Subscribers are
// notified after the lock is released when fn changed anything, whether or
// not it returned an error.
func (s *State) Dispatch(fn func(*Tx) error) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return models.ErrSessionClosed
	}

	tx := &Tx{s: s}
	err := fn(tx)

	var snap Snapshot
	if tx.dirty {
		s.version++
		s.updatedAt = time.Now()
		snap = s.snapshotLocked()
	}
	s.mu.Unlock()

	if tx.dirty {
		s.notify(snap)
	}
	return err
}

// Snapshot returns the current persisted form
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close releases screen-scoped resources. Later dispatches fail with ErrSessionClosed.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.scope.release()
}

func (s *State) notify(snap Snapshot) {
	s.subMu.Lock()
	subscribers := make([]func(Snapshot), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.subMu.Unlock()

	for _, fn := range subscribers {
		fn(snap)
	}
}

func (s *State) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:         s.id,
		Language:   s.language,
		Screen:     s.nav.Current(),
		Selected:   s.nav.Selected(),
		IsVerified: s.verified,
		Identity:   s.identity,
		Version:    s.version,
		CreatedAt:  s.createdAt,
		UpdatedAt:  s.updatedAt,
	}
	if s.profile != nil {
		p := *s.profile
		snap.Profile = &p
	}
	if len(s.pollVotes) > 0 {
		snap.PollVotes = make(map[string]int, len(s.pollVotes))
		for k, v := range s.pollVotes {
			snap.PollVotes[k] = v
		}
	}
	for event := range s.joinedEvents {
		snap.JoinedEvents = append(snap.JoinedEvents, event)
	}
	sort.Strings(snap.JoinedEvents)
	return snap
}

// resetLocked returns every field to its initial value
func (s *State) resetLocked() {
	s.scope.release()
	s.nav.Reset()
	s.language = models.DefaultLanguage
	s.profile = nil
	s.verified = false
	s.identity = ""
	s.pollVotes = make(map[string]int)
	s.joinedEvents = make(map[string]bool)
	s.scope = newScope(s.nav.Current())
	s.logger.Info("session reset")
}
