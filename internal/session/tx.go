package session

import (
	"github.com/myarea/app-myarea/internal/models"
	"go.uber.org/zap"
)

// Tx is the handle a dispatched handler uses to read and mutate the
// session. It is only valid inside the Dispatch call that created it.
type Tx struct {
	s     *State
	dirty bool
}

// SessionID returns the id of the session
func (tx *Tx) SessionID() string {
	return tx.s.id
}

// Language returns the selected UI language
func (tx *Tx) Language() models.Language {
	return tx.s.language
}

// SetLanguage selects the UI language. It does not navigate.
func (tx *Tx) SetLanguage(lang models.Language) error {
	if !lang.IsValid() {
		return models.ErrInvalidLanguage
	}
	if tx.s.language != lang {
		tx.s.language = lang
		tx.dirty = true
	}
	return nil
}

// CurrentScreen returns the screen being shown
func (tx *Tx) CurrentScreen() models.Screen {
	return tx.s.nav.Current()
}

// Params returns the retained selector ids
func (tx *Tx) Params() models.SelectorIDs {
	return tx.s.nav.Selected()
}

// NavigateTo overwrites the selector ids present in params and moves to
// screen. Leaving a screen releases its scope.
func (tx *Tx) NavigateTo(screen models.Screen, params models.NavigationParams) {
	from := tx.s.nav.NavigateTo(screen, params)
	tx.afterNavigation(from)
}

// Back moves to the fixed predecessor of the current screen
func (tx *Tx) Back() error {
	from, err := tx.s.nav.Back()
	if err != nil {
		return err
	}
	tx.afterNavigation(from)
	return nil
}

func (tx *Tx) afterNavigation(from models.Screen) {
	tx.dirty = true
	to := tx.s.nav.Current()
	if to == from {
		return
	}
	tx.s.scope.release()
	tx.s.scope = newScope(to)
	tx.s.logger.Debug("screen changed", zap.String("from", string(from)), zap.String("to", string(to)))
}

// UserProfile returns a copy of the profile, or nil before registration
func (tx *Tx) UserProfile() *models.UserProfile {
	if tx.s.profile == nil {
		return nil
	}
	p := *tx.s.profile
	return &p
}

// SetUserProfile stores the registered profile. It does not navigate.
func (tx *Tx) SetUserProfile(profile models.UserProfile) {
	tx.s.profile = &profile
	tx.dirty = true
}

// ClearUserProfile drops the profile
func (tx *Tx) ClearUserProfile() {
	tx.s.profile = nil
	tx.dirty = true
}

// IsVerified reports whether the user completed verification
func (tx *Tx) IsVerified() bool {
	return tx.s.verified
}

// SetIsVerified sets the verification flag. It does not navigate.
func (tx *Tx) SetIsVerified(verified bool) {
	if tx.s.verified != verified {
		tx.s.verified = verified
		tx.dirty = true
	}
}

// SelectedEvent returns the volunteer event selected for the detail screen
func (tx *Tx) SelectedEvent() string {
	return tx.s.nav.Selected().EventID
}

// SetSelectedEvent stores the selected volunteer event and shows its detail
// screen. It is the only setter that navigates.
func (tx *Tx) SetSelectedEvent(eventID string) {
	tx.NavigateTo(models.ScreenEventDetail, models.NavigationParams{EventID: models.StringPtr(eventID)})
}

// Identity returns the phone or email the user authenticated with
func (tx *Tx) Identity() string {
	return tx.s.identity
}

// SetIdentity records the authenticated phone or email
func (tx *Tx) SetIdentity(identifier string) {
	if tx.s.identity != identifier {
		tx.s.identity = identifier
		tx.dirty = true
	}
}

// PollVote returns the option this session voted for in poll
func (tx *Tx) PollVote(pollID string) (int, bool) {
	option, ok := tx.s.pollVotes[pollID]
	return option, ok
}

// RecordVote remembers the session's vote in poll
func (tx *Tx) RecordVote(pollID string, option int) {
	tx.s.pollVotes[pollID] = option
	tx.dirty = true
}

// HasJoined reports whether the session joined event
func (tx *Tx) HasJoined(eventID string) bool {
	return tx.s.joinedEvents[eventID]
}

// MarkJoined remembers that the session joined event
func (tx *Tx) MarkJoined(eventID string) {
	tx.s.joinedEvents[eventID] = true
	tx.dirty = true
}

// Scope returns the values scoped to the current screen
func (tx *Tx) Scope() *Scope {
	return tx.s.scope
}

// Touch marks the session changed so subscribers see scoped updates
func (tx *Tx) Touch() {
	tx.dirty = true
}

// Logout resets every field to its default and returns to the language screen
func (tx *Tx) Logout() {
	tx.s.resetLocked()
	tx.dirty = true
}

// Snapshot returns the current persisted form
func (tx *Tx) Snapshot() Snapshot {
	return tx.s.snapshotLocked()
}
