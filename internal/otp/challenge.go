// Package otp implements the one-time code entry flow of the credential
// screens: a six-cell code grid, a resend countdown and a bounded resend
// counter. Challenge is pure state; Runner owns the timers that drive it.
package otp

import (
	"strings"
	"time"

	"github.com/myarea/app-myarea/internal/models"
)

// Config tunes the countdown and resend policy
type Config struct {
	ResendSeconds   int
	MaxResends      int
	AutoSubmitDelay time.Duration
}

// DefaultConfig returns the production policy: 30s cool-down, three resends, 300ms auto-submit
func DefaultConfig() Config {
	return Config{
		ResendSeconds:   models.OTPResendSeconds,
		MaxResends:      models.OTPMaxResends,
		AutoSubmitDelay: models.OTPAutoSubmitDelayMillis * time.Millisecond,
	}
}

// Challenge is one code entry attempt. It is not safe for concurrent use.
type Challenge struct {
	cfg       Config
	state     models.OTPState
	cells     [models.OTPCodeLength]string
	focus     int
	timer     int
	attempts  int
	canResend bool
}

// NewChallenge creates a challenge in the composing state
func NewChallenge(cfg Config) *Challenge {
	if cfg.ResendSeconds <= 0 {
		cfg.ResendSeconds = models.OTPResendSeconds
	}
	if cfg.MaxResends < 0 {
		cfg.MaxResends = models.OTPMaxResends
	}
	return &Challenge{cfg: cfg, state: models.OTPStateComposing}
}

// State returns the current phase
func (c *Challenge) State() models.OTPState {
	return c.state
}

// Start moves a composing challenge to awaiting_code with a fresh countdown
func (c *Challenge) Start() error {
	if c.state != models.OTPStateComposing {
		return models.ErrChallengeState
	}
	c.state = models.OTPStateAwaitingCode
	c.timer = c.cfg.ResendSeconds
	c.canResend = false
	c.attempts = 0
	c.clearCells()
	return nil
}

// Counting reports whether the countdown still has seconds left
func (c *Challenge) Counting() bool {
	return c.accepting() && c.timer > 0
}

// Tick advances the countdown by one second. canResend flips to true when
// the timer reaches zero.
func (c *Challenge) Tick() {
	if !c.Counting() {
		return
	}
	c.timer--
	if c.timer == 0 {
		c.canResend = true
	}
}

// EnterDigit sets cell i to v, which must be empty or a single digit. A
// non-empty value moves focus to the next cell. complete is true when the
// sixth cell was just filled and every cell holds a digit.
func (c *Challenge) EnterDigit(i int, v string) (complete bool, err error) {
	if c.state != models.OTPStateAwaitingCode {
		return false, models.ErrChallengeState
	}
	if i < 0 || i >= models.OTPCodeLength {
		return false, models.ErrInvalidCellIndex
	}
	if len(v) > 1 || (v != "" && (v[0] < '0' || v[0] > '9')) {
		return false, models.ErrInvalidDigit
	}

	c.cells[i] = v
	if v != "" && i < models.OTPCodeLength-1 {
		c.focus = i + 1
	} else {
		c.focus = i
	}

	return v != "" && i == models.OTPCodeLength-1 && c.full(), nil
}

// Backspace handles a backspace key press on cell i. On an empty cell focus
// moves back one cell; the cell content itself is cleared through EnterDigit.
func (c *Challenge) Backspace(i int) error {
	if c.state != models.OTPStateAwaitingCode {
		return models.ErrChallengeState
	}
	if i < 0 || i >= models.OTPCodeLength {
		return models.ErrInvalidCellIndex
	}
	if c.cells[i] == "" && i > 0 {
		c.focus = i - 1
	} else {
		c.focus = i
	}
	return nil
}

// ResendError returns the reason a resend would be refused, or nil
func (c *Challenge) ResendError() error {
	if c.state != models.OTPStateAwaitingCode {
		return models.ErrChallengeState
	}
	if c.attempts >= c.cfg.MaxResends {
		return models.ErrResendLimitReached
	}
	if !c.canResend {
		return models.ErrResendNotAvailable
	}
	return nil
}

// Resend restarts the countdown. It fails without changing anything when the
// attempt limit is reached or the countdown has not finished.
func (c *Challenge) Resend() error {
	if err := c.ResendError(); err != nil {
		return err
	}

	c.attempts++
	c.timer = c.cfg.ResendSeconds
	c.canResend = false
	c.clearCells()
	return nil
}

// Code returns the digits entered so far
func (c *Challenge) Code() string {
	return strings.Join(c.cells[:], "")
}

// BeginVerify moves to verifying and returns the code to check
func (c *Challenge) BeginVerify() (string, error) {
	if c.state != models.OTPStateAwaitingCode {
		return "", models.ErrChallengeState
	}
	if !c.full() {
		return "", models.ErrIncompleteCode
	}
	c.state = models.OTPStateVerifying
	return c.Code(), nil
}

// Finish records the verification outcome. A rejected code returns the
// challenge to awaiting_code with empty cells; the countdown is untouched.
func (c *Challenge) Finish(ok bool) {
	if c.state != models.OTPStateVerifying {
		return
	}
	if ok {
		c.state = models.OTPStateVerified
		c.canResend = false
		return
	}
	c.state = models.OTPStateAwaitingCode
	c.clearCells()
}

// View returns a snapshot for rendering
func (c *Challenge) View() models.OTPView {
	cells := make([]string, len(c.cells))
	copy(cells, c.cells[:])
	return models.OTPView{
		State:     c.state,
		Cells:     cells,
		Focus:     c.focus,
		Timer:     c.timer,
		Attempts:  c.attempts,
		CanResend: c.canResend,
	}
}

func (c *Challenge) accepting() bool {
	return c.state == models.OTPStateAwaitingCode || c.state == models.OTPStateVerifying
}

func (c *Challenge) full() bool {
	for _, cell := range c.cells {
		if cell == "" {
			return false
		}
	}
	return true
}

func (c *Challenge) clearCells() {
	c.cells = [models.OTPCodeLength]string{}
	c.focus = 0
}
