// Package navigation implements the flat screen state of the app: one
// current screen tag plus the selector ids detail screens read. There is no
// history stack; back buttons resolve to a fixed predecessor.
package navigation

import (
	"github.com/myarea/app-myarea/internal/logging"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/observability"
	"go.uber.org/zap"
)

// Controller holds the current screen and the retained selector ids.
// It is not safe for concurrent use; the owning session serializes access.
type Controller struct {
	current  models.Screen
	selected models.SelectorIDs
	strict   bool
	logger   *zap.Logger
}

// NewController creates a controller positioned on the default screen
func NewController() *Controller {
	return &Controller{
		current: models.DefaultScreen,
		logger:  logging.Logger.Named("navigation"),
	}
}

// Restore creates a controller from persisted state
func Restore(screen models.Screen, selected models.SelectorIDs) *Controller {
	c := NewController()
	if screen.IsValid() {
		c.current = screen
	}
	c.selected = selected
	return c
}

// SetStrict makes navigations outside the transition table log at error level
func (c *Controller) SetStrict(strict bool) {
	c.strict = strict
}

// Current returns the current screen
func (c *Controller) Current() models.Screen {
	return c.current
}

// Selected returns the retained selector ids
func (c *Controller) Selected() models.SelectorIDs {
	return c.selected
}

// NavigateTo overwrites every selector id present in params and then moves
// to screen. An unknown screen tag falls back to the default screen. The
// previous screen is returned.
func (c *Controller) NavigateTo(screen models.Screen, params models.NavigationParams) models.Screen {
	if params.EventID != nil {
		c.selected.EventID = *params.EventID
	}
	if params.ServiceID != nil {
		c.selected.ServiceID = *params.ServiceID
	}
	if params.AlertID != nil {
		c.selected.AlertID = *params.AlertID
	}
	if params.NoticeID != nil {
		c.selected.NoticeID = *params.NoticeID
	}

	if !screen.IsValid() {
		c.logger.Warn("unknown screen, falling back to default",
			zap.String("screen", string(screen)),
			zap.String("fallback", string(models.DefaultScreen)))
		screen = models.DefaultScreen
	}

	from := c.current
	declared := from == screen || Allowed(from, screen)
	if !declared {
		log := c.logger.Warn
		if c.strict {
			log = c.logger.Error
		}
		log("navigation outside transition table",
			zap.String("from", string(from)),
			zap.String("to", string(screen)))
	}
	observability.Navigations.WithLabelValues(string(from), string(screen), boolLabel(declared)).Inc()

	c.current = screen
	return from
}

// Back moves to the predecessor of the current screen
func (c *Controller) Back() (models.Screen, error) {
	target, ok := BackTarget(c.current)
	if !ok {
		return c.current, models.ErrNoBackTarget
	}
	return c.NavigateTo(target, models.NavigationParams{}), nil
}

// Reset returns the controller to the default screen and clears every selector id
func (c *Controller) Reset() {
	c.current = models.DefaultScreen
	c.selected = models.SelectorIDs{}
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
