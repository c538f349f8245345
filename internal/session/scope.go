package session

import (
	"io"

	"github.com/myarea/app-myarea/internal/logging"
	"github.com/myarea/app-myarea/internal/models"
	"go.uber.org/zap"
)

// Scope holds values that live only while one screen is current. Values
// implementing io.Closer are closed when the scope is released.
type Scope struct {
	screen models.Screen
	values map[string]any
}

func newScope(screen models.Screen) *Scope {
	return &Scope{screen: screen, values: make(map[string]any)}
}

// Screen returns the screen the scope belongs to
func (s *Scope) Screen() models.Screen {
	return s.screen
}

// Value returns the value stored under key
func (s *Scope) Value(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores v under key, releasing whatever was there before
func (s *Scope) Set(key string, v any) {
	s.Delete(key)
	s.values[key] = v
}

// Delete releases and removes the value under key
func (s *Scope) Delete(key string) {
	if old, ok := s.values[key]; ok {
		closeValue(key, old)
		delete(s.values, key)
	}
}

func (s *Scope) release() {
	for key, v := range s.values {
		closeValue(key, v)
	}
	s.values = make(map[string]any)
}

func closeValue(key string, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		logging.Logger.Warn("failed to release scoped resource", zap.String("key", key), zap.Error(err))
	}
}
