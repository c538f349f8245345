package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/myarea/app-myarea/internal/logging"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/observability"
	"github.com/myarea/app-myarea/internal/utils"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const storeTimeout = 2 * time.Second

// ManagerConfig configures a Manager
type ManagerConfig struct {
	// TTL is the idle time after which a session leaves the registry
	TTL time.Duration
	// Store persists snapshots; nil keeps sessions in memory only
	Store            Store
	StrictNavigation bool
}

// Manager is the registry of live sessions. Idle sessions are evicted and
// closed; with a Store they are rebuilt from their last snapshot on demand.
type Manager struct {
	sessions *cache.Cache
	store    Store
	strict   bool
	logger   *zap.Logger

	// serializes rehydration so two requests never rebuild the same session twice
	loadMu sync.Mutex
}

// NewManager creates a session registry
func NewManager(cfg ManagerConfig) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	m := &Manager{
		sessions: cache.New(cfg.TTL, cfg.TTL/2),
		store:    cfg.Store,
		strict:   cfg.StrictNavigation,
		logger:   logging.Logger.Named("session_manager"),
	}
	m.sessions.OnEvicted(func(id string, v interface{}) {
		if st, ok := v.(*State); ok {
			st.Close()
		}
		observability.SessionsActive.Dec()
		m.logger.Debug("session evicted", zap.String("session_id", id))
	})
	return m
}

// Create starts a new session
func (m *Manager) Create(ctx context.Context) (*State, error) {
	st := New(utils.GenerateUUID())
	m.register(st)

	// the first snapshot makes the session resumable before any event arrives
	if m.store != nil {
		if err := m.save(ctx, st.Snapshot()); err != nil {
			m.logger.Warn("failed to persist new session", zap.String("session_id", st.ID()), zap.Error(err))
		}
	}

	m.logger.Info("session created", zap.String("session_id", st.ID()))
	return st, nil
}

// Get returns the live session id, rebuilding it from the store when it was evicted
func (m *Manager) Get(ctx context.Context, id string) (*State, error) {
	if st, ok := m.lookup(id); ok {
		observability.CacheHits.WithLabelValues("session_memory").Inc()
		if m.store != nil {
			if err := m.store.Touch(ctx, id); err != nil {
				m.logger.Warn("failed to extend session snapshot", zap.String("session_id", id), zap.Error(err))
			}
		}
		return st, nil
	}
	if m.store == nil {
		return nil, models.ErrSessionNotFound
	}

	m.loadMu.Lock()
	defer m.loadMu.Unlock()

	if st, ok := m.lookup(id); ok {
		return st, nil
	}
	// close expired sessions still held by the cache before replacing them
	m.sessions.DeleteExpired()

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	snap, err := m.store.Load(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrSessionNotFound) {
			m.logger.Error("failed to load session snapshot", zap.String("session_id", id), zap.Error(err))
		}
		return nil, models.ErrSessionNotFound
	}

	observability.CacheHits.WithLabelValues("session_store").Inc()
	st := Restore(snap)
	m.register(st)
	m.logger.Info("session restored", zap.String("session_id", id), zap.String("screen", string(snap.Screen)))
	return st, nil
}

// Delete closes session id and drops its snapshot
func (m *Manager) Delete(ctx context.Context, id string) error {
	_, live := m.sessions.Get(id)
	if live {
		m.sessions.Delete(id)
	}
	if m.store == nil {
		if !live {
			return models.ErrSessionNotFound
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if err := m.store.Delete(ctx, id); err != nil {
		m.logger.Warn("failed to delete session snapshot", zap.String("session_id", id), zap.Error(err))
	}
	return nil
}

// Count returns the number of sessions in the registry
func (m *Manager) Count() int {
	return m.sessions.ItemCount()
}

// Close closes every live session
func (m *Manager) Close() {
	for id := range m.sessions.Items() {
		m.sessions.Delete(id)
	}
}

func (m *Manager) lookup(id string) (*State, bool) {
	v, ok := m.sessions.Get(id)
	if !ok {
		return nil, false
	}
	st := v.(*State)
	// sliding expiry
	m.sessions.Set(id, st, cache.DefaultExpiration)
	return st, true
}

func (m *Manager) register(st *State) {
	st.SetStrictNavigation(m.strict)
	if m.store != nil {
		var mu sync.Mutex
		var last uint64
		st.Subscribe(func(snap Snapshot) {
			mu.Lock()
			defer mu.Unlock()
			// dispatches notify outside the session lock and may arrive out of order
			if snap.Version < last {
				return
			}
			last = snap.Version
			if err := m.save(context.Background(), snap); err != nil {
				m.logger.Warn("failed to persist session snapshot", zap.String("session_id", snap.ID), zap.Error(err))
			}
		})
	}
	m.sessions.Set(st.ID(), st, cache.DefaultExpiration)
	observability.SessionsActive.Inc()
}

func (m *Manager) save(ctx context.Context, snap Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	err := m.store.Save(ctx, snap)
	status := "success"
	if err != nil {
		status = "error"
	}
	observability.DatabaseOperations.WithLabelValues("session_save", status).Inc()
	return err
}
