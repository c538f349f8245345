package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/myarea/app-myarea/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeCounter struct {
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

func TestNew_Defaults(t *testing.T) {
	st := New("s1")
	snap := st.Snapshot()

	assert.Equal(t, "s1", snap.ID)
	assert.Equal(t, models.LanguageEnglish, snap.Language)
	assert.Equal(t, models.ScreenLanguage, snap.Screen)
	assert.Nil(t, snap.Profile)
	assert.False(t, snap.IsVerified)
}

func TestSetters_DoNotNavigate(t *testing.T) {
	st := New("s1")

	err := st.Dispatch(func(tx *Tx) error {
		require.NoError(t, tx.SetLanguage(models.LanguageTamil))
		tx.SetUserProfile(models.UserProfile{FirstName: "Priya"})
		tx.SetIsVerified(true)
		tx.SetIdentity("9876543210")
		return nil
	})
	require.NoError(t, err)

	snap := st.Snapshot()
	assert.Equal(t, models.ScreenLanguage, snap.Screen)
	assert.Equal(t, models.LanguageTamil, snap.Language)
	assert.Equal(t, "Priya", snap.Profile.FirstName)
	assert.True(t, snap.IsVerified)
	assert.Equal(t, "9876543210", snap.Identity)
}

func TestSetLanguage_Invalid(t *testing.T) {
	st := New("s1")

	err := st.Dispatch(func(tx *Tx) error {
		return tx.SetLanguage(models.Language("fr"))
	})

	assert.ErrorIs(t, err, models.ErrInvalidLanguage)
	assert.Equal(t, models.LanguageEnglish, st.Snapshot().Language)
}

func TestSetSelectedEvent_Navigates(t *testing.T) {
	st := New("s1")

	require.NoError(t, st.Dispatch(func(tx *Tx) error {
		tx.NavigateTo(models.ScreenHelpVolunteer, models.NavigationParams{})
		tx.SetSelectedEvent("2")
		return nil
	}))

	snap := st.Snapshot()
	assert.Equal(t, models.ScreenEventDetail, snap.Screen)
	assert.Equal(t, "2", snap.Selected.EventID)
}

func TestScope_ReleasedOnScreenChange(t *testing.T) {
	st := New("s1")
	res := &closeCounter{}

	require.NoError(t, st.Dispatch(func(tx *Tx) error {
		tx.NavigateTo(models.ScreenLogin, models.NavigationParams{})
		tx.Scope().Set("otp", res)
		return nil
	}))

	require.NoError(t, st.Dispatch(func(tx *Tx) error {
		tx.NavigateTo(models.ScreenLogin, models.NavigationParams{})
		_, ok := tx.Scope().Value("otp")
		assert.True(t, ok, "same screen keeps its scope")
		return nil
	}))
	assert.Equal(t, 0, res.closed)

	require.NoError(t, st.Dispatch(func(tx *Tx) error {
		return tx.Back()
	}))
	assert.Equal(t, 1, res.closed)

	require.NoError(t, st.Dispatch(func(tx *Tx) error {
		assert.Equal(t, models.ScreenAuthChoice, tx.Scope().Screen())
		_, ok := tx.Scope().Value("otp")
		assert.False(t, ok)
		return nil
	}))
}

func TestScope_SetReplacesAndReleases(t *testing.T) {
	st := New("s1")
	first, second := &closeCounter{}, &closeCounter{}

	require.NoError(t, st.Dispatch(func(tx *Tx) error {
		tx.Scope().Set("otp", first)
		tx.Scope().Set("otp", second)
		tx.Scope().Set("plain", 42)
		return nil
	}))

	assert.Equal(t, 1, first.closed)
	assert.Equal(t, 0, second.closed)
}

func TestLogout_ResetsEverything(t *testing.T) {
	st := New("s1")
	res := &closeCounter{}

	require.NoError(t, st.Dispatch(func(tx *Tx) error {
		require.NoError(t, tx.SetLanguage(models.LanguageHindi))
		tx.SetUserProfile(models.UserProfile{FirstName: "Priya"})
		tx.SetIsVerified(true)
		tx.NavigateTo(models.ScreenProfile, models.NavigationParams{EventID: models.StringPtr("1")})
		tx.RecordVote("1", 2)
		tx.MarkJoined("1")
		tx.Scope().Set("res", res)
		tx.Logout()
		return nil
	}))

	snap := st.Snapshot()
	assert.Equal(t, models.ScreenLanguage, snap.Screen)
	assert.Equal(t, models.SelectorIDs{}, snap.Selected)
	assert.Equal(t, models.LanguageEnglish, snap.Language)
	assert.Nil(t, snap.Profile)
	assert.False(t, snap.IsVerified)
	assert.Empty(t, snap.PollVotes)
	assert.Empty(t, snap.JoinedEvents)
	assert.Equal(t, 1, res.closed)
}

func TestDispatch_NotifiesOnlyOnChange(t *testing.T) {
	st := New("s1")
	var got []Snapshot
	st.Subscribe(func(s Snapshot) { got = append(got, s) })

	require.NoError(t, st.Dispatch(func(tx *Tx) error {
		_ = tx.CurrentScreen()
		return nil
	}))
	assert.Empty(t, got)

	require.NoError(t, st.Dispatch(func(tx *Tx) error {
		tx.NavigateTo(models.ScreenAuthChoice, models.NavigationParams{})
		return nil
	}))
	require.Len(t, got, 1)
	assert.Equal(t, models.ScreenAuthChoice, got[0].Screen)
	assert.Equal(t, uint64(1), got[0].Version)
}

func TestDispatch_NotifiesEvenOnError(t *testing.T) {
	st := New("s1")
	notified := 0
	st.Subscribe(func(Snapshot) { notified++ })
	boom := errors.New("boom")

	err := st.Dispatch(func(tx *Tx) error {
		tx.SetIsVerified(true)
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, notified)
}

func TestDispatch_SubscriberMayReadState(t *testing.T) {
	st := New("s1")
	st.Subscribe(func(Snapshot) {
		// runs outside the lock, so this must not deadlock
		_ = st.Snapshot()
	})

	require.NoError(t, st.Dispatch(func(tx *Tx) error {
		tx.SetIsVerified(true)
		return nil
	}))
}

func TestDispatch_Serialized(t *testing.T) {
	st := New("s1")
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Dispatch(func(tx *Tx) error {
				tx.RecordVote("1", len(tx.Snapshot().PollVotes))
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), st.Snapshot().Version)
}

func TestClose(t *testing.T) {
	st := New("s1")
	res := &closeCounter{}
	require.NoError(t, st.Dispatch(func(tx *Tx) error {
		tx.Scope().Set("res", res)
		return nil
	}))

	st.Close()
	st.Close()

	assert.Equal(t, 1, res.closed)
	assert.ErrorIs(t, st.Dispatch(func(*Tx) error { return nil }), models.ErrSessionClosed)
}

func TestRestore(t *testing.T) {
	snap := Snapshot{
		ID:           "s1",
		Language:     models.LanguageHindi,
		Screen:       models.ScreenServiceDetail,
		Selected:     models.SelectorIDs{ServiceID: "2"},
		Profile:      &models.UserProfile{FirstName: "Priya"},
		IsVerified:   true,
		Identity:     "priya@example.com",
		PollVotes:    map[string]int{"1": 3},
		JoinedEvents: []string{"2"},
		Version:      7,
	}

	st := Restore(snap)
	got := st.Snapshot()

	assert.Equal(t, snap.Language, got.Language)
	assert.Equal(t, snap.Screen, got.Screen)
	assert.Equal(t, snap.Selected, got.Selected)
	assert.Equal(t, snap.Profile, got.Profile)
	assert.True(t, got.IsVerified)
	assert.Equal(t, snap.PollVotes, got.PollVotes)
	assert.Equal(t, snap.JoinedEvents, got.JoinedEvents)
	assert.Equal(t, uint64(7), got.Version)

	require.NoError(t, st.Dispatch(func(tx *Tx) error {
		assert.True(t, tx.HasJoined("2"))
		option, ok := tx.PollVote("1")
		assert.True(t, ok)
		assert.Equal(t, 3, option)
		return nil
	}))
}

func TestUserProfile_ReturnsCopy(t *testing.T) {
	st := New("s1")

	require.NoError(t, st.Dispatch(func(tx *Tx) error {
		tx.SetUserProfile(models.UserProfile{FirstName: "Priya"})
		p := tx.UserProfile()
		p.FirstName = "changed"
		assert.Equal(t, "Priya", tx.UserProfile().FirstName)
		return nil
	}))
}
