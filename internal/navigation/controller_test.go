package navigation

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/myarea/app-myarea/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewController(t *testing.T) {
	c := NewController()

	assert.Equal(t, models.ScreenLanguage, c.Current())
	assert.Equal(t, models.SelectorIDs{}, c.Selected())
}

func TestNavigateTo_OverwritesOnlyPresentKeys(t *testing.T) {
	c := NewController()

	c.NavigateTo(models.ScreenAlertDetail, models.NavigationParams{AlertID: models.StringPtr("1")})
	c.NavigateTo(models.ScreenServiceDetail, models.NavigationParams{ServiceID: models.StringPtr("2")})

	assert.Equal(t, models.ScreenServiceDetail, c.Current())
	assert.Equal(t, "1", c.Selected().AlertID, "absent keys keep their value")
	assert.Equal(t, "2", c.Selected().ServiceID)
}

func TestNavigateTo_PresentEmptyValueOverwrites(t *testing.T) {
	c := NewController()
	c.NavigateTo(models.ScreenAlertDetail, models.NavigationParams{AlertID: models.StringPtr("1")})

	c.NavigateTo(models.ScreenAlertDetail, models.NavigationParams{AlertID: models.StringPtr("")})

	assert.Equal(t, "", c.Selected().AlertID)
}

func TestNavigateTo_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	screens := models.AllScreens()
	c := NewController()

	maybe := func() *string {
		if rng.Intn(2) == 0 {
			return nil
		}
		return models.StringPtr(strconv.Itoa(rng.Intn(10)))
	}

	for i := 0; i < 500; i++ {
		before := c.Selected()
		screen := screens[rng.Intn(len(screens))]
		params := models.NavigationParams{EventID: maybe(), ServiceID: maybe(), AlertID: maybe(), NoticeID: maybe()}

		c.NavigateTo(screen, params)

		require.Equal(t, screen, c.Current())
		after := c.Selected()
		check := func(p *string, prev, got string) {
			if p == nil {
				require.Equal(t, prev, got)
			} else {
				require.Equal(t, *p, got)
			}
		}
		check(params.EventID, before.EventID, after.EventID)
		check(params.ServiceID, before.ServiceID, after.ServiceID)
		check(params.AlertID, before.AlertID, after.AlertID)
		check(params.NoticeID, before.NoticeID, after.NoticeID)
	}
}

func TestNavigateTo_UnknownScreenFallsBack(t *testing.T) {
	c := NewController()
	c.NavigateTo(models.ScreenHome, models.NavigationParams{})

	from := c.NavigateTo(models.Screen("settings"), models.NavigationParams{NoticeID: models.StringPtr("3")})

	assert.Equal(t, models.ScreenHome, from)
	assert.Equal(t, models.ScreenLanguage, c.Current())
	assert.Equal(t, "3", c.Selected().NoticeID)
}

func TestNavigateTo_OffTableIsNotRejected(t *testing.T) {
	c := NewController()

	c.NavigateTo(models.ScreenPolls, models.NavigationParams{})

	assert.Equal(t, models.ScreenPolls, c.Current())
	assert.False(t, Allowed(models.ScreenLanguage, models.ScreenPolls))
}

func TestBack(t *testing.T) {
	tests := []struct {
		from models.Screen
		want models.Screen
	}{
		{models.ScreenLogin, models.ScreenAuthChoice},
		{models.ScreenSignup, models.ScreenAuthChoice},
		{models.ScreenNoticeDetail, models.ScreenNotices},
		{models.ScreenServiceDetail, models.ScreenServices},
		{models.ScreenAlertDetail, models.ScreenSafety},
		{models.ScreenEventDetail, models.ScreenHelpVolunteer},
		{models.ScreenTerms, models.ScreenProfile},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			c := Restore(tt.from, models.SelectorIDs{})
			from, err := c.Back()
			require.NoError(t, err)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.want, c.Current())
		})
	}
}

func TestBack_IgnoresHowScreenWasReached(t *testing.T) {
	c := NewController()
	c.NavigateTo(models.ScreenHome, models.NavigationParams{})
	c.NavigateTo(models.ScreenAlertDetail, models.NavigationParams{AlertID: models.StringPtr("1")})

	_, err := c.Back()

	require.NoError(t, err)
	assert.Equal(t, models.ScreenSafety, c.Current())
}

func TestBack_NoTarget(t *testing.T) {
	for _, screen := range []models.Screen{
		models.ScreenLanguage, models.ScreenHome, models.ScreenProfileCompletion,
		models.ScreenVerificationPending, models.ScreenVerificationComplete,
	} {
		c := Restore(screen, models.SelectorIDs{})
		_, err := c.Back()
		assert.ErrorIs(t, err, models.ErrNoBackTarget, string(screen))
		assert.Equal(t, screen, c.Current())
	}
}

func TestReset(t *testing.T) {
	c := Restore(models.ScreenHome, models.SelectorIDs{EventID: "1"})

	c.Reset()

	assert.Equal(t, models.ScreenLanguage, c.Current())
	assert.Equal(t, models.SelectorIDs{}, c.Selected())
}

func TestRestore_InvalidScreen(t *testing.T) {
	c := Restore(models.Screen("bogus"), models.SelectorIDs{ServiceID: "2"})

	assert.Equal(t, models.ScreenLanguage, c.Current())
	assert.Equal(t, "2", c.Selected().ServiceID)
}

func TestTransitionTable(t *testing.T) {
	for _, screen := range models.AllScreens() {
		_, ok := Transitions[screen]
		assert.True(t, ok, "%s has no transition entry", screen)
	}

	for from, targets := range Transitions {
		assert.True(t, from.IsValid())
		for _, to := range targets {
			assert.True(t, to.IsValid(), "%s -> %s", from, to)
		}
	}

	for from, to := range backTargets {
		assert.True(t, Allowed(from, to), "back target %s -> %s must be a declared transition", from, to)
	}
}

func TestSetStrict_StillNavigates(t *testing.T) {
	c := NewController()
	c.SetStrict(true)

	c.NavigateTo(models.ScreenPolls, models.NavigationParams{})

	assert.Equal(t, models.ScreenPolls, c.Current())
}
