package screens

import (
	"context"
	"testing"

	"github.com/myarea/app-myarea/internal/i18n"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/otp"
	"github.com/myarea/app-myarea/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderAt(t *testing.T, h *harness, st *session.State, screen models.Screen, params models.NavigationParams) View {
	t.Helper()
	require.NoError(t, h.app.Navigate(context.Background(), st, screen, params))
	view, err := h.app.Render(context.Background(), st)
	require.NoError(t, err)
	return view
}

func TestRender_EveryScreenHasTitle(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)

	for _, screen := range models.AllScreens() {
		view := renderAt(t, h, st, screen, models.NavigationParams{})
		assert.Equal(t, screen, view.Screen)
		assert.Equal(t, i18n.T(models.LanguageEnglish, "screen."+string(screen)), view.Title)
		assert.Equal(t, "s-test", view.SessionID)
	}
}

func TestRender_Language(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)

	view, err := h.app.Render(context.Background(), st)
	require.NoError(t, err)

	options := view.Data.([]LanguageOption)
	require.Len(t, options, 3)
	assert.Equal(t, models.LanguageEnglish, options[0].Code)
	assert.True(t, options[0].Selected)
	assert.Empty(t, view.Back)
}

func TestRender_ServiceDetail(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)

	view := renderAt(t, h, st, models.ScreenServiceDetail, models.NavigationParams{ServiceID: models.StringPtr("2")})
	require.False(t, view.NotFound)
	detail := view.Data.(ServiceDetailView)
	assert.Equal(t, "Reliable Plumbers", detail.BusinessName)
	assert.Equal(t, "tel:+919876543211", detail.CallLink)
	assert.Equal(t, models.ScreenServices, view.Back)

	view = renderAt(t, h, st, models.ScreenServiceDetail, models.NavigationParams{ServiceID: models.StringPtr("999")})
	assert.True(t, view.NotFound)
	assert.Nil(t, view.Data)
	assert.Equal(t, models.ScreenServices, view.Back)
	assert.Equal(t, i18n.T(models.LanguageEnglish, "service.notFound"), view.Message)
}

func TestRender_NotFoundFallbacks(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())

	tests := []struct {
		screen models.Screen
		params models.NavigationParams
		back   models.Screen
	}{
		{models.ScreenNoticeDetail, models.NavigationParams{NoticeID: models.StringPtr("4")}, models.ScreenNotices},
		{models.ScreenAlertDetail, models.NavigationParams{AlertID: models.StringPtr("3")}, models.ScreenSafety},
		{models.ScreenEventDetail, models.NavigationParams{EventID: models.StringPtr("99")}, models.ScreenHelpVolunteer},
		{models.ScreenEventDetail, models.NavigationParams{}, models.ScreenHelpVolunteer},
	}

	for _, tt := range tests {
		t.Run(string(tt.screen), func(t *testing.T) {
			st := newSession(t)
			view := renderAt(t, h, st, tt.screen, tt.params)

			assert.True(t, view.NotFound)
			assert.Equal(t, tt.back, view.Back)
			assert.NotEmpty(t, view.Message)
		})
	}
}

func TestRender_StaleSelectorStillResolves(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)

	renderAt(t, h, st, models.ScreenAlertDetail, models.NavigationParams{AlertID: models.StringPtr("1")})
	renderAt(t, h, st, models.ScreenHome, models.NavigationParams{})
	view := renderAt(t, h, st, models.ScreenAlertDetail, models.NavigationParams{})

	require.False(t, view.NotFound)
	assert.Equal(t, "1", view.Data.(models.AlertDetail).ID)
}

func TestRender_Polls(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	renderAt(t, h, st, models.ScreenPolls, models.NavigationParams{})
	require.NoError(t, h.app.Vote(context.Background(), st, "1", 3))

	view, err := h.app.Render(context.Background(), st)
	require.NoError(t, err)

	polls := view.Data.(PollsView)
	assert.Len(t, polls.Active, 2)
	assert.Len(t, polls.Expired, 3)
	first := polls.Active[0]
	assert.True(t, first.HasVoted)
	assert.Equal(t, 151, first.TotalVotes)
	for _, p := range polls.Expired {
		assert.False(t, p.HasVoted)
	}
}

func TestRender_HomeAndProfile(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	require.NoError(t, st.Dispatch(func(tx *session.Tx) error {
		tx.SetUserProfile(validProfileForm().ToProfile())
		tx.SetIdentity("+919876543210")
		return tx.SetLanguage(models.LanguageTamil)
	}))

	view := renderAt(t, h, st, models.ScreenHome, models.NavigationParams{})
	home := view.Data.(HomeView)
	assert.Equal(t, "Priya", home.Name)
	assert.Len(t, home.Alerts, 2)
	assert.Equal(t, models.LanguageTamil, view.Language)
	assert.Equal(t, i18n.T(models.LanguageTamil, "screen.home"), view.Title)

	view = renderAt(t, h, st, models.ScreenProfile, models.NavigationParams{})
	profile := view.Data.(ProfileView)
	require.NotNil(t, profile.Profile)
	assert.Equal(t, "+919876543210", profile.Identity)
	assert.Equal(t, models.LanguageTamil.NativeName(), profile.LanguageName)
	assert.Contains(t, profile.Links, models.ScreenHelpSupport)
}

func TestRender_SafetyAndSupport(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)

	safety := renderAt(t, h, st, models.ScreenSafety, models.NavigationParams{}).Data.(SafetyView)
	require.Len(t, safety.EmergencyNumbers, 4)
	assert.Equal(t, "tel:100", safety.EmergencyNumbers[0].CallLink)
	assert.Len(t, safety.Alerts, 4)

	support := renderAt(t, h, st, models.ScreenHelpSupport, models.NavigationParams{}).Data.(HelpSupportView)
	assert.Len(t, support.FAQs, 10)
	assert.Equal(t, "tel:18001234567", support.CallLink)
	assert.Equal(t, "mailto:support@myarea.gov.in", support.MailLink)
}

func TestRender_HelpVolunteerShowsJoined(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	renderAt(t, h, st, models.ScreenHelpVolunteer, models.NavigationParams{})
	require.NoError(t, h.app.SelectEvent(context.Background(), st, "2"))
	require.NoError(t, h.app.JoinEvent(context.Background(), st))

	detail, err := h.app.Render(context.Background(), st)
	require.NoError(t, err)
	assert.True(t, detail.Data.(EventView).Joined)

	view := renderAt(t, h, st, models.ScreenHelpVolunteer, models.NavigationParams{})
	events := view.Data.([]EventView)
	require.Len(t, events, 3)
	assert.False(t, events[0].Joined)
	assert.True(t, events[1].Joined)
}
