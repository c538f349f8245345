package screens

import (
	"context"
	"testing"

	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/otp"
	"github.com/myarea/app-myarea/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfileForm() models.ProfileForm {
	return models.ProfileForm{
		FirstName: "Priya",
		LastName:  "Raman",
		Age:       "29",
		Gender:    models.GenderFemale,
		Address: models.Address{
			HouseNo: "4B", Street: "Temple Street", Area: "Mylapore", Ward: "Ward 12", City: "Chennai", Pincode: "600004",
		},
		EmergencyContacts: []models.EmergencyContact{
			{Name: "Ravi Raman", Relation: "Sibling", Phone: "9123456789"},
			{},
		},
	}
}

func TestSelectLanguage(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	ctx := context.Background()

	assert.ErrorIs(t, h.app.SelectLanguage(ctx, st, "fr"), models.ErrInvalidLanguage)
	assert.Equal(t, models.ScreenLanguage, screenOf(st))

	require.NoError(t, h.app.SelectLanguage(ctx, st, models.LanguageTamil))

	snap := st.Snapshot()
	assert.Equal(t, models.LanguageTamil, snap.Language)
	assert.Equal(t, models.ScreenAuthChoice, snap.Screen)
	assert.ErrorIs(t, h.app.SelectLanguage(ctx, st, models.LanguageHindi), models.ErrWrongScreen)
}

func TestChangeLanguage(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	goTo(t, st, models.ScreenProfile, testPhone)

	require.NoError(t, h.app.ChangeLanguage(context.Background(), st))

	assert.Equal(t, models.ScreenLanguage, screenOf(st))
	assert.Equal(t, testPhone, st.Snapshot().Identity, "changing language keeps the session")
}

func TestSubmitProfile(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	goTo(t, st, models.ScreenProfileCompletion, "+919876543210")
	ctx := context.Background()

	form := validProfileForm()
	form.EmergencyContacts = []models.EmergencyContact{{}, {Name: "Ravi"}}
	err := h.app.SubmitProfile(ctx, st, form)

	result, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "validation.emergencyContactsRequired", result.Errors["emergencyContacts"])
	assert.Nil(t, st.Snapshot().Profile)

	require.NoError(t, h.app.SubmitProfile(ctx, st, validProfileForm()))

	snap := st.Snapshot()
	assert.Equal(t, models.ScreenVerificationPending, snap.Screen)
	require.NotNil(t, snap.Profile)
	assert.Len(t, snap.Profile.EmergencyContacts, 1, "empty rows are not stored")
	assert.False(t, snap.IsVerified)

	record, err := h.profiles.GetProfile(ctx, "+919876543210")
	require.NoError(t, err)
	assert.Equal(t, "Priya", record.Profile.FirstName)
	assert.Equal(t, models.ProfileStatusPending, record.Status)
}

func TestVerificationFlow(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	goTo(t, st, models.ScreenProfileCompletion, "+919876543210")
	ctx := context.Background()
	require.NoError(t, h.app.SubmitProfile(ctx, st, validProfileForm()))

	require.NoError(t, h.app.ApproveVerification(ctx, st))
	assert.Equal(t, models.ScreenVerificationComplete, screenOf(st))
	record, err := h.profiles.GetProfile(ctx, "+919876543210")
	require.NoError(t, err)
	assert.Equal(t, models.ProfileStatusVerified, record.Status)

	require.NoError(t, h.app.ContinueToHome(ctx, st))
	snap := st.Snapshot()
	assert.Equal(t, models.ScreenHome, snap.Screen)
	assert.True(t, snap.IsVerified)
}

func TestContinueToHome_FromPending(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	goTo(t, st, models.ScreenVerificationPending, "")

	require.NoError(t, h.app.ContinueToHome(context.Background(), st))

	assert.True(t, st.Snapshot().IsVerified)
	assert.Equal(t, models.ScreenHome, screenOf(st))
}

func TestApproveVerification_WithoutStoredProfile(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	goTo(t, st, models.ScreenVerificationPending, "nobody@example.com")

	require.NoError(t, h.app.ApproveVerification(context.Background(), st))
	assert.Equal(t, models.ScreenVerificationComplete, screenOf(st))
}

func TestOpenDetails(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	ctx := context.Background()

	tests := []struct {
		name   string
		from   models.Screen
		open   func(*session.State) error
		to     models.Screen
		params func(models.SelectorIDs) string
	}{
		{"alert from home", models.ScreenHome, func(st *session.State) error { return h.app.OpenAlert(ctx, st, "2") },
			models.ScreenAlertDetail, func(s models.SelectorIDs) string { return s.AlertID }},
		{"alert from safety", models.ScreenSafety, func(st *session.State) error { return h.app.OpenAlert(ctx, st, "4") },
			models.ScreenAlertDetail, func(s models.SelectorIDs) string { return s.AlertID }},
		{"notice", models.ScreenNotices, func(st *session.State) error { return h.app.OpenNotice(ctx, st, "3") },
			models.ScreenNoticeDetail, func(s models.SelectorIDs) string { return s.NoticeID }},
		{"service", models.ScreenServices, func(st *session.State) error { return h.app.OpenService(ctx, st, "999") },
			models.ScreenServiceDetail, func(s models.SelectorIDs) string { return s.ServiceID }},
		{"event", models.ScreenHelpVolunteer, func(st *session.State) error { return h.app.SelectEvent(ctx, st, "2") },
			models.ScreenEventDetail, func(s models.SelectorIDs) string { return s.EventID }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newSession(t)
			goTo(t, st, tt.from, "")

			require.NoError(t, tt.open(st))

			snap := st.Snapshot()
			assert.Equal(t, tt.to, snap.Screen)
			assert.NotEmpty(t, tt.params(snap.Selected))
		})
	}

	st := newSession(t)
	assert.ErrorIs(t, h.app.OpenNotice(ctx, st, "1"), models.ErrWrongScreen)
}

func TestJoinEvent(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	goTo(t, st, models.ScreenEventDetail, "")
	ctx := context.Background()

	assert.ErrorIs(t, h.app.JoinEvent(ctx, st), models.ErrNoEventSelected)

	goTo(t, st, models.ScreenHelpVolunteer, "")
	require.NoError(t, h.app.SelectEvent(ctx, st, "1"))
	require.NoError(t, h.app.JoinEvent(ctx, st))
	assert.ErrorIs(t, h.app.JoinEvent(ctx, st), models.ErrAlreadyJoined)
	assert.Equal(t, []string{"1"}, st.Snapshot().JoinedEvents)

	goTo(t, st, models.ScreenHelpVolunteer, "")
	require.NoError(t, h.app.SelectEvent(ctx, st, "77"))
	assert.ErrorIs(t, h.app.JoinEvent(ctx, st), models.ErrEventNotFound)
}

func TestDownloadNoticePDF(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	ctx := context.Background()
	goTo(t, st, models.ScreenNotices, "")
	require.NoError(t, h.app.OpenNotice(ctx, st, "1"))

	url, err := h.app.DownloadNoticePDF(ctx, st)
	require.NoError(t, err)
	assert.NotEmpty(t, url)

	require.NoError(t, h.app.Back(ctx, st))
	require.NoError(t, h.app.OpenNotice(ctx, st, "4"))
	_, err = h.app.DownloadNoticePDF(ctx, st)
	assert.ErrorIs(t, err, models.ErrNoticeNotFound)
}

func TestSubmitNeedHelp(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	goTo(t, st, models.ScreenNeedHelp, "+919876543210")
	ctx := context.Background()

	err := h.app.SubmitNeedHelp(ctx, st, models.NeedHelpForm{HelpType: "Groceries", Description: "too short"})
	result, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "validation.helpDescMinLength", result.Errors["description"])

	require.NoError(t, h.app.SubmitNeedHelp(ctx, st, models.NeedHelpForm{
		HelpType:    "Groceries",
		Description: "Need groceries delivered this week",
	}))

	view, err := h.app.Render(ctx, st)
	require.NoError(t, err)
	assert.True(t, view.Data.(HelpFormView).Submitted)
	assert.NotEmpty(t, view.Message)

	saved, err := h.help.ListHelp(ctx, models.HelpKindNeed, "+919876543210")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Groceries", saved[0].Category)

	require.NoError(t, h.app.Back(ctx, st))
	require.NoError(t, h.app.Navigate(ctx, st, models.ScreenNeedHelp, models.NavigationParams{}))
	view, err = h.app.Render(ctx, st)
	require.NoError(t, err)
	assert.False(t, view.Data.(HelpFormView).Submitted, "confirmation is scoped to the visit")
}

func TestSubmitOfferHelp_RequiresConsent(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	goTo(t, st, models.ScreenOfferHelp, "resident@example.com")
	ctx := context.Background()

	form := models.OfferHelpForm{HelpCategory: "Pet Care", Availability: "Weekends", Description: "Happy to walk dogs nearby"}
	result, ok := IsValidationError(h.app.SubmitOfferHelp(ctx, st, form))
	require.True(t, ok)
	assert.Equal(t, "validation.consentRequired", result.Errors["consent"])

	form.Consent = true
	require.NoError(t, h.app.SubmitOfferHelp(ctx, st, form))

	saved, err := h.help.ListHelp(ctx, models.HelpKindOffer, "resident@example.com")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Weekends", saved[0].Availability)
}

func TestVote(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	goTo(t, st, models.ScreenPolls, "")
	ctx := context.Background()

	assert.ErrorIs(t, h.app.Vote(ctx, st, "42", 0), models.ErrPollNotFound)
	assert.ErrorIs(t, h.app.Vote(ctx, st, "3", 0), models.ErrPollClosed)
	assert.ErrorIs(t, h.app.Vote(ctx, st, "1", 9), models.ErrInvalidOption)
	assert.ErrorIs(t, h.app.Vote(ctx, st, "1", -1), models.ErrInvalidOption)

	require.NoError(t, h.app.Vote(ctx, st, "1", 2))
	assert.ErrorIs(t, h.app.Vote(ctx, st, "1", 0), models.ErrAlreadyVoted)
	assert.Equal(t, map[string]int{"1": 2}, st.Snapshot().PollVotes)
}

func TestSendSOS(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	goTo(t, st, models.ScreenHome, "+919876543210")
	ctx := context.Background()

	assert.ErrorIs(t, h.app.SendSOS(ctx, st, false), models.ErrConfirmationNeeded)
	assert.Empty(t, h.sos.alerts)

	require.NoError(t, st.Dispatch(func(tx *session.Tx) error {
		tx.SetUserProfile(validProfileForm().ToProfile())
		return nil
	}))
	require.NoError(t, h.app.SendSOS(ctx, st, true))

	require.Len(t, h.sos.alerts, 1)
	alert := h.sos.alerts[0]
	assert.Equal(t, "s-test", alert.SessionID)
	assert.Equal(t, "Priya Raman", alert.Name)
	require.NotNil(t, alert.Address)
	assert.Equal(t, "600004", alert.Address.Pincode)
	assert.Len(t, alert.EmergencyContacts, 1)
	assert.Equal(t, models.ScreenHome, screenOf(st))
}

func TestLogout(t *testing.T) {
	h := newHarness(t, otp.DefaultConfig())
	st := newSession(t)
	ctx := context.Background()
	require.NoError(t, st.Dispatch(func(tx *session.Tx) error {
		require.NoError(t, tx.SetLanguage(models.LanguageHindi))
		tx.SetUserProfile(validProfileForm().ToProfile())
		tx.SetIsVerified(true)
		tx.SetIdentity("+919876543210")
		tx.NavigateTo(models.ScreenProfile, models.NavigationParams{})
		return nil
	}))

	assert.ErrorIs(t, h.app.Logout(ctx, st, false), models.ErrConfirmationNeeded)
	assert.True(t, st.Snapshot().IsVerified)

	require.NoError(t, h.app.Logout(ctx, st, true))

	snap := st.Snapshot()
	assert.Equal(t, models.ScreenLanguage, snap.Screen)
	assert.Nil(t, snap.Profile)
	assert.False(t, snap.IsVerified)
	assert.Empty(t, snap.Identity)
	assert.Equal(t, models.LanguageEnglish, snap.Language)
}
