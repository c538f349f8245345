package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/myarea/app-myarea/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileForm() models.ProfileForm {
	return models.ProfileForm{
		FirstName: "Arjun",
		LastName:  "Mehta",
		Age:       "34",
		Gender:    models.GenderMale,
		Address: models.Address{
			HouseNo: "12", Street: "MG Road", Area: "Indiranagar", Ward: "Ward 12", City: "Bengaluru", Pincode: "560038",
		},
		EmergencyContacts: []models.EmergencyContact{
			{Name: "Meera Mehta", Relation: "Spouse", Phone: "9123456780"},
		},
	}
}

func TestProfileAndVerification(t *testing.T) {
	s := newTestServer(t)
	id := s.createSession(t)
	s.navigate(t, id, models.ScreenProfileCompletion, models.NavigationParams{})

	w := s.do(t, http.MethodPost, "/v1/sessions/"+id+"/profile", models.ProfileForm{})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeError(t, w)
	assert.Contains(t, resp.Fields, "firstName")
	assert.Contains(t, resp.Fields, "emergencyContacts")

	w = s.do(t, http.MethodPost, "/v1/sessions/"+id+"/profile", profileForm())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.ScreenVerificationPending, decodeView(t, w).Screen)

	w = s.do(t, http.MethodPost, "/v1/sessions/"+id+"/verification/approve", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.ScreenVerificationComplete, decodeView(t, w).Screen)

	w = s.do(t, http.MethodPost, "/v1/sessions/"+id+"/verification/continue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	assert.Equal(t, models.ScreenHome, view.Screen)
	assert.True(t, view.IsVerified)
	assert.Equal(t, "Arjun", view.Data.(map[string]any)["name"])
}

func TestOpenDetails(t *testing.T) {
	s := newTestServer(t)
	id := s.createSession(t)

	s.navigate(t, id, models.ScreenSafety, models.NavigationParams{})
	w := s.do(t, http.MethodPost, "/v1/sessions/"+id+"/alerts/2/open", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	assert.Equal(t, models.ScreenAlertDetail, view.Screen)
	assert.False(t, view.NotFound)

	s.navigate(t, id, models.ScreenServices, models.NavigationParams{})
	w = s.do(t, http.MethodPost, "/v1/sessions/"+id+"/services/7/open", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	assert.Equal(t, models.ScreenServiceDetail, view.Screen)
	assert.True(t, view.NotFound)

	w = s.do(t, http.MethodPost, "/v1/sessions/"+id+"/notices/1/open", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestNoticePDF(t *testing.T) {
	s := newTestServer(t)
	id := s.createSession(t)
	s.navigate(t, id, models.ScreenNotices, models.NavigationParams{})

	w := s.do(t, http.MethodPost, "/v1/sessions/"+id+"/notices/1/open", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/v1/sessions/"+id+"/notice/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pdf models.NoticePDFResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pdf))
	assert.NotEmpty(t, pdf.URL)

	s.navigate(t, id, models.ScreenNoticeDetail, models.NavigationParams{NoticeID: models.StringPtr("5")})
	w = s.do(t, http.MethodGet, "/v1/sessions/"+id+"/notice/pdf", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "notice_not_found", decodeError(t, w).Code)
}

func TestEvents(t *testing.T) {
	s := newTestServer(t)
	id := s.createSession(t)

	w := s.do(t, http.MethodPost, "/v1/sessions/"+id+"/events/1/select", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	s.navigate(t, id, models.ScreenHelpVolunteer, models.NavigationParams{})
	w = s.do(t, http.MethodPost, "/v1/sessions/"+id+"/events/1/select", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ScreenEventDetail, decodeView(t, w).Screen)

	w = s.do(t, http.MethodPost, "/v1/sessions/"+id+"/events/join", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeView(t, w).Data.(map[string]any)["joined"])

	w = s.do(t, http.MethodPost, "/v1/sessions/"+id+"/events/join", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "already_joined", decodeError(t, w).Code)
}

func TestHelpSubmissions(t *testing.T) {
	s := newTestServer(t)
	id := s.createSession(t)

	s.navigate(t, id, models.ScreenNeedHelp, models.NavigationParams{})
	w := s.do(t, http.MethodPost, "/v1/sessions/"+id+"/help/need", models.NeedHelpForm{HelpType: "Medical", Description: "short"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = s.do(t, http.MethodPost, "/v1/sessions/"+id+"/help/need", models.NeedHelpForm{
		HelpType: "Medical", Description: "Need a ride to the hospital on Monday",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, decodeView(t, w).Data.(map[string]any)["submitted"])

	s.navigate(t, id, models.ScreenOfferHelp, models.NavigationParams{})
	form := models.OfferHelpForm{HelpCategory: "Food", Availability: "Weekends", Description: "Can cook for elderly neighbours"}
	w = s.do(t, http.MethodPost, "/v1/sessions/"+id+"/help/offer", form)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decodeError(t, w).Fields, "consent")

	form.Consent = true
	w = s.do(t, http.MethodPost, "/v1/sessions/"+id+"/help/offer", form)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestVote(t *testing.T) {
	s := newTestServer(t)
	id := s.createSession(t)
	s.navigate(t, id, models.ScreenPolls, models.NavigationParams{})

	tests := []struct {
		name   string
		poll   string
		option int
		status int
		code   string
	}{
		{"unknown poll", "42", 0, http.StatusNotFound, "poll_not_found"},
		{"expired poll", "3", 0, http.StatusConflict, "poll_closed"},
		{"bad option", "1", 9, http.StatusBadRequest, "invalid_option"},
		{"vote", "1", 2, http.StatusOK, ""},
		{"second vote", "1", 0, http.StatusConflict, "already_voted"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/v1/sessions/"+id+"/polls/"+tt.poll+"/vote", models.VoteRequest{Option: tt.option})
			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, w).Code)
			}
		})
	}
}

func TestSOS(t *testing.T) {
	s := newTestServer(t)
	id := s.createSession(t)
	s.navigate(t, id, models.ScreenHome, models.NavigationParams{})

	w := s.do(t, http.MethodPost, "/v1/sessions/"+id+"/sos", models.ConfirmRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "confirmation_required", decodeError(t, w).Code)

	w = s.do(t, http.MethodPost, "/v1/sessions/"+id+"/sos", models.ConfirmRequest{Confirm: true})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogout(t *testing.T) {
	s := newTestServer(t)
	id := s.createSession(t)
	s.navigate(t, id, models.ScreenProfile, models.NavigationParams{})

	w := s.do(t, http.MethodPost, "/v1/sessions/"+id+"/logout", models.ConfirmRequest{Confirm: true})
	require.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	assert.Equal(t, models.ScreenLanguage, view.Screen)
	assert.False(t, view.IsVerified)
}
