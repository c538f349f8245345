package screens

import (
	"context"

	"github.com/myarea/app-myarea/internal/catalog"
	"github.com/myarea/app-myarea/internal/i18n"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/navigation"
	"github.com/myarea/app-myarea/internal/session"
	"github.com/myarea/app-myarea/internal/utils"
)

// View is what the client renders for the current screen
type View struct {
	SessionID  string          `json:"session_id"`
	Screen     models.Screen   `json:"screen"`
	Title      string          `json:"title"`
	Language   models.Language `json:"language"`
	IsVerified bool            `json:"is_verified"`
	Back       models.Screen   `json:"back,omitempty"`
	NotFound   bool            `json:"not_found,omitempty"`
	Message    string          `json:"message,omitempty"`
	Data       any             `json:"data,omitempty"`
	Version    uint64          `json:"version"`
}

// LanguageOption is one entry of the language picker
type LanguageOption struct {
	Code     models.Language `json:"code"`
	Name     string          `json:"name"`
	Selected bool            `json:"selected"`
}

// AuthView is the login or signup screen. OTP is set once a code was sent.
type AuthView struct {
	Flow        models.AuthFlow               `json:"flow"`
	InputMethod models.InputMethod            `json:"inputMethod"`
	Identifier  string                        `json:"identifier,omitempty"`
	Password    *models.PasswordCheckResponse `json:"password,omitempty"`
	OTP         *models.OTPView               `json:"otp,omitempty"`
}

// ProfileFormOptions are the choices offered by the profile completion form
type ProfileFormOptions struct {
	Genders        []string `json:"genders"`
	VolunteerAreas []string `json:"volunteerAreas"`
	Relations      []string `json:"relations"`
	ServiceTypes   []string `json:"serviceTypes"`
}

// HomeView is the home dashboard
type HomeView struct {
	Name     string             `json:"name,omitempty"`
	Alerts   []models.HomeAlert `json:"alerts"`
	Sections []models.Screen    `json:"sections"`
	Tabs     []models.Screen    `json:"tabs"`
}

// EventView is a volunteer event with the session's registration
type EventView struct {
	models.VolunteerEvent
	Joined bool `json:"joined"`
}

// HelpFormView is the need or offer help form
type HelpFormView struct {
	Options   []string `json:"options"`
	Submitted bool     `json:"submitted"`
}

// ServicesView is the service directory
type ServicesView struct {
	Categories []string                `json:"categories"`
	Services   []models.ServiceListing `json:"services"`
}

// ServiceDetailView is a provider page with its call link
type ServiceDetailView struct {
	models.ServiceProvider
	CallLink string `json:"callLink"`
}

// EmergencyLine is an emergency number with its call link
type EmergencyLine struct {
	models.EmergencyNumber
	CallLink string `json:"callLink"`
}

// SafetyView lists emergency numbers and advisories
type SafetyView struct {
	EmergencyNumbers []EmergencyLine      `json:"emergencyNumbers"`
	Alerts           []models.SafetyAlert `json:"alerts"`
}

// PollsView splits polls into active and expired
type PollsView struct {
	Active  []models.PollView `json:"active"`
	Expired []models.PollView `json:"expired"`
}

// ProfileView is the settings hub
type ProfileView struct {
	Profile      *models.UserProfile `json:"profile,omitempty"`
	Identity     string              `json:"identity,omitempty"`
	LanguageName string              `json:"languageName"`
	Links        []models.Screen     `json:"links"`
}

// HelpSupportView lists FAQs and the support contacts
type HelpSupportView struct {
	FAQs         []models.FAQ `json:"faqs"`
	SupportPhone string       `json:"supportPhone"`
	SupportEmail string       `json:"supportEmail"`
	CallLink     string       `json:"callLink"`
	MailLink     string       `json:"mailLink"`
}

// Render builds the view of the current screen. Detail screens whose id
// does not resolve in their catalog render a not-found view that leads back
// to the listing.
func (a *App) Render(ctx context.Context, st *session.State) (View, error) {
	var view View
	err := st.Dispatch(func(tx *session.Tx) error {
		view = render(tx)
		return nil
	})
	return view, err
}

func render(tx *session.Tx) View {
	lang := tx.Language()
	screen := tx.CurrentScreen()
	snap := tx.Snapshot()
	t := i18n.For(lang)

	view := View{
		SessionID:  tx.SessionID(),
		Screen:     screen,
		Title:      t("screen." + string(screen)),
		Language:   lang,
		IsVerified: tx.IsVerified(),
		Version:    snap.Version,
	}
	if back, ok := navigation.BackTarget(screen); ok {
		view.Back = back
	}

	notFound := func(key string, listing models.Screen) {
		view.NotFound = true
		view.Message = t(key)
		view.Back = listing
	}

	params := tx.Params()
	switch screen {
	case models.ScreenLanguage:
		options := make([]LanguageOption, 0, len(models.SupportedLanguages()))
		for _, l := range models.SupportedLanguages() {
			options = append(options, LanguageOption{Code: l, Name: l.NativeName(), Selected: l == lang})
		}
		view.Data = options

	case models.ScreenLogin, models.ScreenSignup:
		view.Data, view.Message = renderAuth(tx, t)

	case models.ScreenProfileCompletion:
		view.Data = ProfileFormOptions{
			Genders:        models.ValidGenderOptions(),
			VolunteerAreas: models.VolunteerAreaOptions,
			Relations:      models.RelationOptions,
			ServiceTypes:   models.ServiceTypeOptions,
		}

	case models.ScreenVerificationPending:
		view.Message = t("verification.pendingDesc")

	case models.ScreenVerificationComplete:
		view.Message = t("verification.completeDesc")

	case models.ScreenHome:
		home := HomeView{
			Alerts: catalog.HomeAlerts(),
			Sections: []models.Screen{
				models.ScreenNotices, models.ScreenHelpVolunteer, models.ScreenServices, models.ScreenSafety,
			},
			Tabs: []models.Screen{models.ScreenHome, models.ScreenPolls, models.ScreenProfile},
		}
		if p := tx.UserProfile(); p != nil {
			home.Name = p.FirstName
		}
		view.Data = home

	case models.ScreenNotices:
		view.Data = catalog.Notices()

	case models.ScreenNoticeDetail:
		if notice, ok := catalog.NoticeByID(params.NoticeID); ok {
			view.Data = notice
		} else {
			notFound("notice.notFound", models.ScreenNotices)
		}

	case models.ScreenHelpVolunteer:
		events := catalog.Events()
		out := make([]EventView, 0, len(events))
		for _, e := range events {
			out = append(out, EventView{VolunteerEvent: e, Joined: tx.HasJoined(e.ID)})
		}
		view.Data = out

	case models.ScreenNeedHelp:
		view.Data, view.Message = renderHelpForm(tx, models.NeedHelpTypes, t("help.requestSentDesc"))

	case models.ScreenOfferHelp:
		view.Data, view.Message = renderHelpForm(tx, models.OfferHelpCategories, t("help.offerSharedDesc"))

	case models.ScreenServices:
		view.Data = ServicesView{Categories: catalog.ServiceCategories(), Services: catalog.Services(catalog.CategoryAll)}

	case models.ScreenServiceDetail:
		if provider, ok := catalog.ServiceByID(params.ServiceID); ok {
			view.Data = ServiceDetailView{ServiceProvider: provider, CallLink: utils.TelURI(provider.Phone)}
		} else {
			notFound("service.notFound", models.ScreenServices)
		}

	case models.ScreenSafety:
		view.Data = SafetyView{EmergencyNumbers: EmergencyLines(), Alerts: catalog.SafetyAlerts()}

	case models.ScreenAlertDetail:
		if alert, ok := catalog.AlertByID(params.AlertID); ok {
			view.Data = alert
		} else {
			notFound("alert.notFound", models.ScreenSafety)
		}

	case models.ScreenPolls:
		view.Data = renderPolls(tx)

	case models.ScreenProfile:
		view.Data = ProfileView{
			Profile:      tx.UserProfile(),
			Identity:     tx.Identity(),
			LanguageName: lang.NativeName(),
			Links: []models.Screen{
				models.ScreenLanguage, models.ScreenAbout, models.ScreenPrivacy, models.ScreenTerms, models.ScreenHelpSupport,
			},
		}

	case models.ScreenEventDetail:
		if event, ok := catalog.EventByID(tx.SelectedEvent()); ok {
			view.Data = EventView{VolunteerEvent: event, Joined: tx.HasJoined(event.ID)}
		} else {
			notFound("event.notFound", models.ScreenHelpVolunteer)
		}

	case models.ScreenHelpSupport:
		view.Data = HelpSupportView{
			FAQs:         catalog.FAQs(),
			SupportPhone: catalog.SupportPhone,
			SupportEmail: catalog.SupportEmail,
			CallLink:     utils.TelURI(catalog.SupportPhone),
			MailLink:     utils.MailtoURI(catalog.SupportEmail, ""),
		}
	}

	return view
}

func renderAuth(tx *session.Tx, t func(string) string) (AuthView, string) {
	view := AuthView{
		Flow:        models.FlowForScreen(tx.CurrentScreen()),
		InputMethod: models.InputMethodPhone,
	}
	v, ok := tx.Scope().Value(authScopeKey)
	if !ok {
		return view, ""
	}
	flow := v.(*authFlow)
	view.InputMethod = flow.method
	view.Identifier = flow.identifier
	view.Password = flow.password
	if flow.challenge != nil {
		otpView := flow.challenge.View()
		view.OTP = &otpView
	}

	message := ""
	if flow.notice != "" {
		message = t(flow.notice)
	}
	return view, message
}

func renderHelpForm(tx *session.Tx, options []string, sent string) (HelpFormView, string) {
	view := HelpFormView{Options: options}
	if _, ok := tx.Scope().Value(submittedScopeKey); ok {
		view.Submitted = true
		return view, sent
	}
	return view, ""
}

func renderPolls(tx *session.Tx) PollsView {
	view := PollsView{Active: []models.PollView{}, Expired: []models.PollView{}}
	for _, p := range catalog.Polls() {
		if !p.IsActive() {
			view.Expired = append(view.Expired, catalog.ViewPoll(p, nil))
			continue
		}
		var vote *int
		if option, ok := tx.PollVote(p.ID); ok {
			vote = &option
		}
		view.Active = append(view.Active, catalog.ViewPoll(p, vote))
	}
	return view
}

// EmergencyLines returns the emergency numbers with their call links
func EmergencyLines() []EmergencyLine {
	numbers := catalog.EmergencyNumbers()
	out := make([]EmergencyLine, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, EmergencyLine{EmergencyNumber: n, CallLink: utils.TelURI(n.Number)})
	}
	return out
}
