package models

// Screen identifies which page of the app is rendered
type Screen string

const (
	ScreenLanguage             Screen = "language"
	ScreenAuthChoice           Screen = "auth-choice"
	ScreenLogin                Screen = "login"
	ScreenSignup               Screen = "signup"
	ScreenProfileCompletion    Screen = "profile-completion"
	ScreenVerificationPending  Screen = "verification-pending"
	ScreenVerificationComplete Screen = "verification-complete"
	ScreenHome                 Screen = "home"
	ScreenNotices              Screen = "notices"
	ScreenNoticeDetail         Screen = "notice-detail"
	ScreenHelpVolunteer        Screen = "help-volunteer"
	ScreenNeedHelp             Screen = "need-help"
	ScreenOfferHelp            Screen = "offer-help"
	ScreenServices             Screen = "services"
	ScreenServiceDetail        Screen = "service-detail"
	ScreenSafety               Screen = "safety"
	ScreenAlertDetail          Screen = "alert-detail"
	ScreenPolls                Screen = "polls"
	ScreenProfile              Screen = "profile"
	ScreenEventDetail          Screen = "event-detail"
	ScreenAbout                Screen = "about"
	ScreenPrivacy              Screen = "privacy"
	ScreenTerms                Screen = "terms"
	ScreenHelpSupport          Screen = "help-support"
)

// DefaultScreen is shown on a fresh session and after logout
const DefaultScreen = ScreenLanguage

// AllScreens lists every screen tag in declaration order
func AllScreens() []Screen {
	return []Screen{
		ScreenLanguage, ScreenAuthChoice, ScreenLogin, ScreenSignup,
		ScreenProfileCompletion, ScreenVerificationPending, ScreenVerificationComplete,
		ScreenHome, ScreenNotices, ScreenNoticeDetail, ScreenHelpVolunteer,
		ScreenNeedHelp, ScreenOfferHelp, ScreenServices, ScreenServiceDetail,
		ScreenSafety, ScreenAlertDetail, ScreenPolls, ScreenProfile,
		ScreenEventDetail, ScreenAbout, ScreenPrivacy, ScreenTerms, ScreenHelpSupport,
	}
}

// IsValid reports whether s is one of the known screen tags
func (s Screen) IsValid() bool {
	for _, known := range AllScreens() {
		if s == known {
			return true
		}
	}
	return false
}

// IsAuthScreen reports whether s hosts the credential and OTP flow
func (s Screen) IsAuthScreen() bool {
	return s == ScreenLogin || s == ScreenSignup
}

// AuthFlow distinguishes the two credential screens
type AuthFlow string

const (
	AuthFlowLogin  AuthFlow = "login"
	AuthFlowSignup AuthFlow = "signup"
)

// FlowForScreen returns the auth flow hosted by screen, or "" for other screens
func FlowForScreen(s Screen) AuthFlow {
	switch s {
	case ScreenLogin:
		return AuthFlowLogin
	case ScreenSignup:
		return AuthFlowSignup
	}
	return ""
}
