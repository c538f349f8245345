package navigation

import "github.com/myarea/app-myarea/internal/models"

// Transitions lists the screens each screen links to. It documents the
// navigation graph; the controller counts departures from it but does not
// block them.
var Transitions = map[models.Screen][]models.Screen{
	models.ScreenLanguage:             {models.ScreenAuthChoice},
	models.ScreenAuthChoice:           {models.ScreenLogin, models.ScreenSignup},
	models.ScreenLogin:                {models.ScreenAuthChoice, models.ScreenHome},
	models.ScreenSignup:               {models.ScreenAuthChoice, models.ScreenProfileCompletion},
	models.ScreenProfileCompletion:    {models.ScreenVerificationPending},
	models.ScreenVerificationPending:  {models.ScreenVerificationComplete, models.ScreenHome},
	models.ScreenVerificationComplete: {models.ScreenHome},
	models.ScreenHome: {
		models.ScreenNotices, models.ScreenHelpVolunteer, models.ScreenServices, models.ScreenSafety,
		models.ScreenPolls, models.ScreenProfile, models.ScreenAlertDetail,
	},
	models.ScreenNotices:       {models.ScreenHome, models.ScreenNoticeDetail},
	models.ScreenNoticeDetail:  {models.ScreenNotices},
	models.ScreenHelpVolunteer: {models.ScreenHome, models.ScreenNeedHelp, models.ScreenOfferHelp, models.ScreenEventDetail},
	models.ScreenNeedHelp:      {models.ScreenHelpVolunteer},
	models.ScreenOfferHelp:     {models.ScreenHelpVolunteer},
	models.ScreenServices:      {models.ScreenHome, models.ScreenServiceDetail},
	models.ScreenServiceDetail: {models.ScreenServices},
	models.ScreenSafety:        {models.ScreenHome, models.ScreenAlertDetail},
	models.ScreenAlertDetail:   {models.ScreenSafety},
	models.ScreenPolls:         {models.ScreenHome},
	models.ScreenProfile: {
		models.ScreenHome, models.ScreenLanguage, models.ScreenAbout, models.ScreenPrivacy,
		models.ScreenTerms, models.ScreenHelpSupport,
	},
	models.ScreenEventDetail: {models.ScreenHelpVolunteer},
	models.ScreenAbout:       {models.ScreenProfile},
	models.ScreenPrivacy:     {models.ScreenProfile},
	models.ScreenTerms:       {models.ScreenProfile},
	models.ScreenHelpSupport: {models.ScreenProfile, models.ScreenAbout},
}

// backTargets maps a screen to the predecessor its back button leads to
var backTargets = map[models.Screen]models.Screen{
	models.ScreenLogin:         models.ScreenAuthChoice,
	models.ScreenSignup:        models.ScreenAuthChoice,
	models.ScreenNotices:       models.ScreenHome,
	models.ScreenNoticeDetail:  models.ScreenNotices,
	models.ScreenHelpVolunteer: models.ScreenHome,
	models.ScreenNeedHelp:      models.ScreenHelpVolunteer,
	models.ScreenOfferHelp:     models.ScreenHelpVolunteer,
	models.ScreenServices:      models.ScreenHome,
	models.ScreenServiceDetail: models.ScreenServices,
	models.ScreenSafety:        models.ScreenHome,
	models.ScreenAlertDetail:   models.ScreenSafety,
	models.ScreenPolls:         models.ScreenHome,
	models.ScreenProfile:       models.ScreenHome,
	models.ScreenEventDetail:   models.ScreenHelpVolunteer,
	models.ScreenAbout:         models.ScreenProfile,
	models.ScreenPrivacy:       models.ScreenProfile,
	models.ScreenTerms:         models.ScreenProfile,
	models.ScreenHelpSupport:   models.ScreenProfile,
}

// Allowed reports whether to is a declared target of from
func Allowed(from, to models.Screen) bool {
	for _, target := range Transitions[from] {
		if target == to {
			return true
		}
	}
	return false
}

// BackTarget returns the predecessor of screen, if it has one
func BackTarget(screen models.Screen) (models.Screen, bool) {
	target, ok := backTargets[screen]
	return target, ok
}
