package screens

import (
	"context"
	"errors"
	"fmt"

	"github.com/myarea/app-myarea/internal/catalog"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/observability"
	"github.com/myarea/app-myarea/internal/services"
	"github.com/myarea/app-myarea/internal/session"
	"github.com/myarea/app-myarea/internal/utils"
	"go.uber.org/zap"
)

// submittedScopeKey marks a help form as sent so the screen shows its
// confirmation until the user leaves
const submittedScopeKey = "submitted"

// SelectLanguage stores the chosen language and continues to the auth choice
func (a *App) SelectLanguage(ctx context.Context, st *session.State, lang models.Language) error {
	return st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, models.ScreenLanguage); err != nil {
			return err
		}
		if err := tx.SetLanguage(lang); err != nil {
			return err
		}
		tx.NavigateTo(models.ScreenAuthChoice, models.NavigationParams{})
		return nil
	})
}

// ChangeLanguage opens the language screen from the profile settings
func (a *App) ChangeLanguage(ctx context.Context, st *session.State) error {
	return st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, models.ScreenProfile); err != nil {
			return err
		}
		tx.NavigateTo(models.ScreenLanguage, models.NavigationParams{})
		return nil
	})
}

// SubmitProfile validates the completion form, hands the profile to the
// store and waits for verification
func (a *App) SubmitProfile(ctx context.Context, st *session.State, form models.ProfileForm) error {
	ctx, span, cleanup := utils.TraceScreenAction(ctx, string(models.ScreenProfileCompletion), "submit")
	defer cleanup()

	return st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, models.ScreenProfileCompletion); err != nil {
			return err
		}
		if result := utils.ValidateProfile(form); !result.IsValid {
			return invalid("profile", result)
		}

		profile := form.ToProfile()
		if err := a.deps.Profiles.SubmitProfile(ctx, tx.Identity(), tx.Language(), profile); err != nil {
			utils.RecordErrorInSpan(span, err, nil)
			return fmt.Errorf("submit profile: %w", err)
		}

		tx.SetUserProfile(profile)
		tx.NavigateTo(models.ScreenVerificationPending, models.NavigationParams{})
		return nil
	})
}

// ApproveVerification simulates the municipality approving the profile
func (a *App) ApproveVerification(ctx context.Context, st *session.State) error {
	return st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, models.ScreenVerificationPending); err != nil {
			return err
		}
		err := a.deps.Profiles.SetStatus(ctx, tx.Identity(), models.ProfileStatusVerified)
		if err != nil && !errors.Is(err, services.ErrProfileNotFound) {
			return fmt.Errorf("approve profile: %w", err)
		}
		if err != nil {
			a.logger.Warn("approving a profile that was never stored",
				zap.String("session_id", tx.SessionID()))
		}
		tx.NavigateTo(models.ScreenVerificationComplete, models.NavigationParams{})
		return nil
	})
}

// ContinueToHome marks the session verified and opens home. The pending
// screen offers it too, as a demo shortcut.
func (a *App) ContinueToHome(ctx context.Context, st *session.State) error {
	return st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, models.ScreenVerificationPending, models.ScreenVerificationComplete); err != nil {
			return err
		}
		tx.SetIsVerified(true)
		tx.NavigateTo(models.ScreenHome, models.NavigationParams{})
		return nil
	})
}

// OpenAlert shows an alert from the home or safety screen. The id is not
// checked here; the detail screen renders not found for unknown ids.
func (a *App) OpenAlert(ctx context.Context, st *session.State, alertID string) error {
	return a.openDetail(st, []models.Screen{models.ScreenHome, models.ScreenSafety},
		models.ScreenAlertDetail, models.NavigationParams{AlertID: models.StringPtr(alertID)})
}

// OpenNotice shows a notice from the listing
func (a *App) OpenNotice(ctx context.Context, st *session.State, noticeID string) error {
	return a.openDetail(st, []models.Screen{models.ScreenNotices},
		models.ScreenNoticeDetail, models.NavigationParams{NoticeID: models.StringPtr(noticeID)})
}

// OpenService shows a provider from the directory
func (a *App) OpenService(ctx context.Context, st *session.State, serviceID string) error {
	return a.openDetail(st, []models.Screen{models.ScreenServices},
		models.ScreenServiceDetail, models.NavigationParams{ServiceID: models.StringPtr(serviceID)})
}

func (a *App) openDetail(st *session.State, from []models.Screen, to models.Screen, params models.NavigationParams) error {
	return st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, from...); err != nil {
			return err
		}
		tx.NavigateTo(to, params)
		return nil
	})
}

// SelectEvent opens a volunteer event through the selected event setter
func (a *App) SelectEvent(ctx context.Context, st *session.State, eventID string) error {
	return st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, models.ScreenHelpVolunteer); err != nil {
			return err
		}
		tx.SetSelectedEvent(eventID)
		return nil
	})
}

// JoinEvent registers the session for the selected event, once
func (a *App) JoinEvent(ctx context.Context, st *session.State) error {
	return st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, models.ScreenEventDetail); err != nil {
			return err
		}
		id := tx.SelectedEvent()
		if id == "" {
			return models.ErrNoEventSelected
		}
		if _, ok := catalog.EventByID(id); !ok {
			return models.ErrEventNotFound
		}
		if tx.HasJoined(id) {
			return models.ErrAlreadyJoined
		}
		tx.MarkJoined(id)
		return nil
	})
}

// DownloadNoticePDF returns the document link of the notice on screen
func (a *App) DownloadNoticePDF(ctx context.Context, st *session.State) (string, error) {
	var url string
	err := st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, models.ScreenNoticeDetail); err != nil {
			return err
		}
		notice, ok := catalog.NoticeByID(tx.Params().NoticeID)
		if !ok {
			return models.ErrNoticeNotFound
		}
		url = notice.PDFURL
		return nil
	})
	return url, err
}

// SubmitNeedHelp sends a help request
func (a *App) SubmitNeedHelp(ctx context.Context, st *session.State, form models.NeedHelpForm) error {
	return a.submitHelp(ctx, st, models.ScreenNeedHelp, func() (*utils.ValidationResult, models.HelpSubmission) {
		return utils.ValidateNeedHelp(form), models.HelpSubmission{
			Kind:        models.HelpKindNeed,
			Category:    form.HelpType,
			Description: form.Description,
		}
	})
}

// SubmitOfferHelp sends an offer of help. Consent is required.
func (a *App) SubmitOfferHelp(ctx context.Context, st *session.State, form models.OfferHelpForm) error {
	return a.submitHelp(ctx, st, models.ScreenOfferHelp, func() (*utils.ValidationResult, models.HelpSubmission) {
		return utils.ValidateOfferHelp(form), models.HelpSubmission{
			Kind:         models.HelpKindOffer,
			Category:     form.HelpCategory,
			Availability: form.Availability,
			Description:  form.Description,
			Consent:      form.Consent,
		}
	})
}

func (a *App) submitHelp(ctx context.Context, st *session.State, screen models.Screen, build func() (*utils.ValidationResult, models.HelpSubmission)) error {
	ctx, span, cleanup := utils.TraceScreenAction(ctx, string(screen), "submit")
	defer cleanup()

	return st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, screen); err != nil {
			return err
		}
		result, submission := build()
		if !result.IsValid {
			return invalid(string(screen), result)
		}

		submission.Identifier = tx.Identity()
		if err := a.deps.Help.SaveHelp(ctx, submission); err != nil {
			utils.RecordErrorInSpan(span, err, nil)
			return fmt.Errorf("save help: %w", err)
		}
		observability.HelpSubmissions.WithLabelValues(submission.Kind).Inc()

		tx.Scope().Set(submittedScopeKey, true)
		tx.Touch()
		return nil
	})
}

// Vote casts the session's vote in an active poll
func (a *App) Vote(ctx context.Context, st *session.State, pollID string, option int) error {
	return st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, models.ScreenPolls); err != nil {
			return err
		}
		poll, ok := catalog.PollByID(pollID)
		if !ok {
			return models.ErrPollNotFound
		}
		if !poll.IsActive() {
			return models.ErrPollClosed
		}
		if _, voted := tx.PollVote(pollID); voted {
			return models.ErrAlreadyVoted
		}
		if option < 0 || option >= len(poll.Options) {
			return models.ErrInvalidOption
		}
		tx.RecordVote(pollID, option)
		return nil
	})
}

// SendSOS raises an emergency alert after the user confirmed it
func (a *App) SendSOS(ctx context.Context, st *session.State, confirm bool) error {
	ctx, span, cleanup := utils.TraceScreenAction(ctx, string(models.ScreenHome), "sos")
	defer cleanup()

	return st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, models.ScreenHome); err != nil {
			return err
		}
		if !confirm {
			return models.ErrConfirmationNeeded
		}

		alert := models.SOSAlert{
			SessionID:  tx.SessionID(),
			Identifier: tx.Identity(),
		}
		if profile := tx.UserProfile(); profile != nil {
			alert.Name = profile.FullName()
			address := profile.Address
			alert.Address = &address
			alert.EmergencyContacts = profile.EmergencyContacts
		}

		if err := a.deps.SOS.SendSOS(ctx, alert); err != nil {
			observability.SOSDispatches.WithLabelValues("error").Inc()
			utils.RecordErrorInSpan(span, err, nil)
			return fmt.Errorf("send sos: %w", err)
		}
		return nil
	})
}

// Logout clears the session after the user confirmed it
func (a *App) Logout(ctx context.Context, st *session.State, confirm bool) error {
	return st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, models.ScreenProfile); err != nil {
			return err
		}
		if !confirm {
			return models.ErrConfirmationNeeded
		}
		tx.Logout()
		return nil
	})
}

// PreferLanguage preselects lang on the language picker without leaving it
func (a *App) PreferLanguage(ctx context.Context, st *session.State, lang models.Language) error {
	return st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, models.ScreenLanguage); err != nil {
			return err
		}
		return tx.SetLanguage(lang)
	})
}
