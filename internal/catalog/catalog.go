// Package catalog holds the static content shown by the app: notices,
// alerts, the service directory, polls, volunteer events and FAQs.
//
// Listings and detail pages are backed by separate tables, as they are
// curated separately. An id that appears in a listing is not guaranteed to
// resolve on the matching detail screen; callers render a not-found view.
package catalog

import (
	"strings"

	"github.com/myarea/app-myarea/internal/models"
)

// Support contact details shown on the help and support screen
const (
	SupportPhone = "18001234567"
	SupportEmail = "support@myarea.gov.in"
)

// CategoryAll selects every service listing
const CategoryAll = "All"

func findByID[T any](items []T, id string, key func(T) string) (T, bool) {
	for _, item := range items {
		if key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func cloneSlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Notices returns the notices listing
func Notices() []models.Notice {
	return cloneSlice(notices)
}

// NoticeByID looks a notice up in the detail catalog
func NoticeByID(id string) (models.NoticeDetail, bool) {
	return findByID(noticeDetails, id, func(n models.NoticeDetail) string { return n.ID })
}

// HomeAlerts returns the alert cards shown on the home screen
func HomeAlerts() []models.HomeAlert {
	return cloneSlice(homeAlerts)
}

// AlertByID looks an alert up in the alert detail catalog
func AlertByID(id string) (models.AlertDetail, bool) {
	return findByID(alertDetails, id, func(a models.AlertDetail) string { return a.ID })
}

// SafetyAlerts returns the advisories listed on the safety screen
func SafetyAlerts() []models.SafetyAlert {
	return cloneSlice(safetyAlerts)
}

// EmergencyNumbers returns the public emergency lines
func EmergencyNumbers() []models.EmergencyNumber {
	return cloneSlice(emergencyNumbers)
}

// ServiceCategories returns the filter tabs of the service directory
func ServiceCategories() []string {
	return []string{CategoryAll, "Plumber", "Electrician", "Medical", "Others"}
}

// Services returns the listings of category; "" and CategoryAll return everything
func Services(category string) []models.ServiceListing {
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return cloneSlice(serviceListings)
	}
	out := []models.ServiceListing{}
	for _, s := range serviceListings {
		if strings.EqualFold(s.Category, category) {
			out = append(out, s)
		}
	}
	return out
}

// ServiceByID looks a provider up in the service detail catalog
func ServiceByID(id string) (models.ServiceProvider, bool) {
	return findByID(serviceProviders, id, func(s models.ServiceProvider) string { return s.ID })
}

// Polls returns every poll
func Polls() []models.Poll {
	out := make([]models.Poll, len(polls))
	for i, p := range polls {
		out[i] = clonePoll(p)
	}
	return out
}

// PollsByStatus returns the polls with the given status
func PollsByStatus(status string) []models.Poll {
	out := []models.Poll{}
	for _, p := range polls {
		if p.Status == status {
			out = append(out, clonePoll(p))
		}
	}
	return out
}

// PollByID looks a poll up by id
func PollByID(id string) (models.Poll, bool) {
	p, ok := findByID(polls, id, func(p models.Poll) string { return p.ID })
	if !ok {
		return p, false
	}
	return clonePoll(p), true
}

func clonePoll(p models.Poll) models.Poll {
	p.Options = cloneSlice(p.Options)
	p.Votes = cloneSlice(p.Votes)
	return p
}

// ViewPoll applies a session's own vote, if any, on top of the published
// tally and computes rounded percentages.
func ViewPoll(p models.Poll, userVote *int) models.PollView {
	p = clonePoll(p)
	view := models.PollView{Poll: p}
	if userVote != nil && *userVote >= 0 && *userVote < len(p.Votes) {
		view.Poll.Votes[*userVote]++
		vote := *userVote
		view.UserVote = &vote
		view.HasVoted = true
	}
	for _, v := range view.Poll.Votes {
		view.TotalVotes += v
	}
	view.Percentages = make([]int, len(view.Poll.Votes))
	for i, v := range view.Poll.Votes {
		view.Percentages[i] = percentage(v, view.TotalVotes)
	}
	return view
}

func percentage(votes, total int) int {
	if total <= 0 {
		return 0
	}
	// round half up, as the published results do
	return (votes*200 + total) / (2 * total)
}

// Events returns the upcoming volunteer events
func Events() []models.VolunteerEvent {
	return cloneSlice(volunteerEvents)
}

// EventByID looks a volunteer event up by id
func EventByID(id string) (models.VolunteerEvent, bool) {
	return findByID(volunteerEvents, id, func(e models.VolunteerEvent) string { return e.ID })
}

// FAQs returns the help and support questions
func FAQs() []models.FAQ {
	return cloneSlice(faqs)
}
