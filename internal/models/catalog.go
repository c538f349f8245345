package models

// Notice is an entry of the notices listing
type Notice struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
	HasPDF      bool   `json:"hasPdf"`
	Source      string `json:"source"`
}

// NoticeDetail is the full text of a notice shown on the detail screen
type NoticeDetail struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	PostedBy    string `json:"postedBy"`
	Summary     string `json:"summary"`
	FullContent string `json:"fullContent"`
	PDFURL      string `json:"pdfUrl"`
}

// HomeAlert is a short alert card shown on the home screen
type HomeAlert struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AlertDetail is the full alert shown on the alert detail screen
type AlertDetail struct {
	ID              string            `json:"id"`
	Type            string            `json:"type"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	FullDescription string            `json:"fullDescription"`
	Time            string            `json:"time"`
	Location        string            `json:"location"`
	Severity        string            `json:"severity"`
	Instructions    []string          `json:"instructions"`
	ContactInfo     map[string]string `json:"contactInfo"`
}

// SafetyAlert is an advisory listed on the safety screen
type SafetyAlert struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	Date            string   `json:"date"`
	Severity        string   `json:"severity"`
	AffectedAreas   []string `json:"affectedAreas"`
	ContactPerson   string   `json:"contactPerson"`
	ContactNumber   string   `json:"contactNumber"`
}

// EmergencyNumber is a public emergency line
type EmergencyNumber struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

// ServiceListing is an entry of the service directory
type ServiceListing struct {
	ID           string `json:"id"`
	Category     string `json:"category"`
	BusinessName string `json:"businessName"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Distance     string `json:"distance"`
}

// ServiceProvider is the detailed provider page
type ServiceProvider struct {
	ID              string   `json:"id"`
	Category        string   `json:"category"`
	BusinessName    string   `json:"businessName"`
	OwnerName       string   `json:"ownerName"`
	Phone           string   `json:"phone"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	WorkingHours    string   `json:"workingHours"`
	RegularHours    string   `json:"regularHours"`
	Distance        string   `json:"distance"`
	Rating          float64  `json:"rating"`
	Reviews         int      `json:"reviews"`
	Services        []string `json:"services"`
}

// Poll statuses
const (
	PollStatusActive  = "active"
	PollStatusExpired = "expired"
)

// Poll is a community poll
type Poll struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Votes      []int    `json:"votes"`
	CreatedBy  string   `json:"createdBy"`
	Date       string   `json:"date"`
	Status     string   `json:"status"`
	ExpiryDate string   `json:"expiryDate,omitempty"`
	Decision   string   `json:"decision,omitempty"`
}

// IsActive reports whether the poll still accepts votes
func (p Poll) IsActive() bool {
	return p.Status == PollStatusActive
}

// PollView is a poll as seen by one session, including its own vote
type PollView struct {
	Poll
	TotalVotes  int   `json:"totalVotes"`
	Percentages []int `json:"percentages"`
	HasVoted    bool  `json:"hasVoted"`
	UserVote    *int  `json:"userVote,omitempty"`
}

// VolunteerEvent is a community event residents can join
type VolunteerEvent struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Date        string `json:"date" bson:"date"`
	Time        string `json:"time" bson:"time"`
	Location    string `json:"location" bson:"location"`
	Organizer   string `json:"organizer" bson:"organizer"`
}

// FAQ is a help and support question
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
