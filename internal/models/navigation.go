package models

// NavigationParams carries the selector ids a navigation may overwrite.
// A nil field means the key was not supplied.
type NavigationParams struct {
	EventID   *string `json:"eventId,omitempty" bson:"event_id,omitempty"`
	ServiceID *string `json:"serviceId,omitempty" bson:"service_id,omitempty"`
	AlertID   *string `json:"alertId,omitempty" bson:"alert_id,omitempty"`
	NoticeID  *string `json:"noticeId,omitempty" bson:"notice_id,omitempty"`
}

// SelectorIDs is the retained selector state held by the navigation controller
type SelectorIDs struct {
	EventID   string `json:"eventId" bson:"event_id"`
	ServiceID string `json:"serviceId" bson:"service_id"`
	AlertID   string `json:"alertId" bson:"alert_id"`
	NoticeID  string `json:"noticeId" bson:"notice_id"`
}

// StringPtr returns a pointer to s, handy for building NavigationParams
func StringPtr(s string) *string {
	return &s
}
