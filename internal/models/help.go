package models

import "time"

// NeedHelpTypes are the kinds of assistance a resident can request
var NeedHelpTypes = []string{
	"Medical Assistance",
	"Transportation",
	"Groceries",
	"Elderly Care",
	"Education/Tutoring",
	"Financial Help",
	"Legal Assistance",
	"Other",
}

// OfferHelpCategories are the kinds of assistance a resident can offer
var OfferHelpCategories = []string{
	"Medical Assistance",
	"Transportation",
	"Groceries Delivery",
	"Elderly Care",
	"Education/Tutoring",
	"Home Repairs",
	"Child Care",
	"Pet Care",
	"Other",
}

// NeedHelpForm is the request submitted from the need help screen
type NeedHelpForm struct {
	HelpType    string `json:"helpType"`
	Description string `json:"description"`
}

// OfferHelpForm is the offer submitted from the offer help screen
type OfferHelpForm struct {
	HelpCategory string `json:"helpCategory"`
	Availability string `json:"availability"`
	Description  string `json:"description"`
	Consent      bool   `json:"consent"`
}

// Help submission kinds
const (
	HelpKindNeed  = "need"
	HelpKindOffer = "offer"
)

// HelpSubmission is a persisted need or offer
type HelpSubmission struct {
	ID           string    `json:"id" bson:"_id"`
	Kind         string    `json:"kind" bson:"kind"`
	Identifier   string    `json:"identifier" bson:"identifier"`
	Category     string    `json:"category" bson:"category"`
	Availability string    `json:"availability,omitempty" bson:"availability,omitempty"`
	Description  string    `json:"description" bson:"description"`
	Consent      bool      `json:"consent" bson:"consent"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// SOSAlert is raised from the home screen after confirmation
type SOSAlert struct {
	ID                string             `json:"id"`
	SessionID         string             `json:"session_id"`
	Identifier        string             `json:"identifier"`
	Name              string             `json:"name,omitempty"`
	Address           *Address           `json:"address,omitempty"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts,omitempty"`
	RaisedAt          time.Time          `json:"raised_at"`
}
