package router

import (
	"errors"
	"strings"
)

// ResponderID names one of the three specialised responders
type ResponderID string

const (
	Billing   ResponderID = "billing"
	Technical ResponderID = "technical"
	Policy    ResponderID = "policy"
)

// DefaultResponder handles questions the classifier could not place
const DefaultResponder = Billing

// LabelError is reported as the agent when a request fails
const LabelError = "error"

var ErrUnknownResponder = errors.New("unknown responder")

// Responders lists every id in decision priority order
var Responders = []ResponderID{Billing, Technical, Policy}

// Label is the wire name, e.g. "billing_agent"
func (id ResponderID) Label() string {
	return string(id) + "_agent"
}

func (id ResponderID) Valid() bool {
	switch id {
	case Billing, Technical, Policy:
		return true
	}
	return false
}

// ParseDecision maps raw classifier output to a responder. The first of
// billing, technical, policy found anywhere in the text wins, so
// "technical or billing" still picks billing. Anything else falls back to
// DefaultResponder.
func ParseDecision(raw string) ResponderID {
	choice := strings.ToLower(strings.TrimSpace(raw))

	for _, id := range Responders {
		if strings.Contains(choice, string(id)) {
			return id
		}
	}
	return DefaultResponder
}

// ParseLabel is the inverse of Label
func ParseLabel(label string) (ResponderID, error) {
	id := ResponderID(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(label)), "_agent"))
	if !id.Valid() {
		return "", ErrUnknownResponder
	}
	return id, nil
}
