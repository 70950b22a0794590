// Package skill implements the webhook side of the voice-platform
// contract: it parses intent-dispatch envelopes, routes them to intent
// handlers, and builds response envelopes. The platform itself (speech
// recognition, intent resolution, playback) is a black box on the other
// side of this wire format.
package skill

import (
	"encoding/json"
	"fmt"
)

// Request types dispatched by the platform.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

const envelopeVersion = "1.0"

// attrPendingQuestion is the session attribute carrying the quiz pending
// state between turns.
const attrPendingQuestion = "pendingQuestion"

// RequestEnvelope is one incoming conversation turn.
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Request `json:"request"`
}

// Session identifies the conversation and carries turn-to-turn attributes.
type Session struct {
	New        bool                   `json:"new"`
	SessionID  string                 `json:"sessionId"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
	User       User                   `json:"user"`
}

// User is the platform account making the request.
type User struct {
	UserID string `json:"userId"`
}

// Request is the typed payload of a turn.
type Request struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
	Intent    Intent `json:"intent"`
}

// Intent is a named user request with slot values.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot is one named parameter extracted from user speech.
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SlotValue returns the value of the named slot, or "" when absent.
func (r *RequestEnvelope) SlotValue(name string) string {
	slot, ok := r.Request.Intent.Slots[name]
	if !ok {
		return ""
	}
	return slot.Value
}

// ResponseEnvelope is the single response the platform expects per turn.
type ResponseEnvelope struct {
	Version           string                 `json:"version"`
	SessionAttributes map[string]interface{} `json:"sessionAttributes,omitempty"`
	Response          Response               `json:"response"`
}

// Response holds the speech and dialog directives for one turn.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	Directives       []Directive   `json:"directives,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// OutputSpeech is spoken output, always SSML here so audio references can
// be embedded as <audio src='URL'/>.
type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

// Reprompt is spoken when the user stays silent after an elicitation.
type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech,omitempty"`
}

// Directive instructs the platform to continue the dialog.
type Directive struct {
	Type         string `json:"type"`
	SlotToElicit string `json:"slotToElicit,omitempty"`
}

// DirectiveElicitSlot asks the platform to collect one more slot value.
const DirectiveElicitSlot = "Dialog.ElicitSlot"

func ssml(text string) *OutputSpeech {
	return &OutputSpeech{Type: "SSML", SSML: "<speak>" + text + "</speak>"}
}

// AudioTag renders the playback markup for a stored audio reference.
func AudioTag(url string) string {
	return fmt.Sprintf("<audio src='%s'/>", url)
}

// Speak builds a terminal spoken response ending the session.
func Speak(text string) *ResponseEnvelope {
	return &ResponseEnvelope{
		Version: envelopeVersion,
		Response: Response{
			OutputSpeech:     ssml(text),
			ShouldEndSession: true,
		},
	}
}

// Prompt builds a spoken response that keeps the session open.
func Prompt(text, reprompt string) *ResponseEnvelope {
	return &ResponseEnvelope{
		Version: envelopeVersion,
		Response: Response{
			OutputSpeech:     ssml(text),
			Reprompt:         &Reprompt{OutputSpeech: ssml(reprompt)},
			ShouldEndSession: false,
		},
	}
}

// Elicit builds a response that asks the platform to collect the given slot
// on the next turn, carrying attrs forward as session attributes.
func Elicit(text, slot string, attrs map[string]interface{}) *ResponseEnvelope {
	return &ResponseEnvelope{
		Version:           envelopeVersion,
		SessionAttributes: attrs,
		Response: Response{
			OutputSpeech:     ssml(text),
			Reprompt:         &Reprompt{OutputSpeech: ssml(text)},
			Directives:       []Directive{{Type: DirectiveElicitSlot, SlotToElicit: slot}},
			ShouldEndSession: false,
		},
	}
}

// End builds an empty terminal response for SessionEndedRequest turns.
func End() *ResponseEnvelope {
	return &ResponseEnvelope{
		Version:  envelopeVersion,
		Response: Response{ShouldEndSession: true},
	}
}

// decodeAttribute decodes one session attribute into out. Attributes arrive
// as generic JSON, so this round-trips through encoding/json.
func decodeAttribute(attrs map[string]interface{}, key string, out interface{}) (bool, error) {
	raw, ok := attrs[key]
	if !ok || raw == nil {
		return false, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return false, fmt.Errorf("encode session attribute %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode session attribute %s: %w", key, err)
	}
	return true, nil
}
