package types

// Response is the contract-style result bundle returned by gateway handlers
// and carried inside the Publish packet. It mirrors the CosmWasm response
// shape so the counterparty receiver contract can decode it unchanged.
type Response struct {
	Attributes []EventAttribute `json:"attributes"`
	Events     []Event          `json:"events"`
	Data       []byte           `json:"data,omitempty"`
}

// EventAttribute is a key/value annotation on a Response or Event.
type EventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is a typed group of attributes emitted by a handler.
type Event struct {
	Type       string           `json:"type"`
	Attributes []EventAttribute `json:"attributes"`
}

// MessageInfo carries the identity of the caller invoking a handler.
type MessageInfo struct {
	Sender string `json:"sender"`
}

// NewResponse returns an empty response.
func NewResponse() Response {
	return Response{}
}

// AddAttribute returns a copy of the response with the attribute appended.
func (r Response) AddAttribute(key, value string) Response {
	attrs := make([]EventAttribute, 0, len(r.Attributes)+1)
	attrs = append(attrs, r.Attributes...)
	r.Attributes = append(attrs, EventAttribute{Key: key, Value: value})
	return r
}

// AddEvent returns a copy of the response with the event appended.
func (r Response) AddEvent(event Event) Response {
	events := make([]Event, 0, len(r.Events)+1)
	events = append(events, r.Events...)
	r.Events = append(events, event)
	return r
}

// NewEvent returns an event of the given type with no attributes.
func NewEvent(eventType string) Event {
	return Event{Type: eventType}
}

// AddAttribute returns a copy of the event with the attribute appended.
func (e Event) AddAttribute(key, value string) Event {
	attrs := make([]EventAttribute, 0, len(e.Attributes)+1)
	attrs = append(attrs, e.Attributes...)
	e.Attributes = append(attrs, EventAttribute{Key: key, Value: value})
	return e
}
