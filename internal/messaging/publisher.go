package messaging

import (
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/pixil98/go-gearlock/internal/loadout"
)

// DefaultSubject is the subject prefix lock events are published under.
const DefaultSubject = "gearlock.lock"

// Conn is the part of a nats connection the publisher needs.
type Conn interface {
	Publish(subject string, data []byte) error
}

// Envelope is the payload published for each lock event.
type Envelope struct {
	loadout.Event
	Message string `json:"message"`
}

// EventPublisher sends lock events to <subject>.<kind>.
type EventPublisher struct {
	conn    Conn
	subject string
	tmpl    *template.Template
}

func NewEventPublisher(c Conn, subject string, messageTemplate string) (*EventPublisher, error) {
	if subject == "" {
		subject = DefaultSubject
	}
	if messageTemplate == "" {
		messageTemplate = DefaultMessageTemplate
	}

	tmpl, err := parseTemplate(messageTemplate)
	if err != nil {
		return nil, fmt.Errorf("message_template: %w", err)
	}

	return &EventPublisher{
		conn:    c,
		subject: subject,
		tmpl:    tmpl,
	}, nil
}

// Publish satisfies loadout.Publisher
func (p *EventPublisher) Publish(ev loadout.Event) error {
	data, err := p.Encode(ev)
	if err != nil {
		return err
	}
	return p.conn.Publish(p.Subject(ev), data)
}

// Subject returns the subject an event is published on.
func (p *EventPublisher) Subject(ev loadout.Event) string {
	return fmt.Sprintf("%s.%s", p.subject, ev.Kind)
}

// Encode renders the event message and marshals the envelope.
func (p *EventPublisher) Encode(ev loadout.Event) ([]byte, error) {
	msg, err := execute(p.tmpl, ev)
	if err != nil {
		return nil, fmt.Errorf("rendering %s event: %w", ev.Kind, err)
	}

	data, err := json.Marshal(Envelope{Event: ev, Message: msg})
	if err != nil {
		return nil, fmt.Errorf("encoding %s event: %w", ev.Kind, err)
	}
	return data, nil
}
