package messaging

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/pixil98/go-gearlock/internal/inventory"
	"github.com/pixil98/go-gearlock/internal/loadout"
	"github.com/pixil98/go-testutil"
)

type published struct {
	subject string
	data    []byte
}

type recordingConn struct {
	msgs []published
	err  error
}

func (c *recordingConn) Publish(subject string, data []byte) error {
	if c.err != nil {
		return c.err
	}
	c.msgs = append(c.msgs, published{subject: subject, data: data})
	return nil
}

func loadoutAcquired() loadout.Event {
	return loadout.Event{HoldId: "h1", Kind: loadout.EventAcquired, Lock: loadout.LockTitan}
}

func TestEventPublisher_Publish(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := map[string]struct {
		subject  string
		template string
		event    loadout.Event
		expSubj  string
		expMsg   string
	}{
		"default template acquired": {
			event: loadout.Event{
				HoldId: "h1",
				Kind:   loadout.EventAcquired,
				Lock:   loadout.LockTitan,
				Items:  inventory.Loadout{1, 2, 3},
				Time:   at,
			},
			expSubj: "gearlock.lock.acquired",
			expMsg:  "Acquired titan hold (3 items)",
		},
		"default template released without items": {
			event: loadout.Event{
				HoldId:   "h1",
				Kind:     loadout.EventReleased,
				Lock:     loadout.LockNone,
				Previous: loadout.LockYggdrasil,
				Time:     at,
			},
			expSubj: "gearlock.lock.released",
			expMsg:  "Released none hold",
		},
		"custom subject and template": {
			subject:  "ngu.events",
			template: `{{ .Previous }} -> {{ .Lock }} {{ .HoldId | upper }}`,
			event: loadout.Event{
				HoldId:   "abc",
				Kind:     loadout.EventRejected,
				Lock:     loadout.LockTitan,
				Previous: loadout.LockTitan,
				Time:     at,
			},
			expSubj: "ngu.events.rejected",
			expMsg:  "titan -> titan ABC",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			conn := &recordingConn{}
			p, err := NewEventPublisher(conn, tt.subject, tt.template)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			err = p.Publish(tt.event)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "messages", len(conn.msgs), 1)
			testutil.AssertEqual(t, "subject", conn.msgs[0].subject, tt.expSubj)

			var got struct {
				HoldId  string `json:"hold_id"`
				Kind    string `json:"kind"`
				Lock    string `json:"lock"`
				Message string `json:"message"`
			}
			err = json.Unmarshal(conn.msgs[0].data, &got)
			if err != nil {
				t.Fatalf("decoding payload: %v", err)
			}
			testutil.AssertEqual(t, "message", got.Message, tt.expMsg)
			testutil.AssertEqual(t, "hold_id", got.HoldId, tt.event.HoldId)
			testutil.AssertEqual(t, "kind", got.Kind, string(tt.event.Kind))
			testutil.AssertEqual(t, "lock", got.Lock, tt.event.Lock.String())
		})
	}
}

func TestEventPublisher_Errors(t *testing.T) {
	_, err := NewEventPublisher(&recordingConn{}, "", "{{ .Missing")
	testutil.AssertErrorContains(t, err, "message_template")

	p, err := NewEventPublisher(&recordingConn{}, "", "{{ .Nope }}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = p.Publish(loadout.Event{Kind: loadout.EventAcquired})
	testutil.AssertErrorContains(t, err, "rendering acquired event")

	p, err = NewEventPublisher(&recordingConn{err: errors.New("nats server not started")}, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = p.Publish(loadout.Event{Kind: loadout.EventReleased})
	testutil.AssertErrorContains(t, err, "not started")
}
