package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-gearlock/internal/messaging"
)

type NatsConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	StartTimeout    string `json:"start_timeout"`
	ClientName      string `json:"client_name,omitempty"`
	Subject         string `json:"subject,omitempty"`
	MessageTemplate string `json:"message_template,omitempty"`
}

func (c *NatsConfig) validate() error {
	el := errors.NewErrorList()

	if c.StartTimeout != "" {
		_, err := time.ParseDuration(c.StartTimeout)
		if err != nil {
			el.Add(fmt.Errorf("parsing start_timeout: %w", err))
		}
	}
	if c.Port < 0 || c.Port > 65535 {
		el.Add(fmt.Errorf("port %d out of range", c.Port))
	}
	if c.MessageTemplate != "" {
		_, err := messaging.NewEventPublisher(nil, c.Subject, c.MessageTemplate)
		if err != nil {
			el.Add(err)
		}
	}

	return el.Err()
}

func (c *NatsConfig) buildNatsServer() (*messaging.NatsServer, error) {
	var opts []messaging.NatsServerOpt
	if c.StartTimeout != "" {
		d, err := time.ParseDuration(c.StartTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing start_timeout: %w", err)
		}
		opts = append(opts, messaging.WithStartTimeout(d))
	}
	if c.Host != "" {
		opts = append(opts, messaging.WithHost(c.Host))
	}
	if c.Port != 0 {
		opts = append(opts, messaging.WithPort(c.Port))
	}
	if c.ClientName != "" {
		opts = append(opts, messaging.WithClientName(c.ClientName))
	}

	return messaging.NewNatsServer(opts...)
}

func (c *NatsConfig) buildPublisher(conn messaging.Conn) (*messaging.EventPublisher, error) {
	return messaging.NewEventPublisher(conn, c.Subject, c.MessageTemplate)
}
