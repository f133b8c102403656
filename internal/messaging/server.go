package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

const (
	DefaultStartTimeout = 10 * time.Second
	DefaultHost         = "127.0.0.1"
	DefaultClientName   = "gearlock"
)

// NatsServer is an embedded nats server plus the internal client used to
// publish lock events. It runs as a service worker.
type NatsServer struct {
	ns *server.Server

	mu   sync.RWMutex
	conn *nats.Conn

	startupTimeout time.Duration
	host           string
	port           int
	clientName     string
}

func NewNatsServer(opts ...NatsServerOpt) (*NatsServer, error) {
	s := &NatsServer{
		startupTimeout: DefaultStartTimeout,
		host:           DefaultHost,
		clientName:     DefaultClientName,
	}

	for _, opt := range opts {
		opt(s)
	}

	ns, err := server.NewServer(&server.Options{
		Host:   s.host,
		Port:   s.port,
		NoSigs: true, // Let the application handle signals
	})
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	s.ns = ns

	return s, nil
}

func (n *NatsServer) Start(ctx context.Context) error {
	n.ns.Start()

	if !n.ns.ReadyForConnections(n.startupTimeout) {
		n.ns.Shutdown()
		return fmt.Errorf("nats server not ready for connections after %s", n.startupTimeout)
	}

	conn, err := nats.Connect(n.ns.ClientURL(), nats.Name(n.clientName))
	if err != nil {
		n.ns.Shutdown()
		return fmt.Errorf("creating nats client connection: %w", err)
	}

	n.mu.Lock()
	n.conn = conn
	n.mu.Unlock()

	slog.InfoContext(ctx, "nats server listening", "addr", n.ns.Addr())

	<-ctx.Done()

	n.mu.Lock()
	n.conn.Close()
	n.conn = nil
	n.mu.Unlock()

	n.ns.Shutdown()
	n.ns.WaitForShutdown()

	return nil
}

// Publish sends a message to the given subject
func (n *NatsServer) Publish(subject string, data []byte) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.conn == nil {
		return fmt.Errorf("nats server not started")
	}
	return n.conn.Publish(subject, data)
}
