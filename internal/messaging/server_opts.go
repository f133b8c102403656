package messaging

import "time"

type NatsServerOpt func(*NatsServer)

// WithStartTimeout bounds how long Start waits for the server to accept
// connections before giving up.
func WithStartTimeout(d time.Duration) NatsServerOpt {
	return func(n *NatsServer) {
		if d > 0 {
			n.startupTimeout = d
		}
	}
}

// WithHost sets the interface lock event subscribers connect to.
func WithHost(host string) NatsServerOpt {
	return func(n *NatsServer) {
		n.host = host
	}
}

// WithPort sets the client port. Zero keeps the nats default.
func WithPort(port int) NatsServerOpt {
	return func(n *NatsServer) {
		n.port = port
	}
}

// WithClientName names the internal publishing connection, as shown in
// server connection listings.
func WithClientName(name string) NatsServerOpt {
	return func(n *NatsServer) {
		if name != "" {
			n.clientName = name
		}
	}
}
