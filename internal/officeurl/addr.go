package officeurl

import (
	"net"
	"strconv"
)

// Endpoint is the net.Addr a descriptor points at. It is descriptive only.
type Endpoint struct {
	network string
	address string
}

func (e Endpoint) Network() string { return e.network }
func (e Endpoint) String() string  { return e.address }

// Addr returns a "tcp" host:port endpoint for sockets, a "pipe" endpoint
// carrying the pipe name for pipes, and nil for the zero descriptor.
func (d Descriptor) Addr() net.Addr {
	switch {
	case d.IsSocket():
		return Endpoint{network: "tcp", address: net.JoinHostPort(d.Host(), strconv.Itoa(d.port))}
	case d.IsPipe():
		return Endpoint{network: ConnectionPipe, address: d.PipeName()}
	default:
		return nil
	}
}
