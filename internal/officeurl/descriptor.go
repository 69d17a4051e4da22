package officeurl

import (
	"strconv"
	"strings"
)

const (
	ConnectionPipe   = "pipe"
	ConnectionSocket = "socket"

	DefaultHost     = "127.0.0.1"
	DefaultProtocol = "urp"
	DefaultObjectID = "StarOffice.ServiceManager"

	maxPort   = 65535
	unoPrefix = "uno:"
)

// Descriptor is a parsed office connection descriptor.
// The zero value describes nothing; build one with Parse, ForPipe or ForSocket.
type Descriptor struct {
	raw        string
	connection part
	protocol   part
	objectID   string
	port       int
}

// ForPipe describes the named pipe pipeName using the urp protocol.
func ForPipe(pipeName string) (Descriptor, error) {
	return Parse(ConnectionPipe + ",name=" + EscapeValue(pipeName) +
		";" + DefaultProtocol + ";" + DefaultObjectID)
}

// ForSocket describes a TCP socket. An empty host means DefaultHost.
func ForSocket(host string, port int) (Descriptor, error) {
	if host == "" {
		host = DefaultHost
	}
	return Parse(ConnectionSocket + ",host=" + EscapeValue(host) +
		",port=" + strconv.Itoa(port) + ",tcpNoDelay=1;" +
		DefaultProtocol + ";" + DefaultObjectID)
}

// ForPort describes a TCP socket on DefaultHost.
func ForPort(port int) (Descriptor, error) {
	return ForSocket("", port)
}

// MustParse is like Parse but panics on error.
func MustParse(raw string) Descriptor {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse reads a canonical descriptor string. Any failure is an *InvalidDescriptorError.
func Parse(raw string) (Descriptor, error) {
	s := strings.TrimSpace(raw)
	body := s
	if len(body) >= len(unoPrefix) && strings.EqualFold(body[:len(unoPrefix)], unoPrefix) {
		body = body[len(unoPrefix):]
	}

	segments := strings.Split(body, ";")
	if len(segments) != 3 {
		return Descriptor{}, invalid(raw, detail(ErrMissingSegment, "got %d", len(segments)))
	}

	connection, err := parsePart(segments[0])
	if err != nil {
		return Descriptor{}, invalid(raw, err)
	}
	switch connection.name {
	case ConnectionPipe, ConnectionSocket:
	default:
		return Descriptor{}, invalid(raw, detail(ErrUnknownConnectionType, "%q", connection.name))
	}

	protocol, err := parsePart(segments[1])
	if err != nil {
		return Descriptor{}, invalid(raw, err)
	}

	objectID := segments[2]
	if !validName(objectID) {
		return Descriptor{}, invalid(raw, detail(ErrInvalidName, "object id %q", objectID))
	}

	d := Descriptor{
		raw:        s,
		connection: connection,
		protocol:   protocol,
		objectID:   objectID,
	}
	if err := d.validateConnection(); err != nil {
		return Descriptor{}, invalid(raw, err)
	}
	return d, nil
}

func (d *Descriptor) validateConnection() error {
	switch d.connection.name {
	case ConnectionPipe:
		name, ok := d.connection.lookup("name")
		if !ok || name.Value == "" {
			return detail(ErrMissingParameter, "pipe requires name")
		}
	case ConnectionSocket:
		p, ok := d.connection.lookup("port")
		if !ok {
			return detail(ErrMissingParameter, "socket requires port")
		}
		port, err := parsePort(p.Value)
		if err != nil {
			return err
		}
		d.port = port
		if v, ok := d.connection.lookup("tcpNoDelay"); ok {
			if _, err := strconv.ParseBool(v.Value); err != nil {
				return detail(ErrMalformedParameter, "tcpNoDelay=%s", v.Raw)
			}
		}
	}
	return nil
}

func parsePort(s string) (int, error) {
	if s == "" {
		return 0, detail(ErrInvalidPort, "empty")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, detail(ErrInvalidPort, "%q", s)
		}
	}
	port, err := strconv.Atoi(s)
	if err != nil || port > maxPort {
		return 0, detail(ErrInvalidPort, "%q out of range", s)
	}
	return port, nil
}

// ConnectionType is "pipe" or "socket".
func (d Descriptor) ConnectionType() string { return d.connection.name }

// Protocol is the lower-cased protocol name, usually "urp".
func (d Descriptor) Protocol() string { return d.protocol.name }

// ObjectID names the remote object to bind after connecting.
func (d Descriptor) ObjectID() string { return d.objectID }

// ConnectionParameters returns the percent-decoded connection parameters.
func (d Descriptor) ConnectionParameters() map[string]string { return d.connection.decoded() }

// ProtocolParameters returns the percent-decoded protocol parameters.
func (d Descriptor) ProtocolParameters() map[string]string { return d.protocol.decoded() }

// ConnectionParams returns the connection parameters in written order.
func (d Descriptor) ConnectionParams() []Param { return d.connection.copyParams() }

// ProtocolParams returns the protocol parameters in written order.
func (d Descriptor) ProtocolParams() []Param { return d.protocol.copyParams() }

// ConnectionParametersRaw returns the connection parameters exactly as written.
func (d Descriptor) ConnectionParametersRaw() string { return d.connection.rawParams }

// ProtocolParametersRaw returns the protocol parameters exactly as written.
func (d Descriptor) ProtocolParametersRaw() string { return d.protocol.rawParams }

// ConnectionSegmentRaw returns the connection name and parameters as written.
func (d Descriptor) ConnectionSegmentRaw() string { return d.connection.segment }

// ProtocolSegmentRaw returns the protocol name and parameters as written.
func (d Descriptor) ProtocolSegmentRaw() string { return d.protocol.segment }

// ConnectionParameter looks up a decoded connection parameter, ignoring key case.
func (d Descriptor) ConnectionParameter(key string) (string, bool) {
	p, ok := d.connection.lookup(key)
	return p.Value, ok
}

// ProtocolParameter looks up a decoded protocol parameter, ignoring key case.
func (d Descriptor) ProtocolParameter(key string) (string, bool) {
	p, ok := d.protocol.lookup(key)
	return p.Value, ok
}

func (d Descriptor) IsPipe() bool   { return d.connection.name == ConnectionPipe }
func (d Descriptor) IsSocket() bool { return d.connection.name == ConnectionSocket }
func (d Descriptor) IsZero() bool   { return d.raw == "" }

// PipeName returns the decoded pipe name, or "" for sockets.
func (d Descriptor) PipeName() string {
	if !d.IsPipe() {
		return ""
	}
	v, _ := d.ConnectionParameter("name")
	return v
}

// Host returns the socket host, DefaultHost when unset, or "" for pipes.
func (d Descriptor) Host() string {
	if !d.IsSocket() {
		return ""
	}
	if v, ok := d.ConnectionParameter("host"); ok && v != "" {
		return v
	}
	return DefaultHost
}

// Port returns the socket port, or 0 for pipes.
func (d Descriptor) Port() int { return d.port }

// TCPNoDelay reports whether Nagle is disabled. Sockets default to true.
func (d Descriptor) TCPNoDelay() bool {
	if !d.IsSocket() {
		return false
	}
	v, ok := d.ConnectionParameter("tcpNoDelay")
	if !ok {
		return true
	}
	enabled, _ := strconv.ParseBool(v)
	return enabled
}

// Equal reports whether both descriptors have the same canonical string.
func (d Descriptor) Equal(other Descriptor) bool { return d.raw == other.raw }

// String returns the canonical descriptor string.
func (d Descriptor) String() string { return d.raw }

func (d Descriptor) MarshalText() ([]byte, error) {
	return []byte(d.raw), nil
}

// UnmarshalText parses text into d. Empty text leaves the zero descriptor.
func (d *Descriptor) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Descriptor{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
