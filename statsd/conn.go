package statsd

import (
	"net"
)

// Socket is a connectionless datagram socket. *net.UDPConn satisfies it.
type Socket interface {
	WriteTo(b []byte, addr net.Addr) (int, error)
	Close() error
}

// Dialer creates the socket used to send datagrams
type Dialer func() (Socket, error)

// Resolver turns a host:port into a destination address
type Resolver func(network, address string) (*net.UDPAddr, error)

// UDPDialer opens an unbound IPv4 UDP socket
func UDPDialer() (Socket, error) {
	return net.ListenUDP("udp4", nil)
}

// connection is the state of an open client.
// a client without a connection is unopened.
type connection struct {
	sock Socket
	dest *net.UDPAddr
}

func (c *connection) write(buf []byte) error {
	_, err := c.sock.WriteTo(buf, c.dest)
	return err
}
