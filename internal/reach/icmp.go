package reach

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync/atomic"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"

	"gomultitool/internal/models"
)

const (
	protocolICMP     = 1
	protocolIPv6ICMP = 58
)

var echoPayload = []byte("gomultitool-reach")

// ICMPProber sends one echo request and waits for the matching reply.
// It tries an unprivileged datagram socket first and a raw socket second.
type ICMPProber struct {
	id  int
	seq atomic.Uint32
}

func NewICMPProber() *ICMPProber {
	return &ICMPProber{id: os.Getpid() & 0xffff}
}

func (p *ICMPProber) Method() models.ProbeMethod {
	return models.ProbeICMP
}

func (p *ICMPProber) Probe(ctx context.Context, ip net.IP) (bool, error) {
	conn, privileged, err := listenICMP(ip)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return false, err
		}
	}

	seq := int(p.seq.Add(1) & 0xffff)

	wb, err := echoRequest(ip, p.id, seq)
	if err != nil {
		return false, err
	}

	var dst net.Addr = &net.UDPAddr{IP: ip}
	if privileged {
		dst = &net.IPAddr{IP: ip}
	}

	if _, err := conn.WriteTo(wb, dst); err != nil {
		return false, fmt.Errorf("send echo request: %w", err)
	}

	buf := make([]byte, 1500)

	for {
		n, peer, err := conn.ReadFrom(buf)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				if errors.Is(ctxErr, context.DeadlineExceeded) {
					return false, nil
				}
				return false, ctxErr
			}

			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				return false, nil
			}

			return false, fmt.Errorf("read echo reply: %w", err)
		}

		// Datagram sockets have their echo ID rewritten by the kernel, which
		// also filters replies per socket, so only raw sockets check it.
		if isEchoReply(buf[:n], ip, peer, p.id, seq, privileged) {
			return true, nil
		}
	}
}

func listenICMP(ip net.IP) (*icmp.PacketConn, bool, error) {
	network, address := "udp4", "0.0.0.0"
	rawNetwork := "ip4:icmp"

	if ip.To4() == nil {
		network, address = "udp6", "::"
		rawNetwork = "ip6:ipv6-icmp"
	}

	conn, err := icmp.ListenPacket(network, address)
	if err == nil {
		return conn, false, nil
	}

	conn, rawErr := icmp.ListenPacket(rawNetwork, address)
	if rawErr == nil {
		return conn, true, nil
	}

	return nil, false, fmt.Errorf("%w: %w", ErrProbeUnavailable, errors.Join(err, rawErr))
}

func echoRequest(ip net.IP, id, seq int) ([]byte, error) {
	var typ icmp.Type = ipv4.ICMPTypeEcho
	if ip.To4() == nil {
		typ = ipv6.ICMPTypeEchoRequest
	}

	msg := icmp.Message{
		Type: typ,
		Code: 0,
		Body: &icmp.Echo{ID: id, Seq: seq, Data: echoPayload},
	}

	return msg.Marshal(nil)
}

func isEchoReply(b []byte, ip net.IP, peer net.Addr, id, seq int, checkID bool) bool {
	proto := protocolICMP
	if ip.To4() == nil {
		proto = protocolIPv6ICMP
	}

	msg, err := icmp.ParseMessage(proto, b)
	if err != nil {
		return false
	}

	if msg.Type != ipv4.ICMPTypeEchoReply && msg.Type != ipv6.ICMPTypeEchoReply {
		return false
	}

	echo, ok := msg.Body.(*icmp.Echo)
	if !ok || echo.Seq != seq {
		return false
	}

	if checkID && echo.ID != id {
		return false
	}

	return peerIP(peer).Equal(ip)
}

func peerIP(addr net.Addr) net.IP {
	switch a := addr.(type) {
	case *net.UDPAddr:
		return a.IP
	case *net.IPAddr:
		return a.IP
	default:
		return nil
	}
}
