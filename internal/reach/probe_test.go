package reach

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

func listenerPort(t *testing.T, ln net.Listener) int {
	t.Helper()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestTCPProberAcceptedConnection(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	p := &TCPProber{Port: listenerPort(t, ln)}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	ok, err := p.Probe(ctx, net.ParseIP("127.0.0.1"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTCPProberRefusedCountsAsReachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listenerPort(t, ln)
	require.NoError(t, ln.Close())

	p := &TCPProber{Port: port}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	ok, err := p.Probe(ctx, net.ParseIP("127.0.0.1"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTCPProberExpiredDeadline(t *testing.T) {
	p := NewTCPProber()

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	ok, err := p.Probe(ctx, net.ParseIP("192.0.2.1"))
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestEchoReplyMatching(t *testing.T) {
	ip := net.ParseIP("192.0.2.10")

	reply := icmp.Message{
		Type: ipv4.ICMPTypeEchoReply,
		Body: &icmp.Echo{ID: 42, Seq: 7, Data: echoPayload},
	}
	b, err := reply.Marshal(nil)
	require.NoError(t, err)

	peer := &net.IPAddr{IP: ip}

	assert.True(t, isEchoReply(b, ip, peer, 42, 7, true))
	assert.False(t, isEchoReply(b, ip, peer, 42, 8, true), "wrong sequence")
	assert.False(t, isEchoReply(b, ip, peer, 43, 7, true), "wrong id on raw socket")
	assert.True(t, isEchoReply(b, ip, &net.UDPAddr{IP: ip}, 43, 7, false), "id ignored on datagram socket")
	assert.False(t, isEchoReply(b, ip, &net.IPAddr{IP: net.ParseIP("192.0.2.11")}, 42, 7, true), "wrong peer")
}

func TestEchoRequestIsNotAReply(t *testing.T) {
	ip := net.ParseIP("192.0.2.10")

	b, err := echoRequest(ip, 1, 1)
	require.NoError(t, err)

	assert.False(t, isEchoReply(b, ip, &net.IPAddr{IP: ip}, 1, 1, true))
}
