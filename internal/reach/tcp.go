package reach

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"

	"gomultitool/internal/models"
)

const echoPort = 7

// TCPProber connects to the echo port. Both an accepted and an actively
// refused connection prove the host is up.
type TCPProber struct {
	Port int
}

func NewTCPProber() *TCPProber {
	return &TCPProber{Port: echoPort}
}

func (p *TCPProber) Method() models.ProbeMethod {
	return models.ProbeTCP
}

func (p *TCPProber) Probe(ctx context.Context, ip net.IP) (bool, error) {
	var d net.Dialer

	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(ip.String(), strconv.Itoa(p.Port)))
	if err == nil {
		_ = conn.Close()
		return true, nil
	}

	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return true, nil
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, syscall.EHOSTUNREACH),
		errors.Is(err, syscall.ENETUNREACH):
		return false, nil
	case errors.Is(err, context.Canceled):
		return false, err
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return false, nil
	}

	return false, fmt.Errorf("tcp probe: %w", err)
}
