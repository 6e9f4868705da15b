package reach

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"gomultitool/internal/logging"
	"gomultitool/internal/models"
)

// DefaultTimeout bounds every reachability probe.
const DefaultTimeout = 3000 * time.Millisecond

// Resolver turns a host name into network addresses. *net.Resolver
// satisfies it.
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// Prober decides whether a single address answers within ctx's deadline.
type Prober interface {
	Method() models.ProbeMethod
	Probe(ctx context.Context, ip net.IP) (bool, error)
}

// Checker resolves a host and probes it.
type Checker struct {
	resolver Resolver
	probers  []Prober
	timeout  time.Duration
	history  *History
	now      func() time.Time
	logger   zerolog.Logger
}

type Option func(*Checker)

func WithResolver(r Resolver) Option {
	return func(c *Checker) { c.resolver = r }
}

// WithProbers replaces the probe chain. Probers are tried in order until
// one does not report ErrProbeUnavailable.
func WithProbers(p ...Prober) Option {
	return func(c *Checker) { c.probers = p }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.timeout = d }
}

func WithClock(now func() time.Time) Option {
	return func(c *Checker) { c.now = now }
}

// NewChecker returns a checker that uses the system resolver, an ICMP echo
// probe and a TCP echo-port fallback.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		resolver: net.DefaultResolver,
		probers:  []Prober{NewICMPProber(), NewTCPProber()},
		timeout:  DefaultTimeout,
		history:  NewHistory(defaultHistorySize),
		now:      time.Now,
		logger:   logging.WithComponent("reach"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// History returns the log of completed checks.
func (c *Checker) History() *History {
	return c.history
}

// Check resolves host and probes the first address. Only the probe itself is
// timed.
func (c *Checker) Check(ctx context.Context, host string) (models.ProbeResult, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return models.ProbeResult{}, ErrEmptyHost
	}

	result := models.ProbeResult{Host: host}

	ip, err := c.resolve(ctx, host)
	if err != nil {
		c.logger.Warn().Err(err).Str("host", host).Msg("resolution failed")
		return result, err
	}
	result.Address = ip.String()

	probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := c.now()
	reachable, method, err := c.probe(probeCtx, ip)
	elapsed := c.now().Sub(start)

	if err != nil {
		c.logger.Warn().Err(err).Str("host", host).Str("addr", result.Address).Msg("probe failed")
		return result, err
	}

	if elapsed < 0 {
		elapsed = 0
	}

	result.Timestamp = start
	result.Reachable = reachable
	result.Elapsed = elapsed
	result.Method = method

	c.history.Add(result)

	c.logger.Debug().
		Str("host", host).
		Str("addr", result.Address).
		Bool("reachable", reachable).
		Str("method", string(method)).
		Dur("elapsed", elapsed).
		Msg("probe finished")

	return result, nil
}

func (c *Checker) resolve(ctx context.Context, host string) (net.IP, error) {
	if ip := net.ParseIP(host); ip != nil {
		return ip, nil
	}

	addrs, err := c.resolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, err
	}

	if len(addrs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAddress, host)
	}

	// Prefer IPv4, matching what most hosts answer on.
	for _, a := range addrs {
		if a.IP.To4() != nil {
			return a.IP, nil
		}
	}

	return addrs[0].IP, nil
}

func (c *Checker) probe(ctx context.Context, ip net.IP) (bool, models.ProbeMethod, error) {
	var lastErr error

	for _, p := range c.probers {
		ok, err := p.Probe(ctx, ip)
		if errors.Is(err, ErrProbeUnavailable) {
			c.logger.Debug().Err(err).Str("method", string(p.Method())).Msg("prober unavailable, trying next")
			lastErr = err
			continue
		}

		return ok, p.Method(), err
	}

	if lastErr == nil {
		lastErr = ErrProbeUnavailable
	}

	return false, "", lastErr
}

// Report renders a probe result the way the ping panel shows it.
func Report(r models.ProbeResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Pinging %s...\n", r.Host)

	if r.Reachable {
		fmt.Fprintf(&b, "Host is reachable.\nResponse time: %d ms\n", r.ElapsedMillis())
	} else {
		b.WriteString("Host is NOT reachable.\n")
	}

	return b.String()
}

const emptyHostMessage = "Please enter a host name or IP address."

// ErrorReport renders a failed check.
func ErrorReport(err error) string {
	if errors.Is(err, ErrEmptyHost) {
		return emptyHostMessage
	}

	return "Error: " + err.Error()
}
