package reach

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomultitool/internal/models"
)

type fakeResolver struct {
	addrs []net.IPAddr
	err   error
	calls int
}

func (r *fakeResolver) LookupIPAddr(_ context.Context, _ string) ([]net.IPAddr, error) {
	r.calls++
	return r.addrs, r.err
}

type fakeProber struct {
	method    models.ProbeMethod
	reachable bool
	err       error
	delay     time.Duration
	probed    []net.IP
}

func (p *fakeProber) Method() models.ProbeMethod { return p.method }

func (p *fakeProber) Probe(_ context.Context, ip net.IP) (bool, error) {
	p.probed = append(p.probed, ip)
	time.Sleep(p.delay)
	return p.reachable, p.err
}

func TestCheckEmptyHostSkipsResolution(t *testing.T) {
	resolver := &fakeResolver{}
	prober := &fakeProber{method: models.ProbeICMP, reachable: true}
	c := NewChecker(WithResolver(resolver), WithProbers(prober))

	for _, host := range []string{"", "   ", "\t\n"} {
		_, err := c.Check(context.Background(), host)
		require.ErrorIs(t, err, ErrEmptyHost)
		assert.Equal(t, "Please enter a host name or IP address.", ErrorReport(err))
	}

	assert.Zero(t, resolver.calls)
	assert.Empty(t, prober.probed)
}

func TestCheckReachableHost(t *testing.T) {
	resolver := &fakeResolver{addrs: []net.IPAddr{{IP: net.ParseIP("93.184.216.34")}}}
	prober := &fakeProber{method: models.ProbeICMP, reachable: true, delay: 2 * time.Millisecond}
	c := NewChecker(WithResolver(resolver), WithProbers(prober))

	res, err := c.Check(context.Background(), "  example.com ")
	require.NoError(t, err)

	assert.Equal(t, "example.com", res.Host)
	assert.Equal(t, "93.184.216.34", res.Address)
	assert.True(t, res.Reachable)
	assert.GreaterOrEqual(t, res.ElapsedMillis(), int64(0))
	assert.Equal(t, models.ProbeICMP, res.Method)

	report := Report(res)
	assert.Contains(t, report, "Pinging example.com...")
	assert.Contains(t, report, "Host is reachable.")
	assert.Regexp(t, `Response time: \d+ ms`, report)
}

func TestCheckUnreachableHost(t *testing.T) {
	resolver := &fakeResolver{addrs: []net.IPAddr{{IP: net.ParseIP("10.255.255.1")}}}
	c := NewChecker(WithResolver(resolver), WithProbers(&fakeProber{method: models.ProbeICMP}))

	res, err := c.Check(context.Background(), "blackhole")
	require.NoError(t, err)

	assert.False(t, res.Reachable)
	assert.Contains(t, Report(res), "Host is NOT reachable.")
	assert.NotContains(t, Report(res), "Response time")
}

func TestCheckLiteralAddressSkipsResolver(t *testing.T) {
	resolver := &fakeResolver{}
	prober := &fakeProber{method: models.ProbeICMP, reachable: true}
	c := NewChecker(WithResolver(resolver), WithProbers(prober))

	_, err := c.Check(context.Background(), "127.0.0.1")
	require.NoError(t, err)

	assert.Zero(t, resolver.calls)
	require.Len(t, prober.probed, 1)
	assert.True(t, prober.probed[0].Equal(net.ParseIP("127.0.0.1")))
}

func TestCheckPrefersIPv4(t *testing.T) {
	resolver := &fakeResolver{addrs: []net.IPAddr{
		{IP: net.ParseIP("2001:db8::1")},
		{IP: net.ParseIP("192.0.2.7")},
	}}
	prober := &fakeProber{method: models.ProbeICMP, reachable: true}
	c := NewChecker(WithResolver(resolver), WithProbers(prober))

	res, err := c.Check(context.Background(), "dual.example")
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.7", res.Address)
}

func TestCheckResolutionError(t *testing.T) {
	dnsErr := &net.DNSError{Err: "no such host", Name: "nope.invalid", IsNotFound: true}
	prober := &fakeProber{method: models.ProbeICMP}
	c := NewChecker(WithResolver(&fakeResolver{err: dnsErr}), WithProbers(prober))

	_, err := c.Check(context.Background(), "nope.invalid")
	require.Error(t, err)

	assert.Equal(t, "Error: lookup nope.invalid: no such host", ErrorReport(err))
	assert.Empty(t, prober.probed)
	assert.Zero(t, len(c.History().Recent(-1)))
}

func TestCheckNoAddresses(t *testing.T) {
	c := NewChecker(WithResolver(&fakeResolver{}), WithProbers(&fakeProber{}))

	_, err := c.Check(context.Background(), "empty.example")
	assert.ErrorIs(t, err, ErrNoAddress)
}

func TestCheckFallsBackWhenProberUnavailable(t *testing.T) {
	icmpProber := &fakeProber{method: models.ProbeICMP, err: ErrProbeUnavailable}
	tcpProber := &fakeProber{method: models.ProbeTCP, reachable: true}
	c := NewChecker(
		WithResolver(&fakeResolver{addrs: []net.IPAddr{{IP: net.ParseIP("192.0.2.1")}}}),
		WithProbers(icmpProber, tcpProber),
	)

	res, err := c.Check(context.Background(), "host")
	require.NoError(t, err)

	assert.True(t, res.Reachable)
	assert.Equal(t, models.ProbeTCP, res.Method)
	assert.Len(t, icmpProber.probed, 1)
	assert.Len(t, tcpProber.probed, 1)
}

func TestCheckAllProbersUnavailable(t *testing.T) {
	c := NewChecker(
		WithResolver(&fakeResolver{addrs: []net.IPAddr{{IP: net.ParseIP("192.0.2.1")}}}),
		WithProbers(&fakeProber{method: models.ProbeICMP, err: ErrProbeUnavailable}),
	)

	_, err := c.Check(context.Background(), "host")
	assert.ErrorIs(t, err, ErrProbeUnavailable)
}

func TestCheckProbeError(t *testing.T) {
	boom := errors.New("network is down")
	c := NewChecker(
		WithResolver(&fakeResolver{addrs: []net.IPAddr{{IP: net.ParseIP("192.0.2.1")}}}),
		WithProbers(&fakeProber{method: models.ProbeICMP, err: boom}),
	)

	_, err := c.Check(context.Background(), "host")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "Error: network is down", ErrorReport(err))
}

func TestCheckClampsNegativeElapsed(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := []time.Time{base, base.Add(-5 * time.Millisecond)}
	clock := func() time.Time {
		now := ticks[0]
		ticks = ticks[1:]
		return now
	}

	c := NewChecker(
		WithResolver(&fakeResolver{}),
		WithProbers(&fakeProber{method: models.ProbeICMP, reachable: true}),
		WithClock(clock),
	)

	res, err := c.Check(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), res.Elapsed)
}

func TestCheckRecordsHistory(t *testing.T) {
	c := NewChecker(
		WithResolver(&fakeResolver{}),
		WithProbers(&fakeProber{method: models.ProbeICMP, reachable: true}),
	)

	for i := 0; i < 3; i++ {
		_, err := c.Check(context.Background(), "127.0.0.1")
		require.NoError(t, err)
	}

	total, reachable := c.History().Counts()
	assert.Equal(t, 3, total)
	assert.Equal(t, 3, reachable)
}
