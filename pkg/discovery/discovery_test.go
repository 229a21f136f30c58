package discovery

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/enbility/zeroconf/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTXTRoundTrip(t *testing.T) {
	in := &Info{Version: "1.0", Entries: 724, Fingerprint: "cafe"}
	strs := TXTRecordsToStrings(EncodeTXT(in))
	assert.Equal(t, []string{"fp=cafe", "n=724", "path=/api/v1", "ver=1.0"}, strs)

	out, err := DecodeTXT(StringsToTXTRecords(strs))
	require.NoError(t, err)
	assert.Equal(t, &Info{Version: "1.0", APIPath: "/api/v1", Entries: 724, Fingerprint: "cafe"}, out)
}

func TestDecodeTXTErrors(t *testing.T) {
	_, err := DecodeTXT(TXTRecordMap{TXTKeyPath: "/", TXTKeyEntries: "1"})
	assert.ErrorIs(t, err, ErrMissingRequired)

	_, err = DecodeTXT(TXTRecordMap{TXTKeyVersion: "1.0", TXTKeyPath: "/", TXTKeyEntries: "many"})
	assert.Error(t, err)
}

func TestStringsToTXTRecordsFlag(t *testing.T) {
	txt := StringsToTXTRecords([]string{"a=b=c", "flag", ""})
	assert.Equal(t, TXTRecordMap{"a": "b=c", "flag": ""}, txt)
}

func TestValidateInstanceName(t *testing.T) {
	assert.NoError(t, ValidateInstanceName("ISOBUS DDI"))
	assert.ErrorIs(t, ValidateInstanceName(""), ErrInvalidInstanceName)
	assert.ErrorIs(t, ValidateInstanceName(strings.Repeat("x", 64)), ErrInvalidInstanceName)
}

type registration struct {
	instance, service, domain string
	port                      int
	text                      []string
}

func TestAdvertise(t *testing.T) {
	var got []registration
	a := NewAdvertiser(Config{})
	a.register = func(instance, service, domain string, port int, text []string, ifaces []net.Interface, opts ...zeroconf.ServerOption) (*zeroconf.Server, error) {
		got = append(got, registration{instance, service, domain, port, text})
		assert.Nil(t, ifaces)
		assert.Len(t, opts, 1)
		return nil, nil
	}

	require.NoError(t, a.Advertise(&Info{Instance: "Field Office", Version: "1.0", Entries: 3}))
	require.NoError(t, a.Advertise(&Info{Instance: "Field Office", Port: 9000, Version: "1.0", Entries: 4}))
	a.Stop()

	require.Len(t, got, 2)
	assert.Equal(t, registration{
		instance: "Field Office",
		service:  "_isobus-ddi._tcp",
		domain:   "local",
		port:     DefaultPort,
		text:     []string{"n=3", "path=/api/v1", "ver=1.0"},
	}, got[0])
	assert.Equal(t, 9000, got[1].port)
}

func TestAdvertiseErrors(t *testing.T) {
	a := NewAdvertiser(Config{TTL: time.Minute})
	a.register = func(string, string, string, int, []string, []net.Interface, ...zeroconf.ServerOption) (*zeroconf.Server, error) {
		return nil, errors.New("no multicast")
	}

	assert.ErrorIs(t, a.Advertise(&Info{}), ErrInvalidInstanceName)
	err := a.Advertise(&Info{Instance: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no multicast")
}

func entry(instance string, port int, ips ...string) *zeroconf.ServiceEntry {
	e := zeroconf.NewServiceEntry(instance, ServiceType, Domain)
	e.HostName = "host.local."
	e.Port = port
	e.Text = []string{"ver=1.0", "path=/api/v1", "n=724"}
	for _, ip := range ips {
		e.AddrIPv4 = append(e.AddrIPv4, net.ParseIP(ip))
	}
	return e
}

func TestBrowseAggregatesByInstance(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	b := NewBrowser(Config{})
	b.browse = func(ctx context.Context, service, domain string, entries, removed chan *zeroconf.ServiceEntry, opts ...zeroconf.ClientOption) error {
		assert.Equal(t, ServiceType, service)
		entries <- entry("office", 8080, "192.168.1.10")
		entries <- entry("office", 8080, "10.0.0.10")
		bad := entry("broken", 8080)
		bad.Text = nil
		entries <- bad
		entries <- entry("barn", 9000, "192.168.1.20")
		<-ctx.Done()
		return nil
	}

	out := b.Browse(ctx)

	first := <-out
	require.NotNil(t, first)
	assert.Equal(t, "office", first.Instance)
	assert.Equal(t, 724, first.Entries)
	assert.Equal(t, "host.local.", first.Host)

	second := <-out
	require.NotNil(t, second)
	assert.Equal(t, "barn", second.Instance)
	assert.Equal(t, 9000, second.Port)

	// The second answer for "office" was merged, not emitted again.
	assert.ElementsMatch(t, []string{"192.168.1.10", "10.0.0.10"}, first.Addresses)

	cancel()
	for range out {
	}
}

func TestFindStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	b := NewBrowser(Config{})
	b.browse = func(ctx context.Context, service, domain string, entries, removed chan *zeroconf.ServiceEntry, opts ...zeroconf.ClientOption) error {
		entries <- entry("office", 8080, "192.168.1.10")
		<-ctx.Done()
		return ctx.Err()
	}

	found := b.Find(ctx)
	require.Len(t, found, 1)
	assert.Equal(t, "office", found[0].Instance)
}

func TestAddressHelpers(t *testing.T) {
	merged := mergeAddresses([]string{"a", "b"}, []string{"b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, merged)

	e := entry("x", 1, "192.168.1.10")
	assert.Equal(t, []string{"10.0.0.1"}, removeAddresses([]string{"192.168.1.10", "10.0.0.1"}, e))
}
