package discovery

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/enbility/zeroconf/v3"
)

type registerFunc func(instance, service, domain string, port int, text []string, ifaces []net.Interface, opts ...zeroconf.ServerOption) (*zeroconf.Server, error)

type browseFunc func(ctx context.Context, service, domain string, entries, removed chan *zeroconf.ServiceEntry, opts ...zeroconf.ClientOption) error

func register(instance, service, domain string, port int, text []string, ifaces []net.Interface, opts ...zeroconf.ServerOption) (*zeroconf.Server, error) {
	return zeroconf.Register(instance, service, domain, port, text, ifaces, opts...)
}

func browse(ctx context.Context, service, domain string, entries, removed chan *zeroconf.ServiceEntry, opts ...zeroconf.ClientOption) error {
	return zeroconf.Browse(ctx, service, domain, entries, removed, opts...)
}

// Config selects the network interface and record TTL.
type Config struct {
	// Interface restricts mDNS to one interface. Empty means all.
	Interface string

	// TTL of advertised records. Zero uses DefaultTTL.
	TTL time.Duration
}

func (c Config) interfaces() []net.Interface {
	if c.Interface == "" {
		return nil
	}
	iface, err := net.InterfaceByName(c.Interface)
	if err != nil {
		return nil
	}
	return []net.Interface{*iface}
}

// Advertiser publishes one server instance.
type Advertiser struct {
	config   Config
	register registerFunc

	mu     sync.Mutex
	server *zeroconf.Server
}

// NewAdvertiser creates an advertiser.
func NewAdvertiser(config Config) *Advertiser {
	if config.TTL == 0 {
		config.TTL = DefaultTTL
	}
	return &Advertiser{config: config, register: register}
}

// Advertise starts advertising info, replacing a previous advertisement.
func (a *Advertiser) Advertise(info *Info) error {
	if err := ValidateInstanceName(info.Instance); err != nil {
		return err
	}
	port := info.Port
	if port == 0 {
		port = DefaultPort
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
	}

	server, err := a.register(
		info.Instance,
		ServiceType,
		Domain,
		port,
		TXTRecordsToStrings(EncodeTXT(info)),
		a.config.interfaces(),
		zeroconf.TTL(uint32(a.config.TTL.Seconds())),
	)
	if err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceType, err)
	}
	a.server = server
	return nil
}

// Stop withdraws the advertisement.
func (a *Advertiser) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
	}
}

// Browser finds servers on the local network.
type Browser struct {
	config Config
	browse browseFunc
}

// NewBrowser creates a browser.
func NewBrowser(config Config) *Browser {
	return &Browser{config: config, browse: browse}
}

func (b *Browser) options() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption
	if ifaces := b.config.interfaces(); ifaces != nil {
		opts = append(opts, zeroconf.SelectIfaces(ifaces))
	}
	return opts
}

// Browse emits each newly found server once. Answers from further
// interfaces add to the addresses of the server already emitted. The
// channel is closed when ctx is done.
func (b *Browser) Browse(ctx context.Context) <-chan *Service {
	out := make(chan *Service)
	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	go func() {
		defer close(out)

		services := make(map[string]*Service)
		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				svc := entryToService(entry)
				if svc == nil {
					continue
				}
				if existing, found := services[svc.Instance]; found {
					existing.Addresses = mergeAddresses(existing.Addresses, svc.Addresses)
					continue
				}
				services[svc.Instance] = svc
				select {
				case out <- svc:
				case <-ctx.Done():
					return
				}

			case entry, ok := <-removed:
				if !ok {
					continue
				}
				if existing, found := services[entry.Instance]; found {
					existing.Addresses = removeAddresses(existing.Addresses, entry)
					if len(existing.Addresses) == 0 {
						delete(services, entry.Instance)
					}
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		_ = b.browse(ctx, ServiceType, Domain, entries, removed, b.options()...)
	}()

	return out
}

// Find collects servers until ctx is done.
func (b *Browser) Find(ctx context.Context) []*Service {
	var found []*Service
	for svc := range b.Browse(ctx) {
		found = append(found, svc)
	}
	return found
}

func entryToService(entry *zeroconf.ServiceEntry) *Service {
	info, err := DecodeTXT(StringsToTXTRecords(entry.Text))
	if err != nil {
		return nil
	}
	info.Instance = entry.Instance
	info.Port = entry.Port

	return &Service{
		Info:      *info,
		Host:      entry.HostName,
		Addresses: addressesOf(entry),
	}
}

func addressesOf(entry *zeroconf.ServiceEntry) []string {
	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}
	return addrs
}

// mergeAddresses adds new addresses to existing, avoiding duplicates.
func mergeAddresses(existing, add []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}
	for _, addr := range add {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}

// removeAddresses drops the addresses of entry from addresses.
func removeAddresses(addresses []string, entry *zeroconf.ServiceEntry) []string {
	toRemove := make(map[string]bool)
	for _, a := range addressesOf(entry) {
		toRemove[a] = true
	}
	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !toRemove[addr] {
			result = append(result, addr)
		}
	}
	return result
}
