package api

import (
	"context"
	"time"

	"github.com/open-agriculture/isobus-ddi/pkg/discovery"
)

// Finder collects mDNS services until ctx is done. *discovery.Browser
// satisfies it.
type Finder interface {
	Find(ctx context.Context) []*discovery.Service
}

// DiscoverServers browses for other DDI servers on the local network.
func DiscoverServers(ctx context.Context, finder Finder, timeoutStr string) *ServerListResponse {
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 3 * time.Second
		timeoutStr = timeout.String()
	}

	browseCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	servers := []Server{}
	for _, svc := range finder.Find(browseCtx) {
		servers = append(servers, Server{
			Instance:    svc.Instance,
			Host:        svc.Host,
			Port:        svc.Port,
			Addresses:   svc.Addresses,
			Version:     svc.Version,
			APIPath:     svc.APIPath,
			Entries:     svc.Entries,
			Fingerprint: svc.Fingerprint,
		})
	}

	return &ServerListResponse{
		Servers:      servers,
		DiscoveredAt: time.Now(),
		Timeout:      timeoutStr,
	}
}
