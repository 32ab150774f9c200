// Package discovery advertises and finds paint servers on the local network
// with multicast DNS.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

// ServiceType is the DNS-SD service type of a paint server.
const ServiceType = "_paint._tcp"

// ErrInvalidPort is returned when advertising a port outside 1-65535.
var ErrInvalidPort = errors.New("discovery: invalid port")

// Advertiser answers mDNS queries for one paint server until Shutdown.
type Advertiser struct {
	server *mdns.Server
}

// Advertise announces a paint server listening on port. An empty instance
// name uses the host name. info becomes the TXT record.
func Advertise(instance string, port int, info ...string) (*Advertiser, error) {
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}
	if instance == "" {
		host, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("discovery: hostname: %w", err)
		}
		instance = host
	}
	if len(info) == 0 {
		info = []string{"paint"}
	}

	service, err := mdns.NewMDNSService(instance, ServiceType, "", "", port, nil, info)
	if err != nil {
		return nil, fmt.Errorf("discovery: create service: %w", err)
	}
	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("discovery: start server: %w", err)
	}
	return &Advertiser{server: server}, nil
}

// Shutdown stops answering queries.
func (a *Advertiser) Shutdown() error {
	return a.server.Shutdown()
}

// Browse queries the network for paint servers for up to timeout and calls
// found with the "ip:port" address of each answer.
func Browse(timeout time.Duration, found func(addr string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if addr, ok := entryAddr(e); ok {
				found(addr)
			}
		}
	}()

	params := mdns.DefaultParams(ServiceType)
	params.Entries = entries
	params.Timeout = timeout
	err := mdns.Query(params)
	close(entries)
	<-done
	if err != nil {
		return fmt.Errorf("discovery: query: %w", err)
	}
	return nil
}

// entryAddr returns the IPv4 address of an answer, if it has one.
func entryAddr(e *mdns.ServiceEntry) (string, bool) {
	if e == nil || e.AddrV4 == nil || e.Port == 0 {
		return "", false
	}
	return fmt.Sprintf("%s:%d", e.AddrV4, e.Port), true
}
