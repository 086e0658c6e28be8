// Package proxy applies optional outbound proxy settings to the direct-HTTP
// fetch path.
package proxy

import (
	"math/rand"
	"net/http"
	"net/url"

	"github.com/jobkit/jobscraper/internal/config"
)

// Manager picks a proxy for outgoing requests, rotating through the
// configured list when rotation is enabled.
type Manager struct {
	cfg *config.ProxyConfig
}

// NewManager creates a new proxy manager
func NewManager(cfg *config.ProxyConfig) *Manager {
	return &Manager{cfg: cfg}
}

// ProxyURL returns the proxy to use for the next request, or nil when
// proxying is disabled or unconfigured.
func (m *Manager) ProxyURL() (*url.URL, error) {
	if !m.cfg.Enabled || len(m.cfg.List) == 0 {
		return nil, nil
	}

	proxyStr := m.cfg.List[0]
	if m.cfg.Rotate && len(m.cfg.List) > 1 {
		proxyStr = m.cfg.List[rand.Intn(len(m.cfg.List))]
	}

	return url.Parse(proxyStr)
}

// Transport returns an HTTP transport with the proxy applied, falling back
// to a plain transport when no proxy is available.
func (m *Manager) Transport() (*http.Transport, error) {
	transport := &http.Transport{}
	proxyURL, err := m.ProxyURL()
	if err != nil {
		return nil, err
	}
	if proxyURL != nil {
		transport.Proxy = http.ProxyURL(proxyURL)
	}
	return transport, nil
}
