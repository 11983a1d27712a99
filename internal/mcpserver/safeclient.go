package mcpserver

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// isBlockedIP returns true if the IP is private, loopback, link-local, or unspecified.
func isBlockedIP(ip net.IP) bool {
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}

// resolvePublic resolves host and fails if any address is blocked.
func resolvePublic(ctx context.Context, host string) ([]net.IPAddr, error) {
	ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, err
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("no IP addresses found for host: %s", host)
	}
	for _, ipAddr := range ips {
		if isBlockedIP(ipAddr.IP) {
			return nil, fmt.Errorf("blocked request to private/loopback IP: %s (%s)", host, ipAddr.IP)
		}
	}
	return ips, nil
}

// newSafeHTTPClient creates an HTTP client that refuses to connect to, or be
// redirected to, private/loopback/link-local addresses.
func newSafeHTTPClient() *http.Client {
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				host, port, err := net.SplitHostPort(addr)
				if err != nil {
					return nil, err
				}
				ips, err := resolvePublic(ctx, host)
				if err != nil {
					return nil, err
				}
				// Dial the checked address so a second lookup cannot swap it.
				return dialer.DialContext(ctx, network, net.JoinHostPort(ips[0].IP.String(), port))
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("stopped after 10 redirects")
			}
			_, err := resolvePublic(req.Context(), req.URL.Hostname())
			return err
		},
	}
}

// httpClient returns the client used for url inputs.
func httpClient() *http.Client {
	if cfg.AllowPrivateIPs {
		return &http.Client{Timeout: 30 * time.Second}
	}
	return newSafeHTTPClient()
}

// fetchDocument downloads rawURL, refusing bodies larger than cfg.MaxFetchSize.
func fetchDocument(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme %q; use http or https", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/yaml, application/json, text/plain;q=0.9, */*;q=0.5")

	resp, err := httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", u.Redacted(), resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, cfg.MaxFetchSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > cfg.MaxFetchSize {
		return nil, fmt.Errorf("document at %s exceeds maximum %d bytes; set YAMLBRIDGE_MCP_MAX_FETCH_SIZE to increase", u.Redacted(), cfg.MaxFetchSize)
	}
	return data, nil
}
