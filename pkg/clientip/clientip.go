package clientip

import (
	"net"
	"net/http"
	"strings"
)

// headerCandidates are checked in order. The list covers the common CDN and
// reverse-proxy conventions; the first header yielding a valid IP wins.
var headerCandidates = []string{
	"X-Client-IP",
	"X-Forwarded-For",
	"CF-Connecting-IP",
	"Fastly-Client-Ip",
	"True-Client-IP",
	"X-Real-IP",
	"X-Cluster-Client-IP",
	"X-Forwarded",
	"Forwarded-For",
}

// GetIP resolves the client's IP address from proxy headers, falling back to
// the connection's remote address. Every candidate is validated with
// net.ParseIP; spoofed garbage in one header does not stop resolution from
// trying the next. Returns an empty string only when nothing on the request
// parses as an IP.
func GetIP(r *http.Request) string {
	for _, header := range headerCandidates {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}

		// Multi-hop headers hold a comma-separated chain; the left-most
		// entry is the originating client.
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	if value := r.Header.Get("Forwarded"); value != "" {
		if ip := parseForwarded(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port is already a bare IP.
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseForwarded extracts the client IP from an RFC 7239 Forwarded header,
// e.g. `for=192.0.2.60;proto=http;by=203.0.113.43`.
func parseForwarded(value string) string {
	for element := range strings.SplitSeq(value, ",") {
		for pair := range strings.SplitSeq(element, ";") {
			key, val, found := strings.Cut(strings.TrimSpace(pair), "=")
			if !found || !strings.EqualFold(key, "for") {
				continue
			}

			val = strings.Trim(val, `"`)
			// IPv6 node identifiers come bracketed, possibly with a port.
			val = strings.TrimPrefix(val, "[")
			if idx := strings.Index(val, "]"); idx != -1 {
				val = val[:idx]
			}

			if ip := parseIP(val); ip != "" {
				return ip
			}
		}
	}
	return ""
}

// parseIP validates and normalizes a single IP candidate, stripping an
// optional port. Returns an empty string for anything that is not an IP.
func parseIP(candidate string) string {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return ""
	}

	if host, _, err := net.SplitHostPort(candidate); err == nil {
		candidate = host
	}

	ip := net.ParseIP(candidate)
	if ip == nil {
		return ""
	}
	return ip.String()
}
