package gate

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"slices"
	"strings"

	"github.com/shandysiswandi/wsgate/internal/pkg/pkgerror"
	"github.com/shandysiswandi/wsgate/internal/pkg/pkgrouter"
)

const (
	HeaderAPIKey         = "X-API-Key"
	HeaderEnvironment    = "X-Environment"
	HeaderForwardedProto = "X-Forwarded-Proto"
	HeaderForwardedFor   = "X-Forwarded-For"
)

type clientContextKey struct{}

// ClientFromContext returns the client name authenticated by the gate, or "".
func ClientFromContext(ctx context.Context) string {
	client, _ := ctx.Value(clientContextKey{}).(string)
	return client
}

// Gate checks requests against a Policy.
type Gate struct {
	environment string
	protocols   map[string]struct{}
	ips         map[string]struct{}
	trusted     []netip.Prefix
	disabled    map[string]struct{}
	clients     map[string]string
	endpoints   map[string][]string
	limiter     *RateLimiter
}

// New builds a Gate from p.
func New(p Policy) *Gate {
	g := &Gate{
		environment: strings.TrimSpace(p.Environment),
		protocols:   toSet(p.Protocols, strings.ToLower),
		ips:         toSet(p.AllowedIPs, strings.TrimSpace),
		trusted:     parsePrefixes(p.TrustedProxies),
		disabled:    toSet(p.DisabledServices, strings.ToLower),
		clients:     p.Clients,
		endpoints:   p.Endpoints,
	}
	if p.RateLimit > 0 {
		g.limiter = NewRateLimiter(p.RateLimit, p.RateBurst, p.RateKeys)
	}
	return g
}

// Check runs every policy check in order and returns the first violation. On
// success it returns r carrying the client name in its context.
//
// When no clients are configured the credential check is skipped and the
// client IP is used as the rate limit key.
func (g *Gate) Check(r *http.Request) (*http.Request, error) {
	if scheme := requestScheme(r); g.protocols != nil {
		if _, ok := g.protocols[scheme]; !ok {
			return r, pkgerror.NewCatalogued(pkgerror.UnauthorizedProtocol, scheme)
		}
	}

	ip := g.clientIP(r)
	if g.ips != nil {
		if _, ok := g.ips[ip]; !ok {
			return r, pkgerror.NewCatalogued(pkgerror.UnauthorizedIP)
		}
	}

	client := ""
	if len(g.clients) > 0 {
		name, ok := g.clients[strings.TrimSpace(r.Header.Get(HeaderAPIKey))]
		if !ok {
			return r, pkgerror.NewCatalogued(pkgerror.InvalidCredentials)
		}
		client = name
	}

	if env := strings.TrimSpace(r.Header.Get(HeaderEnvironment)); env != "" && g.environment != "" {
		if !strings.EqualFold(env, g.environment) {
			return r, pkgerror.NewCatalogued(pkgerror.UnauthorizedEnvironment)
		}
	}

	if service := serviceName(r.URL.Path); g.disabled != nil && service != "" {
		if _, off := g.disabled[strings.ToLower(service)]; off {
			return r, pkgerror.NewCatalogued(pkgerror.ServiceDisabled, service)
		}
	}

	if allowed, ok := g.endpoints[client]; ok && client != "" {
		route := pkgrouter.RouteFromContext(r.Context())
		if route == "" {
			route = r.URL.Path
		}
		if !slices.Contains(allowed, route) {
			return r, pkgerror.NewCatalogued(pkgerror.UnauthorizedEndpoint, route)
		}
	}

	if g.limiter != nil {
		key := client
		if key == "" {
			key = ip
		}
		if !g.limiter.Allow(key) {
			return r, pkgerror.NewCatalogued(pkgerror.RateLimitExceeded)
		}
	}

	if client != "" {
		r = r.WithContext(context.WithValue(r.Context(), clientContextKey{}, client))
	}
	return r, nil
}

// Middleware applies Check to every request and hands violations to onError,
// normally (*pkgrouter.Router).WriteError.
func (g *Gate) Middleware(onError func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			checked, err := g.Check(r)
			if err != nil {
				slog.WarnContext(r.Context(), "request rejected by gate", "path", r.URL.Path, "because", err.Error())
				onError(w, r, err)
				return
			}
			next.ServeHTTP(w, checked)
		})
	}
}

func requestScheme(r *http.Request) string {
	if proto := r.Header.Get(HeaderForwardedProto); proto != "" {
		first, _, _ := strings.Cut(proto, ",")
		return strings.ToLower(strings.TrimSpace(first))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// clientIP returns the address of the caller. X-Forwarded-For is only read
// when the direct peer is a trusted proxy; the entries are then walked from
// the right and the first untrusted one wins.
func (g *Gate) clientIP(r *http.Request) string {
	remote := r.RemoteAddr
	if host, _, err := net.SplitHostPort(remote); err == nil {
		remote = host
	}

	if !g.isTrusted(remote) {
		return remote
	}

	fwd := r.Header.Get(HeaderForwardedFor)
	if fwd == "" {
		return remote
	}

	hops := strings.Split(fwd, ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if _, err := netip.ParseAddr(hop); err != nil {
			return remote
		}
		if !g.isTrusted(hop) || i == 0 {
			return hop
		}
	}
	return remote
}

func (g *Gate) isTrusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range g.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func parsePrefixes(items []string) []netip.Prefix {
	var out []netip.Prefix
	for _, item := range items {
		item = strings.TrimSpace(item)
		if strings.Contains(item, "/") {
			p, err := netip.ParsePrefix(item)
			if err != nil {
				slog.Warn("ignoring invalid trusted proxy", "value", item, "error", err)
				continue
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(item)
		if err != nil {
			slog.Warn("ignoring invalid trusted proxy", "value", item, "error", err)
			continue
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out
}

func serviceName(path string) string {
	first, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	return first
}
