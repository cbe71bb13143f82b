package gate

import (
	"strings"

	"golang.org/x/time/rate"

	"github.com/shandysiswandi/wsgate/internal/pkg/pkgconfig"
)

// Policy describes which requests may reach the API. Empty lists disable the
// corresponding check.
type Policy struct {
	Environment      string
	Protocols        []string
	AllowedIPs       []string
	TrustedProxies   []string // IPs or CIDRs allowed to set X-Forwarded-For
	Clients          map[string]string   // API key -> client name
	Endpoints        map[string][]string // client name -> allowed route patterns
	DisabledServices []string
	RateLimit        rate.Limit // requests per second per client, <= 0 disables
	RateBurst        int
	RateKeys         int // buckets kept, DefaultRateKeys when <= 0
}

// LoadPolicy reads the gate.* keys from cfg.
func LoadPolicy(cfg pkgconfig.Config) Policy {
	endpoints := make(map[string][]string)
	for client, routes := range cfg.GetMap("gate.endpoints") {
		for _, route := range strings.Split(routes, "|") {
			if route = strings.TrimSpace(route); route != "" {
				endpoints[client] = append(endpoints[client], route)
			}
		}
	}

	return Policy{
		Environment:      cfg.GetString("gate.environment"),
		Protocols:        cfg.GetArray("gate.protocols"),
		AllowedIPs:       cfg.GetArray("gate.allowed_ips"),
		TrustedProxies:   cfg.GetArray("gate.trusted_proxies"),
		Clients:          cfg.GetMap("gate.clients"),
		Endpoints:        endpoints,
		DisabledServices: cfg.GetArray("gate.disabled_services"),
		RateLimit:        rate.Limit(cfg.GetFloat("gate.rate.limit")),
		RateBurst:        int(cfg.GetInt("gate.rate.burst")),
		RateKeys:         int(cfg.GetInt("gate.rate.max_keys")),
	}
}

func toSet(items []string, normalize func(string) string) map[string]struct{} {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[normalize(item)] = struct{}{}
	}
	return set
}
