package topology

import (
	"strings"
)

// DeviceCategory is the coarse bucket a device type string classifies into
type DeviceCategory string

const (
	CategoryServer   DeviceCategory = "server"
	CategorySecurity DeviceCategory = "security"
	CategoryNetwork  DeviceCategory = "network"
	CategoryEndpoint DeviceCategory = "endpoint"
	CategoryOther    DeviceCategory = "other"
)

// categoryRule maps substring keywords to a category. Rules are tested in
// slice order: security keywords come before generic network keywords so a
// "vpn-gateway" classifies as security, not network.
type categoryRule struct {
	keywords []string
	category DeviceCategory
}

var categoryRules = []categoryRule{
	{[]string{"vpn", "firewall", "ids", "ips", "waf", "proxy", "siem"}, CategorySecurity},
	{[]string{"server", "database", "db", "nas", "san", "storage", "hypervisor"}, CategoryServer},
	{[]string{"router", "switch", "gateway", "access point", "wap", "load balancer", "modem"}, CategoryNetwork},
	{[]string{"workstation", "laptop", "desktop", "phone", "tablet", "printer", "mobile", "pc"}, CategoryEndpoint},
}

// CategorizeDevice classifies a free-form device type string. Matching is
// case-insensitive substring containment, tested in rule order; anything
// that matches no rule is CategoryOther. Deterministic for all inputs.
func CategorizeDevice(deviceType string) DeviceCategory {
	lower := strings.ToLower(deviceType)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}
	return CategoryOther
}
