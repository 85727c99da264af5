package recommend

// trigger maps a type substring to the controls it implies. Device type
// strings and zone type strings are both tested against the same mechanism;
// the tables differ because a zone named "dmz" says something a device
// named "dmz" never would.
type trigger struct {
	substring string
	controls  []string
	reason    string
}

// deviceTriggers are tested against each device's type string
// (case-insensitive substring match)
var deviceTriggers = []trigger{
	{
		substring: "firewall",
		controls:  []string{"SC-7", "AC-4"},
		reason:    "firewall devices mediate boundary traffic and enforce information flow policy",
	},
	{
		substring: "vpn",
		controls:  []string{"AC-17", "SC-8"},
		reason:    "VPN endpoints terminate remote access sessions and protect transmissions",
	},
	{
		substring: "server",
		controls:  []string{"AC-2", "AU-2"},
		reason:    "servers host accounts and generate security-relevant audit events",
	},
	{
		substring: "database",
		controls:  []string{"SC-28", "CP-9", "AC-3"},
		reason:    "databases hold information at rest requiring protection, backup, and access enforcement",
	},
	{
		substring: "router",
		controls:  []string{"CM-6", "CM-7"},
		reason:    "routing equipment requires hardened configuration and least functionality",
	},
	{
		substring: "switch",
		controls:  []string{"CM-6", "CM-7"},
		reason:    "switching equipment requires hardened configuration and least functionality",
	},
	{
		substring: "ids",
		controls:  []string{"SI-4", "AU-6"},
		reason:    "intrusion detection feeds system monitoring and audit review",
	},
	{
		substring: "ips",
		controls:  []string{"SI-4", "AU-6"},
		reason:    "intrusion prevention feeds system monitoring and audit review",
	},
	{
		substring: "siem",
		controls:  []string{"AU-6", "SI-4"},
		reason:    "SIEM platforms centralize audit review and monitoring",
	},
	{
		substring: "workstation",
		controls:  []string{"SI-3", "SI-2"},
		reason:    "end-user workstations need malicious code protection and flaw remediation",
	},
	{
		substring: "laptop",
		controls:  []string{"SI-3", "SC-28"},
		reason:    "portable endpoints need malware protection and at-rest encryption",
	},
	{
		substring: "backup",
		controls:  []string{"CP-9", "CP-10"},
		reason:    "backup infrastructure underpins system backup and recovery",
	},
	{
		substring: "nas",
		controls:  []string{"CP-9", "MP-7", "SC-28"},
		reason:    "shared storage holds information at rest and backup data",
	},
	{
		substring: "hypervisor",
		controls:  []string{"CM-6", "AC-3"},
		reason:    "hypervisors require hardened configuration and strict access enforcement",
	},
	{
		substring: "printer",
		controls:  []string{"CM-8"},
		reason:    "peripheral devices belong in the tracked component inventory",
	},
}

// zoneTriggers are tested against each boundary's zone type string
var zoneTriggers = []trigger{
	{
		substring: "dmz",
		controls:  []string{"SC-7", "AC-4"},
		reason:    "a DMZ zone implies managed boundary interfaces and controlled information flow",
	},
	{
		substring: "cui",
		controls:  []string{"SC-28", "AC-3", "PE-3"},
		reason:    "zones holding CUI require at-rest protection, access enforcement, and physical control",
	},
	{
		substring: "restricted",
		controls:  []string{"AC-3", "PE-3"},
		reason:    "restricted zones require access enforcement and physical protection",
	},
	{
		substring: "guest",
		controls:  []string{"AC-4", "SC-7"},
		reason:    "guest zones must be segmented from organizational traffic",
	},
	{
		substring: "cloud",
		controls:  []string{"SA-9", "SR-3"},
		reason:    "cloud-hosted zones rely on external service providers and their supply chain",
	},
}
