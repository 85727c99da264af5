package catalog

// builtinEntries is the seed control catalog: a working subset of NIST SP
// 800-53 rev 5 covering the families the recommendation triggers and the
// narrative generators reference. Site-specific catalogs loaded from YAML
// replace it wholesale.
var builtinEntries = []Entry{
	{
		ID: "AC-2", Title: "Account Management",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization defines, documents, and manages system accounts, including establishment, activation, modification, review, and removal.",
	},
	{
		ID: "AC-3", Title: "Access Enforcement",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The system enforces approved authorizations for logical access to information and system resources in accordance with applicable access control policies.",
	},
	{
		ID: "AC-4", Title: "Information Flow Enforcement",
		Baselines:   []Baseline{BaselineModerate, BaselineHigh},
		DefaultText: "The system enforces approved authorizations for controlling the flow of information within the system and between connected systems.",
	},
	{
		ID: "AC-17", Title: "Remote Access",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization establishes usage restrictions, configuration requirements, and authorization procedures for each type of remote access.",
	},
	{
		ID: "AT-2", Title: "Literacy Training and Awareness",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization provides security and privacy literacy training to system users as part of initial training and at an organization-defined frequency thereafter.",
	},
	{
		ID: "AU-2", Title: "Event Logging",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization identifies the event types the system is capable of logging and coordinates the logging function with other organizational entities.",
	},
	{
		ID: "AU-6", Title: "Audit Record Review, Analysis, and Reporting",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization reviews and analyzes system audit records for indications of inappropriate or unusual activity and reports findings.",
	},
	{
		ID: "CA-7", Title: "Continuous Monitoring",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization develops a continuous monitoring strategy and monitors the security posture of the system on an ongoing basis.",
	},
	{
		ID: "CM-6", Title: "Configuration Settings",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization establishes and documents configuration settings that reflect the most restrictive mode consistent with operational requirements.",
	},
	{
		ID: "CM-7", Title: "Least Functionality",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization configures the system to provide only mission-essential capabilities and restricts the use of prohibited functions, ports, protocols, and services.",
	},
	{
		ID: "CM-8", Title: "System Component Inventory",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization develops and maintains an inventory of system components that accurately reflects the system and is at the level of granularity deemed necessary for tracking and reporting.",
	},
	{
		ID: "CP-9", Title: "System Backup",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization conducts backups of user-level and system-level information and protects the confidentiality, integrity, and availability of backup information.",
	},
	{
		ID: "CP-10", Title: "System Recovery and Reconstitution",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization provides for the recovery and reconstitution of the system to a known state within an organization-defined time period.",
	},
	{
		ID: "IA-2", Title: "Identification and Authentication (Organizational Users)",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The system uniquely identifies and authenticates organizational users and associates that identity with processes acting on their behalf.",
	},
	{
		ID: "IA-5", Title: "Authenticator Management",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization manages system authenticators, including initial distribution, lost or compromised authenticators, and revocation.",
	},
	{
		ID: "IR-4", Title: "Incident Handling",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization implements an incident handling capability that includes preparation, detection and analysis, containment, eradication, and recovery.",
	},
	{
		ID: "MA-4", Title: "Nonlocal Maintenance",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization approves, monitors, and controls nonlocal maintenance and diagnostic activities.",
	},
	{
		ID: "MP-7", Title: "Media Use",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization restricts the use of organization-defined types of system media and prohibits media without an identifiable owner.",
	},
	{
		ID: "PE-3", Title: "Physical Access Control",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization enforces physical access authorizations at entry and exit points to the facility where the system resides.",
	},
	{
		ID: "PL-2", Title: "System Security and Privacy Plans",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization develops security and privacy plans for the system that describe the system boundary, operational context, and implemented controls.",
	},
	{
		ID: "PM-5", Title: "System Inventory",
		Baselines:   []Baseline{BaselineModerate, BaselineHigh},
		DefaultText: "The organization develops and maintains an inventory of organizational systems.",
	},
	{
		ID: "PS-3", Title: "Personnel Screening",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization screens individuals prior to authorizing access to the system and rescreens according to organization-defined conditions.",
	},
	{
		ID: "RA-5", Title: "Vulnerability Monitoring and Scanning",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization monitors and scans for vulnerabilities in the system and hosted applications and remediates legitimate vulnerabilities.",
	},
	{
		ID: "SA-9", Title: "External System Services",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization requires providers of external system services to comply with organizational security and privacy requirements.",
	},
	{
		ID: "SC-7", Title: "Boundary Protection",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The system monitors and controls communications at the external managed interfaces and at key internal managed interfaces within the system.",
	},
	{
		ID: "SC-8", Title: "Transmission Confidentiality and Integrity",
		Baselines:   []Baseline{BaselineModerate, BaselineHigh},
		DefaultText: "The system protects the confidentiality and integrity of transmitted information.",
	},
	{
		ID: "SC-12", Title: "Cryptographic Key Establishment and Management",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization establishes and manages cryptographic keys when cryptography is employed within the system.",
	},
	{
		ID: "SC-13", Title: "Cryptographic Protection",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The system implements organization-defined cryptographic uses and the types of cryptography required for each specified use.",
	},
	{
		ID: "SC-28", Title: "Protection of Information at Rest",
		Baselines:   []Baseline{BaselineModerate, BaselineHigh},
		DefaultText: "The system protects the confidentiality and integrity of organization-defined information at rest.",
	},
	{
		ID: "SI-2", Title: "Flaw Remediation",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization identifies, reports, and corrects system flaws and installs security-relevant software and firmware updates promptly.",
	},
	{
		ID: "SI-3", Title: "Malicious Code Protection",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization implements malicious code protection mechanisms at system entry and exit points to detect and eradicate malicious code.",
	},
	{
		ID: "SI-4", Title: "System Monitoring",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization monitors the system to detect attacks, indicators of potential attacks, and unauthorized connections.",
	},
	{
		ID: "SR-3", Title: "Supply Chain Controls and Processes",
		Baselines:   []Baseline{BaselineLow, BaselineModerate, BaselineHigh},
		DefaultText: "The organization establishes processes to identify and address weaknesses or deficiencies in the supply chain elements of the system.",
	},
}
