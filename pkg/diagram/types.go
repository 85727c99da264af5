package diagram

// NodeKind distinguishes the two kinds of diagram nodes
type NodeKind string

const (
	// KindDevice is a concrete piece of equipment (server, firewall, workstation, ...)
	KindDevice NodeKind = "device"
	// KindBoundary is a grouping node whose immediate children share a security context
	KindBoundary NodeKind = "boundary"
)

// Point is a 2D offset in diagram coordinates
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns the component-wise sum of two points
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// NetworkInfo holds network-facing metadata for a device
type NetworkInfo struct {
	IPAddress  string `json:"ipAddress,omitempty" yaml:"ipAddress,omitempty"`
	MACAddress string `json:"macAddress,omitempty" yaml:"macAddress,omitempty"`
	Hostname   string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	VLAN       string `json:"vlan,omitempty" yaml:"vlan,omitempty"`
	Subnet     string `json:"subnet,omitempty" yaml:"subnet,omitempty"`
}

// HardwareInfo describes the physical or virtual hardware behind a device
type HardwareInfo struct {
	Manufacturer    string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Model           string `json:"model,omitempty" yaml:"model,omitempty"`
	SerialNumber    string `json:"serialNumber,omitempty" yaml:"serialNumber,omitempty"`
	OperatingSystem string `json:"operatingSystem,omitempty" yaml:"operatingSystem,omitempty"`
	OSVersion       string `json:"osVersion,omitempty" yaml:"osVersion,omitempty"`
	Virtual         bool   `json:"virtual,omitempty" yaml:"virtual,omitempty"`
}

// SecurityPosture captures the boolean security facts the analyzer tallies
type SecurityPosture struct {
	MFAEnabled          bool `json:"mfaEnabled,omitempty" yaml:"mfaEnabled,omitempty"`
	EncryptionAtRest    bool `json:"encryptionAtRest,omitempty" yaml:"encryptionAtRest,omitempty"`
	EncryptionInTransit bool `json:"encryptionInTransit,omitempty" yaml:"encryptionInTransit,omitempty"`
	BackupsEnabled      bool `json:"backupsEnabled,omitempty" yaml:"backupsEnabled,omitempty"`
	Monitored           bool `json:"monitored,omitempty" yaml:"monitored,omitempty"`
	AntivirusInstalled  bool `json:"antivirusInstalled,omitempty" yaml:"antivirusInstalled,omitempty"`
}

// ComplianceInfo records which controls a device claims to implement and
// any per-control implementation notes written by the user
type ComplianceInfo struct {
	AssignedControls []string          `json:"assignedControls,omitempty" yaml:"assignedControls,omitempty"`
	ControlNotes     map[string]string `json:"controlNotes,omitempty" yaml:"controlNotes,omitempty"`
}

// OwnershipInfo identifies who is responsible for a device
type OwnershipInfo struct {
	Owner      string `json:"owner,omitempty" yaml:"owner,omitempty"`
	Department string `json:"department,omitempty" yaml:"department,omitempty"`
	Location   string `json:"location,omitempty" yaml:"location,omitempty"`
}

// Node is a single element of the diagram: a device or a security boundary.
//
// ParentID is an id reference, not a pointer: it is resolved by lookup and a
// dangling value is legal (the resolver treats it as "no parent"). Metadata
// is split into closed category groups rather than a free-form property bag
// so malformed imports fail validation instead of flowing downstream.
type Node struct {
	ID       string   `json:"id" yaml:"id"`
	Kind     NodeKind `json:"kind" yaml:"kind"`
	Name     string   `json:"name" yaml:"name"`
	Type     string   `json:"type,omitempty" yaml:"type,omitempty"`
	ParentID string   `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Position Point    `json:"position" yaml:"position"`

	// ZoneType is only meaningful for boundary nodes (e.g. "dmz", "internal", "cui")
	ZoneType string `json:"zoneType,omitempty" yaml:"zoneType,omitempty"`

	Network    NetworkInfo     `json:"network,omitempty" yaml:"network,omitempty"`
	Hardware   HardwareInfo    `json:"hardware,omitempty" yaml:"hardware,omitempty"`
	Security   SecurityPosture `json:"security,omitempty" yaml:"security,omitempty"`
	Compliance ComplianceInfo  `json:"compliance,omitempty" yaml:"compliance,omitempty"`
	Ownership  OwnershipInfo   `json:"ownership,omitempty" yaml:"ownership,omitempty"`
}

// IsDevice reports whether the node is a device node
func (n *Node) IsDevice() bool {
	return n.Kind == KindDevice
}

// IsBoundary reports whether the node is a boundary (zone) node
func (n *Node) IsBoundary() bool {
	return n.Kind == KindBoundary
}

// Edge is a connection between two nodes, with link metadata used by the
// analyzer's encrypted / cross-zone classification
type Edge struct {
	ID           string `json:"id,omitempty" yaml:"id,omitempty"`
	SourceID     string `json:"sourceId" yaml:"sourceId"`
	TargetID     string `json:"targetId" yaml:"targetId"`
	Protocol     string `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	Port         string `json:"port,omitempty" yaml:"port,omitempty"`
	LinkType     string `json:"linkType,omitempty" yaml:"linkType,omitempty"`
	Direction    string `json:"direction,omitempty" yaml:"direction,omitempty"`
	AuthRequired bool   `json:"authRequired,omitempty" yaml:"authRequired,omitempty"`
	Firewalled   bool   `json:"firewalled,omitempty" yaml:"firewalled,omitempty"`
}
