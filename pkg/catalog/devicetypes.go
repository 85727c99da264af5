package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-compliance/pkg/devicematch"
)

// DeviceTypeProvider returns the device-type records the matcher scores
// against. Read-only to the pipeline.
type DeviceTypeProvider interface {
	DeviceTypes() []devicematch.Record
}

// DeviceTypeCatalog is an in-memory device-type catalog in load order
type DeviceTypeCatalog struct {
	records []devicematch.Record
}

// NewDeviceTypeCatalog wraps a record list without copying semantics
// callers need to worry about: the slice is cloned.
func NewDeviceTypeCatalog(records []devicematch.Record) *DeviceTypeCatalog {
	out := make([]devicematch.Record, len(records))
	copy(out, records)
	return &DeviceTypeCatalog{records: out}
}

// BuiltinDeviceTypes returns the seed device-type catalog
func BuiltinDeviceTypes() *DeviceTypeCatalog {
	return NewDeviceTypeCatalog(builtinDeviceTypes)
}

// LoadDeviceTypeFile reads a YAML device-type catalog from disk
func LoadDeviceTypeFile(path string) (*DeviceTypeCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read device-type catalog: %w", err)
	}
	var doc struct {
		DeviceTypes []devicematch.Record `yaml:"deviceTypes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse device-type catalog: %w", err)
	}
	return NewDeviceTypeCatalog(doc.DeviceTypes), nil
}

// DeviceTypes returns the catalog records in load order
func (c *DeviceTypeCatalog) DeviceTypes() []devicematch.Record {
	out := make([]devicematch.Record, len(c.records))
	copy(out, c.records)
	return out
}

var builtinDeviceTypes = []devicematch.Record{
	{IconKey: "generic/compute/server", Type: "server", Category: "compute", DisplayName: "Server"},
	{IconKey: "generic/compute/web-server", Type: "server", Subtype: "web", Category: "compute", DisplayName: "Web Server"},
	{IconKey: "generic/compute/hypervisor", Type: "server", Subtype: "hypervisor", Category: "compute", DisplayName: "Hypervisor Host"},
	{IconKey: "generic/database/sql-server", Type: "database", Subtype: "sql", Category: "databases", DisplayName: "SQL Database Server"},
	{IconKey: "generic/database/nosql", Type: "database", Subtype: "nosql", Category: "databases", DisplayName: "NoSQL Database"},
	{IconKey: "generic/network/router", Type: "router", Category: "networking", DisplayName: "Router"},
	{IconKey: "generic/network/switch", Type: "switch", Category: "networking", DisplayName: "Network Switch"},
	{IconKey: "generic/network/access-point", Type: "access point", Category: "networking", DisplayName: "Wireless Access Point"},
	{IconKey: "generic/network/load-balancer", Type: "load balancer", Category: "networking", DisplayName: "Load Balancer"},
	{IconKey: "generic/security/firewall", Type: "firewall", Category: "security", DisplayName: "Firewall"},
	{IconKey: "generic/security/vpn-gateway", Type: "vpn", Subtype: "gateway", Category: "security", DisplayName: "VPN Gateway"},
	{IconKey: "generic/security/ids", Type: "ids", Category: "security", DisplayName: "Intrusion Detection System"},
	{IconKey: "generic/security/siem", Type: "siem", Category: "security", DisplayName: "SIEM Platform"},
	{IconKey: "generic/storage/nas", Type: "nas", Category: "storage", DisplayName: "Network Attached Storage"},
	{IconKey: "generic/storage/backup", Type: "backup appliance", Category: "storage", DisplayName: "Backup Appliance"},
	{IconKey: "generic/endpoint/workstation", Type: "workstation", Category: "compute", DisplayName: "Workstation"},
	{IconKey: "generic/endpoint/laptop", Type: "laptop", Category: "compute", DisplayName: "Laptop"},
	{IconKey: "generic/endpoint/printer", Type: "printer", Category: "compute", DisplayName: "Printer"},
	{IconKey: "aws/compute/ec2-instance", Type: "server", Subtype: "virtual machine", Category: "compute", DisplayName: "EC2 Instance"},
	{IconKey: "aws/database/rds", Type: "database", Subtype: "managed sql", Category: "databases", DisplayName: "RDS Database"},
	{IconKey: "aws/storage/s3-bucket", Type: "bucket", Subtype: "object storage", Category: "storage", DisplayName: "S3 Bucket"},
	{IconKey: "azure/compute/virtual-machine", Type: "server", Subtype: "virtual machine", Category: "compute", DisplayName: "Azure Virtual Machine"},
	{IconKey: "azure/database/sql-database", Type: "database", Subtype: "managed sql", Category: "databases", DisplayName: "Azure SQL Database"},
}
