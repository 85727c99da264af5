package diagram

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML topology file from disk and returns its node and
// edge arrays in file order
func LoadFile(path string) ([]Node, []Edge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read topology: %w", err)
	}
	var doc struct {
		Nodes []Node `yaml:"nodes"`
		Edges []Edge `yaml:"edges"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse topology: %w", err)
	}
	if len(doc.Nodes) == 0 {
		return nil, nil, fmt.Errorf("topology %s contains no nodes", path)
	}
	return doc.Nodes, doc.Edges, nil
}
