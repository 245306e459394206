package graph

import (
	"encoding/json"
	"fmt"
)

// Package identity, surfaced in the metadata artifact consumed by the node
// package system.
const (
	PackageName = "algo-audionodes"
	Version     = "0.1.0"
)

// PackageMetadata enumerates the catalog for graph editors: package
// identity plus every node spec.
type PackageMetadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Nodes   []Spec `json:"nodes"`
}

// Metadata builds the package metadata from the current registry.
func Metadata() PackageMetadata {
	return PackageMetadata{
		Name:    PackageName,
		Version: Version,
		Nodes:   Specs(),
	}
}

// MetadataJSON renders the package metadata as indented JSON.
func MetadataJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Metadata(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	return data, nil
}

// ValidateMetadata checks a metadata document for internal consistency:
// the version must match wantVersion, node type names must be unique and
// non-empty, and every node needs a title and at least a defined (possibly
// empty) property list.
func ValidateMetadata(m PackageMetadata, wantVersion string) error {
	if m.Name == "" {
		return fmt.Errorf("metadata: package name is empty")
	}
	if m.Version != wantVersion {
		return fmt.Errorf("metadata: version %q does not match project version %q", m.Version, wantVersion)
	}
	seen := make(map[string]bool, len(m.Nodes))
	for _, n := range m.Nodes {
		if n.Type == "" {
			return fmt.Errorf("metadata: node with empty type name")
		}
		if seen[n.Type] {
			return fmt.Errorf("metadata: duplicate node type %q", n.Type)
		}
		seen[n.Type] = true
		if n.Title == "" {
			return fmt.Errorf("metadata: node %q has no title", n.Type)
		}
		for _, p := range n.Properties {
			if p.Name == "" {
				return fmt.Errorf("metadata: node %q has a property with no name", n.Type)
			}
			if p.Kind == KindEnum && len(p.Values) == 0 {
				return fmt.Errorf("metadata: node %q enum property %q has no values", n.Type, p.Name)
			}
		}
	}
	return nil
}
