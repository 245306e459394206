package graph

import (
	"fmt"
	"sort"
	"sync"
)

// Kind enumerates property value types understood by the graph editor.
type Kind string

const (
	KindAudio  Kind = "audio"
	KindImage  Kind = "image"
	KindFolder Kind = "folder"
	KindArray  Kind = "np_array"
	KindList   Kind = "list"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	KindString Kind = "string"
	KindEnum   Kind = "enum"
)

// Property describes one typed node parameter for the graph editor and the
// DSL mirror layer.
type Property struct {
	Name        string   `json:"name"`
	Kind        Kind     `json:"kind"`
	Description string   `json:"description,omitempty"`
	Default     any      `json:"default,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Values      []string `json:"values,omitempty"`
}

// Spec declares a node type: its stable type name, editor title, and
// property schema.
type Spec struct {
	Type       string     `json:"type"`
	Title      string     `json:"title"`
	Doc        string     `json:"description,omitempty"`
	Properties []Property `json:"properties"`
	OutputKind Kind       `json:"output_kind"`
}

// Bound returns a pointer suitable for Property.Min/Max literals.
func Bound(v float64) *float64 { return &v }

var (
	registryMu sync.Mutex
	registry   = map[string]Spec{}
)

// Register adds a node spec to the catalog. It panics on duplicate type
// names; registration happens in package init functions where a duplicate
// is a programming error.
func Register(s Spec) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if s.Type == "" {
		panic("graph: spec with empty type name")
	}
	if _, dup := registry[s.Type]; dup {
		panic(fmt.Sprintf("graph: duplicate node spec %q", s.Type))
	}
	registry[s.Type] = s
}

// Specs returns all registered node specs sorted by type name.
func Specs() []Spec {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]Spec, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Lookup returns the spec registered under the given type name.
func Lookup(typeName string) (Spec, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	s, ok := registry[typeName]
	return s, ok
}
