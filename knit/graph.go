package knit

import "sort"

// UnknownProvider is the sentinel edge destination for consumed or
// composite types that no class provides. Dangling references always
// surface as edges to this sentinel; they are never dropped.
const UnknownProvider = "UNKNOWN"

// compositeSuffix marks edges that come from composite accessors rather
// than direct consumption.
const compositeSuffix = " (COMPOSITE)"

// Role tags assigned to graph nodes.
const (
	RoleProvider  = "provider"
	RoleConsumer  = "consumer"
	RoleComposite = "composite"
	RoleNeutral   = "neutral"
)

// Node is the derived view of one class: the types it provides and
// consumes, its composite accessors, and its declared parents. Nodes are
// owned by the builder while a build runs and are read-only afterwards.
type Node struct {
	ID         string
	Provides   map[string]struct{}
	Consumes   map[string]struct{}
	Parents    map[string]struct{}
	Composites map[string]string
}

// Roles derives the node's role tags from its sets. Roles are never
// stored; recomputing keeps them consistent with the sets by construction.
// The result is sorted and non-empty, and "neutral" appears exactly when
// the other three roles are all absent.
func (n *Node) Roles() []string {
	var roles []string
	if len(n.Provides) > 0 {
		roles = append(roles, RoleProvider)
	}
	if len(n.Consumes) > 0 {
		roles = append(roles, RoleConsumer)
	}
	if len(n.Composites) > 0 {
		roles = append(roles, RoleComposite)
	}
	if len(roles) == 0 {
		return []string{RoleNeutral}
	}
	sort.Strings(roles)
	return roles
}

// Edge is one resolved dependency in the output graph.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// GraphNode is the serialized form of a node.
type GraphNode struct {
	ID   string   `json:"id"`
	Role []string `json:"role"`
}

// Graph is the stable output shape of a full build.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []Edge      `json:"edges"`
}

// BuildGraph derives one Node per class in the input mapping. Identifiers
// that only ever appear as referenced types get no node of their own; they
// surface later as edge destinations. Provider and injection signatures
// without a "->" delimiter are skipped; a single bad declaration never
// aborts the build.
func BuildGraph(classes Classes) map[string]*Node {
	nodes := make(map[string]*Node, len(classes))
	for name, record := range classes {
		node := nodes[name]
		if node == nil {
			node = &Node{
				ID:         name,
				Provides:   make(map[string]struct{}),
				Consumes:   make(map[string]struct{}),
				Parents:    make(map[string]struct{}),
				Composites: make(map[string]string),
			}
			nodes[name] = node
		}

		for _, parent := range record.Parents {
			node.Parents[parent] = struct{}{}
		}
		for accessor, typ := range record.Composite {
			node.Composites[accessor] = typ
		}
		for _, decl := range record.Providers {
			if typ, ok := ExtractProvidedType(decl.Provider); ok {
				node.Provides[typ] = struct{}{}
			}
		}
		// Every injection point in the nested tree contributes one consumed
		// type to this node, nested parameters included.
		for _, tree := range record.Injections {
			tree.Walk(func(p *InjectionPoint) {
				if typ, _, ok := ExtractInjectionType(p.MethodID); ok {
					node.Consumes[typ] = struct{}{}
				}
			})
		}
	}
	return nodes
}

// BuildEdges resolves every consumed and composite type through the index
// and emits exactly one edge per reference: consumption edges first,
// grouped by consumer, then composite edges labeled "<type> (COMPOSITE)".
// Unresolved types go to the UNKNOWN sentinel.
//
// Classes and type sets are walked in sorted order so repeated builds of
// the same input produce identical output. The ordering itself is a
// convenience, not a contract.
func BuildEdges(nodes map[string]*Node, index ProviderIndex) []Edge {
	ids := sortedKeys(nodes)
	edges := make([]Edge, 0)
	for _, id := range ids {
		for _, consumed := range sortedKeys(nodes[id].Consumes) {
			edges = append(edges, Edge{
				From:  id,
				To:    index.resolveOrUnknown(consumed),
				Label: consumed,
			})
		}
	}
	for _, id := range ids {
		composites := nodes[id].Composites
		for _, accessor := range sortedKeys(composites) {
			typ := composites[accessor]
			edges = append(edges, Edge{
				From:  id,
				To:    index.resolveOrUnknown(typ),
				Label: typ + compositeSuffix,
			})
		}
	}
	return edges
}

// Assemble runs the full pipeline: build all nodes, then the provider
// index as a separate pass over the completed node set, then the edges.
func Assemble(classes Classes) Graph {
	nodes := BuildGraph(classes)
	index := BuildIndex(nodes)

	graph := Graph{
		Nodes: make([]GraphNode, 0, len(nodes)),
		Edges: BuildEdges(nodes, index),
	}
	for _, id := range sortedKeys(nodes) {
		graph.Nodes = append(graph.Nodes, GraphNode{ID: id, Role: nodes[id].Roles()})
	}
	return graph
}

// sortedKeys returns the map's keys in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
