package knit

import (
	"reflect"
	"sort"
	"strings"
	"testing"
)

func decode(t *testing.T, data string) Classes {
	t.Helper()
	classes, err := DecodeClasses([]byte(data))
	if err != nil {
		t.Fatalf("DecodeClasses failed: %v", err)
	}
	return classes
}

const sampleDoc = `{
	"knit/demo/Shell": {
		"parent": ["java.lang.Object"],
		"injections": {
			"run": {"methodId": "knit.demo.Shell.run -> knit.demo.CommandRegistry (GLOBAL)"},
			"log": {"methodId": "knit.demo.Shell.log -> knit.demo.MissingLogger"}
		}
	},
	"knit/demo/CommandRegistry": {
		"parent": ["java.lang.Object"],
		"providers": [
			{"provider": "knit.demo.CommandRegistry.<init> -> knit.demo.CommandRegistry"}
		]
	},
	"knit/demo/App": {
		"composite": {"getStore": "knit.demo.CommandRegistry", "getCache": "knit.demo.NoSuchCache"}
	},
	"knit/demo/Bystander": {
		"parent": ["java.lang.Object"]
	}
}`

func TestBuildGraphOneNodePerClass(t *testing.T) {
	classes := decode(t, sampleDoc)
	nodes := BuildGraph(classes)

	if len(nodes) != len(classes) {
		t.Fatalf("expected %d nodes, got %d", len(classes), len(nodes))
	}
	for name := range classes {
		if _, ok := nodes[name]; !ok {
			t.Errorf("missing node for %s", name)
		}
	}
	// Referenced-only types never become nodes.
	if _, ok := nodes["knit.demo.MissingLogger"]; ok {
		t.Error("referenced-only type must not get a node")
	}
}

func TestNodeRoles(t *testing.T) {
	classes := decode(t, sampleDoc)
	nodes := BuildGraph(classes)

	tests := []struct {
		id   string
		want []string
	}{
		{"knit/demo/Shell", []string{RoleConsumer}},
		{"knit/demo/CommandRegistry", []string{RoleProvider}},
		{"knit/demo/App", []string{RoleComposite}},
		{"knit/demo/Bystander", []string{RoleNeutral}},
	}
	for _, tt := range tests {
		got := nodes[tt.id].Roles()
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s roles = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestNodeRolesRecomputed(t *testing.T) {
	node := &Node{
		ID:         "X",
		Provides:   map[string]struct{}{},
		Consumes:   map[string]struct{}{},
		Parents:    map[string]struct{}{},
		Composites: map[string]string{},
	}
	if got := node.Roles(); !reflect.DeepEqual(got, []string{RoleNeutral}) {
		t.Fatalf("empty node roles = %v", got)
	}

	node.Provides["T"] = struct{}{}
	node.Consumes["U"] = struct{}{}
	if got := node.Roles(); !reflect.DeepEqual(got, []string{RoleConsumer, RoleProvider}) {
		t.Errorf("roles after mutation = %v", got)
	}
	// Neutral is mutually exclusive with the other tags.
	for _, role := range node.Roles() {
		if role == RoleNeutral {
			t.Error("neutral must not appear alongside other roles")
		}
	}
}

func TestBuildEdgesResolution(t *testing.T) {
	classes := decode(t, sampleDoc)
	nodes := BuildGraph(classes)
	index := BuildIndex(nodes)
	edges := BuildEdges(nodes, index)

	find := func(from, label string) *Edge {
		for i := range edges {
			if edges[i].From == from && edges[i].Label == label {
				return &edges[i]
			}
		}
		return nil
	}

	resolved := find("knit/demo/Shell", "knit.demo.CommandRegistry")
	if resolved == nil {
		t.Fatal("missing consumption edge for knit.demo.CommandRegistry")
	}
	if resolved.To != "knit/demo/CommandRegistry" {
		t.Errorf("resolved edge points to %q", resolved.To)
	}

	dangling := find("knit/demo/Shell", "knit.demo.MissingLogger")
	if dangling == nil {
		t.Fatal("dangling edges must be emitted, not dropped")
	}
	if dangling.To != UnknownProvider {
		t.Errorf("dangling edge points to %q, want %q", dangling.To, UnknownProvider)
	}

	composite := find("knit/demo/App", "knit.demo.CommandRegistry"+compositeSuffix)
	if composite == nil {
		t.Fatal("missing composite edge")
	}
	if composite.To != "knit/demo/CommandRegistry" {
		t.Errorf("composite edge points to %q", composite.To)
	}
	if find("knit/demo/App", "knit.demo.NoSuchCache"+compositeSuffix) == nil {
		t.Error("unresolved composite edge must still be emitted")
	}

	// Exactly one edge per consumed/composite type.
	wantEdges := 4
	if len(edges) != wantEdges {
		t.Errorf("expected %d edges, got %d: %v", wantEdges, len(edges), edges)
	}
}

func TestCompositeLabelSuffix(t *testing.T) {
	classes := decode(t, sampleDoc)
	graph := Assemble(classes)

	for _, edge := range graph.Edges {
		isComposite := strings.HasSuffix(edge.Label, " (COMPOSITE)")
		fromApp := edge.From == "knit/demo/App"
		if fromApp && !isComposite {
			t.Errorf("composite wiring lost its label suffix: %+v", edge)
		}
		if !fromApp && isComposite {
			t.Errorf("consumption edge labeled as composite: %+v", edge)
		}
	}
}

// Provider parameter lists describe constructor arguments for the detail
// view only; the graph derives edges exclusively from injections.
func TestProviderParametersProduceNoEdges(t *testing.T) {
	classes := decode(t, `{
		"X": {
			"parent": ["java.lang.Object"],
			"providers": [{"provider": "X.<init> -> X", "parameters": ["Y"]}]
		},
		"Y": {
			"providers": [{"provider": "Y.<init> -> Y"}]
		}
	}`)

	graph := Assemble(classes)
	if len(graph.Edges) != 0 {
		t.Fatalf("expected no edges, got %v", graph.Edges)
	}
	for _, node := range graph.Nodes {
		if !reflect.DeepEqual(node.Role, []string{RoleProvider}) {
			t.Errorf("%s roles = %v, want provider only", node.ID, node.Role)
		}
	}
}

func TestMalformedDeclarationsSkipped(t *testing.T) {
	classes := decode(t, `{
		"A": {
			"providers": [
				{"provider": "garbage with no delimiter"},
				{"provider": "A.<init> -> A"}
			],
			"injections": {
				"bad": {"methodId": "also no delimiter"},
				"good": {"methodId": "A.use -> B"}
			}
		},
		"B": {"providers": [{"provider": "B.<init> -> B"}]}
	}`)

	nodes := BuildGraph(classes)
	a := nodes["A"]
	if len(a.Provides) != 1 {
		t.Errorf("undecodable provider must be skipped: %v", a.Provides)
	}
	if len(a.Consumes) != 1 {
		t.Errorf("undecodable injection must be skipped: %v", a.Consumes)
	}

	edges := BuildEdges(nodes, BuildIndex(nodes))
	if len(edges) != 1 || edges[0].To != "B" {
		t.Errorf("unexpected edges: %v", edges)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	classes := decode(t, sampleDoc)

	first := Assemble(classes)
	second := Assemble(classes)

	if !reflect.DeepEqual(first, second) {
		t.Error("two builds of the same input must be identical")
	}

	labels := func(g Graph) []string {
		out := make([]string, 0, len(g.Edges))
		for _, e := range g.Edges {
			out = append(out, e.Label)
		}
		sort.Strings(out)
		return out
	}
	if !reflect.DeepEqual(labels(first), labels(second)) {
		t.Error("edge label multisets differ between builds")
	}
}

func TestAssembleEmptyInput(t *testing.T) {
	graph := Assemble(Classes{})
	if graph.Nodes == nil || graph.Edges == nil {
		t.Fatal("empty build must serialize as empty lists, not null")
	}
	if len(graph.Nodes) != 0 || len(graph.Edges) != 0 {
		t.Errorf("unexpected content: %+v", graph)
	}
}
