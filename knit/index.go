package knit

// ProviderIndex maps a provided type name to the identifier of the class
// that provides it.
type ProviderIndex map[string]string

// BuildIndex builds the type-to-provider lookup as a pure pass over a
// completed node set; node construction and index population are never
// interleaved. When several classes declare the same provided type the
// later write wins. Nodes are walked in sorted identifier order, so the
// winner is deterministic even though the source contract leaves the
// choice ambiguous.
func BuildIndex(nodes map[string]*Node) ProviderIndex {
	index := make(ProviderIndex)
	for _, id := range sortedKeys(nodes) {
		for typ := range nodes[id].Provides {
			index[typ] = id
		}
	}
	return index
}

// Resolve returns the class providing typ.
func (ix ProviderIndex) Resolve(typ string) (string, bool) {
	id, ok := ix[typ]
	return id, ok
}

// resolveOrUnknown substitutes the UNKNOWN sentinel for unresolved types.
func (ix ProviderIndex) resolveOrUnknown(typ string) string {
	if id, ok := ix[typ]; ok {
		return id
	}
	return UnknownProvider
}
