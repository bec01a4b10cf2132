package knit

// ClassDetail is the on-demand view of a single class: its parent, its own
// provider status, the chosen provider's parameters, composite components,
// and first-layer injections.
type ClassDetail struct {
	Name          string          `json:"name"`
	ParentClass   *string         `json:"parent_class"`
	IsProvider    bool            `json:"is_provider"`
	ProviderClass *string         `json:"provider_class"`
	Parameters    []ParameterInfo `json:"parameters"`
	Components    []string        `json:"components"`
	Injections    []InjectionInfo `json:"injections"`
}

// ParameterInfo is one parameter of the class's chosen provider
// declaration, flagged when some class provides the parameter's type.
type ParameterInfo struct {
	Name       string `json:"name"`
	IsProvider bool   `json:"is_provider"`
}

// InjectionInfo is one first-layer injection entry: the consumed type and
// its optional status annotation.
type InjectionInfo struct {
	Name   string  `json:"name"`
	Status *string `json:"status"`
}

// GetClassDetail resolves the detail view for one class identifier. It
// fails with a NotFoundError when the identifier is absent; it never
// returns a partially populated detail.
//
// Unlike the graph builder, the injection listing here covers only the
// first layer of the injection mapping. Nested parameter trees stay out of
// this view.
func GetClassDetail(classes Classes, name string) (*ClassDetail, error) {
	record, ok := classes[name]
	if !ok {
		return nil, &NotFoundError{Class: name}
	}

	detail := &ClassDetail{
		Name:       name,
		Parameters: []ParameterInfo{},
		Components: []string{},
		Injections: []InjectionInfo{},
	}
	if parent, ok := record.Parent(); ok {
		detail.ParentClass = &parent
	}

	if decl, ok := selectProvider(name, record.Providers); ok {
		detail.IsProvider = true
		if typ, ok := ExtractProvidedType(decl.Provider); ok {
			detail.ProviderClass = &typ
		}
		for _, param := range decl.Parameters {
			detail.Parameters = append(detail.Parameters, ParameterInfo{
				Name:       param,
				IsProvider: IsParameterProvided(classes, param),
			})
		}
	}

	for _, accessor := range sortedKeys(record.Composite) {
		detail.Components = append(detail.Components, record.Composite[accessor])
	}

	for _, key := range sortedKeys(record.Injections) {
		point := record.Injections[key].Point
		if point == nil || point.MethodID == "" {
			continue
		}
		typ, status, ok := ExtractInjectionType(point.MethodID)
		if !ok {
			continue
		}
		info := InjectionInfo{Name: typ}
		if status != "" {
			info.Status = &status
		}
		detail.Injections = append(detail.Injections, info)
	}

	return detail, nil
}

// selectProvider picks the declaration that determines a class's provider
// view. The strict pass takes the first declaration whose signature names
// the class's own initializer producing itself; when none qualifies but
// declarations exist, the first declared provider is authoritative
// instead. The source metadata is ambiguous about which of the two rules
// is intended, so both tiers are kept exactly as observed.
func selectProvider(classID string, decls []ProviderDecl) (ProviderDecl, bool) {
	for _, decl := range decls {
		if IsSelfProvider(classID, decl.Provider) {
			return decl, true
		}
	}
	if len(decls) > 0 {
		return decls[0], true
	}
	return ProviderDecl{}, false
}

// IsParameterProvided reports whether some class provides the given type:
// either a provider declaration's right-hand side names it, or a class
// literally identified by the type name declares at least one provider.
//
// This is a full scan over every class's every provider declaration. At
// the expected input sizes (hundreds of classes) a scan per parameter
// costs little; callers resolving many parameters across many requests
// should memoize.
func IsParameterProvided(classes Classes, typeName string) bool {
	for name, record := range classes {
		if len(record.Providers) == 0 {
			continue
		}
		if name == typeName {
			return true
		}
		for _, decl := range record.Providers {
			if typ, ok := ExtractProvidedType(decl.Provider); ok && typ == typeName {
				return true
			}
		}
	}
	return false
}
