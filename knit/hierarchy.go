package knit

// ObjectRoot is the universal root type. Classes whose only declared
// parent is this, or that declare no parent at all, sit at the top of the
// class hierarchy.
const ObjectRoot = "java.lang.Object"

// ClassSummary names a class and whether it declares any provider.
type ClassSummary struct {
	Name       string `json:"name"`
	IsProvider bool   `json:"is_provider"`
}

// SubClasses lists the classes whose effective parent is a given
// identifier.
type SubClasses struct {
	ParentClass  string         `json:"parent_class"`
	ChildClasses []ClassSummary `json:"child_classes"`
	Count        int            `json:"count"`
}

// ChildClasses returns the classes whose first declared parent equals the
// given identifier. Only the effective single parent counts; later entries
// in a parent list do not make a class a child.
func ChildClasses(classes Classes, parent string) SubClasses {
	result := SubClasses{ParentClass: parent, ChildClasses: []ClassSummary{}}
	for _, name := range sortedKeys(classes) {
		record := classes[name]
		if p, ok := record.Parent(); ok && p == parent {
			result.ChildClasses = append(result.ChildClasses, summarize(name, record))
		}
	}
	result.Count = len(result.ChildClasses)
	return result
}

// RootClasses lists the classes sitting directly under the universal root.
type RootClasses struct {
	ParentClass string         `json:"parent_class"`
	BaseClasses []ClassSummary `json:"base_classes"`
	Count       int            `json:"count"`
}

// BaseClasses returns the classes with no declared parent other than the
// universal root type, including classes that declare no parent at all.
func BaseClasses(classes Classes) RootClasses {
	result := RootClasses{ParentClass: ObjectRoot, BaseClasses: []ClassSummary{}}
	for _, name := range sortedKeys(classes) {
		record := classes[name]
		if parent, ok := record.Parent(); !ok || parent == ObjectRoot {
			result.BaseClasses = append(result.BaseClasses, summarize(name, record))
		}
	}
	result.Count = len(result.BaseClasses)
	return result
}

// ParentGroups is the full hierarchy listing: every class that declares a
// parent, grouped under that parent with its complete record retained.
type ParentGroups struct {
	Groups     []ParentGroup `json:"groups"`
	GroupCount int           `json:"group_count"`
}

// ParentGroup is one parent class and the classes declaring it first.
type ParentGroup struct {
	ParentClass string        `json:"parent_class"`
	Classes     []GroupMember `json:"classes"`
	Count       int           `json:"count"`
}

// GroupMember is a grouped class with its source record inlined.
type GroupMember struct {
	ClassName string `json:"class_name"`
	*ClassRecord
}

// GroupByParent groups all classes by their effective parent. Classes with
// no declared parent are absent from every group.
func GroupByParent(classes Classes) ParentGroups {
	grouped := make(map[string][]GroupMember)
	for _, name := range sortedKeys(classes) {
		record := classes[name]
		parent, ok := record.Parent()
		if !ok {
			continue
		}
		grouped[parent] = append(grouped[parent], GroupMember{
			ClassName:   name,
			ClassRecord: record,
		})
	}

	result := ParentGroups{Groups: make([]ParentGroup, 0, len(grouped))}
	for _, parent := range sortedKeys(grouped) {
		members := grouped[parent]
		result.Groups = append(result.Groups, ParentGroup{
			ParentClass: parent,
			Classes:     members,
			Count:       len(members),
		})
	}
	result.GroupCount = len(result.Groups)
	return result
}

func summarize(name string, record *ClassRecord) ClassSummary {
	return ClassSummary{Name: name, IsProvider: len(record.Providers) > 0}
}
