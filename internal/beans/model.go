// Package beans derives JavaBeans accessor classes from state declarations.
// An Extractor validates a ClassModel and reduces it to a Model; an Emitter
// renders a Model as Java source.
package beans

// Property is a field promoted to a bean property.
type Property struct {
	Name string
	Type string
	// ComponentType is set iff Type is an array type.
	ComponentType string
	Readable      bool
	Writable      bool
	// Doc is the field's doc comment, or the property name when it had none.
	Doc string
}

// IsArray reports whether the property is array typed and so gets indexed
// accessors.
func (p *Property) IsArray() bool { return p.ComponentType != "" }

// Properties is an insertion-ordered map of properties keyed by name.
// Emitted method order follows insertion order.
type Properties struct {
	names  []string
	byName map[string]*Property
}

// Add inserts p unless a property with the same name exists. It reports
// whether p was added.
func (ps *Properties) Add(p *Property) bool {
	if ps.byName == nil {
		ps.byName = make(map[string]*Property)
	}
	if _, ok := ps.byName[p.Name]; ok {
		return false
	}
	ps.byName[p.Name] = p
	ps.names = append(ps.names, p.Name)
	return true
}

// Get returns the named property or nil.
func (ps *Properties) Get(name string) *Property {
	if ps.byName == nil {
		return nil
	}
	return ps.byName[name]
}

// Len returns the number of properties.
func (ps *Properties) Len() int { return len(ps.names) }

// Names returns the property names in insertion order.
func (ps *Properties) Names() []string {
	out := make([]string, len(ps.names))
	copy(out, ps.names)
	return out
}

// All returns the properties in insertion order.
func (ps *Properties) All() []*Property {
	out := make([]*Property, 0, len(ps.names))
	for _, n := range ps.names {
		out = append(out, ps.byName[n])
	}
	return out
}

// ConstructorModel is a state-class constructor to re-expose as a
// delegating constructor on the bean class.
type ConstructorModel struct {
	// Visibility is "public", "protected" or "" (package-private).
	Visibility string
	// TypeParams is the declaration text, e.g. "<T extends Number>", or "".
	TypeParams     string
	ParameterTypes []string
	ParameterNames []string
	ThrownTypes    []string
	Doc            string
}

// Model is the normalized, validated view of one state declaration from
// which the bean class is emitted.
type Model struct {
	PackageName   string
	BeanClassName string
	// TypeParams is the bean class's type parameter declaration, e.g.
	// "<T extends java.lang.Number & java.lang.Comparable<T>>", or "".
	TypeParams string
	// StateClassName is the qualified state class reference with type
	// arguments, e.g. "com.example.FooState<T>".
	StateClassName        string
	Doc                   string
	BoundProperties       bool
	ConstrainedProperties bool
	Properties            Properties
	Constructors          []ConstructorModel
}

// QualifiedBeanClassName returns the bean class's fully qualified name.
func (m *Model) QualifiedBeanClassName() string {
	return QualifiedName(m.PackageName, m.BeanClassName)
}
