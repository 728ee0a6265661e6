package beans

import (
	"fmt"
	"strings"

	"github.com/Alia5/beangen/internal/diag"
)

// Modifiers is a set of Java declaration modifiers.
type Modifiers uint16

const (
	Public Modifiers = 1 << iota
	Protected
	Private
	Static
	Final
	Abstract
	Transient
	Volatile
	Synchronized
	Native
	Strictfp
	Default
)

var modifierNames = []struct {
	m    Modifiers
	name string
}{
	{Public, "public"},
	{Protected, "protected"},
	{Private, "private"},
	{Abstract, "abstract"},
	{Static, "static"},
	{Final, "final"},
	{Transient, "transient"},
	{Volatile, "volatile"},
	{Synchronized, "synchronized"},
	{Native, "native"},
	{Strictfp, "strictfp"},
	{Default, "default"},
}

// Has reports whether every modifier in m is present.
func (s Modifiers) Has(m Modifiers) bool { return s&m == m }

// Any reports whether at least one modifier in m is present.
func (s Modifiers) Any(m Modifiers) bool { return s&m != 0 }

// String renders the set in canonical Java order, space separated.
func (s Modifiers) String() string {
	var parts []string
	for _, mn := range modifierNames {
		if s.Has(mn.m) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, " ")
}

// ParseModifier maps a Java keyword to its modifier.
func ParseModifier(s string) (Modifiers, bool) {
	for _, mn := range modifierNames {
		if mn.name == s {
			return mn.m, true
		}
	}
	return 0, false
}

// ParseModifiers combines a list of keywords into a set.
func ParseModifiers(words []string) (Modifiers, error) {
	var out Modifiers
	for _, w := range words {
		m, ok := ParseModifier(strings.ToLower(strings.TrimSpace(w)))
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", w)
		}
		out |= m
	}
	return out, nil
}

// Kind is the declaration kind of a type.
type Kind int

const (
	KindClass Kind = iota
	KindInterface
	KindEnum
	KindAnnotation
)

func (k Kind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindAnnotation:
		return "annotation"
	default:
		return "class"
	}
}

// ParseKind accepts "class", "interface", "enum", "annotation" or "@interface".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "", "class":
		return KindClass, nil
	case "interface":
		return KindInterface, nil
	case "enum":
		return KindEnum, nil
	case "annotation", "@interface":
		return KindAnnotation, nil
	}
	return 0, fmt.Errorf("unknown type kind %q", s)
}

// Nesting describes where a type is declared.
type Nesting int

const (
	TopLevel Nesting = iota
	Member
	Local
	Anonymous
)

func (n Nesting) String() string {
	switch n {
	case Member:
		return "member"
	case Local:
		return "local"
	case Anonymous:
		return "anonymous"
	default:
		return "top-level"
	}
}

// ParseNesting accepts "top-level", "member", "local" or "anonymous".
func ParseNesting(s string) (Nesting, error) {
	switch strings.ToLower(s) {
	case "", "top-level", "toplevel", "top_level":
		return TopLevel, nil
	case "member":
		return Member, nil
	case "local":
		return Local, nil
	case "anonymous":
		return Anonymous, nil
	}
	return 0, fmt.Errorf("unknown nesting kind %q", s)
}

// AccessType is the value of an explicit @Property directive.
type AccessType int

const (
	ReadWrite AccessType = iota
	ReadOnly
	WriteOnly
	None
)

func (a AccessType) String() string {
	switch a {
	case ReadOnly:
		return "READ_ONLY"
	case WriteOnly:
		return "WRITE_ONLY"
	case None:
		return "NONE"
	default:
		return "READ_WRITE"
	}
}

// ParseAccessType accepts the enum constant name, optionally qualified
// ("AccessType.READ_ONLY").
func ParseAccessType(s string) (AccessType, error) {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[i+1:]
	}
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "READ_WRITE":
		return ReadWrite, nil
	case "READ_ONLY":
		return ReadOnly, nil
	case "WRITE_ONLY":
		return WriteOnly, nil
	case "NONE":
		return None, nil
	}
	return 0, fmt.Errorf("unknown access type %q", s)
}

// Directive is an explicit per-field @Property annotation.
type Directive struct {
	Access AccessType
	Pos    diag.Position
}

// TypeParam is a declared type parameter with its bounds as written.
type TypeParam struct {
	Name   string
	Bounds []string
}

// Param is a method or constructor parameter.
type Param struct {
	Type string
	Name string
}

// Field is a declared field of a state class.
type Field struct {
	Name string
	Type string
	// ComponentType is the element type when Type is an array, else empty.
	ComponentType string
	Modifiers     Modifiers
	Directive     *Directive
	Doc           string
	Pos           diag.Position
}

// IsArray reports whether the field is array typed.
func (f *Field) IsArray() bool { return f.ComponentType != "" }

// Constructor is a declared constructor of a state class.
type Constructor struct {
	Modifiers  Modifiers
	TypeParams []TypeParam
	Params     []Param
	Thrown     []string
	Doc        string
	Pos        diag.Position
}

// Method is a declared method of a state class.
type Method struct {
	Name       string
	Modifiers  Modifiers
	ReturnType string
	Params     []Param
	Pos        diag.Position
}

// ClassDecl is the class-level part of a state declaration.
type ClassDecl struct {
	QualifiedName string
	PackageName   string
	SimpleName    string
	Kind          Kind
	Nesting       Nesting
	Modifiers     Modifiers
	TypeParams    []TypeParam
	Doc           string

	// Options from the @BeanState marker.
	BoundProperties       bool
	ConstrainedProperties bool

	Pos diag.Position
}

// ClassModel is the structural view of one state declaration supplied by an
// input adapter. Implementations return elements in declaration order.
type ClassModel interface {
	Class() *ClassDecl
	Fields() []*Field
	Constructors() []*Constructor
	Methods() []*Method
}

// StateClass is the plain-data ClassModel produced by the input adapters.
type StateClass struct {
	Decl       ClassDecl
	FieldList  []*Field
	Ctors      []*Constructor
	MethodList []*Method
}

func (s *StateClass) Class() *ClassDecl            { return &s.Decl }
func (s *StateClass) Fields() []*Field             { return s.FieldList }
func (s *StateClass) Constructors() []*Constructor { return s.Ctors }
func (s *StateClass) Methods() []*Method           { return s.MethodList }

// ComponentType returns the element type of an array type text such as
// "int[]" or "java.lang.String[][]", or "" when typ is not an array.
func ComponentType(typ string) string {
	t := strings.TrimSpace(typ)
	if strings.HasSuffix(t, "[]") {
		return strings.TrimSpace(t[:len(t)-2])
	}
	return ""
}

// ImplicitConstructor is the no-argument constructor the compiler supplies
// for a class that declares none. It has the class's access modifier.
func ImplicitConstructor(d *ClassDecl) *Constructor {
	return &Constructor{
		Modifiers: d.Modifiers & (Public | Protected | Private),
		Pos:       d.Pos,
	}
}
