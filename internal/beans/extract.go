package beans

import (
	"log/slog"
	"strings"

	"github.com/Alia5/beangen/internal/diag"
)

// objectType is the implicit bound of an unbounded type parameter.
const objectType = "java.lang.Object"

// Extractor validates state declarations and reduces them to Models.
type Extractor struct {
	Locale diag.Locale
	Logger *slog.Logger
}

// NewExtractor returns an Extractor rendering diagnostics in loc.
func NewExtractor(loc diag.Locale, logger *slog.Logger) *Extractor {
	return &Extractor{Locale: loc, Logger: logger}
}

// Extract validates cm and builds its Model, reporting problems to sink.
//
// A nil Model means the declaration is unusable: its class shape is not
// allowed or no constructor is visible to a subclass. Field-level errors
// drop the offending field but still return a Model; callers that must not
// generate code for erroneous declarations check the sink for errors.
func (x *Extractor) Extract(cm ClassModel, sink diag.Sink) *Model {
	r := reporter{loc: x.Locale, sink: sink}
	decl := cm.Class()

	m := x.processClass(decl, &r)
	if m == nil {
		return nil
	}

	for _, f := range cm.Fields() {
		if p := x.processField(f, &r); p != nil {
			if !m.Properties.Add(p) {
				x.debug("Duplicate property ignored", "class", decl.QualifiedName, "property", p.Name)
			}
		}
	}

	for _, c := range cm.Constructors() {
		if cons, ok := processConstructor(c, &r); ok {
			m.Constructors = append(m.Constructors, cons)
		}
	}
	if len(m.Constructors) == 0 {
		r.report(diag.CTOR0001, classAnchor(decl))
		return nil
	}

	for _, meth := range cm.Methods() {
		x.processMethod(meth, m)
	}

	return m
}

func (x *Extractor) debug(msg string, args ...any) {
	if x.Logger != nil {
		x.Logger.Debug(msg, args...)
	}
}

type reporter struct {
	loc  diag.Locale
	sink diag.Sink
}

func (r *reporter) report(code diag.Code, anchor diag.Anchor, args ...any) {
	if r.sink == nil {
		return
	}
	r.sink.Report(diag.New(r.loc, code, anchor, args...))
}

func classAnchor(d *ClassDecl) diag.Anchor {
	return diag.Anchor{Element: "class " + d.QualifiedName, Pos: d.Pos}
}

func fieldAnchor(f *Field) diag.Anchor {
	a := diag.Anchor{Element: "field " + f.Name, Pos: f.Pos}
	if f.Directive != nil {
		a.Directive = "@Property(access = " + f.Directive.Access.String() + ")"
		a.DirectivePos = f.Directive.Pos
	}
	return a
}

func constructorAnchor(c *Constructor) diag.Anchor {
	types := make([]string, len(c.Params))
	for i, p := range c.Params {
		types[i] = p.Type
	}
	return diag.Anchor{Element: "constructor (" + strings.Join(types, ", ") + ")", Pos: c.Pos}
}

func (x *Extractor) processClass(d *ClassDecl, r *reporter) *Model {
	anchor := classAnchor(d)
	switch d.Kind {
	case KindInterface:
		r.report(diag.CLS0000, anchor)
		return nil
	case KindEnum:
		r.report(diag.CLS0001, anchor)
		return nil
	case KindAnnotation:
		r.report(diag.CLS0002, anchor)
		return nil
	}
	switch d.Nesting {
	case Local:
		r.report(diag.CLS0003, anchor)
		return nil
	case Member, Anonymous:
		r.report(diag.CLS0004, anchor)
		return nil
	}
	if d.Modifiers.Has(Final) {
		r.report(diag.CLS0005, anchor)
		return nil
	}
	if !d.Modifiers.Has(Public) {
		r.report(diag.CLS0006, anchor)
		return nil
	}

	simple := d.SimpleName
	if simple == "" {
		simple = d.QualifiedName[strings.LastIndexByte(d.QualifiedName, '.')+1:]
	}
	return &Model{
		PackageName:           PackageName(d.QualifiedName),
		BeanClassName:         BeanClassName(simple),
		TypeParams:            TypeParamDecl(d.TypeParams),
		StateClassName:        d.QualifiedName + TypeArgs(d.TypeParams),
		Doc:                   d.Doc,
		BoundProperties:       d.BoundProperties,
		ConstrainedProperties: d.ConstrainedProperties,
	}
}

const ignoredFieldModifiers = Static | Public | Private

func (x *Extractor) processField(f *Field, r *reporter) *Property {
	if f.Directive == nil {
		if f.Modifiers.Any(ignoredFieldModifiers) {
			x.debug("Field skipped", "field", f.Name, "modifiers", f.Modifiers.String())
			return nil
		}
	} else {
		switch {
		case f.Modifiers.Has(Private):
			r.report(diag.FLD0000, fieldAnchor(f))
			return nil
		case f.Modifiers.Has(Public):
			r.report(diag.FLD0001, fieldAnchor(f))
			return nil
		case f.Modifiers.Has(Static):
			r.report(diag.FLD0002, fieldAnchor(f))
			return nil
		}
		switch f.Directive.Access {
		case None:
			return nil
		case WriteOnly:
			if f.Modifiers.Has(Final) {
				r.report(diag.FLD0003, fieldAnchor(f))
				return nil
			}
		}
	}

	p := &Property{
		Name:          f.Name,
		Type:          f.Type,
		ComponentType: f.ComponentType,
		Readable:      true,
		Writable:      true,
		Doc:           strings.TrimSpace(f.Doc),
	}
	if p.ComponentType == "" {
		p.ComponentType = ComponentType(f.Type)
	}
	if p.Doc == "" {
		p.Doc = f.Name
	}
	if f.Directive != nil {
		switch f.Directive.Access {
		case ReadOnly:
			p.Writable = false
		case WriteOnly:
			p.Readable = false
		}
	}
	if f.Modifiers.Has(Final) {
		p.Writable = false
	}
	return p
}

func processConstructor(c *Constructor, r *reporter) (ConstructorModel, bool) {
	if c.Modifiers.Has(Private) {
		if len(c.Params) == 0 {
			r.report(diag.CTOR0000, constructorAnchor(c))
		}
		return ConstructorModel{}, false
	}
	if !c.Modifiers.Has(Public) {
		r.report(diag.CTOR0000, constructorAnchor(c))
	}

	cm := ConstructorModel{
		TypeParams:  TypeParamDecl(c.TypeParams),
		ThrownTypes: append([]string(nil), c.Thrown...),
		Doc:         c.Doc,
	}
	switch {
	case c.Modifiers.Has(Public):
		cm.Visibility = "public"
	case c.Modifiers.Has(Protected):
		cm.Visibility = "protected"
	}
	for _, p := range c.Params {
		cm.ParameterTypes = append(cm.ParameterTypes, p.Type)
		cm.ParameterNames = append(cm.ParameterNames, p.Name)
	}
	return cm, true
}

// processMethod turns off accessor generation for properties whose
// accessor the state class already declares. Matching is by name
// convention and, for setters, the spelled parameter type only.
func (x *Extractor) processMethod(meth *Method, m *Model) {
	if len(meth.Params) == 0 {
		name := accessorSuffix(meth.Name, "is")
		if name == "" {
			name = accessorSuffix(meth.Name, "get")
		}
		if p := m.Properties.Get(name); name != "" && p != nil {
			p.Readable = false
			x.debug("Getter declared by state class", "property", name, "method", meth.Name)
		}
	}
	if len(meth.Params) == 1 {
		name := accessorSuffix(meth.Name, "set")
		if p := m.Properties.Get(name); name != "" && p != nil && p.Type == meth.Params[0].Type {
			p.Writable = false
			x.debug("Setter declared by state class", "property", name, "method", meth.Name)
		}
	}
}

// TypeParamDecl renders a type parameter declaration such as
// "<T, U extends java.io.Serializable & java.lang.Comparable<U>>".
func TypeParamDecl(params []TypeParam) string {
	if len(params) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteByte('<')
	for i, tp := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(tp.Name)
		if len(tp.Bounds) > 1 || (len(tp.Bounds) == 1 && tp.Bounds[0] != objectType) {
			b.WriteString(" extends ")
			b.WriteString(strings.Join(tp.Bounds, " & "))
		}
	}
	b.WriteByte('>')
	return b.String()
}

// TypeArgs renders the type arguments that refer back to params, e.g. "<T, U>".
func TypeArgs(params []TypeParam) string {
	if len(params) == 0 {
		return ""
	}
	names := make([]string, len(params))
	for i, tp := range params {
		names[i] = tp.Name
	}
	return "<" + strings.Join(names, ", ") + ">"
}
