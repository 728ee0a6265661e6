// Package javasrc reads state declarations straight from Java source files.
//
// Sources are parsed with the tree-sitter Java grammar. Only declarations
// are followed (types, fields, constructors, methods and their
// annotations), which is all that is needed to find @BeanState classes and
// describe their shape. Types are kept as spelled in the source.
package javasrc

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/Alia5/beangen/internal/beans"
	"github.com/Alia5/beangen/internal/diag"
)

const (
	beanStateAnnotation = "BeanState"
	propertyAnnotation  = "Property"
)

type annotation struct {
	name   string
	values map[string]string
	pos    diag.Position
}

// fail aborts the parse with an error anchored at the annotation.
func (a annotation) fail(format string, args ...any) {
	msg := "@" + a.name + ": " + fmt.Sprintf(format, args...)
	panic(bailout{&SyntaxError{Pos: a.pos, Msg: msg}})
}

type parser struct {
	file string
	src  []byte
	pkg  string
	out  []*beans.StateClass
}

type bailout struct{ err error }

// Parse returns every class in src annotated with @BeanState, outer classes
// before the classes nested in them.
func Parse(filename string, src []byte) (classes []*beans.StateClass, err error) {
	src = bytes.TrimPrefix(src, []byte("\uFEFF"))

	tsp := sitter.NewParser()
	defer tsp.Close()
	tsp.SetLanguage(java.GetLanguage())
	tree, err := tsp.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	defer tree.Close()

	p := &parser{file: filename, src: src}
	root := tree.RootNode()
	if root.HasError() {
		return nil, p.syntaxError(errorNode(root))
	}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			classes, err = nil, b.err
		}
	}()
	p.compilationUnit(root)
	return p.out, nil
}

func (p *parser) text(n *sitter.Node) string { return n.Content(p.src) }

func (p *parser) compilationUnit(root *sitter.Node) {
	for _, n := range namedChildren(root) {
		switch n.Type() {
		case "package_declaration":
			for _, c := range namedChildren(n) {
				if c.Type() == "identifier" || c.Type() == "scoped_identifier" {
					p.pkg = compact(p.text(c))
				}
			}
		case "module_declaration":
			return
		default:
			if isTypeDecl(n) {
				p.typeDecl(n, beans.TopLevel, "")
			}
		}
	}
}

func isTypeDecl(n *sitter.Node) bool {
	switch n.Type() {
	case "class_declaration", "interface_declaration", "enum_declaration",
		"annotation_type_declaration", "record_declaration":
		return true
	}
	return false
}

// modifiers returns the keywords and annotations in the modifiers child of
// a declaration.
func (p *parser) modifiers(decl *sitter.Node) (beans.Modifiers, []annotation) {
	var mods beans.Modifiers
	var annots []annotation
	m := childOfType(decl, "modifiers")
	if m == nil {
		return 0, nil
	}
	for i := 0; i < int(m.ChildCount()); i++ {
		c := m.Child(i)
		switch c.Type() {
		case "annotation", "marker_annotation":
			annots = append(annots, p.annotation(c))
		default:
			if mod, ok := beans.ParseModifier(p.text(c)); ok {
				mods |= mod
			}
		}
	}
	return mods, annots
}

func (p *parser) annotation(n *sitter.Node) annotation {
	a := annotation{
		name:   compact(p.text(n.ChildByFieldName("name"))),
		pos:    p.pos(n),
		values: map[string]string{},
	}
	args := n.ChildByFieldName("arguments")
	if args == nil {
		return a
	}
	for _, c := range namedChildren(args) {
		switch c.Type() {
		case "element_value_pair":
			a.values[p.text(c.ChildByFieldName("key"))] = compact(p.text(c.ChildByFieldName("value")))
		case "line_comment", "block_comment":
		default:
			a.values["value"] = compact(p.text(c))
		}
	}
	return a
}

func (p *parser) typeDecl(n *sitter.Node, nesting beans.Nesting, outer string) {
	mods, annots := p.modifiers(n)
	kind := beans.KindClass
	switch n.Type() {
	case "interface_declaration":
		kind = beans.KindInterface
	case "enum_declaration":
		kind = beans.KindEnum
	case "annotation_type_declaration":
		kind = beans.KindAnnotation
	case "record_declaration":
		mods |= beans.Final
	}

	nameNode := n.ChildByFieldName("name")
	name := p.text(nameNode)
	var qname string
	switch nesting {
	case beans.TopLevel:
		qname = beans.QualifiedName(p.pkg, name)
	case beans.Member:
		qname = outer + "." + name
	default:
		qname = name
	}

	sc := &beans.StateClass{Decl: beans.ClassDecl{
		QualifiedName: qname,
		PackageName:   p.pkg,
		SimpleName:    name,
		Kind:          kind,
		Nesting:       nesting,
		Modifiers:     mods,
		Doc:           p.doc(n),
		Pos:           p.pos(nameNode),
	}}
	if tps := n.ChildByFieldName("type_parameters"); tps != nil {
		sc.Decl.TypeParams = p.typeParams(tps)
	}

	marker, bean := findAnnotation(annots, beanStateAnnotation)
	if bean {
		sc.Decl.BoundProperties = p.boolElement(marker, "boundProperties")
		sc.Decl.ConstrainedProperties = p.boolElement(marker, "constrainedProperties")
		p.out = append(p.out, sc)
	}

	p.classBody(sc, n.ChildByFieldName("body"))

	if bean && kind == beans.KindClass && len(sc.Ctors) == 0 {
		sc.Ctors = append(sc.Ctors, beans.ImplicitConstructor(&sc.Decl))
	}
}

func (p *parser) boolElement(a annotation, name string) bool {
	v, ok := a.values[name]
	if !ok {
		return false
	}
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	a.fail("element %s must be true or false, found %q", name, v)
	return false
}

func findAnnotation(annots []annotation, simple string) (annotation, bool) {
	for _, a := range annots {
		if a.name == simple || strings.HasSuffix(a.name, "."+simple) {
			return a, true
		}
	}
	return annotation{}, false
}

func (p *parser) classBody(sc *beans.StateClass, body *sitter.Node) {
	if body == nil {
		return
	}
	members := namedChildren(body)
	if body.Type() == "enum_body" {
		members = nil
		if decls := childOfType(body, "enum_body_declarations"); decls != nil {
			members = namedChildren(decls)
		}
	}
	for _, m := range members {
		p.member(sc, m)
	}
}

func (p *parser) member(sc *beans.StateClass, m *sitter.Node) {
	switch m.Type() {
	case "field_declaration", "constant_declaration":
		p.fields(sc, m)
	case "constructor_declaration":
		p.constructor(sc, m)
	case "method_declaration", "annotation_type_element_declaration":
		p.method(sc, m)
	case "compact_constructor_declaration", "block", "static_initializer":
		p.locals(m)
	default:
		if isTypeDecl(m) {
			p.typeDecl(m, beans.Member, sc.Decl.QualifiedName)
		}
	}
}

// locals collects the classes declared inside a code body.
func (p *parser) locals(n *sitter.Node) {
	for _, c := range namedChildren(n) {
		if isTypeDecl(c) {
			p.typeDecl(c, beans.Local, "")
			continue
		}
		p.locals(c)
	}
}

func (p *parser) fields(sc *beans.StateClass, n *sitter.Node) {
	mods, annots := p.modifiers(n)
	doc := p.doc(n)
	directive := p.directive(annots)
	typ := p.typeText(n.ChildByFieldName("type"))

	for i := 0; i < int(n.ChildCount()); i++ {
		if n.FieldNameForChild(i) != "declarator" {
			continue
		}
		d := n.Child(i)
		nameNode := d.ChildByFieldName("name")
		ftype := typ + p.dims(d.ChildByFieldName("dimensions"))
		f := &beans.Field{
			Name:          p.text(nameNode),
			Type:          ftype,
			ComponentType: beans.ComponentType(ftype),
			Modifiers:     mods,
			Doc:           doc,
			Pos:           p.pos(nameNode),
		}
		if directive != nil {
			dir := *directive
			f.Directive = &dir
		}
		sc.FieldList = append(sc.FieldList, f)
	}
}

func (p *parser) directive(annots []annotation) *beans.Directive {
	a, ok := findAnnotation(annots, propertyAnnotation)
	if !ok {
		return nil
	}
	access, err := beans.ParseAccessType(a.values["access"])
	if err != nil {
		a.fail("%v", err)
	}
	return &beans.Directive{Access: access, Pos: a.pos}
}

func (p *parser) constructor(sc *beans.StateClass, n *sitter.Node) {
	mods, _ := p.modifiers(n)
	ctor := &beans.Constructor{
		Modifiers: mods,
		Params:    p.formalParams(n.ChildByFieldName("parameters")),
		Thrown:    p.throws(n),
		Doc:       p.doc(n),
		Pos:       p.pos(n.ChildByFieldName("name")),
	}
	if tps := n.ChildByFieldName("type_parameters"); tps != nil {
		ctor.TypeParams = p.typeParams(tps)
	}
	sc.Ctors = append(sc.Ctors, ctor)
	p.locals(n.ChildByFieldName("body"))
}

func (p *parser) method(sc *beans.StateClass, n *sitter.Node) {
	mods, _ := p.modifiers(n)
	nameNode := n.ChildByFieldName("name")
	sc.MethodList = append(sc.MethodList, &beans.Method{
		Name:       p.text(nameNode),
		Modifiers:  mods,
		ReturnType: p.typeText(n.ChildByFieldName("type")) + p.dims(n.ChildByFieldName("dimensions")),
		Params:     p.formalParams(n.ChildByFieldName("parameters")),
		Pos:        p.pos(nameNode),
	})
	if body := n.ChildByFieldName("body"); body != nil {
		p.locals(body)
	}
}

func (p *parser) typeParams(n *sitter.Node) []beans.TypeParam {
	var out []beans.TypeParam
	for _, c := range namedChildren(n) {
		if c.Type() != "type_parameter" {
			continue
		}
		var tp beans.TypeParam
		for _, part := range namedChildren(c) {
			switch part.Type() {
			case "type_identifier", "identifier":
				tp.Name = p.text(part)
			case "type_bound":
				for _, b := range namedChildren(part) {
					tp.Bounds = append(tp.Bounds, p.typeText(b))
				}
			}
		}
		out = append(out, tp)
	}
	return out
}

func (p *parser) formalParams(n *sitter.Node) []beans.Param {
	if n == nil {
		return nil
	}
	var out []beans.Param
	for _, c := range namedChildren(n) {
		switch c.Type() {
		case "formal_parameter":
			out = append(out, beans.Param{
				Type: p.typeText(c.ChildByFieldName("type")) + p.dims(c.ChildByFieldName("dimensions")),
				Name: p.text(c.ChildByFieldName("name")),
			})
		case "spread_parameter":
			var typ, name string
			for _, part := range namedChildren(c) {
				switch part.Type() {
				case "modifiers":
				case "variable_declarator":
					name = p.text(part.ChildByFieldName("name"))
					typ += p.dims(part.ChildByFieldName("dimensions"))
				default:
					if typ == "" {
						typ = p.typeText(part) + "..."
					}
				}
			}
			out = append(out, beans.Param{Type: typ, Name: name})
		}
	}
	return out
}

func (p *parser) throws(n *sitter.Node) []string {
	t := childOfType(n, "throws")
	if t == nil {
		return nil
	}
	var out []string
	for _, c := range namedChildren(t) {
		out = append(out, p.typeText(c))
	}
	return out
}

// doc returns the text of the documentation comment directly before n.
func (p *parser) doc(n *sitter.Node) string {
	prev := n.PrevSibling()
	if prev == nil || prev.Type() != "block_comment" {
		return ""
	}
	raw := p.text(prev)
	if !strings.HasPrefix(raw, "/**") || raw == "/**/" {
		return ""
	}
	return docText(raw)
}

func (p *parser) typeText(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return compact(p.text(n))
}

func (p *parser) dims(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return compact(p.text(n))
}

func namedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	out := make([]*sitter.Node, 0, n.NamedChildCount())
	for i := 0; i < int(n.NamedChildCount()); i++ {
		out = append(out, n.NamedChild(i))
	}
	return out
}

func childOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.Type() == typ {
			return c
		}
	}
	return nil
}
