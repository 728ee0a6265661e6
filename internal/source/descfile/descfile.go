// Package descfile reads state declarations described declaratively in
// YAML, TOML or JSON documents instead of Java source.
//
// A document lists classes with the same information a compiler would
// report for them:
//
//	classes:
//	  - name: com.example.PersonState
//	    modifiers: [public, abstract]
//	    boundProperties: true
//	    fields:
//	      - name: name
//	        type: String
//	      - name: id
//	        type: long
//	        access: READ_ONLY
//	    constructors:
//	      - modifiers: [public]
//
// A class without constructors gets the implicit no-argument constructor.
package descfile

import (
	"fmt"
	"strings"

	"github.com/Alia5/beangen/internal/beans"
	"github.com/Alia5/beangen/internal/diag"
)

// Document is the root of a descriptor file.
type Document struct {
	Classes []Class `json:"classes" yaml:"classes" toml:"classes"`
}

type Class struct {
	// Name is the qualified class name.
	Name                  string        `json:"name" yaml:"name" toml:"name"`
	Kind                  string        `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind"`
	Nesting               string        `json:"nesting,omitempty" yaml:"nesting,omitempty" toml:"nesting"`
	Modifiers             []string      `json:"modifiers,omitempty" yaml:"modifiers,omitempty" toml:"modifiers"`
	Doc                   string        `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc"`
	TypeParams            []TypeParam   `json:"typeParams,omitempty" yaml:"typeParams,omitempty" toml:"typeParams"`
	BoundProperties       bool          `json:"boundProperties,omitempty" yaml:"boundProperties,omitempty" toml:"boundProperties"`
	ConstrainedProperties bool          `json:"constrainedProperties,omitempty" yaml:"constrainedProperties,omitempty" toml:"constrainedProperties"`
	Fields                []Field       `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields"`
	Constructors          []Constructor `json:"constructors,omitempty" yaml:"constructors,omitempty" toml:"constructors"`
	Methods               []Method      `json:"methods,omitempty" yaml:"methods,omitempty" toml:"methods"`

	pos diag.Position `json:"-" yaml:"-" toml:"-"`
}

type TypeParam struct {
	Name   string   `json:"name" yaml:"name" toml:"name"`
	Bounds []string `json:"bounds,omitempty" yaml:"bounds,omitempty" toml:"bounds"`
}

type Field struct {
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Type      string   `json:"type" yaml:"type" toml:"type"`
	Modifiers []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty" toml:"modifiers"`
	// Access is the @Property directive; empty means the field has none.
	Access string `json:"access,omitempty" yaml:"access,omitempty" toml:"access"`
	Doc    string `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc"`

	pos diag.Position `json:"-" yaml:"-" toml:"-"`
}

type Param struct {
	Type string `json:"type" yaml:"type" toml:"type"`
	Name string `json:"name" yaml:"name" toml:"name"`
}

type Constructor struct {
	Modifiers  []string    `json:"modifiers,omitempty" yaml:"modifiers,omitempty" toml:"modifiers"`
	TypeParams []TypeParam `json:"typeParams,omitempty" yaml:"typeParams,omitempty" toml:"typeParams"`
	Params     []Param     `json:"params,omitempty" yaml:"params,omitempty" toml:"params"`
	Throws     []string    `json:"throws,omitempty" yaml:"throws,omitempty" toml:"throws"`
	Doc        string      `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc"`

	pos diag.Position `json:"-" yaml:"-" toml:"-"`
}

type Method struct {
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Modifiers  []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty" toml:"modifiers"`
	ReturnType string   `json:"returnType,omitempty" yaml:"returnType,omitempty" toml:"returnType"`
	Params     []Param  `json:"params,omitempty" yaml:"params,omitempty" toml:"params"`
}

// StateClasses converts the document into class models. file is recorded
// in every position.
func (d *Document) StateClasses(file string) ([]*beans.StateClass, error) {
	out := make([]*beans.StateClass, 0, len(d.Classes))
	for i := range d.Classes {
		sc, err := d.Classes[i].stateClass(file)
		if err != nil {
			return nil, fmt.Errorf("class #%d (%s): %w", i+1, d.Classes[i].Name, err)
		}
		out = append(out, sc)
	}
	return out, nil
}

func (c *Class) stateClass(file string) (*beans.StateClass, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("missing class name")
	}
	kind, err := beans.ParseKind(c.Kind)
	if err != nil {
		return nil, err
	}
	nesting, err := beans.ParseNesting(c.Nesting)
	if err != nil {
		return nil, err
	}
	mods, err := beans.ParseModifiers(c.Modifiers)
	if err != nil {
		return nil, err
	}

	pkg := beans.PackageName(c.Name)
	sc := &beans.StateClass{Decl: beans.ClassDecl{
		QualifiedName:         c.Name,
		PackageName:           pkg,
		SimpleName:            c.Name[strings.LastIndexByte(c.Name, '.')+1:],
		Kind:                  kind,
		Nesting:               nesting,
		Modifiers:             mods,
		TypeParams:            typeParams(c.TypeParams),
		Doc:                   c.Doc,
		BoundProperties:       c.BoundProperties,
		ConstrainedProperties: c.ConstrainedProperties,
		Pos:                   withFile(c.pos, file),
	}}

	for _, f := range c.Fields {
		field, err := f.field(file)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		sc.FieldList = append(sc.FieldList, field)
	}

	for i, k := range c.Constructors {
		mods, err := beans.ParseModifiers(k.Modifiers)
		if err != nil {
			return nil, fmt.Errorf("constructor #%d: %w", i+1, err)
		}
		ctor := &beans.Constructor{
			Modifiers:  mods,
			TypeParams: typeParams(k.TypeParams),
			Thrown:     k.Throws,
			Doc:        k.Doc,
			Pos:        withFile(k.pos, file),
		}
		for _, p := range k.Params {
			ctor.Params = append(ctor.Params, beans.Param{Type: p.Type, Name: p.Name})
		}
		sc.Ctors = append(sc.Ctors, ctor)
	}
	if len(sc.Ctors) == 0 && kind == beans.KindClass {
		sc.Ctors = append(sc.Ctors, beans.ImplicitConstructor(&sc.Decl))
	}

	for _, m := range c.Methods {
		mods, err := beans.ParseModifiers(m.Modifiers)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", m.Name, err)
		}
		meth := &beans.Method{Name: m.Name, Modifiers: mods, ReturnType: m.ReturnType, Pos: sc.Decl.Pos}
		for _, p := range m.Params {
			meth.Params = append(meth.Params, beans.Param{Type: p.Type, Name: p.Name})
		}
		sc.MethodList = append(sc.MethodList, meth)
	}
	return sc, nil
}

func (f *Field) field(file string) (*beans.Field, error) {
	if f.Name == "" || f.Type == "" {
		return nil, fmt.Errorf("name and type are required")
	}
	mods, err := beans.ParseModifiers(f.Modifiers)
	if err != nil {
		return nil, err
	}
	out := &beans.Field{
		Name:          f.Name,
		Type:          f.Type,
		ComponentType: beans.ComponentType(f.Type),
		Modifiers:     mods,
		Doc:           f.Doc,
		Pos:           withFile(f.pos, file),
	}
	if f.Access != "" {
		access, err := beans.ParseAccessType(f.Access)
		if err != nil {
			return nil, err
		}
		out.Directive = &beans.Directive{Access: access, Pos: out.Pos}
	}
	return out, nil
}

func typeParams(in []TypeParam) []beans.TypeParam {
	if len(in) == 0 {
		return nil
	}
	out := make([]beans.TypeParam, len(in))
	for i, tp := range in {
		out[i] = beans.TypeParam{Name: tp.Name, Bounds: tp.Bounds}
	}
	return out
}

func withFile(p diag.Position, file string) diag.Position {
	p.File = file
	return p
}
