package beans_test

import (
	"testing"

	"github.com/Alia5/beangen/internal/beans"
	"github.com/Alia5/beangen/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(fields ...*beans.Field) *beans.StateClass {
	return &beans.StateClass{
		Decl: beans.ClassDecl{
			QualifiedName: "com.example.FooState",
			SimpleName:    "FooState",
			Modifiers:     beans.Public,
		},
		FieldList: fields,
		Ctors:     []*beans.Constructor{{Modifiers: beans.Public}},
	}
}

func extract(t *testing.T, sc *beans.StateClass) (*beans.Model, *diag.Collector) {
	t.Helper()
	var c diag.Collector
	m := beans.NewExtractor(diag.Root, nil).Extract(sc, &c)
	return m, &c
}

func TestExtractClassRules(t *testing.T) {
	type testCase struct {
		name     string
		mutate   func(d *beans.ClassDecl)
		expected diag.Code
	}

	testCases := []testCase{
		{name: "interface", mutate: func(d *beans.ClassDecl) { d.Kind = beans.KindInterface }, expected: diag.CLS0000},
		{name: "enum", mutate: func(d *beans.ClassDecl) { d.Kind = beans.KindEnum }, expected: diag.CLS0001},
		{name: "annotation", mutate: func(d *beans.ClassDecl) { d.Kind = beans.KindAnnotation }, expected: diag.CLS0002},
		{name: "local", mutate: func(d *beans.ClassDecl) { d.Nesting = beans.Local }, expected: diag.CLS0003},
		{name: "member", mutate: func(d *beans.ClassDecl) { d.Nesting = beans.Member }, expected: diag.CLS0004},
		{name: "anonymous", mutate: func(d *beans.ClassDecl) { d.Nesting = beans.Anonymous }, expected: diag.CLS0004},
		{name: "final", mutate: func(d *beans.ClassDecl) { d.Modifiers |= beans.Final }, expected: diag.CLS0005},
		{name: "not public", mutate: func(d *beans.ClassDecl) { d.Modifiers = 0 }, expected: diag.CLS0006},
		{
			name: "kind checked before visibility",
			mutate: func(d *beans.ClassDecl) {
				d.Kind = beans.KindEnum
				d.Modifiers = beans.Final
			},
			expected: diag.CLS0001,
		},
		{
			name: "nesting checked before final",
			mutate: func(d *beans.ClassDecl) {
				d.Nesting = beans.Member
				d.Modifiers |= beans.Final
			},
			expected: diag.CLS0004,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sc := newState(&beans.Field{Name: "a", Type: "int"})
			tc.mutate(&sc.Decl)
			m, c := extract(t, sc)
			assert.Nil(t, m)
			assert.Equal(t, []diag.Code{tc.expected}, c.Codes())
			assert.True(t, c.HasErrors())
		})
	}
}

func TestExtractFieldRules(t *testing.T) {
	directive := func(a beans.AccessType) *beans.Directive { return &beans.Directive{Access: a} }

	type testCase struct {
		name     string
		field    beans.Field
		codes    []diag.Code
		present  bool
		readable bool
		writable bool
	}

	testCases := []testCase{
		{name: "package private", field: beans.Field{}, present: true, readable: true, writable: true},
		{name: "protected", field: beans.Field{Modifiers: beans.Protected}, present: true, readable: true, writable: true},
		{name: "final", field: beans.Field{Modifiers: beans.Final}, present: true, readable: true},
		{name: "static skipped", field: beans.Field{Modifiers: beans.Static}},
		{name: "private skipped", field: beans.Field{Modifiers: beans.Private}},
		{name: "public skipped", field: beans.Field{Modifiers: beans.Public}},
		{name: "public static skipped", field: beans.Field{Modifiers: beans.Public | beans.Static}},
		{name: "directive read write", field: beans.Field{Directive: directive(beans.ReadWrite)}, present: true, readable: true, writable: true},
		{name: "directive read only", field: beans.Field{Directive: directive(beans.ReadOnly)}, present: true, readable: true},
		{name: "directive write only", field: beans.Field{Directive: directive(beans.WriteOnly)}, present: true, writable: true},
		{name: "directive none", field: beans.Field{Directive: directive(beans.None)}},
		{
			name:     "directive read write on final",
			field:    beans.Field{Modifiers: beans.Final, Directive: directive(beans.ReadWrite)},
			present:  true,
			readable: true,
		},
		{
			name:  "directive write only on final",
			field: beans.Field{Modifiers: beans.Final, Directive: directive(beans.WriteOnly)},
			codes: []diag.Code{diag.FLD0003},
		},
		{
			name:  "directive on private",
			field: beans.Field{Modifiers: beans.Private, Directive: directive(beans.ReadWrite)},
			codes: []diag.Code{diag.FLD0000},
		},
		{
			name:  "directive on public",
			field: beans.Field{Modifiers: beans.Public, Directive: directive(beans.ReadOnly)},
			codes: []diag.Code{diag.FLD0001},
		},
		{
			name:  "directive on static",
			field: beans.Field{Modifiers: beans.Static, Directive: directive(beans.ReadOnly)},
			codes: []diag.Code{diag.FLD0002},
		},
		{
			name:  "directive on public static reports public only",
			field: beans.Field{Modifiers: beans.Public | beans.Static, Directive: directive(beans.None)},
			codes: []diag.Code{diag.FLD0001},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.field
			f.Name = "value"
			f.Type = "int"
			m, c := extract(t, newState(&f))
			require.NotNil(t, m)

			if tc.codes == nil {
				assert.Empty(t, c.Codes())
			} else {
				assert.Equal(t, tc.codes, c.Codes())
				assert.True(t, c.HasErrors())
			}

			p := m.Properties.Get("value")
			if !tc.present {
				assert.Nil(t, p)
				assert.Equal(t, 0, m.Properties.Len())
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, tc.readable, p.Readable, "readable")
			assert.Equal(t, tc.writable, p.Writable, "writable")
		})
	}
}

func TestExtractFieldErrorAnchorsDirective(t *testing.T) {
	f := &beans.Field{
		Name:      "count",
		Type:      "int",
		Modifiers: beans.Final,
		Directive: &beans.Directive{Access: beans.WriteOnly, Pos: diag.Position{File: "Foo.java", Line: 7, Column: 5}},
		Pos:       diag.Position{File: "Foo.java", Line: 8, Column: 15},
	}
	_, c := extract(t, newState(f))
	diags := c.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "field count", diags[0].Anchor.Element)
	assert.Equal(t, "@Property(access = WRITE_ONLY)", diags[0].Anchor.Directive)
	assert.Equal(t, 7, diags[0].Anchor.DirectivePos.Line)
	assert.Equal(t, diag.Error, diags[0].Severity)
}

func TestExtractArrayAndDoc(t *testing.T) {
	m, c := extract(t, newState(
		&beans.Field{Name: "values", Type: "int[]"},
		&beans.Field{Name: "name", Type: "String", Doc: "  the name \n"},
		&beans.Field{Name: "grid", Type: "long[][]", ComponentType: "long[]"},
	))
	require.NotNil(t, m)
	assert.Empty(t, c.Codes())

	values := m.Properties.Get("values")
	require.NotNil(t, values)
	assert.True(t, values.IsArray())
	assert.Equal(t, "int", values.ComponentType)
	assert.Equal(t, "values", values.Doc)

	name := m.Properties.Get("name")
	require.NotNil(t, name)
	assert.False(t, name.IsArray())
	assert.Equal(t, "the name", name.Doc)

	assert.Equal(t, "long[]", m.Properties.Get("grid").ComponentType)
}

func TestExtractPropertyOrder(t *testing.T) {
	m, _ := extract(t, newState(
		&beans.Field{Name: "zeta", Type: "int"},
		&beans.Field{Name: "alpha", Type: "int"},
		&beans.Field{Name: "hidden", Type: "int", Modifiers: beans.Private},
		&beans.Field{Name: "mid", Type: "int"},
		&beans.Field{Name: "alpha", Type: "long"},
	))
	require.NotNil(t, m)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Properties.Names())
	assert.Equal(t, "int", m.Properties.Get("alpha").Type)
}

func TestExtractConstructors(t *testing.T) {
	type testCase struct {
		name       string
		ctors      []*beans.Constructor
		codes      []diag.Code
		visibility []string
	}

	testCases := []testCase{
		{
			name:       "public",
			ctors:      []*beans.Constructor{{Modifiers: beans.Public}},
			visibility: []string{"public"},
		},
		{
			name:       "protected warns",
			ctors:      []*beans.Constructor{{Modifiers: beans.Protected}},
			codes:      []diag.Code{diag.CTOR0000},
			visibility: []string{"protected"},
		},
		{
			name:       "package private warns",
			ctors:      []*beans.Constructor{{}},
			codes:      []diag.Code{diag.CTOR0000},
			visibility: []string{""},
		},
		{
			name:  "only private zero-arg",
			ctors: []*beans.Constructor{{Modifiers: beans.Private}},
			codes: []diag.Code{diag.CTOR0000, diag.CTOR0001},
		},
		{
			name: "only private with params",
			ctors: []*beans.Constructor{{
				Modifiers: beans.Private,
				Params:    []beans.Param{{Type: "int", Name: "a"}},
			}},
			codes: []diag.Code{diag.CTOR0001},
		},
		{
			name: "private dropped beside public",
			ctors: []*beans.Constructor{
				{Modifiers: beans.Private, Params: []beans.Param{{Type: "int", Name: "a"}}},
				{Modifiers: beans.Public, Params: []beans.Param{{Type: "String", Name: "s"}}},
			},
			visibility: []string{"public"},
		},
		{
			name:  "none declared",
			ctors: nil,
			codes: []diag.Code{diag.CTOR0001},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sc := newState(&beans.Field{Name: "a", Type: "int"})
			sc.Ctors = tc.ctors
			m, c := extract(t, sc)
			if tc.codes == nil {
				assert.Empty(t, c.Codes())
			} else {
				assert.Equal(t, tc.codes, c.Codes())
			}
			if tc.visibility == nil {
				assert.Nil(t, m)
				return
			}
			require.NotNil(t, m)
			var got []string
			for _, cm := range m.Constructors {
				got = append(got, cm.Visibility)
			}
			assert.Equal(t, tc.visibility, got)
			assert.False(t, c.HasErrors())
		})
	}
}

func TestExtractConstructorDetails(t *testing.T) {
	sc := newState()
	sc.Ctors = []*beans.Constructor{{
		Modifiers:  beans.Public,
		TypeParams: []beans.TypeParam{{Name: "X", Bounds: []string{"java.lang.Number"}}},
		Params:     []beans.Param{{Type: "int", Name: "a"}, {Type: "X", Name: "b"}},
		Thrown:     []string{"java.io.IOException"},
		Doc:        " Creates it.\n",
	}}
	m, _ := extract(t, sc)
	require.NotNil(t, m)
	require.Len(t, m.Constructors, 1)
	cm := m.Constructors[0]
	assert.Equal(t, "<X extends java.lang.Number>", cm.TypeParams)
	assert.Equal(t, []string{"int", "X"}, cm.ParameterTypes)
	assert.Equal(t, []string{"a", "b"}, cm.ParameterNames)
	assert.Equal(t, []string{"java.io.IOException"}, cm.ThrownTypes)
	assert.Equal(t, " Creates it.\n", cm.Doc)
}

func TestExtractOverrideSuppression(t *testing.T) {
	sc := newState(
		&beans.Field{Name: "name", Type: "String"},
		&beans.Field{Name: "active", Type: "boolean"},
		&beans.Field{Name: "count", Type: "int"},
		&beans.Field{Name: "size", Type: "int"},
		&beans.Field{Name: "URL", Type: "String"},
	)
	sc.MethodList = []*beans.Method{
		{Name: "getName", ReturnType: "String"},
		{Name: "isActive", ReturnType: "boolean"},
		{Name: "setCount", Params: []beans.Param{{Type: "int", Name: "c"}}},
		{Name: "setSize", Params: []beans.Param{{Type: "long", Name: "s"}}},
		{Name: "getSize", Params: []beans.Param{{Type: "int", Name: "i"}}},
		{Name: "getURL"},
		{Name: "getter"},
	}
	m, c := extract(t, sc)
	require.NotNil(t, m)
	assert.Empty(t, c.Codes())

	name := m.Properties.Get("name")
	assert.False(t, name.Readable)
	assert.True(t, name.Writable)

	active := m.Properties.Get("active")
	assert.False(t, active.Readable)
	assert.True(t, active.Writable)

	count := m.Properties.Get("count")
	assert.True(t, count.Readable)
	assert.False(t, count.Writable)

	size := m.Properties.Get("size")
	assert.True(t, size.Readable, "getter with parameters does not match")
	assert.True(t, size.Writable, "setter with another type does not match")

	assert.False(t, m.Properties.Get("URL").Readable)
}

func TestExtractModelAssembly(t *testing.T) {
	sc := newState(&beans.Field{Name: "a", Type: "T"})
	sc.Decl.Doc = " A state.\n"
	sc.Decl.BoundProperties = true
	sc.Decl.TypeParams = []beans.TypeParam{
		{Name: "T", Bounds: []string{"java.lang.Object"}},
		{Name: "U", Bounds: []string{"java.lang.Number", "java.lang.Comparable<U>"}},
		{Name: "V", Bounds: []string{"java.io.Serializable"}},
	}
	m, _ := extract(t, sc)
	require.NotNil(t, m)
	assert.Equal(t, "com.example", m.PackageName)
	assert.Equal(t, "Foo", m.BeanClassName)
	assert.Equal(t, "com.example.Foo", m.QualifiedBeanClassName())
	assert.Equal(t, "<T, U extends java.lang.Number & java.lang.Comparable<U>, V extends java.io.Serializable>", m.TypeParams)
	assert.Equal(t, "com.example.FooState<T, U, V>", m.StateClassName)
	assert.Equal(t, " A state.\n", m.Doc)
	assert.True(t, m.BoundProperties)
	assert.False(t, m.ConstrainedProperties)
}

func TestExtractUnnamedPackage(t *testing.T) {
	sc := newState()
	sc.Decl.QualifiedName = "AbstractThing"
	sc.Decl.SimpleName = ""
	m, _ := extract(t, sc)
	require.NotNil(t, m)
	assert.Equal(t, "", m.PackageName)
	assert.Equal(t, "Thing", m.BeanClassName)
	assert.Equal(t, "AbstractThing", m.StateClassName)
}

func TestExtractRoundTripScenario(t *testing.T) {
	m, c := extract(t, newState(
		&beans.Field{Name: "a", Type: "int"},
		&beans.Field{Name: "b", Type: "String", Modifiers: beans.Final},
	))
	require.NotNil(t, m)
	assert.Empty(t, c.Codes())
	require.Equal(t, 2, m.Properties.Len())

	a, b := m.Properties.Get("a"), m.Properties.Get("b")
	assert.True(t, a.Readable && a.Writable)
	assert.True(t, b.Readable)
	assert.False(t, b.Writable)
	assert.Equal(t, "a", a.Doc)
	assert.Equal(t, "b", b.Doc)
}

func TestImplicitConstructor(t *testing.T) {
	d := &beans.ClassDecl{Modifiers: beans.Public | beans.Abstract}
	c := beans.ImplicitConstructor(d)
	assert.Equal(t, beans.Public, c.Modifiers)
	assert.Empty(t, c.Params)
}
