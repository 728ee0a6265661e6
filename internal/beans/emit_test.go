package beans_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Alia5/beangen/internal/beans"
	"github.com/Alia5/beangen/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(props ...*beans.Property) *beans.Model {
	m := &beans.Model{
		PackageName:    "com.example",
		BeanClassName:  "Foo",
		StateClassName: "com.example.FooState",
		Constructors:   []beans.ConstructorModel{{Visibility: "public"}},
	}
	for _, p := range props {
		m.Properties.Add(p)
	}
	return m
}

func render(t *testing.T, m *beans.Model) string {
	t.Helper()
	out, err := beans.NewEmitter(diag.Root, "1.0.0").Render(m)
	require.NoError(t, err)
	return out
}

const roundTripGolden = `package com.example;

@javax.annotation.Generated({"beangen", "1.0.0"})
public class Foo extends com.example.FooState {

    public Foo() {
        super();
    }

    /**
     * Return the {@literal a}.
     *
     * @return the {@literal a}.
     */
    public int getA() {
        return a;
    }

    /**
     * Set the {@literal a}.
     *
     * @param a the {@literal a}.
     */
    public void setA(int a) {
        this.a = a;
    }

    /**
     * Return the {@literal b}.
     *
     * @return the {@literal b}.
     */
    public String getB() {
        return b;
    }

}
`

func TestEmitRoundTrip(t *testing.T) {
	sc := &beans.StateClass{
		Decl: beans.ClassDecl{QualifiedName: "com.example.FooState", Modifiers: beans.Public},
		FieldList: []*beans.Field{
			{Name: "a", Type: "int"},
			{Name: "b", Type: "String", Modifiers: beans.Final},
		},
		Ctors: []*beans.Constructor{{Modifiers: beans.Public}},
	}
	var c diag.Collector
	m := beans.NewExtractor(diag.Root, nil).Extract(sc, &c)
	require.NotNil(t, m)
	require.Empty(t, c.Codes())

	out := render(t, m)
	assert.Equal(t, roundTripGolden, out)
	assert.NotContains(t, out, "setB")
}

func TestEmitBoundProperties(t *testing.T) {
	m := newModel(&beans.Property{Name: "x", Type: "int", Readable: true, Writable: true, Doc: "x"})
	m.BoundProperties = true
	out := render(t, m)

	assert.Contains(t, out, "    java.beans.PropertyChangeSupport propertyChangeSupport =\n"+
		"        new java.beans.PropertyChangeSupport(this);\n")
	assert.NotContains(t, out, "VetoableChangeSupport")

	assert.Equal(t, 1, strings.Count(out, "public void addPropertyChangeListener(java.beans.PropertyChangeListener listener) {"))
	assert.Equal(t, 1, strings.Count(out, "public void addPropertyChangeListener(String propertyName, java.beans.PropertyChangeListener listener) {"))
	assert.Equal(t, 1, strings.Count(out, "public void removePropertyChangeListener(java.beans.PropertyChangeListener listener) {"))
	assert.Equal(t, 1, strings.Count(out, "public void removePropertyChangeListener(String propertyName, java.beans.PropertyChangeListener listener) {"))

	assert.Contains(t, out, "    public void addXChangeListener(java.beans.PropertyChangeListener listener) {\n"+
		"        propertyChangeSupport.addPropertyChangeListener(\"x\", listener);\n"+
		"    }\n")
	assert.Contains(t, out, "    public void removeXChangeListener(java.beans.PropertyChangeListener listener) {\n"+
		"        propertyChangeSupport.removePropertyChangeListener(\"x\", listener);\n"+
		"    }\n")

	assert.Contains(t, out, "    public void setX(int x) {\n"+
		"        int oldX = this.x;\n"+
		"        this.x = x;\n"+
		"        propertyChangeSupport.firePropertyChange(\"x\", oldX, x);\n"+
		"    }\n")

	classWide := strings.Index(out, "addPropertyChangeListener(java.beans")
	getter := strings.Index(out, "public int getX()")
	specific := strings.Index(out, "addXChangeListener")
	setter := strings.Index(out, "public void setX(")
	assert.Less(t, classWide, getter)
	assert.Less(t, getter, setter)
	assert.Less(t, setter, specific)
}

func TestEmitConstrainedProperties(t *testing.T) {
	m := newModel(&beans.Property{Name: "y", Type: "String", Readable: true, Writable: true, Doc: "y"})
	m.ConstrainedProperties = true
	out := render(t, m)

	assert.Contains(t, out, "    java.beans.VetoableChangeSupport vetoableChangeSupport =\n"+
		"        new java.beans.VetoableChangeSupport(this);\n")
	assert.Contains(t, out, "    public void setY(String y) throws java.beans.PropertyVetoException {\n"+
		"        String oldY = this.y;\n"+
		"        vetoableChangeSupport.fireVetoableChange(\"y\", oldY, y);\n"+
		"        this.y = y;\n"+
		"    }\n")
	assert.Contains(t, out, "     * @throws java.beans.PropertyVetoException if the recipient wishes the property change to be rolled back.\n")
	assert.Contains(t, out, "public void addYChangeListener(java.beans.VetoableChangeListener listener) {")
	assert.Equal(t, 1, strings.Count(out, "public void addVetoableChangeListener(java.beans.VetoableChangeListener listener) {"))
	assert.NotContains(t, out, "propertyChangeSupport")
}

func TestEmitArrayAccessors(t *testing.T) {
	m := newModel(&beans.Property{
		Name: "values", Type: "int[]", ComponentType: "int",
		Readable: true, Writable: true, Doc: "values",
	})
	m.BoundProperties = true
	m.ConstrainedProperties = true
	out := render(t, m)

	assert.Contains(t, out, "    public int[] getValues() {\n        return values;\n    }\n")
	assert.Contains(t, out, "    public int getValues(int n) throws ArrayIndexOutOfBoundsException {\n"+
		"        return values[n];\n"+
		"    }\n")
	assert.Contains(t, out, "    public void setValues(int n, int values) throws ArrayIndexOutOfBoundsException, java.beans.PropertyVetoException {\n"+
		"        int oldValues = this.values[n];\n"+
		"        vetoableChangeSupport.fireVetoableChange(new java.beans.IndexedPropertyChangeEvent(this, \"values\", oldValues, values, n));\n"+
		"        this.values[n] = values;\n"+
		"        propertyChangeSupport.fireIndexedPropertyChange(\"values\", n, oldValues, values);\n"+
		"    }\n")

	getter := strings.Index(out, "public int[] getValues()")
	indexedGetter := strings.Index(out, "public int getValues(int n)")
	setter := strings.Index(out, "public void setValues(int[] values)")
	indexedSetter := strings.Index(out, "public void setValues(int n, int values)")
	assert.Less(t, getter, indexedGetter)
	assert.Less(t, indexedGetter, setter)
	assert.Less(t, setter, indexedSetter)
}

func TestEmitScalarHasNoIndexedAccessors(t *testing.T) {
	out := render(t, newModel(&beans.Property{Name: "v", Type: "int", Readable: true, Writable: true, Doc: "v"}))
	assert.NotContains(t, out, "int n")
	assert.NotContains(t, out, "ArrayIndexOutOfBoundsException")
}

func TestEmitPlainSetterHasNoOldValue(t *testing.T) {
	out := render(t, newModel(&beans.Property{Name: "v", Type: "int", Readable: true, Writable: true, Doc: "v"}))
	assert.NotContains(t, out, "oldV")
	assert.Contains(t, out, "    public void setV(int v) {\n        this.v = v;\n    }\n")
}

func TestEmitBooleanGetter(t *testing.T) {
	out := render(t, newModel(
		&beans.Property{Name: "active", Type: "boolean", Readable: true, Doc: "active"},
		&beans.Property{Name: "flags", Type: "boolean[]", ComponentType: "boolean", Readable: true, Doc: "flags"},
		&beans.Property{Name: "boxed", Type: "Boolean", Readable: true, Doc: "boxed"},
	))
	assert.Contains(t, out, "public boolean isActive() {")
	assert.Contains(t, out, "public boolean[] getFlags() {")
	assert.Contains(t, out, "public boolean getFlags(int n)")
	assert.Contains(t, out, "public Boolean getBoxed() {")
}

func TestEmitWriteOnlyHasNoGetter(t *testing.T) {
	out := render(t, newModel(&beans.Property{Name: "secret", Type: "char[]", ComponentType: "char", Writable: true, Doc: "secret"}))
	assert.NotContains(t, out, "getSecret")
	assert.Contains(t, out, "public void setSecret(char[] secret) {")
	assert.Contains(t, out, "public void setSecret(int n, char secret) throws ArrayIndexOutOfBoundsException {")
}

func TestEmitReadOnlyHasNoListeners(t *testing.T) {
	m := newModel(&beans.Property{Name: "id", Type: "long", Readable: true, Doc: "id"})
	m.BoundProperties = true
	out := render(t, m)
	assert.NotContains(t, out, "addIdChangeListener")
	assert.Contains(t, out, "public void addPropertyChangeListener(java.beans.PropertyChangeListener listener) {")
}

func TestEmitHeaderAndConstructors(t *testing.T) {
	m := &beans.Model{
		BeanClassName:  "Foo",
		TypeParams:     "<T extends java.lang.Number>",
		StateClassName: "FooState<T>",
		Doc:            " A foo.\n <p>\n More.\n",
		Constructors: []beans.ConstructorModel{
			{
				Visibility:     "protected",
				TypeParams:     "<X>",
				ParameterTypes: []string{"int", "X"},
				ParameterNames: []string{"a", "b"},
				ThrownTypes:    []string{"java.io.IOException", "java.lang.Exception"},
				Doc:            " Creates a foo.\n",
			},
			{},
		},
	}
	out := render(t, m)

	assert.True(t, strings.HasPrefix(out, "/**\n * A foo.\n * <p>\n * More.\n */\n@javax.annotation.Generated"), out)
	assert.NotContains(t, out, "package ")
	assert.Contains(t, out, "public class Foo<T extends java.lang.Number> extends FooState<T> {\n\n")
	assert.Contains(t, out, "    /**\n     * Creates a foo.\n     */\n"+
		"    protected <X> Foo(int a, X b) throws java.io.IOException, java.lang.Exception {\n"+
		"        super(a, b);\n"+
		"    }\n")
	assert.Contains(t, out, "    Foo() {\n        super();\n    }\n")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestEmitJapaneseDocs(t *testing.T) {
	m := newModel(&beans.Property{Name: "name", Type: "String", Readable: true, Writable: true, Doc: "名前"})
	out, err := beans.NewEmitter(diag.Japanese, "1.0.0").Render(m)
	require.NoError(t, err)
	assert.Contains(t, out, "     * {@literal 名前} を返します。\n")
	assert.Contains(t, out, "     * @param name {@literal 名前}\n")
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestEmitPropagatesWriteError(t *testing.T) {
	errDiskFull := errors.New("disk full")
	err := beans.NewEmitter(diag.Root, "1.0.0").Emit(failingWriter{err: errDiskFull}, newModel())
	assert.ErrorIs(t, err, errDiskFull)
}

func TestJavadoc(t *testing.T) {
	type testCase struct {
		name     string
		comment  string
		indent   string
		expected string
	}

	testCases := []testCase{
		{name: "empty", comment: "", indent: "    ", expected: ""},
		{name: "plain", comment: "plain", indent: "    ", expected: "    /**\n     * plain\n     */\n"},
		{name: "javac style", comment: " line one\n line two\n", expected: "/**\n * line one\n * line two\n */\n"},
		{name: "leading blank line dropped", comment: "\n text\n", expected: "/**\n * text\n */\n"},
		{name: "blank lines kept bare", comment: " a\n \n b", expected: "/**\n * a\n *\n * b\n */\n"},
		{name: "space added only where missing", comment: "a\n\tb\n  c\n", expected: "/**\n * a\n *\tb\n *  c\n */\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, beans.Javadoc(tc.comment, tc.indent))
		})
	}
}

func TestFormatCatalogComplete(t *testing.T) {
	for f := beans.JDOC0000; f <= beans.JDOC0011; f++ {
		for _, loc := range diag.Locales() {
			assert.NotEmpty(t, f.Template(loc), "%s %s", f, loc)
		}
	}
	assert.Equal(t, "JDOC0004", beans.JDOC0004.String())
	assert.Equal(t,
		" Set the {@literal the name}.\n \n @param name the {@literal the name}.\n",
		beans.JDOC0002.Render(diag.Root, "the name", "name"))
}
