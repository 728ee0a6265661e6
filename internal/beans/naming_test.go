package beans_test

import (
	"testing"

	"github.com/Alia5/beangen/internal/beans"
	"github.com/stretchr/testify/assert"
)

func TestBeanClassName(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		expected string
	}

	testCases := []testCase{
		{name: "abstract prefix", input: "AbstractFoo", expected: "Foo"},
		{name: "state suffix", input: "FooState", expected: "Foo"},
		{name: "bean suffix", input: "FooBean", expected: "FooBeanImpl"},
		{name: "plain", input: "Foo", expected: "FooBean"},
		{name: "prefix wins over suffix", input: "AbstractFooState", expected: "FooState"},
		{name: "state wins over bean", input: "BeanState", expected: "Bean"},
		{name: "abstract prefix keeps bean suffix", input: "AbstractFooBean", expected: "FooBean"},
		{name: "state suffix keeps bean", input: "FooBeanState", expected: "FooBean"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, beans.BeanClassName(tc.input))
		})
	}
}

func TestDecapitalize(t *testing.T) {
	assert.Equal(t, "name", beans.Decapitalize("Name"))
	assert.Equal(t, "URL", beans.Decapitalize("URL"))
	assert.Equal(t, "x", beans.Decapitalize("X"))
	assert.Equal(t, "fooBar", beans.Decapitalize("FooBar"))
	assert.Equal(t, "", beans.Decapitalize(""))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Name", beans.Capitalize("name"))
	assert.Equal(t, "URL", beans.Capitalize("URL"))
	assert.Equal(t, "", beans.Capitalize(""))
}

func TestPackageName(t *testing.T) {
	assert.Equal(t, "com.example", beans.PackageName("com.example.FooState"))
	assert.Equal(t, "", beans.PackageName("FooState"))
	assert.Equal(t, "com.example.Foo", beans.QualifiedName("com.example", "Foo"))
	assert.Equal(t, "Foo", beans.QualifiedName("", "Foo"))
}

func TestComponentType(t *testing.T) {
	assert.Equal(t, "int", beans.ComponentType("int[]"))
	assert.Equal(t, "java.lang.String[]", beans.ComponentType("java.lang.String[][]"))
	assert.Equal(t, "", beans.ComponentType("int"))
}
