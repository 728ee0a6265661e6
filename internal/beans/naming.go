package beans

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// BeanClassName derives the generated class's simple name from a state
// class's simple name. The first matching rule wins:
//
//	AbstractFoo   -> Foo
//	FooState      -> Foo
//	FooBean       -> FooBeanImpl
//	Foo           -> FooBean
func BeanClassName(stateClassName string) string {
	switch {
	case strings.HasPrefix(stateClassName, "Abstract"):
		return strings.TrimPrefix(stateClassName, "Abstract")
	case strings.HasSuffix(stateClassName, "State"):
		return strings.TrimSuffix(stateClassName, "State")
	case strings.HasSuffix(stateClassName, "Bean"):
		return stateClassName + "Impl"
	default:
		return stateClassName + "Bean"
	}
}

// PackageName returns the part of a qualified name before the last dot, or
// "" for a name in the unnamed package.
func PackageName(qualifiedName string) string {
	i := strings.LastIndexByte(qualifiedName, '.')
	if i < 0 {
		return ""
	}
	return qualifiedName[:i]
}

// QualifiedName joins a package and a simple name.
func QualifiedName(packageName, simpleName string) string {
	if packageName == "" {
		return simpleName
	}
	return packageName + "." + simpleName
}

// Capitalize upper-cases the first letter: "name" -> "Name".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}

// Decapitalize follows java.beans.Introspector: "Name" -> "name",
// "URL" -> "URL", "X" -> "x".
func Decapitalize(s string) string {
	if s == "" {
		return s
	}
	r0, n0 := utf8.DecodeRuneInString(s)
	if n0 == len(s) {
		return strings.ToLower(s)
	}
	r1, _ := utf8.DecodeRuneInString(s[n0:])
	if unicode.IsUpper(r0) && unicode.IsUpper(r1) {
		return s
	}
	return string(unicode.ToLower(r0)) + s[n0:]
}

// accessorSuffix returns the property name for an accessor-looking method
// name such as "getName" with prefix "get", or "" if the method does not
// follow the convention (the character after the prefix must be upper case).
func accessorSuffix(methodName, prefix string) string {
	if !strings.HasPrefix(methodName, prefix) || len(methodName) <= len(prefix) {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(methodName[len(prefix):])
	if !unicode.IsUpper(r) {
		return ""
	}
	return Decapitalize(methodName[len(prefix):])
}
