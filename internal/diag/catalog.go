package diag

import "fmt"

// Code identifies a diagnostic message. The set is closed: every code has a
// catalog entry with text for each supported locale.
type Code int

const (
	CLS0000 Code = iota // interface
	CLS0001             // enum
	CLS0002             // annotation type
	CLS0003             // local class
	CLS0004             // nested class
	CLS0005             // final class
	CLS0006             // non-public class
	FLD0000             // @Property on private field
	FLD0001             // @Property on public field
	FLD0002             // @Property on static field
	FLD0003             // final field declared WRITE_ONLY
	CTOR0000            // constructor not public
	CTOR0001            // no constructor visible to the subclass
	APT0000             // writing generated source failed
	SRC0000             // input could not be read
	SRC0001             // input could not be parsed

	numCodes
)

type entry struct {
	name     string
	severity Severity
	text     [numLocales]string
}

var catalog = [numCodes]entry{
	CLS0000: {"CLS0000", Error, [numLocales]string{
		"@BeanState cannot be applied to an interface",
		"@BeanState アノテーションをインタフェースに付けることはできません",
	}},
	CLS0001: {"CLS0001", Error, [numLocales]string{
		"@BeanState cannot be applied to an enum",
		"@BeanState アノテーションを列挙に付けることはできません",
	}},
	CLS0002: {"CLS0002", Error, [numLocales]string{
		"@BeanState cannot be applied to an annotation type",
		"@BeanState アノテーションをアノテーションに付けることはできません",
	}},
	CLS0003: {"CLS0003", Error, [numLocales]string{
		"@BeanState cannot be applied to a local class",
		"@BeanState アノテーションをローカルクラスに付けることはできません",
	}},
	CLS0004: {"CLS0004", Error, [numLocales]string{
		"@BeanState cannot be applied to a nested class",
		"@BeanState アノテーションをネストしたクラスに付けることはできません",
	}},
	CLS0005: {"CLS0005", Error, [numLocales]string{
		"@BeanState cannot be applied to a final class",
		"@BeanState アノテーションを final クラスに付けることはできません",
	}},
	CLS0006: {"CLS0006", Error, [numLocales]string{
		"@BeanState cannot be applied to a non-public class",
		"@BeanState アノテーションを非 public クラスに付けることはできません",
	}},
	FLD0000: {"FLD0000", Error, [numLocales]string{
		"@Property cannot be applied to a private field",
		"@Property アノテーションを private フィールドに付けることはできません",
	}},
	FLD0001: {"FLD0001", Error, [numLocales]string{
		"@Property cannot be applied to a public field",
		"@Property アノテーションを public フィールドに付けることはできません",
	}},
	FLD0002: {"FLD0002", Error, [numLocales]string{
		"@Property cannot be applied to a static field",
		"@Property アノテーションを static フィールドに付けることはできません",
	}},
	FLD0003: {"FLD0003", Error, [numLocales]string{
		"a final field cannot be WRITE_ONLY",
		"final フィールドを WRITE_ONLY にすることはできません",
	}},
	CTOR0000: {"CTOR0000", Warning, [numLocales]string{
		"JavaBeans require a public default constructor",
		"JavaBeans には public のデフォルトコンストラクタが必要です",
	}},
	CTOR0001: {"CTOR0001", Error, [numLocales]string{
		"no constructor is visible to the generated subclass",
		"サブクラスから可視のコンストラクタがありません",
	}},
	APT0000: {"APT0000", Error, [numLocales]string{
		"failed to write generated source %[1]s: %[2]v",
		"生成したソース %[1]s の出力中に例外が発生しました．%[2]v",
	}},
	SRC0000: {"SRC0000", Error, [numLocales]string{
		"cannot read state declaration source %[1]s: %[2]v",
		"状態クラスのソース %[1]s を読み込めません．%[2]v",
	}},
	SRC0001: {"SRC0001", Error, [numLocales]string{
		"cannot parse state declaration source %[1]s: %[2]v",
		"状態クラスのソース %[1]s を解析できません．%[2]v",
	}},
}

// Codes returns every code in the catalog.
func Codes() []Code {
	out := make([]Code, numCodes)
	for i := range out {
		out[i] = Code(i)
	}
	return out
}

func (c Code) valid() bool { return c >= 0 && c < numCodes }

func (c Code) String() string {
	if !c.valid() {
		return fmt.Sprintf("Code(%d)", int(c))
	}
	return catalog[c].name
}

// Severity returns the severity every diagnostic with this code carries.
func (c Code) Severity() Severity {
	if !c.valid() {
		return Error
	}
	return catalog[c].severity
}

// Template returns the raw message format for loc.
func (c Code) Template(loc Locale) string {
	if !c.valid() {
		return ""
	}
	return catalog[c].text[loc.index()]
}

// Format renders the message for loc with positional args.
func (c Code) Format(loc Locale, args ...any) string {
	tmpl := c.Template(loc)
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// ParseCode looks a code up by name, e.g. "FLD0003".
func ParseCode(name string) (Code, bool) {
	for i, e := range catalog {
		if e.name == name {
			return Code(i), true
		}
	}
	return 0, false
}
