package beans

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Alia5/beangen/internal/diag"
)

// DefaultGenerator is the name carried by the generated-by marker.
const DefaultGenerator = "beangen"

const (
	memberIndent = "    "

	propertyChangeListener = "java.beans.PropertyChangeListener"
	vetoableChangeListener = "java.beans.VetoableChangeListener"
)

const beanTemplates = `
{{- define "header"}}{{if .Package}}package {{.Package}};

{{end}}{{.Doc}}@javax.annotation.Generated({"{{.Generator}}", "{{.Version}}"})
public class {{.Name}}{{.TypeParams}} extends {{.StateClass}} {

{{if .Bound}}    java.beans.PropertyChangeSupport propertyChangeSupport =
        new java.beans.PropertyChangeSupport(this);

{{end}}{{if .Constrained}}    java.beans.VetoableChangeSupport vetoableChangeSupport =
        new java.beans.VetoableChangeSupport(this);

{{end}}{{end}}

{{- define "constructor"}}{{.Doc}}    {{.Signature}}({{.Params}}){{if .Thrown}} throws {{.Thrown}}{{end}} {
        super({{.Args}});
    }

{{end}}

{{- define "listeners"}}{{.AddDoc}}    public void add{{.Kind}}ChangeListener({{.Listener}} listener) {
        {{.Support}}.add{{.Kind}}ChangeListener(listener);
    }

{{.AddNamedDoc}}    public void add{{.Kind}}ChangeListener(String propertyName, {{.Listener}} listener) {
        {{.Support}}.add{{.Kind}}ChangeListener(propertyName, listener);
    }

{{.RemoveDoc}}    public void remove{{.Kind}}ChangeListener({{.Listener}} listener) {
        {{.Support}}.remove{{.Kind}}ChangeListener(listener);
    }

{{.RemoveNamedDoc}}    public void remove{{.Kind}}ChangeListener(String propertyName, {{.Listener}} listener) {
        {{.Support}}.remove{{.Kind}}ChangeListener(propertyName, listener);
    }

{{end}}

{{- define "getter"}}{{.Doc}}    public {{.Type}} {{.Getter}}() {
        return {{.Name}};
    }

{{end}}

{{- define "indexedGetter"}}{{.Doc}}    public {{.ComponentType}} {{.Getter}}(int n) throws ArrayIndexOutOfBoundsException {
        return {{.Name}}[n];
    }

{{end}}

{{- define "setter"}}{{.Doc}}    public void set{{.Cap}}({{.Type}} {{.Name}}){{if .Constrained}} throws java.beans.PropertyVetoException{{end}} {
{{if .Old}}        {{.Type}} old{{.Cap}} = this.{{.Name}};
{{end}}{{if .Constrained}}        vetoableChangeSupport.fireVetoableChange("{{.Name}}", old{{.Cap}}, {{.Name}});
{{end}}        this.{{.Name}} = {{.Name}};
{{if .Bound}}        propertyChangeSupport.firePropertyChange("{{.Name}}", old{{.Cap}}, {{.Name}});
{{end}}    }

{{end}}

{{- define "indexedSetter"}}{{.Doc}}    public void set{{.Cap}}(int n, {{.ComponentType}} {{.Name}}) throws ArrayIndexOutOfBoundsException{{if .Constrained}}, java.beans.PropertyVetoException{{end}} {
{{if .Old}}        {{.ComponentType}} old{{.Cap}} = this.{{.Name}}[n];
{{end}}{{if .Constrained}}        vetoableChangeSupport.fireVetoableChange(new java.beans.IndexedPropertyChangeEvent(this, "{{.Name}}", old{{.Cap}}, {{.Name}}, n));
{{end}}        this.{{.Name}}[n] = {{.Name}};
{{if .Bound}}        propertyChangeSupport.fireIndexedPropertyChange("{{.Name}}", n, old{{.Cap}}, {{.Name}});
{{end}}    }

{{end}}

{{- define "propertyListeners"}}{{.AddDoc}}    public void add{{.Cap}}ChangeListener({{.Listener}} listener) {
        {{.Support}}.add{{.Kind}}ChangeListener("{{.Name}}", listener);
    }

{{.RemoveDoc}}    public void remove{{.Cap}}ChangeListener({{.Listener}} listener) {
        {{.Support}}.remove{{.Kind}}ChangeListener("{{.Name}}", listener);
    }

{{end}}

{{- define "footer"}}}
{{end}}`

var beanTmpl = template.Must(template.New("bean").Parse(beanTemplates))

// Emitter renders Models as Java source. It performs no validation and
// trusts the Model it is given.
type Emitter struct {
	Locale    diag.Locale
	Generator string
	Version   string
}

// NewEmitter returns an Emitter writing documentation in loc and stamping
// version into the generated-by marker.
func NewEmitter(loc diag.Locale, version string) *Emitter {
	return &Emitter{Locale: loc, Generator: DefaultGenerator, Version: version}
}

// Render returns the source text for m.
func (e *Emitter) Render(m *Model) (string, error) {
	var buf bytes.Buffer
	if err := e.Emit(&buf, m); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Emit writes the source text for m to w. The only error is w failing.
func (e *Emitter) Emit(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	if err := e.emit(bw, m); err != nil {
		return err
	}
	return bw.Flush()
}

func (e *Emitter) emit(w io.Writer, m *Model) error {
	if err := e.exec(w, "header", e.headerData(m)); err != nil {
		return err
	}
	for _, c := range m.Constructors {
		if err := e.exec(w, "constructor", newConstructorData(m, c)); err != nil {
			return err
		}
	}
	for _, l := range e.listenerKinds(m) {
		if err := e.exec(w, "listeners", e.listenersData(l)); err != nil {
			return err
		}
	}
	for _, p := range m.Properties.All() {
		if err := e.emitProperty(w, m, p); err != nil {
			return err
		}
	}
	return e.exec(w, "footer", nil)
}

func (e *Emitter) emitProperty(w io.Writer, m *Model, p *Property) error {
	d := propertyData{
		Name:          p.Name,
		Cap:           Capitalize(p.Name),
		Type:          p.Type,
		ComponentType: p.ComponentType,
		Getter:        getterName(p),
		Bound:         m.BoundProperties,
		Constrained:   m.ConstrainedProperties,
		Old:           m.BoundProperties || m.ConstrainedProperties,
	}
	if p.Readable {
		d.Doc = e.doc(JDOC0000, p.Doc)
		if err := e.exec(w, "getter", d); err != nil {
			return err
		}
		if p.IsArray() {
			d.Doc = e.doc(JDOC0001, p.Doc)
			if err := e.exec(w, "indexedGetter", d); err != nil {
				return err
			}
		}
	}
	if !p.Writable {
		return nil
	}

	setter, indexed := JDOC0002, JDOC0003
	if m.ConstrainedProperties {
		setter, indexed = JDOC0004, JDOC0005
	}
	d.Doc = e.doc(setter, p.Doc, p.Name)
	if err := e.exec(w, "setter", d); err != nil {
		return err
	}
	if p.IsArray() {
		d.Doc = e.doc(indexed, p.Doc, p.Name)
		if err := e.exec(w, "indexedSetter", d); err != nil {
			return err
		}
	}

	for _, l := range e.listenerKinds(m) {
		ld := propertyListenersData{
			listenerKind: l,
			Name:         p.Name,
			Cap:          d.Cap,
			AddDoc:       e.doc(JDOC0010, l.Listener, p.Doc),
			RemoveDoc:    e.doc(JDOC0011, l.Listener, p.Doc),
		}
		if err := e.exec(w, "propertyListeners", ld); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) exec(w io.Writer, name string, data any) error {
	return beanTmpl.ExecuteTemplate(w, name, data)
}

func (e *Emitter) doc(f Format, args ...any) string {
	return Javadoc(f.Render(e.Locale, args...), memberIndent)
}

type headerData struct {
	Package     string
	Doc         string
	Generator   string
	Version     string
	Name        string
	TypeParams  string
	StateClass  string
	Bound       bool
	Constrained bool
}

func (e *Emitter) headerData(m *Model) headerData {
	gen := e.Generator
	if gen == "" {
		gen = DefaultGenerator
	}
	return headerData{
		Package:     m.PackageName,
		Doc:         Javadoc(m.Doc, ""),
		Generator:   gen,
		Version:     e.Version,
		Name:        m.BeanClassName,
		TypeParams:  m.TypeParams,
		StateClass:  m.StateClassName,
		Bound:       m.BoundProperties,
		Constrained: m.ConstrainedProperties,
	}
}

type constructorData struct {
	Doc       string
	Signature string
	Params    string
	Thrown    string
	Args      string
}

func newConstructorData(m *Model, c ConstructorModel) constructorData {
	var sig []string
	if c.Visibility != "" {
		sig = append(sig, c.Visibility)
	}
	if c.TypeParams != "" {
		sig = append(sig, c.TypeParams)
	}
	sig = append(sig, m.BeanClassName)

	params := make([]string, len(c.ParameterTypes))
	for i, t := range c.ParameterTypes {
		params[i] = t + " " + c.ParameterNames[i]
	}
	return constructorData{
		Doc:       Javadoc(c.Doc, memberIndent),
		Signature: strings.Join(sig, " "),
		Params:    strings.Join(params, ", "),
		Thrown:    strings.Join(c.ThrownTypes, ", "),
		Args:      strings.Join(c.ParameterNames, ", "),
	}
}

type listenerKind struct {
	Kind     string
	Listener string
	Support  string
}

var (
	boundListeners       = listenerKind{Kind: "Property", Listener: propertyChangeListener, Support: "propertyChangeSupport"}
	constrainedListeners = listenerKind{Kind: "Vetoable", Listener: vetoableChangeListener, Support: "vetoableChangeSupport"}
)

func (e *Emitter) listenerKinds(m *Model) []listenerKind {
	var out []listenerKind
	if m.BoundProperties {
		out = append(out, boundListeners)
	}
	if m.ConstrainedProperties {
		out = append(out, constrainedListeners)
	}
	return out
}

type listenersData struct {
	listenerKind
	AddDoc         string
	AddNamedDoc    string
	RemoveDoc      string
	RemoveNamedDoc string
}

func (e *Emitter) listenersData(l listenerKind) listenersData {
	return listenersData{
		listenerKind:   l,
		AddDoc:         e.doc(JDOC0006, l.Listener),
		AddNamedDoc:    e.doc(JDOC0007, l.Listener),
		RemoveDoc:      e.doc(JDOC0008, l.Listener),
		RemoveNamedDoc: e.doc(JDOC0009, l.Listener),
	}
}

type propertyData struct {
	Doc           string
	Name          string
	Cap           string
	Type          string
	ComponentType string
	Getter        string
	Bound         bool
	Constrained   bool
	Old           bool
}

type propertyListenersData struct {
	listenerKind
	Name      string
	Cap       string
	AddDoc    string
	RemoveDoc string
}

// getterName is "is<X>" for boolean properties and "get<X>" otherwise. The
// indexed getter of a boolean[] property keeps "get".
func getterName(p *Property) string {
	if p.Type == "boolean" {
		return "is" + Capitalize(p.Name)
	}
	return "get" + Capitalize(p.Name)
}

// Javadoc renders comment as a documentation comment, one " *" line per
// comment line, each prefixed by indent. An empty first line is dropped and
// an empty comment renders as nothing.
func Javadoc(comment, indent string) string {
	if comment == "" {
		return ""
	}
	lines := strings.Split(strings.ReplaceAll(comment, "\r\n", "\n"), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s/**\n", indent)
	for _, line := range lines {
		switch {
		case strings.TrimSpace(line) == "":
			line = ""
		case line[0] != ' ' && line[0] != '\t':
			// separate the text from the star; javadoc strips one space
			line = " " + line
		}
		fmt.Fprintf(&b, "%s *%s\n", indent, line)
	}
	fmt.Fprintf(&b, "%s */\n", indent)
	return b.String()
}
