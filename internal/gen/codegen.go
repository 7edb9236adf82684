package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

// Render returns the formatted Go source for f.
// The filename is only used in error messages.
func Render(filename string, f *File) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}

var fileTmpl = template.Must(template.New("hetvec").Funcs(template.FuncMap{
	"pairField": pairField,
}).Parse(fileTemplate))

const fileTemplate = `// Code generated by hetvecgen. DO NOT EDIT.

package {{.Package}}

import "github.com/rogpeppe/hetvec"
{{range $c := .Collections}}
// {{$c.Name}} holds values of the types {{$c.TypeList}},
// each type in a partition of its own.
type {{$c.Name}} struct {
{{- range $c.Elems}}
	{{.Field}} hetvec.Partition[{{.Type}}]
{{- end}}
}

// {{$c.Name}}Elem holds a single value to be added to a {{$c.Name}}.
type {{$c.Name}}Elem struct {
	insert func(c *{{$c.Name}})
}
{{range $c.Elems}}
// {{$c.Name}}{{.Name}} returns an element that adds x to a {{$c.Name}}.
func {{$c.Name}}{{.Name}}(x {{.Type}}) {{$c.Name}}Elem {
	return {{$c.Name}}Elem{func(c *{{$c.Name}}) { c.Insert{{.Name}}(x) }}
}
{{end}}
// New{{$c.Name}} returns a {{$c.Name}} holding the given elements.
func New{{$c.Name}}(elems ...{{$c.Name}}Elem) *{{$c.Name}} {
	c := new({{$c.Name}})
	for _, e := range elems {
		e.insert(c)
	}
	return c
}
{{range $c.Elems}}
// Insert{{.Name}} adds x to the {{.Type}} partition of c.
func (c *{{$c.Name}}) Insert{{.Name}}(x {{.Type}}) {
	c.{{.Field}}.Push(x)
}
{{end}}
// Size returns the number of values in c.
func (c *{{$c.Name}}) Size() int {
	return {{range $i, $e := $c.Elems}}{{if $i}} + {{end}}c.{{$e.Field}}.Len(){{end}}
}

// Empty reports whether c holds no values.
func (c *{{$c.Name}}) Empty() bool {
	return c.Size() == 0
}

// Clear removes all values from c.
func (c *{{$c.Name}}) Clear() {
{{- range $c.Elems}}
	c.{{.Field}}.Reset()
{{- end}}
}

// {{$c.HandlerTypeName}} holds the handler for each ordered pair of
// element types: fI_J takes a value from partition I followed by
// a value from partition J.
type {{$c.HandlerTypeName}} struct {
{{- range $c.Pairs}}
	{{.Field}} func({{.First.Type}}, {{.Second.Type}}) error
{{- end}}
}

func (c *{{$c.Name}}) traverse(h *{{$c.HandlerTypeName}}) error {
{{- range $i, $e := $c.Elems}}
	if err := hetvec.Within(&c.{{$e.Field}}, h.{{pairField $i $i}}); err != nil {
		return err
	}
{{- with $c.Later $i}}
	for x := range c.{{$e.Field}}.All() {
{{- range .}}
		if err := hetvec.Forward(x, &c.{{.Field}}, h.{{pairField .Index $i}}, h.{{pairField $i .Index}}); err != nil {
			return err
		}
{{- end}}
	}
{{- end}}
{{- end}}
	return nil
}
{{range $v := $c.Visitors}}
// {{$v.Method}} calls v's handlers for every pair of values in c.
{{- if $v.ReturnsError}}
// It stops at the first error returned by a handler and returns it.
func (c *{{$c.Name}}) {{$v.Method}}(v {{$v.Param}}) error {
	return c.traverse(&{{$c.HandlerTypeName}}{
{{- else}}
func (c *{{$c.Name}}) {{$v.Method}}(v {{$v.Param}}) {
	c.traverse(&{{$c.HandlerTypeName}}{
{{- end}}
{{- range $v.Fields $c}}
{{- if and .ReturnsError (not .Fallback)}}
		{{.Field}}: v.{{.Method}},
{{- else}}
		{{.Field}}: func(a {{.First.Type}}, b {{.Second.Type}}) error {
{{- if .ReturnsError}}
			return v.{{.Method}}(a, b)
{{- else}}
			v.{{.Method}}(a, b)
			return nil
{{- end}}
		},
{{- end}}
{{- end}}
	})
}
{{end}}{{end}}`
