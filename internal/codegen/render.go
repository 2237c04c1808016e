package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"
	"text/template"
)

// Header marks generated files, following the Go convention recognised by
// linters and editors.
const Header = "// Code generated by enumgen. DO NOT EDIT."

const enumsImport = "github.com/on-the-ground/enum_ive_go/enums"

var fileTemplate = template.Must(template.New("enums").Funcs(template.FuncMap{
	"join":  strings.Join,
	"quote": strconv.Quote,
}).Parse(`{{.Header}}

package {{.Package}}

import "{{.Import}}"
{{range .Enums}}{{$e := .}}
{{range .Doc}}// {{.}}
{{end -}}
type {{.Name}} uint8

const (
{{- range $i, $c := .Consts}}
	{{$c}}{{if eq $i 0}} {{$e.Name}} = iota{{end}}
{{- end}}
)

// {{.Name}}Count is the number of {{.Name}} variants.
const {{.Name}}Count = {{len .Consts}}

var {{.TypeVar}} = enums.MustDeclare[{{.Name}}]({{quote .Name}}{{range .Labels}}, {{quote .}}{{end}})

// EnumType binds {{.Name}} to its declaration.
func ({{.Name}}) EnumType() *enums.Type[{{.Name}}] { return {{.TypeVar}} }

func (e {{.Name}}) String() string { return {{.TypeVar}}.Label(e) }

// Parse{{.Name}} returns the {{.Name}} variant labelled s.
func Parse{{.Name}}(s string) ({{.Name}}, error) { return {{.TypeVar}}.Parse(s) }

// New{{.Name}}Array returns an enums.Array holding one value per {{.Name}} variant,
// in declaration order.
func New{{.Name}}Array[V any]({{join .Params ", "}} V) *enums.Array[{{.Name}}, V] {
	return enums.MustNewArray[{{.Name}}]({{join .Params ", "}})
}
{{end}}`))

type fileView struct {
	Header  string
	Package string
	Import  string
	Enums   []enumView
}

type enumView struct {
	Name    string
	Doc     []string
	TypeVar string
	Consts  []string
	Labels  []string
	Params  []string
}

// Render validates f and returns the gofmt-ed Go source declaring its enums.
func Render(f File) ([]byte, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}

	view := fileView{Header: Header, Package: f.Package, Import: enumsImport}
	for _, d := range f.Enums {
		doc := d.Doc
		if doc == "" {
			doc = fmt.Sprintf("%s is a managed enum with %d variants.", d.Name, len(d.Variants))
		}
		view.Enums = append(view.Enums, enumView{
			Name:    d.Name,
			Doc:     strings.Split(strings.TrimSpace(doc), "\n"),
			TypeVar: typeVar(d.Name),
			Consts:  d.Constants(),
			Labels:  d.VariantLabels(),
			Params:  paramNames(d.Name, d.Variants),
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// paramNames derives constructor parameter names from variant names.
// Keywords and names shadowing what the constructor body refers to (the
// enums import, the enum type and the type parameter) get a trailing
// underscore.
func paramNames(typeName string, variants []string) []string {
	used := map[string]bool{"enums": true, typeName: true, "V": true}
	params := make([]string, len(variants))
	for i, v := range variants {
		p := lowerFirst(v)
		for token.IsKeyword(p) || used[p] {
			p += "_"
		}
		used[p] = true
		params[i] = p
	}
	return params
}
