// Command arrays generates the fixed-length array types of package packed.
//
//	go run ./internal/gen/arrays -o arrays_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

// Element types and their packed widths in bytes.
var elems = []struct {
	Name  string
	Width int
}{
	{"U8", 1}, {"U16", 2}, {"U32", 4}, {"U64", 8},
	{"I8", 1}, {"I16", 2}, {"I32", 4}, {"I64", 8},
}

// Lengths is the supported set of array lengths.
var lengths = []int{1, 2, 3, 4, 6, 8, 10, 12, 14, 16}

type arrayType struct {
	Name string
	Elem string
	Len  int
	Size int
}

var tmpl = template.Must(template.New("arrays").Parse(`// Code generated by internal/gen/arrays; DO NOT EDIT.

package packed
{{range .}}
// {{.Name}} is a packed array of {{.Len}} {{.Elem}}.
type {{.Name}} [{{.Len}}]{{.Elem}}

func ({{.Name}}) PackedSize() int { return {{.Size}} }

func (a *{{.Name}}) UnpackAt(buf []byte, offset int) error { return UnpackArray(a[:], buf, offset) }
{{end}}`))

func main() {
	out := flag.String("o", "arrays_gen.go", "output file")
	flag.Parse()

	if err := run(*out); err != nil {
		fmt.Fprintln(os.Stderr, "arrays:", err)
		os.Exit(1)
	}
}

func run(out string) error {
	var types []arrayType
	for _, e := range elems {
		for _, n := range lengths {
			types = append(types, arrayType{
				Name: fmt.Sprintf("%sx%d", e.Name, n),
				Elem: e.Name,
				Len:  n,
				Size: n * e.Width,
			})
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, types); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	return os.WriteFile(out, src, 0o644)
}
