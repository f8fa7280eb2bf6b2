// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	"golang.org/x/tools/imports"
)

// Domain describes one descriptor type and the lane counts to emit for it.
type Domain struct {
	Type  string // descriptor type, e.g. "U32"
	Elem  string // element type, e.g. "uint32"
	Lanes []int
}

// DefaultDomains covers 128-bit and 256-bit registers for every domain.
var DefaultDomains = []Domain{
	{Type: "U32", Elem: "uint32", Lanes: []int{4, 8}},
	{Type: "S32", Elem: "int32", Lanes: []int{4, 8}},
	{Type: "U64", Elem: "uint64", Lanes: []int{2, 4}},
	{Type: "S64", Elem: "int64", Lanes: []int{2, 4}},
}

const lanesTemplate = `// Code generated by divgen. DO NOT EDIT.

package {{.Package}}
{{range $d := .Domains}}{{range $n := $d.Lanes}}
// Divide{{$n}} divides each of the {{$n}} lanes of n. The algorithm is
// classified once for the whole array.
func (d {{$d.Type}}) Divide{{$n}}(n [{{$n}}]{{$d.Elem}}) [{{$n}}]{{$d.Elem}} {
	div := d.Unswitched()
	var q [{{$n}}]{{$d.Elem}}
	for i, x := range n {
		q[i] = div(x)
	}
	return q
}
{{end}}{{end}}`

var tmpl = template.Must(template.New("lanes").Parse(lanesTemplate))

// Generator emits the fixed-lane array appliers.
type Generator struct {
	Package  string
	Filename string
	Domains  []Domain
}

// Generate writes the formatted source to w.
func (g *Generator) Generate(w io.Writer) error {
	if g.Package == "" {
		return fmt.Errorf("divgen: package name is required")
	}
	for _, d := range g.Domains {
		for _, n := range d.Lanes {
			if n <= 0 {
				return fmt.Errorf("divgen: %s: lane count %d must be positive", d.Type, n)
			}
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, g); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	formatted, err := imports.Process(g.Filename, buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("format %s: %w", g.Filename, err)
	}
	_, err = w.Write(formatted)
	return err
}
