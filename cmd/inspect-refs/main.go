package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/speakeasy-api/schemadiff/schema"
)

func main() {
	inputs := map[string]string{}
	var names []string
	if len(os.Args) > 1 {
		for _, path := range os.Args[1:] {
			b, err := os.ReadFile(path)
			if err != nil {
				fmt.Printf("Read error: %v\n", err)
				continue
			}
			inputs[path] = string(b)
			names = append(names, path)
		}
	} else {
		samples := []string{
			`{"type":"object","properties":{"id":{"type":"string"},"tags":{"type":"array","items":{"type":"string","enum":["a","b"]}}}}`,
			`{"type":"object","oneOf":[{"type":"object","properties":{"x":{}}},{"type":"object","properties":{"y":{}}}]}`,
			`{"type":"array","items":{"type":"array","items":{"type":"number"}}}`,
		}
		for _, s := range samples {
			inputs[s] = s
			names = append(names, s)
		}
	}

	for _, name := range names {
		fmt.Printf("\n=== %s ===\n", name)
		s, err := schema.Parse(inputs[name])
		if err != nil {
			fmt.Printf("Parse error: %v\n", err)
			continue
		}

		var visits []schema.Visit
		width := len("(root)")
		schema.Walk(s, func(v schema.Visit) bool {
			visits = append(visits, v)
			width = max(width, runewidth.StringWidth(v.Ref))
			return true
		})

		for i, v := range visits {
			ref := v.Ref
			if ref == "" {
				ref = "(root)"
			}
			fmt.Printf("%3d: %s %s\n", i, runewidth.FillRight(ref, width), schema.Summary(v.Schema))
		}
	}
}
