// Command funcschema generates a tool schema from a YAML signature file.
//
// Usage:
//
//	funcschema <file.yaml> <function> [format]
//
// The format is "openai" (default) or "claude". The schema is printed
// to stdout as indented JSON.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/funcschema/funcschema"
	"github.com/funcschema/funcschema/sigfile"
)

func main() {
	if len(os.Args) < 3 || len(os.Args) > 4 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.yaml> <function> [format]\n", os.Args[0])
		os.Exit(1)
	}

	path := os.Args[1]
	name := os.Args[2]

	format := funcschema.FormatOpenAI
	if len(os.Args) == 4 {
		parsed, err := funcschema.ParseFormat(os.Args[3])
		if errors.Is(err, funcschema.ErrUnknownFormat) {
			fmt.Fprintf(os.Stderr, "warning: unknown format %q, using %q\n", os.Args[3], parsed)
		}
		format = parsed
	}

	f, err := sigfile.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	def, ok := f.Find(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: function %q not found in %s\n", name, path)
		os.Exit(1)
	}

	doc := funcschema.GetSchema(def, format)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}
