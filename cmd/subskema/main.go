package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"

	subskema "github.com/reoring/subskema"
	"github.com/reoring/subskema/descriptor"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "resolve":
		resolveCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "subskema CLI\n\nUsage:\n  subskema resolve -schema schema.{json,yaml} -path \"users[].name\" [-input doc.json]\n\nNotes:\n  - resolve prints the kind of the sub-schema at the path.\n  - with -input, the JSON document is parsed against the resolved sub-schema.")
}

func resolveCmd(args []string) {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	var schemaFile string
	var path string
	var inputFile string
	fs.StringVar(&schemaFile, "schema", "", "schema descriptor file (JSON or YAML)")
	fs.StringVar(&path, "path", "", "selection path, e.g. users[].name")
	fs.StringVar(&inputFile, "input", "", "optional JSON document to parse at the path")
	_ = fs.Parse(args)
	if schemaFile == "" {
		fs.Usage()
		os.Exit(2)
	}

	root, err := importSchema(schemaFile)
	if err != nil {
		fatalf("importing schema: %v", err)
	}

	node, err := subskema.Resolve(root, path)
	if err != nil {
		fatalf("resolving %q: %v", path, err)
	}
	fmt.Println(node.Kind())

	if inputFile == "" {
		return
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		fatalf("reading input: %v", err)
	}
	var v any
	if err := gojson.Unmarshal(data, &v); err != nil {
		fatalf("decoding input: %v", err)
	}
	p, ok := node.(subskema.Parser)
	if !ok {
		fatalf("schema at %q does not support value parsing", path)
	}
	if _, err := p.ParseAny(context.Background(), v); err != nil {
		fatalf("input does not conform to schema at %q: %v", path, err)
	}
	fmt.Println("ok")
}

func importSchema(file string) (subskema.AnySchema, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return descriptor.ImportYAML(data)
	default:
		return descriptor.ImportJSON(data)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
