package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/reoring/statedict/codec"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "convert":
		convertCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "statedict CLI\n\nUsage:\n  statedict convert -in state.json -to yaml [-o out.yaml]\n  statedict check -in state.json\n\nNotes:\n  - convert rewrites a persisted state dict between json and yaml.\n  - check lints a JSON state dict for duplicate object keys.")
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var in string
	var to string
	var out string
	fs.StringVar(&in, "in", "", "input state dict file (json or yaml by extension)")
	fs.StringVar(&to, "to", "", "output format: json or yaml")
	fs.StringVar(&out, "o", "", "output filename (default: stdout)")
	_ = fs.Parse(args)
	if in == "" || to == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(in)
	if err != nil {
		fatalf("reading input: %v", err)
	}

	var state map[string]any
	if strings.HasSuffix(in, ".yaml") || strings.HasSuffix(in, ".yml") {
		state, err = codec.FromYAML(data)
	} else {
		state, err = codec.FromJSON(data)
	}
	if err != nil {
		fatalf("loading state dict: %v", err)
	}

	var rendered []byte
	switch to {
	case "json":
		rendered, err = codec.ToJSONIndent(state)
	case "yaml":
		rendered, err = codec.ToYAML(state)
	default:
		fatalf("unknown output format %q", to)
	}
	if err != nil {
		fatalf("rendering state dict: %v", err)
	}

	if out == "" {
		fmt.Print(string(rendered))
		return
	}
	if err := os.WriteFile(out, rendered, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var in string
	var max int
	fs.StringVar(&in, "in", "", "input JSON state dict file")
	fs.IntVar(&max, "max-issues", -1, "maximum issues to report (-1: unlimited)")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(in)
	if err != nil {
		fatalf("reading input: %v", err)
	}
	iss, err := codec.DetectDuplicateKeys(data, codec.Warn, max)
	if err != nil {
		fatalf("scanning: %v", err)
	}
	for _, it := range iss {
		fmt.Fprintf(os.Stderr, "%s at %s: %s\n", it.Code, it.Path, it.Message)
	}
	if len(iss) > 0 {
		os.Exit(1)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "statedict: "+format+"\n", a...)
	os.Exit(1)
}
