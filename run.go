package main

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

type options struct {
	list       bool
	annotate   bool
	colorMode  string
	outputPath string
}

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	opts   options
}

func run(argv []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func (app *cliApp) execute(positionals []string) error {
	if err := applyColorMode(app.opts.colorMode); err != nil {
		return err
	}
	if app.opts.list {
		return writeOutput(app.opts.outputPath, app.stdout, renderSectionList())
	}
	selected, err := selectSections(positionals)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for i, sec := range selected {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		fmt.Fprintln(&buf, bannerStyle.Render("=== "+sec.title+" ==="))
		if app.opts.annotate {
			fmt.Fprintln(&buf, highlightSource(sec.snippet))
		}
		sec.run(&buf, app.stderr)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, bannerStyle.Render("=== done ==="))
	return writeOutput(app.opts.outputPath, app.stdout, buf.Bytes())
}

func renderSectionList() []byte {
	var buf bytes.Buffer
	for _, sec := range sections {
		fmt.Fprintf(&buf, "%s  %s\n", nameStyle.Render(fmt.Sprintf("%-12s", sec.name)), sec.summary)
	}
	return buf.Bytes()
}

// selectSections resolves positional arguments to registry entries. With no
// arguments every section runs; otherwise the named ones run, always in
// registry order regardless of the order given.
func selectSections(names []string) ([]section, error) {
	if len(names) == 0 {
		return sections, nil
	}
	want := make(map[string]bool, len(names))
	for _, name := range names {
		want[name] = true
	}
	var selected []section
	for _, sec := range sections {
		if want[sec.name] {
			selected = append(selected, sec)
			delete(want, sec.name)
		}
	}
	if len(want) > 0 {
		unknown := slices.Sorted(maps.Keys(want))
		return nil, fmt.Errorf("unknown section %s (valid sections: %s)",
			strings.Join(unknown, ", "), strings.Join(sectionNames(), ", "))
	}
	return selected, nil
}

func sectionNames() []string {
	names := make([]string, len(sections))
	for i, sec := range sections {
		names[i] = sec.name
	}
	return names
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
