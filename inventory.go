package main

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"
)

// featureNames fixes the report order. Every feature is printed even at zero
// so integrations can diff against an expected inventory.
var featureNames = []string{
	"type declarations",
	"generic type declarations",
	"iota enumerations",
	"function declarations",
	"generic function declarations",
	"method declarations",
	"function literals",
	"defer statements",
	"range loops",
	"type switches",
	"map types",
	"composite literals",
}

func newInventoryCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory [package]",
		Short: "Report which language constructs a package exercises",
		Long: strings.TrimSpace(`
Load a Go package and count the syntax constructs this fixture is built to
demonstrate: generic declarations, closures, defer statements, range loops,
type switches, and literal forms. With no argument the fixture inspects its
own source, which is how an editor integration verifies that the constructs
it highlights are actually present.

Standard library packages resolve by path suffix, the same way go doc
arguments do:

  go-syntaxdemo inventory strings
`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		pattern := "."
		if len(args) == 1 {
			pattern = args[0]
		}
		pkg, err := resolvePackage(ctx, pattern)
		if err != nil {
			return err
		}
		return writeOutput(app.opts.outputPath, app.stdout, renderInventory(pkg))
	}
	return cmd
}

func renderInventory(pkg *packages.Package) []byte {
	counts := countFeatures(pkg)
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package %s\n", pkg.PkgPath)
	for _, name := range featureNames {
		fmt.Fprintf(&buf, "  %-30s %4d\n", name, counts[name])
	}
	return buf.Bytes()
}

func countFeatures(pkg *packages.Package) map[string]int {
	counts := make(map[string]int, len(featureNames))
	for _, file := range pkg.Syntax {
		ast.Inspect(file, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.GenDecl:
				if n.Tok == token.CONST && usesIota(n) {
					counts["iota enumerations"]++
				}
			case *ast.TypeSpec:
				counts["type declarations"]++
				if n.TypeParams != nil && len(n.TypeParams.List) > 0 {
					counts["generic type declarations"]++
				}
			case *ast.FuncDecl:
				if n.Recv != nil {
					counts["method declarations"]++
				} else {
					counts["function declarations"]++
					if n.Type.TypeParams != nil && len(n.Type.TypeParams.List) > 0 {
						counts["generic function declarations"]++
					}
				}
			case *ast.FuncLit:
				counts["function literals"]++
			case *ast.DeferStmt:
				counts["defer statements"]++
			case *ast.RangeStmt:
				counts["range loops"]++
			case *ast.TypeSwitchStmt:
				counts["type switches"]++
			case *ast.MapType:
				counts["map types"]++
			case *ast.CompositeLit:
				counts["composite literals"]++
			}
			return true
		})
	}
	return counts
}

// usesIota reports whether a const declaration is an iota enumeration.
func usesIota(decl *ast.GenDecl) bool {
	found := false
	ast.Inspect(decl, func(n ast.Node) bool {
		if ident, ok := n.(*ast.Ident); ok && ident.Name == "iota" {
			found = true
			return false
		}
		return !found
	})
	return found
}

func loadPackage(ctx context.Context, pattern string) (*packages.Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedCompiledGoFiles | packages.NeedFiles |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo |
			packages.NeedModule | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no Go packages matched %q", pattern)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("%s", pkg.Errors[0])
	}
	return pkg, nil
}

func resolvePackage(ctx context.Context, expr string) (*packages.Package, error) {
	if expr == "" {
		expr = "."
	}
	if pkg, err := loadPackage(ctx, expr); err == nil {
		return pkg, nil
	}
	if match := matchStdSuffix(expr); match != "" {
		return loadPackage(ctx, match)
	}
	return nil, fmt.Errorf("could not resolve package path for %q", expr)
}

var (
	stdOnce     sync.Once
	stdPackages []string
	stdErr      error
)

func loadStdPackages() {
	cfg := &packages.Config{
		Mode: packages.NeedName,
	}
	pkgs, err := packages.Load(cfg, "std")
	if err != nil {
		stdErr = err
		return
	}
	for _, pkg := range pkgs {
		stdPackages = append(stdPackages, pkg.PkgPath)
	}
	sort.Strings(stdPackages)
}

func matchStdSuffix(arg string) string {
	if arg == "" {
		return ""
	}
	stdOnce.Do(loadStdPackages)
	if stdErr != nil {
		return ""
	}
	var best string
	for _, path := range stdPackages {
		if path == arg || strings.HasSuffix(path, "/"+arg) {
			if best == "" || path < best {
				best = path
			}
		}
	}
	return best
}
