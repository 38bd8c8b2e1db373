// Command opfn lists the functions in Go packages that can serve as
// operation bodies, i.e. whose types are assignable to objmodel.Fn. The
// output is a YAML map from package path to a map of operation names to
// function names, suitable as a starting point for a class's Bindings.
package main

import (
	"flag"
	"fmt"
	"go/token"
	"go/types"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
	"gopkg.in/yaml.v2"
)

func main() {
	var match, ignore string
	var objmodel string
	flag.StringVar(&match, "match", ".", "include only functions matching this regular expression")
	flag.StringVar(&ignore, "ignore", "$^", "exclude functions matching this regular expression")
	flag.StringVar(&objmodel, "objmodel", "github.com/zephyrtronium/objmodel", "import path for package objmodel source code")
	flag.Parse()
	mre, err := regexp.Compile(match)
	if err != nil {
		fail("error compiling match:", err)
	}
	ire, err := regexp.Compile(ignore)
	if err != nil {
		fail("error compiling ignore:", err)
	}

	fset := token.NewFileSet()
	config := packages.Config{Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedImports, Fset: fset}
	pkgs, err := packages.Load(&config, append([]string{objmodel}, flag.Args()...)...)
	if err != nil {
		fail("error loading packages:", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		os.Exit(1)
	}
	fn, err := getFn(pkgs[0].Types)
	if err != nil {
		fail(err)
	}
	out := yaml.MapSlice{}
	for _, pkg := range pkgs[1:] {
		names := find(pkg.Types.Scope(), fn, mre, ire)
		if len(names) == 0 {
			continue
		}
		out = append(out, yaml.MapItem{Key: pkg.PkgPath, Value: bindings(names, mre)})
	}
	if err := render(os.Stdout, out); err != nil {
		fail("error writing output:", err)
	}
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

// getFn finds the underlying type of Fn in pkg.
func getFn(pkg *types.Package) (types.Type, error) {
	r := pkg.Scope().Lookup("Fn")
	if r == nil {
		return nil, fmt.Errorf("%s has no definition of Fn", pkg.Name())
	}
	t, ok := r.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s has incorrect definition of Fn: %v", pkg.Name(), r)
	}
	return t.Type().Underlying(), nil
}

// find returns the sorted names of functions in scope assignable to fn that
// match mre and not ire.
func find(scope *types.Scope, fn types.Type, mre, ire *regexp.Regexp) []string {
	var r []string
	for _, name := range scope.Names() {
		if !mre.MatchString(name) || ire.MatchString(name) {
			continue
		}
		f, ok := scope.Lookup(name).(*types.Func)
		if ok && types.AssignableTo(f.Type(), fn) {
			r = append(r, name)
		}
	}
	sort.Strings(r)
	return r
}

// binding is the YAML form of one operation's body.
type binding struct {
	Fn string `yaml:"fn"`
}

// bindings maps operation names to the functions named in names.
func bindings(names []string, mre *regexp.Regexp) yaml.MapSlice {
	r := make(yaml.MapSlice, 0, len(names))
	for _, name := range names {
		r = append(r, yaml.MapItem{Key: trimMatch(name, mre), Value: binding{Fn: name}})
	}
	return r
}

func render(w io.Writer, out yaml.MapSlice) error {
	b, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// trimMatch derives an operation name from a function name by removing the
// prefix matched by mre and lowering the first letter.
func trimMatch(name string, mre *regexp.Regexp) string {
	if mre.String() != "." {
		k := mre.FindStringIndex(name)
		name = name[k[1]:]
	}
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
