// Command gofdemo runs the object model's demo programs.
//
// Usage:
//
//	gofdemo [-list] [-i] [-v] [-lang tag] [-roster file.yaml] [-date YYYY-MM-DD] [demo ...]
//
// With no demo names, every demo runs in name order.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/text/language"

	"github.com/zephyrtronium/objmodel"
	// import for side effects
	_ "github.com/zephyrtronium/objmodel/demos"
	"github.com/zephyrtronium/objmodel/demos/standup"
	"github.com/zephyrtronium/objmodel/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gofdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	list := fs.Bool("list", false, "list demos and exit")
	interactive := fs.Bool("i", false, "choose a demo interactively")
	roster := fs.String("roster", "", "YAML roster for the standup demo")
	date := fs.String("date", "", "meeting date for the standup demo, as YYYY-MM-DD")
	verbose := fs.Bool("v", false, "log factory lookups of unknown kinds")
	lang := fs.String("lang", "", "BCP 47 language tag for number formatting; numbers are not grouped if empty")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	st := newStyles(stdout)
	if *list {
		for _, d := range objmodel.Demos() {
			fmt.Fprintln(stdout, st.listing(d))
		}
		return 0
	}

	c := objmodel.NewConsole(stdout, stderr)
	if *lang != "" {
		tag, err := language.Parse(*lang)
		if err != nil {
			c.Failf("bad -lang %q: %v", *lang, err)
			return 2
		}
		c = objmodel.NewConsoleLang(stdout, stderr, tag)
	}
	if *verbose {
		standup.Factory.Log = log.New(stderr, "gofdemo: ", log.Lmsgprefix)
	}
	// overrides replaces the Run of demos configured by flags.
	overrides := make(map[string]func(*objmodel.Console) error)
	if *roster != "" || *date != "" {
		r, err := loadRoster(*roster, *date)
		if err != nil {
			c.Failf("%v", err)
			return 1
		}
		overrides["standup"] = func(c *objmodel.Console) error {
			return standup.RunRoster(c, r, time.Now())
		}
	}

	var names []string
	if *interactive {
		name, err := pick(objmodel.Demos())
		if err != nil {
			c.Failf("%v", err)
			return 1
		}
		if name == "" {
			return 0
		}
		names = []string{name}
	} else {
		names = fs.Args()
	}

	demos, err := selectDemos(names)
	if err != nil {
		c.Failf("%v", err)
		return 1
	}
	status := 0
	for _, d := range demos {
		if len(demos) > 1 {
			fmt.Fprintln(stdout, st.header(d))
		}
		if f := overrides[d.Name]; f != nil {
			d.Run = f
		}
		if err := d.Run(c); err != nil {
			status = 1
		}
	}
	return status
}

// selectDemos looks up the named demos, or returns every demo if names is
// empty.
func selectDemos(names []string) ([]objmodel.Demo, error) {
	if len(names) == 0 {
		return objmodel.Demos(), nil
	}
	r := make([]objmodel.Demo, 0, len(names))
	for _, name := range names {
		d, ok := objmodel.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("no demo named %q; use -list to see them", name)
		}
		r = append(r, d)
	}
	return r, nil
}

// loadRoster loads the roster file at path, or the default roster if path is
// empty, and overrides its date if date is not empty.
func loadRoster(path, date string) (*config.Roster, error) {
	r := config.Default()
	if path != "" {
		var err error
		r, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}
	if date != "" {
		if _, err := time.Parse(config.DateLayout, date); err != nil {
			return nil, fmt.Errorf("bad -date %q: %w", date, err)
		}
		r.Date = date
	}
	return r, nil
}
