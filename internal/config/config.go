// Package config loads standup rosters: which employees attend a meeting and
// on what date.
package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v2"
)

// DateLayout is the layout of the date field in a roster.
const DateLayout = "2006-01-02"

// DefaultBaseSalary is the base salary of members that do not give one or
// give 0.
const DefaultBaseSalary = 100

// Roster is the top-level structure of a roster file:
//
//	date: 2024-04-01
//	members:
//	  - kind: Tanto
//	    base_salary: 100
//	  - kind: Bucho
type Roster struct {
	// Date is the meeting date. Empty means today.
	Date string `yaml:"date,omitempty"`
	// Members lists attendees in speaking order.
	Members []Member `yaml:"members"`
}

// Member is one attendee.
type Member struct {
	// Kind is the factory tag for the employee, e.g. Tanto.
	Kind string `yaml:"kind"`
	// BaseSalary is the member's base salary. Zero means DefaultBaseSalary,
	// whether the field is omitted or given explicitly as 0, so a roster
	// cannot describe a member with no base salary.
	BaseSalary int `yaml:"base_salary,omitempty"`
}

// LoadConfig reads and parses a roster file.
func LoadConfig(path string) (*Roster, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses roster content. The path argument is used only for
// error messages.
func ParseConfig(data []byte, path string) (*Roster, error) {
	var r Roster
	if err := yaml.UnmarshalStrict(data, &r); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := r.validate(path); err != nil {
		return nil, err
	}
	r.setDefaults()
	return &r, nil
}

// Default returns the roster of the classic standup: one of each kind with
// base salary 100.
func Default() *Roster {
	return &Roster{
		Members: []Member{
			{Kind: "Tanto", BaseSalary: DefaultBaseSalary},
			{Kind: "Shunin", BaseSalary: DefaultBaseSalary},
			{Kind: "Bucho", BaseSalary: DefaultBaseSalary},
		},
	}
}

// MeetingDate returns the roster's date, or now if it has none.
func (r *Roster) MeetingDate(now time.Time) time.Time {
	if r.Date == "" {
		return now
	}
	// validate has already checked the format.
	d, _ := time.ParseInLocation(DateLayout, r.Date, now.Location())
	return d
}

// Marshal renders the roster as YAML.
func (r *Roster) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

func (r *Roster) validate(path string) error {
	if len(r.Members) == 0 {
		return fmt.Errorf("%s: %w", path, errNoMembers)
	}
	if r.Date != "" {
		if _, err := time.Parse(DateLayout, r.Date); err != nil {
			return fmt.Errorf("%s: bad date %q: %w", path, r.Date, err)
		}
	}
	for i, m := range r.Members {
		if m.Kind == "" {
			return fmt.Errorf("%s: member %d: %w", path, i, errNoKind)
		}
		if m.BaseSalary < 0 {
			return fmt.Errorf("%s: member %d: negative base salary %d", path, i, m.BaseSalary)
		}
	}
	return nil
}

func (r *Roster) setDefaults() {
	for i := range r.Members {
		if r.Members[i].BaseSalary == 0 {
			r.Members[i].BaseSalary = DefaultBaseSalary
		}
	}
}

var (
	errNoMembers = errors.New("roster has no members")
	errNoKind    = errors.New("member has no kind")
)
