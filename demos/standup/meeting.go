package standup

import (
	"errors"
	"time"

	"gitlab.com/variadico/lctime"

	"github.com/zephyrtronium/objmodel"
	"github.com/zephyrtronium/objmodel/internal/config"
)

// HeaderFormat is the strftime format of a meeting header.
const HeaderFormat = "=== %Y/%m/%d (%a) 朝会 ==="

// Meeting is a standup attended by employees created through Factory.
type Meeting struct {
	Date    time.Time
	Members []*Employee
}

// NewMeeting hires the roster's members through Factory. Members of unknown
// kinds are reported to c and skipped; the returned error is the first such
// failure, so the caller may decide whether a partial meeting is acceptable.
// If Factory.Log is set, it has already reported unknown kinds, and c does
// not report them again.
func NewMeeting(c *objmodel.Console, r *config.Roster, now time.Time) (*Meeting, error) {
	m := &Meeting{Date: r.MeetingDate(now)}
	var first error
	for _, member := range r.Members {
		e, err := CreateShain(member.Kind, member.BaseSalary)
		if err != nil {
			if Factory.Log == nil || !errors.Is(err, objmodel.ErrUnknownVariant) {
				c.Failf("エラー: 無効なタイプです: %v", err)
			}
			if first == nil {
				first = err
			}
			continue
		}
		m.Members = append(m.Members, e)
	}
	return m, first
}

// Header returns the meeting's header line.
func (m *Meeting) Header() string {
	return lctime.Strftime(HeaderFormat, m.Date)
}

// Hold writes the header and has each member stand up in order.
func (m *Meeting) Hold(c *objmodel.Console) error {
	c.Println(m.Header())
	for _, e := range m.Members {
		if err := e.Standup(c); err != nil {
			return err
		}
	}
	return nil
}

// Close releases every member.
func (m *Meeting) Close() {
	for _, e := range m.Members {
		e.Destroy()
	}
	m.Members = nil
}
