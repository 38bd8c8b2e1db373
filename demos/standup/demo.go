package standup

import (
	"time"

	"github.com/zephyrtronium/objmodel"
	"github.com/zephyrtronium/objmodel/internal/config"
)

func init() {
	objmodel.Register(objmodel.Demo{
		Name:    "standup",
		Summary: "Tanto, Shunin, and Bucho answer through one template method",
		Run:     Run,
	})
}

// Run holds today's meeting with the default roster.
func Run(c *objmodel.Console) error {
	return RunRoster(c, config.Default(), time.Now())
}

// RunRoster holds a meeting for the roster. Unknown member kinds abort the
// meeting after being reported.
func RunRoster(c *objmodel.Console, r *config.Roster, now time.Time) error {
	m, err := NewMeeting(c, r, now)
	defer m.Close()
	if err != nil {
		return err
	}
	return m.Hold(c)
}
