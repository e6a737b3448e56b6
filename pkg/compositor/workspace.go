package compositor

import (
	"fmt"
	"strconv"
	"strings"
)

// either Regular (numeric global id) or Special (named/scratchpad)
type Workspace struct {
	ID      int
	Special bool
}

func Regular(id int) Workspace {
	return Workspace{ID: id}
}

func Special() Workspace {
	return Workspace{Special: true}
}

func (w Workspace) String() string {
	if w.Special {
		return "special"
	}

	return fmt.Sprintf("regular<%d>", w.ID)
}

// "31" => Regular(31). "special", "special:term" and other non-numeric names are Special.
func ParseWorkspaceName(name string) Workspace {
	if strings.HasPrefix(name, "special") {
		return Special()
	}

	id, err := strconv.Atoi(strings.TrimSpace(name))
	if err != nil || id < 1 {
		return Special()
	}

	return Regular(id)
}
