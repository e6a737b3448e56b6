// Orders monitors left-to-right by their x offset and walks that order with wraparound.
package monitorring

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/function61/hyprws/pkg/compositor"
)

// compositor-assigned ID of the built-in / first monitor
const PrimaryID = 0

var ErrMonitorNotFound = errors.New("monitor not found")

type Direction string

const (
	Left  Direction = "L"
	Right Direction = "R"
)

// accepts "L" / "R" (any case) as well as "left" / "right"
func ParseDirection(input string) (Direction, error) {
	switch strings.ToLower(input) {
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	default:
		return "", fmt.Errorf("unknown direction '%s'; expected L or R", input)
	}
}

// immutable, built from one live snapshot
type Ring struct {
	monitors []compositor.Monitor
}

func New(monitors []compositor.Monitor) *Ring {
	sorted := append([]compositor.Monitor{}, monitors...)

	// stable so that monitors sharing an x offset (mirrors) keep compositor order
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	return &Ring{sorted}
}

func (r *Ring) Monitors() []compositor.Monitor {
	return append([]compositor.Monitor{}, r.monitors...)
}

// neighbour of monitor currentID in the given direction. wraps around both ends, which means a
// single-monitor ring returns that same monitor.
func (r *Ring) Next(currentID int, direction Direction) (*compositor.Monitor, error) {
	index, err := r.indexByID(currentID)
	if err != nil {
		return nil, err
	}

	n := len(r.monitors)

	switch direction {
	case Right:
		return &r.monitors[(index+1)%n], nil
	case Left:
		return &r.monitors[(index-1+n)%n], nil
	default:
		return nil, fmt.Errorf("unknown direction: %s", direction)
	}
}

// 0 for the primary monitor (compositor ID 0), which owns the unscoped workspaces 1-9 whether
// or not other monitors are attached. every other monitor gets its 1-based position in the
// left-to-right order, so no two monitors share an ordinal.
func (r *Ring) Ordinal(name string) (int, error) {
	for idx, monitor := range r.monitors {
		if monitor.Name == name {
			if monitor.ID == PrimaryID {
				return 0, nil
			}

			return idx + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrMonitorNotFound, name)
}

func (r *Ring) indexByID(id int) (int, error) {
	for idx, monitor := range r.monitors {
		if monitor.ID == id {
			return idx, nil
		}
	}

	return -1, fmt.Errorf("%w: id %d", ErrMonitorNotFound, id)
}
