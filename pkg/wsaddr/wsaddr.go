// Maps a (monitor ordinal, local workspace number) pair to one compositor-wide workspace
// number and back.
//
// Ordinal 0 means "unscoped" (the primary monitor): its workspaces are plainly 1..9. Any
// other ordinal prefixes the local number as the tens digit, so ordinal 3 owns 31..39.
//
// The scheme cannot address more than nine ringed monitors. Ordinals above MaxOrdinal are
// rejected instead of producing ids that collide with another monitor's range.
package wsaddr

import (
	"errors"
	"fmt"
)

const (
	MinLocal   = 1
	MaxLocal   = 9
	MaxOrdinal = 9
)

var ErrInvalidWorkspace = errors.New("invalid workspace")

type Address struct {
	Ordinal int // 0 = unscoped
	Local   int // 1..9
}

func (a Address) String() string {
	return fmt.Sprintf("ordinal<%d> local<%d>", a.Ordinal, a.Local)
}

// Encode returns the global workspace id for the address
func (a Address) Encode() (int, error) {
	return Encode(a.Ordinal, a.Local)
}

func Encode(ordinal int, local int) (int, error) {
	if local < MinLocal || local > MaxLocal {
		return 0, fmt.Errorf("%w: local workspace %d not in [%d, %d]", ErrInvalidWorkspace, local, MinLocal, MaxLocal)
	}

	if ordinal < 0 || ordinal > MaxOrdinal {
		return 0, fmt.Errorf("%w: monitor ordinal %d not in [0, %d]", ErrInvalidWorkspace, ordinal, MaxOrdinal)
	}

	if ordinal == 0 {
		return local, nil
	}

	return ordinal*10 + local, nil
}

// Decode is the inverse of Encode. ids 1..9 decode as unscoped.
func Decode(id int) (Address, error) {
	if id >= MinLocal && id <= MaxLocal {
		return Address{Ordinal: 0, Local: id}, nil
	}

	ordinal, local := id/10, id%10
	if id < 0 || ordinal < 1 || ordinal > MaxOrdinal || local < MinLocal {
		return Address{}, fmt.Errorf("%w: id %d is not a composite workspace id", ErrInvalidWorkspace, id)
	}

	return Address{Ordinal: ordinal, Local: local}, nil
}
