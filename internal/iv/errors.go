package iv

import (
	"errors"
	"fmt"
)

// ErrUnsatisfiable is matched by every UnsatisfiableError.
var ErrUnsatisfiable = errors.New("no possible IVs")

// Stage names a filtering pass of the resolution engine.
type Stage uint8

const (
	StageStats Stage = iota
	StageCharacteristic
	StageHiddenPower
)

func (s Stage) String() string {
	switch s {
	case StageStats:
		return "stats"
	case StageCharacteristic:
		return "characteristic"
	case StageHiddenPower:
		return "hidden power"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// UnsatisfiableError reports the first stat left without candidates in strict mode.
type UnsatisfiableError struct {
	Stat  Stat
	Stage Stage
}

func (e *UnsatisfiableError) Error() string {
	return fmt.Sprintf("%s: %s has no candidates after %s filter", ErrUnsatisfiable, e.Stat, e.Stage)
}

func (e *UnsatisfiableError) Is(target error) bool {
	return target == ErrUnsatisfiable
}
