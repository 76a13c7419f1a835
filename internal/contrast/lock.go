package contrast

import (
	"fmt"
	"strings"
)

// Lock records which colour, if any, must not be changed by the search.
// Locking one colour implicitly unlocks the other.
type Lock int

const (
	// LockNone leaves both colours adjustable.
	LockNone Lock = iota
	// LockText keeps the text colour fixed; only the background moves.
	LockText
	// LockBackground keeps the background fixed; only the text moves.
	LockBackground
)

func (l Lock) String() string {
	switch l {
	case LockNone:
		return "none"
	case LockText:
		return "text"
	case LockBackground:
		return "background"
	default:
		return fmt.Sprintf("Lock(%d)", int(l))
	}
}

// ParseLock parses a lock name as accepted on the command line.
func ParseLock(s string) (Lock, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return LockNone, nil
	case "text", "fg", "foreground":
		return LockText, nil
	case "background", "bg":
		return LockBackground, nil
	default:
		return LockNone, fmt.Errorf("invalid lock %q (valid: none, text, background)", s)
	}
}

// LockFromFlags converts a pair of independent lock flags into a Lock.
// Both flags set is rejected with ErrUnresolvableLockState.
func LockFromFlags(textLocked, bgLocked bool) (Lock, error) {
	switch {
	case textLocked && bgLocked:
		return LockNone, ErrUnresolvableLockState
	case textLocked:
		return LockText, nil
	case bgLocked:
		return LockBackground, nil
	default:
		return LockNone, nil
	}
}

func (l Lock) valid() bool {
	return l >= LockNone && l <= LockBackground
}
