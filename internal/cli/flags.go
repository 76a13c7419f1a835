package cli

import (
	"strconv"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/contrastfix/internal/contrast"
)

var (
	_ pflag.Value = (*targetValue)(nil)
	_ pflag.Value = (*lockValue)(nil)
)

// targetValue is a --target flag accepting WCAG level names or ratios.
type targetValue float64

func (t *targetValue) String() string {
	return strconv.FormatFloat(float64(*t), 'f', -1, 64)
}

func (t *targetValue) Set(s string) error {
	ratio, err := contrast.ParseTarget(s)
	if err != nil {
		return err
	}
	*t = targetValue(ratio)
	return nil
}

func (t *targetValue) Type() string {
	return "target"
}

// lockValue is a --lock flag. A single enum flag makes locking both colours
// impossible to express.
type lockValue contrast.Lock

func (l *lockValue) String() string {
	return contrast.Lock(*l).String()
}

func (l *lockValue) Set(s string) error {
	lock, err := contrast.ParseLock(s)
	if err != nil {
		return err
	}
	*l = lockValue(lock)
	return nil
}

func (l *lockValue) Type() string {
	return "lock"
}
