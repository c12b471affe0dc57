package cmd

import (
	"github.com/spf13/pflag"

	"github.com/marcus/slideover/pkg/ui/overlay"
)

// directionValue is a pflag.Value that only accepts overlay directions.
type directionValue struct {
	dir overlay.Direction
}

var _ pflag.Value = (*directionValue)(nil)

func (v *directionValue) String() string {
	return string(v.dir)
}

func (v *directionValue) Set(s string) error {
	d, err := overlay.ParseDirection(s)
	if err != nil {
		return err
	}
	v.dir = d
	return nil
}

func (v *directionValue) Type() string {
	return "direction"
}
