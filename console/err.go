package console

import (
	"errors"

	"github.com/halfmoor/armlet/translate"
)

var f = translate.From

var (
	// Console errors
	ErrNotTerminal = errors.New(f("not a terminal"))
)
