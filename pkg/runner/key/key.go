package key

import (
	"context"

	"tableflip.dev/shiftcycle/pkg/cycle"
	"tableflip.dev/shiftcycle/pkg/printers"
)

type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Key(cycle.Kinds())
	return nil
}
