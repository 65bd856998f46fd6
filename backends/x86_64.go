package backends

import (
	"context"
	"fmt"

	"github.com/reusee/simpleparser/simplang"
)

type X86_64 struct{}

var _ Backend = X86_64{}

func (X86_64) Execute(ctx context.Context, instructions []simplang.Instruction) error {
	return fmt.Errorf("%w: backend %s", ErrNotImplemented, NameX86_64)
}
