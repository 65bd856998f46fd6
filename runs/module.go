package runs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/simpleparser/backends"
	"github.com/reusee/simpleparser/debugs"
	"github.com/reusee/simpleparser/logs"
)

type Module struct {
	dscope.Module
	Logs     logs.Module
	Backends backends.Module
	Debugs   debugs.Module
}

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}
