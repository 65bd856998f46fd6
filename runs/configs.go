package runs

import (
	_ "embed"

	"github.com/reusee/simpleparser/configs"
	"github.com/reusee/simpleparser/logs"
)

//go:embed schema.cue
var schema string

var configFilenames = []string{
	"simpleparser.cue",
	".simpleparser.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := configs.Search(configFilenames...)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}
