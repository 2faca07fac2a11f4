package processor

import (
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

type Pipeline struct {
	logger *zerolog.Logger
}

func NewPipeline(logger *zerolog.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
	}
}

// Run loads the file at path and hands its content to p.
func (pl *Pipeline) Run(p Processor, path string) (any, error) {
	logger := pl.logger.With().Str("path", path).Logger()

	logger.Debug().Msg("Loading file...")
	data, err := Load(path)
	if err != nil {
		return nil, xerrors.Errorf("failed to load %s: %w", path, err)
	}

	logger.Debug().Int("bytes", len(data)).Msg("Processing data...")
	result, err := p.Process(data)
	if err != nil {
		return nil, xerrors.Errorf("failed to process %s: %w", path, err)
	}

	return result, nil
}

// RunPath is Run with the processor chosen from the file extension.
func (pl *Pipeline) RunPath(path string) (any, error) {
	p, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	return pl.Run(p, path)
}
