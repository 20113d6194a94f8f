package pipeline

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/askiada/go-scorepipe/pkg/pipeline/model"
)

type Option func(p *Pipeline)

// WithOptions registers pipeline options notified around every step.
func WithOptions(opts ...model.PipelineOption) Option {
	return func(p *Pipeline) {
		p.opts = append(p.opts, opts...)
	}
}

// WithOutput sets where step banners are written.
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) {
		p.out = w
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}
