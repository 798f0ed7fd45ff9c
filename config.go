package datautil

import (
	"errors"
	"fmt"
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// PipelineConfig names the transforms of a pipeline, in order.
//
//	ops: [trim, remove_punctuation, title]
type PipelineConfig struct {
	Ops []string `json:"ops" yaml:"ops"`
}

// Validate checks that at least one op is given and that every op is known.
func (c *PipelineConfig) Validate() error {
	names := OpNames()
	allowed := make([]any, len(names))
	for i, n := range names {
		allowed[i] = n
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Ops,
			validation.Required,
			validation.Each(validation.Required, validation.In(allowed...)),
		),
	)
}

// Pipeline builds the configured pipeline.
func (c *PipelineConfig) Pipeline() (Pipeline, error) {
	return ParsePipeline(c.Ops...)
}

// LoadPipelineConfig decodes a YAML (or JSON) pipeline config from r and validates it.
func LoadPipelineConfig(r io.Reader) (*PipelineConfig, error) {
	var cfg PipelineConfig
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("pipeline config is empty")
		}
		return nil, fmt.Errorf("decode pipeline config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
