package uadlist

import (
	"context"
	"fmt"
)

// Transform is a mutation or validation applied to a Document.
type Transform interface {
	Name() string
	Apply(ctx context.Context, d *Document) (*Document, error)
}

// Pipeline composes a sequence of Transforms.
type Pipeline struct {
	steps []Transform
}

func NewPipeline() *Pipeline { return &Pipeline{} }

func (p *Pipeline) Add(t Transform) *Pipeline {
	p.steps = append(p.steps, t)
	return p
}

// Run applies the steps in order. A step failure aborts the run with the
// error wrapped in the step's name.
func (p *Pipeline) Run(ctx context.Context, d *Document) (*Document, error) {
	cur := d
	for _, t := range p.steps {
		next, err := t.Apply(ctx, cur)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.Name(), err)
		}
		cur = next
	}
	return cur, nil
}
