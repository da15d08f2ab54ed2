package cleaning

import (
	"context"
	"fmt"

	"studentperf/internal/dataset"
)

// Stage is a single transformation over the record table. Apply must not
// mutate its input; it returns a fresh table.
type Stage interface {
	Name() string
	Apply(t dataset.Table, obs Observer) (dataset.Table, error)
}

// Pipeline runs the fixed stage sequence. Stages never run out of order.
type Pipeline struct {
	stages []Stage
}

// NewPipeline creates the pipeline with its contractual stage order.
func NewPipeline() *Pipeline {
	return &Pipeline{
		stages: []Stage{
			DedupStage{},
			SentinelStage{},
			CoerceStage{},
			ImputeStage{},
			StandardizeStage{},
			AgeBoundStage{},
			ClampStage{},
		},
	}
}

// Stages returns the ordered stage names, mainly for diagnostics.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

// Run applies every stage in order and returns the cleaned table. A stage
// error aborts the run; no partial result is returned.
func (p *Pipeline) Run(ctx context.Context, t dataset.Table, obs Observer) (dataset.Table, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return dataset.Table{}, err
		}
		rows, _ := t.Shape()
		obs.StageStarted(stage.Name(), rows)

		out, err := stage.Apply(t, obs)
		if err != nil {
			return dataset.Table{}, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}

		rows, _ = out.Shape()
		obs.StageCompleted(stage.Name(), rows)
		t = out
	}
	return t, nil
}
