package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/nao1215/filetidy/internal/model"
)

// recordingStep is a test step that records whether it ran.
type recordingStep struct {
	name string
	ran  bool
	err  error
	// abort marks the report aborted when the step runs.
	abort bool
}

func (s *recordingStep) Do(_ context.Context, report *model.RunReport) error {
	s.ran = true
	if s.abort {
		report.MarkAborted("aborted by test step")
	}
	return s.err
}

func (s *recordingStep) Name() string {
	return s.name
}

// TestPipelineExecute tests basic step ordering and error handling.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("runs steps in order", func(t *testing.T) {
		t.Parallel()

		var order []string
		p := New()
		for _, name := range []string{"first", "second", "third"} {
			name := name
			p.AddStep(stepFunc(name, func(_ context.Context, _ *model.RunReport) error {
				order = append(order, name)
				return nil
			}))
		}

		report := model.NewRunReport(t.TempDir(), false, true)
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
			t.Errorf("unexpected execution order: %v", order)
		}
	})

	t.Run("stops on first error by default", func(t *testing.T) {
		t.Parallel()

		failing := &recordingStep{name: "failing", err: errors.New("boom")}
		after := &recordingStep{name: "after"}

		p := New()
		p.AddSteps(failing, after)

		report := model.NewRunReport(t.TempDir(), false, true)
		err := p.Execute(context.Background(), report)
		if err == nil {
			t.Fatal("expected error from failing step")
		}
		if after.ran {
			t.Error("expected later step to be skipped after failure")
		}
	})

	t.Run("continues on error when configured", func(t *testing.T) {
		t.Parallel()

		failing := &recordingStep{name: "failing", err: errors.New("boom")}
		after := &recordingStep{name: "after"}

		p := New(WithContinueOnError(true))
		p.AddSteps(failing, after)

		report := model.NewRunReport(t.TempDir(), false, true)
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !after.ran {
			t.Error("expected later step to run with WithContinueOnError")
		}
	})

	t.Run("abort ends the run cleanly", func(t *testing.T) {
		t.Parallel()

		aborting := &recordingStep{name: "aborting", abort: true}
		after := &recordingStep{name: "after"}

		p := New()
		p.AddSteps(aborting, after)

		report := model.NewRunReport(t.TempDir(), false, true)
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("expected clean stop, got error: %v", err)
		}
		if after.ran {
			t.Error("expected later step to be skipped after abort")
		}
		if !report.Aborted {
			t.Error("expected report to be marked aborted")
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		step := &recordingStep{name: "never"}
		p := New()
		p.AddStep(step)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		report := model.NewRunReport(t.TempDir(), false, true)
		err := p.Execute(ctx, report)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if step.ran {
			t.Error("expected no step to run after cancellation")
		}
	})
}

// TestPipelineStepNames tests step introspection helpers.
func TestPipelineStepNames(t *testing.T) {
	t.Parallel()

	p := New()
	p.AddSteps(
		&recordingStep{name: "one"},
		&recordingStep{name: "two"},
	)

	if p.StepCount() != 2 {
		t.Errorf("expected 2 steps, got %d", p.StepCount())
	}

	names := p.StepNames()
	if len(names) != 2 || names[0] != "one" || names[1] != "two" {
		t.Errorf("unexpected step names: %v", names)
	}
}

// TestDefaultPipeline verifies the standard pipeline layout.
func TestDefaultPipeline(t *testing.T) {
	t.Parallel()

	p := DefaultPipeline(nil, nil)

	names := p.StepNames()
	if len(names) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(names))
	}
	if names[0] != "resolve_path" {
		t.Errorf("expected first step 'resolve_path', got %q", names[0])
	}
	if names[1] != "sweep" {
		t.Errorf("expected second step 'sweep', got %q", names[1])
	}
}

// stepFunc adapts a function to the Step interface for tests.
type funcStep struct {
	name string
	fn   func(ctx context.Context, report *model.RunReport) error
}

func stepFunc(name string, fn func(ctx context.Context, report *model.RunReport) error) Step {
	return &funcStep{name: name, fn: fn}
}

func (s *funcStep) Do(ctx context.Context, report *model.RunReport) error {
	return s.fn(ctx, report)
}

func (s *funcStep) Name() string {
	return s.name
}
