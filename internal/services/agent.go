package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrNoModel = errors.New("run config has no model")

// Model generates a completion for one system instruction and one user input.
type Model interface {
	Generate(ctx context.Context, instructions, input string) (string, error)
}

// Agent is a named, fixed instruction set that a Model executes.
type Agent struct {
	Name         string
	Instructions string
}

// RunConfig is shared by every run and fixed at startup.
type RunConfig struct {
	Model   Model
	Timeout time.Duration
}

type RunResult struct {
	Agent       string
	FinalOutput string
}

// Run executes agent against input once. No retries.
func Run(ctx context.Context, agent Agent, input string, cfg RunConfig) (*RunResult, error) {
	if cfg.Model == nil {
		return nil, ErrNoModel
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	out, err := cfg.Model.Generate(ctx, agent.Instructions, input)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(out) == "" {
		return nil, fmt.Errorf("%s returned an empty response", agent.Name)
	}

	return &RunResult{
		Agent:       agent.Name,
		FinalOutput: out,
	}, nil
}
