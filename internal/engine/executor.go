package engine

import (
	"go.uber.org/zap"

	"dexScope/internal/model"
)

// Result is the outcome of one engine run.
type Result struct {
	Engine  string
	Summary string
	Err     error
}

// Executor runs a fixed list of engines over a snapshot, in order.
type Executor struct {
	engines []Engine
	logger  *zap.Logger
}

// NewExecutor builds an Executor.
func NewExecutor(logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{logger: logger}
}

// Add appends an engine to the run list.
func (e *Executor) Add(engine Engine) {
	e.engines = append(e.engines, engine)
}

// Run executes all engines. A failing engine is recorded and logged but
// does not stop the remaining engines.
func (e *Executor) Run(data *model.DexData) []Result {
	results := make([]Result, 0, len(e.engines))
	for _, engine := range e.engines {
		summary, err := engine.Execute(data)
		if err != nil {
			e.logger.Warn("engine failed", zap.String("engine", engine.Name()), zap.Error(err))
		} else {
			e.logger.Info("engine result", zap.String("engine", engine.Name()), zap.String("summary", summary))
		}
		results = append(results, Result{Engine: engine.Name(), Summary: summary, Err: err})
	}
	return results
}
