package media

import (
	"context"

	"github.com/drussmiller/sparta-media-go/internal/port"
	"github.com/drussmiller/sparta-media-go/internal/repair"
)

type RepairRunner interface {
	RunRepair(ctx context.Context, in RunRepairInput) (repair.Summary, error)
}

type repairRunnerSrv struct {
	strg port.Storage
}

// NewRepairRunner wraps the repair scanner for on-demand triggering. It uses
// the raw storage client, not the breaker gateway: a batch pass should keep
// retrying against a slow store rather than short-circuit.
func NewRepairRunner(strg port.Storage) RepairRunner {
	return &repairRunnerSrv{strg: strg}
}

type RunRepairInput struct {
	Roots   []string `json:"roots" validate:"omitempty,dive,min=1"`
	Workers int      `json:"workers" validate:"omitempty,min=1,max=32"`
}

func (s *repairRunnerSrv) RunRepair(ctx context.Context, in RunRepairInput) (repair.Summary, error) {
	scanner := repair.NewScanner(s.strg, repair.Options{Roots: in.Roots, Workers: in.Workers})
	return scanner.Scan(ctx)
}
