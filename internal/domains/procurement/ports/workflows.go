package ports

import (
	"context"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/application/types"
)

// WorkflowOrchestrator exposes durable workflow operations required by the procurement bounded context.
type WorkflowOrchestrator interface {
	AddToInventory(ctx context.Context, input types.AddToInventoryInput) (*types.ReconciliationResult, error)
	// AuditStock returns how many items sit under their reorder threshold.
	AuditStock(ctx context.Context) (int, error)
}
