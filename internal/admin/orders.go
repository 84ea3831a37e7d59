package admin

import (
	"context"
	"fmt"
	"sync"

	"github.com/samgau/atelier-storefront/internal/orders"
	"github.com/samgau/atelier-storefront/pkg/enums"
	pkgerrors "github.com/samgau/atelier-storefront/pkg/errors"
	"github.com/samgau/atelier-storefront/pkg/logger"
	"github.com/samgau/atelier-storefront/pkg/types"
)

type orderAPI interface {
	List(ctx context.Context, params orders.ListParams) ([]types.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status enums.OrderStatus) (*types.Order, error)
}

type StatusBoardParams struct {
	Orders orderAPI
	Logger *logger.Logger
}

// StatusBoard is the admin order table. Status changes apply
// optimistically: the row flips immediately, and a server rejection
// rolls it back to the status it had before the change.
type StatusBoard struct {
	mu       sync.Mutex
	rows     []types.Order
	inFlight map[string]bool

	api  orderAPI
	logg *logger.Logger
}

func NewStatusBoard(params StatusBoardParams) (*StatusBoard, error) {
	if params.Orders == nil {
		return nil, fmt.Errorf("orders client required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &StatusBoard{
		inFlight: map[string]bool{},
		api:      params.Orders,
		logg:     params.Logger,
	}, nil
}

// Load fetches the order page, optionally narrowed to one status.
func (b *StatusBoard) Load(ctx context.Context, status enums.OrderStatus) error {
	rows, err := b.api.List(b.logg.WithComponent(ctx, "admin.orders"), orders.ListParams{Status: status})
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rows = rows
	return nil
}

// Orders returns a copy of the current rows.
func (b *StatusBoard) Orders() []types.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]types.Order, len(b.rows))
	copy(out, b.rows)
	return out
}

// Updating reports whether a status change for the order is in flight.
func (b *StatusBoard) Updating(orderID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inFlight[orderID]
}

// ChangeStatus flips the row to the new status, confirms it with the
// server, and rolls the row back when the server rejects the change.
// A second change for the same order while one is pending is refused.
func (b *StatusBoard) ChangeStatus(ctx context.Context, orderID string, next enums.OrderStatus) error {
	if !next.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown order status %q", next))
	}

	b.mu.Lock()
	idx := b.indexOf(orderID)
	if idx < 0 {
		b.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("order %s not on the board", orderID))
	}
	prev := b.rows[idx].Status
	if prev == next {
		b.mu.Unlock()
		return nil
	}
	if b.inFlight[orderID] {
		b.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeConflict, "status change already in progress")
	}
	b.inFlight[orderID] = true
	b.setStatus(idx, next)
	b.mu.Unlock()

	changeCtx := b.logg.WithComponent(ctx, "admin.orders")
	updated, err := b.api.UpdateStatus(changeCtx, orderID, next)

	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.inFlight, orderID)

	idx = b.indexOf(orderID)
	if err != nil {
		if idx >= 0 {
			b.setStatus(idx, prev)
		}
		b.logg.Warn(b.logg.WithFields(changeCtx, map[string]any{
			"order_id": orderID,
			"error":    err.Error(),
		}), "status change rejected, row rolled back")
		return err
	}
	if idx >= 0 {
		b.rows[idx] = *updated
	}
	b.logg.Info(b.logg.WithFields(changeCtx, map[string]any{
		"order_id": orderID,
		"status":   string(updated.Status),
	}), "order status changed")
	return nil
}

// indexOf and setStatus require b.mu held.
func (b *StatusBoard) indexOf(orderID string) int {
	for i, row := range b.rows {
		if row.ID == orderID {
			return i
		}
	}
	return -1
}

func (b *StatusBoard) setStatus(idx int, status enums.OrderStatus) {
	rows := make([]types.Order, len(b.rows))
	copy(rows, b.rows)
	rows[idx].Status = status
	b.rows = rows
}
