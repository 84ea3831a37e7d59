package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/samgau/atelier-storefront/internal/cart"
	"github.com/samgau/atelier-storefront/pkg/enums"
	pkgerrors "github.com/samgau/atelier-storefront/pkg/errors"
	"github.com/samgau/atelier-storefront/pkg/logger"
	"github.com/samgau/atelier-storefront/pkg/types"
)

type cartStore interface {
	Items() []cart.Item
	Clear()
}

type sessionStore interface {
	Current() (types.Identity, bool)
	Refresh(ctx context.Context) *types.Identity
}

type orderPlacer interface {
	Place(ctx context.Context, input types.OrderInput) (*types.Order, error)
}

// Params wires the checkout flow to its collaborators.
type Params struct {
	Cart    cartStore
	Session sessionStore
	Orders  orderPlacer
	Logger  *logger.Logger
}

// Flow drives a cart through submission:
// idle -> validating -> submitting -> succeeded | failed.
// Only one submission runs at a time; the cart survives every failure
// untouched so the user can retry.
type Flow struct {
	mu    sync.Mutex
	state enums.CheckoutState

	cart    cartStore
	session sessionStore
	orders  orderPlacer
	logg    *logger.Logger
}

func New(params Params) (*Flow, error) {
	if params.Cart == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if params.Session == nil {
		return nil, fmt.Errorf("session store required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("orders client required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Flow{
		state:   enums.CheckoutStateIdle,
		cart:    params.Cart,
		session: params.Session,
		orders:  params.Orders,
		logg:    params.Logger,
	}, nil
}

func (f *Flow) State() enums.CheckoutState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit validates preconditions, snapshots the cart into an order
// payload, and posts it. On acceptance the cart is cleared and the
// session refreshed; on any rejection the cart is preserved unchanged
// and the server's message is surfaced verbatim.
func (f *Flow) Submit(ctx context.Context) (*types.Order, error) {
	f.mu.Lock()
	if f.state == enums.CheckoutStateSubmitting {
		f.mu.Unlock()
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "checkout already in progress")
	}
	f.state = enums.CheckoutStateValidating

	identity, ok := f.session.Current()
	if !ok {
		f.state = enums.CheckoutStateFailed
		f.mu.Unlock()
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}

	items := f.cart.Items()
	if len(items) == 0 {
		// Not a valid transition: no request, state back to idle.
		f.state = enums.CheckoutStateIdle
		f.mu.Unlock()
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	input := buildInput(identity.ID, items)
	f.state = enums.CheckoutStateSubmitting
	f.mu.Unlock()

	submitCtx := f.logg.WithComponent(ctx, "checkout")
	order, err := f.orders.Place(submitCtx, input)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = enums.CheckoutStateFailed
		f.logg.Warn(f.logg.WithField(submitCtx, "error", err.Error()), "order placement rejected, cart preserved")
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeServer, err, "Order placement error")
	}

	f.cart.Clear()
	f.session.Refresh(submitCtx)
	f.state = enums.CheckoutStateSucceeded
	f.logg.Info(f.logg.WithField(submitCtx, "order_id", order.ID), "order created")
	return order, nil
}

// buildInput snapshots product id, name, unit price, quantity and
// variant at submission time; later catalog changes do not reach a
// placed order.
func buildInput(userID string, items []cart.Item) types.OrderInput {
	orderItems := make([]types.OrderItem, 0, len(items))
	var total types.Money
	for _, item := range items {
		orderItems = append(orderItems, types.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Variant: types.OrderVariant{
				Size:  item.Variant.Size,
				Color: item.Variant.Color,
			},
		})
		total = total.Add(item.LineTotal())
	}
	return types.OrderInput{
		UserID: userID,
		Total:  total,
		Items:  orderItems,
	}
}
