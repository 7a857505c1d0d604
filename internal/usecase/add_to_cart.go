package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/phenrril/flexlinen/internal/domain"
)

var ErrInvalidSelection = errors.New("invalid selection")

// MaxAddQuantity caps the units a single add request may carry.
const MaxAddQuantity = 99

type AddToCartRequest struct {
	ProductID string `json:"id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// CartUC adds catalog products to the cart the way the product page
// does: a size and color the product offers must be chosen, and the
// product is added once per requested unit.
type CartUC struct {
	Products *ProductUC
	Cart     *CartStore
}

func (uc *CartUC) Add(ctx context.Context, req AddToCartRequest) ([]*PendingOp, error) {
	p, err := uc.Products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 || req.Quantity > MaxAddQuantity {
		return nil, fmt.Errorf("%w: quantity %d", ErrInvalidSelection, req.Quantity)
	}
	if !p.HasSize(req.Size) {
		return nil, fmt.Errorf("%w: size %q not offered for %s", ErrInvalidSelection, req.Size, p.ID)
	}
	if !p.HasColor(req.Color) {
		return nil, fmt.Errorf("%w: color %q not offered for %s", ErrInvalidSelection, req.Color, p.ID)
	}
	ops := make([]*PendingOp, 0, req.Quantity)
	for i := 0; i < req.Quantity; i++ {
		ops = append(ops, uc.Cart.AddItem(domain.CartItem{Product: *p, Size: req.Size, Color: req.Color}))
	}
	return ops, nil
}

// WaitAll waits for every op and returns the state reported by the final
// one, along with the first write error seen.
func WaitAll(ctx context.Context, ops []*PendingOp) (domain.CartState, error) {
	var (
		last     domain.CartState
		firstErr error
	)
	for _, op := range ops {
		st, err := op.Wait(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return domain.CartState{}, err
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
		last = st
	}
	return last, firstErr
}
