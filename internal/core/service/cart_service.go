package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mercadito/ecommerce-api/internal/api/metrics"
	"github.com/mercadito/ecommerce-api/internal/core/domain"
	"github.com/mercadito/ecommerce-api/internal/core/ports"
)

// CartService implements the cart mutation engine: per-product aggregation,
// stock ceilings, and the denormalized product join on responses.
type CartService struct {
	carts   ports.CartRepository
	stock   ports.StockGuard
	catalog ports.ProductReader
	logger  zerolog.Logger
}

func NewCartService(carts ports.CartRepository, stock ports.StockGuard, catalog ports.ProductReader, logger zerolog.Logger) *CartService {
	return &CartService{carts: carts, stock: stock, catalog: catalog, logger: logger}
}

func (s *CartService) Get(ctx context.Context, userID string) (*ports.CartView, error) {
	cart, err := s.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

// AddItem inserts quantity of a product into the user's cart, creating the
// cart on first use. An existing entry aggregates: the new total must fit the
// stock, and the prior price snapshot is kept. Only a brand-new entry stamps
// the product's current price.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*ports.CartView, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.stock.CheckAvailable(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing, ok := cart.Item(productID); ok {
		total := existing.Quantity + quantity
		if total > product.Stock {
			metrics.StockRejectionsTotal.Inc()
			return nil, &domain.InsufficientStockError{
				Available: product.Stock,
				InCart:    existing.Quantity,
				Requested: quantity,
			}
		}
		existing.Quantity = total
		cart.SetItem(existing)
	} else {
		cart.SetItem(domain.CartItem{ProductID: productID, Quantity: quantity, Price: product.Price})
	}

	if err := s.save(ctx, cart, "add"); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("product_id", productID).
		Int("quantity", quantity).
		Msg("item added to cart")

	return s.view(ctx, cart)
}

// UpdateItem overwrites an existing entry's quantity and restamps its price
// snapshot to the product's current price. Unlike AddItem this is a full
// overwrite, not an increment.
func (s *CartService) UpdateItem(ctx context.Context, userID, productID string, quantity int) (*ports.CartView, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.stock.CheckAvailable(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, ok := cart.Item(productID); !ok {
		return nil, domain.ErrItemNotFound
	}

	cart.SetItem(domain.CartItem{ProductID: productID, Quantity: quantity, Price: product.Price})

	if err := s.save(ctx, cart, "update"); err != nil {
		return nil, err
	}

	return s.view(ctx, cart)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*ports.CartView, error) {
	cart, err := s.carts.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !cart.RemoveItem(productID) {
		return nil, domain.ErrItemNotFound
	}

	if err := s.save(ctx, cart, "remove"); err != nil {
		return nil, err
	}

	return s.view(ctx, cart)
}

// Clear empties the cart. Clearing an already-empty cart succeeds; a user
// with no active cart at all gets ErrCartNotFound.
func (s *CartService) Clear(ctx context.Context, userID string) (*ports.CartView, error) {
	cart, err := s.carts.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.ClearItems()

	if err := s.save(ctx, cart, "clear"); err != nil {
		return nil, err
	}

	return s.view(ctx, cart)
}

// Summary never fails on a missing cart: a user without one gets zeros.
func (s *CartService) Summary(ctx context.Context, userID string) (*ports.CartSummary, error) {
	cart, err := s.carts.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return &ports.CartSummary{}, nil
		}
		return nil, err
	}

	return &ports.CartSummary{
		TotalItems:  cart.TotalItems(),
		TotalAmount: cart.TotalAmount(),
		ItemsCount:  len(cart.Items),
	}, nil
}

func (s *CartService) save(ctx context.Context, cart *domain.Cart, op string) error {
	if err := s.carts.Save(ctx, cart); err != nil {
		metrics.CartMutationsTotal.WithLabelValues(op, "error").Inc()
		if errors.Is(err, domain.ErrCartConflict) {
			s.logger.Warn().Str("cart_id", cart.ID).Str("op", op).Msg("concurrent cart write detected")
		} else {
			s.logger.Error().Err(err).Str("cart_id", cart.ID).Str("op", op).Msg("failed to persist cart")
		}
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues(op, "ok").Inc()
	return nil
}

// view attaches live product details to each cart item. The catalog read goes
// through the cached reader: slightly stale display data is acceptable, the
// authoritative check already happened at mutation time.
func (s *CartService) view(ctx context.Context, cart *domain.Cart) (*ports.CartView, error) {
	ids := make([]string, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.ProductID)
	}

	products, err := s.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]ports.CartItemView, 0, len(cart.Items))
	for _, it := range cart.Items {
		view := ports.CartItemView{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
		if p, ok := products[it.ProductID]; ok {
			view.Product = &ports.ProductDetails{
				ID:       p.ID,
				Name:     p.Name,
				Price:    p.Price,
				Image:    p.Image,
				Stock:    p.Stock,
				IsActive: p.IsActive,
			}
		}
		items = append(items, view)
	}

	return &ports.CartView{
		ID:          cart.ID,
		UserID:      cart.UserID,
		Items:       items,
		TotalItems:  cart.TotalItems(),
		TotalAmount: cart.TotalAmount(),
	}, nil
}
