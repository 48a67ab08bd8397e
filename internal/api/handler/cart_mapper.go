package handler

import "github.com/mercadito/ecommerce-api/internal/core/ports"

func toCartResponse(view *ports.CartView) cartResponse {
	items := make([]cartItemResponse, 0, len(view.Items))
	for _, it := range view.Items {
		item := cartItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
		if it.Product != nil {
			item.Product = &cartProductResponse{
				ID:       it.Product.ID,
				Name:     it.Product.Name,
				Price:    it.Product.Price,
				Image:    it.Product.Image,
				Stock:    it.Product.Stock,
				IsActive: it.Product.IsActive,
			}
		}
		items = append(items, item)
	}

	return cartResponse{
		ID:          view.ID,
		UserID:      view.UserID,
		Items:       items,
		TotalItems:  view.TotalItems,
		TotalAmount: view.TotalAmount,
	}
}
