package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mercadito/ecommerce-api/internal/core/domain"
	"github.com/mercadito/ecommerce-api/internal/core/ports"
)

func TestProductService_Create(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:     "Keyboard",
		Price:    49.99,
		Category: "peripherals",
		Stock:    20,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if !created.IsActive {
		t.Fatal("new products must be active")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be stamped")
	}
}

func TestProductService_Update_Partial(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())
	id := repo.seed(10, 5)

	price := 12.5
	updated, err := svc.Update(context.Background(), id, ports.UpdateProductInput{Price: &price})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Price != 12.5 {
		t.Fatalf("expected price 12.5, got %v", updated.Price)
	}
	if updated.Stock != 5 || updated.Name != "Widget" {
		t.Fatalf("untouched fields must survive a partial update: %+v", updated)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	name := "x"
	if _, err := svc.Update(context.Background(), "missing", ports.UpdateProductInput{Name: &name}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete_Deactivates(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())
	id := repo.seed(10, 5)

	deleted, err := svc.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.IsActive {
		t.Fatal("delete must deactivate the product")
	}

	// Still readable by id, but invisible to the active-only lookup.
	if _, err := svc.Get(context.Background(), id); err != nil {
		t.Fatalf("soft-deleted products remain fetchable: %v", err)
	}
	if _, err := repo.FindActiveByID(context.Background(), id); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected active lookup to miss, got %v", err)
	}
}

func TestProductService_List_ClampsPagination(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())
	repo.seed(10, 5)

	// The clamped filter reaches the repository; the stub just echoes its
	// contents, so exercise the boundaries through the service.
	for _, tc := range []struct {
		page, limit int
	}{
		{0, 0},
		{-1, 500},
	} {
		products, total, err := svc.List(context.Background(), ports.ListProductsFilter{Page: tc.page, Limit: tc.limit})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if total != 1 || len(products) != 1 {
			t.Fatalf("expected the seeded product, got %d/%d", len(products), total)
		}
	}
}
