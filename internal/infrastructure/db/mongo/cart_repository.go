package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mercadito/ecommerce-api/internal/core/domain"
)

const cartsCollection = "carts"

// CartRepository owns the single active cart per user. GetOrCreate is the
// only path that inserts a cart document; reads always filter on is_active.
type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(cartsCollection)}
}

type mongoCartItem struct {
	ProductID string  `bson:"product_id"`
	Quantity  int     `bson:"quantity"`
	Price     float64 `bson:"price"`
}

type mongoCart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Items     []mongoCartItem    `bson:"items"`
	IsActive  bool               `bson:"is_active"`
	Version   int64              `bson:"version"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *CartRepository) GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := r.FindActiveByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, domain.ErrCartNotFound) {
		return nil, err
	}

	insertCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoCart{
		UserID:    userID,
		Items:     []mongoCartItem{},
		IsActive:  true,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(insertCtx, doc)
	if err != nil {
		// A concurrent first access may have inserted the cart already.
		if mongo.IsDuplicateKeyError(err) {
			return r.FindActiveByUser(ctx, userID)
		}
		return nil, fmt.Errorf("insert cart: %w", err)
	}

	created := doc.toDomain()
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return created, nil
}

func (r *CartRepository) FindActiveByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCart
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "is_active": true}).Decode(&mc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}
	return mc.toDomain(), nil
}

// Save replaces the cart's items conditionally on the version it was loaded
// at and bumps the version. A filter miss means another request persisted the
// cart in between; the caller gets ErrCartConflict and must retry from a
// fresh load.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	oid, err := primitive.ObjectIDFromHex(cart.ID)
	if err != nil {
		return domain.ErrCartNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	items := make([]mongoCartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, mongoCartItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "version": cart.Version, "is_active": true},
		bson.M{
			"$set": bson.M{"items": items, "updated_at": time.Now().UTC()},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCartConflict
	}

	cart.Version++
	return nil
}

// EnsureIndexes creates the partial unique index guaranteeing at most one
// active cart per user.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "is_active", Value: 1}},
	})
	return err
}

func (mc *mongoCart) toDomain() *domain.Cart {
	items := make([]domain.CartItem, 0, len(mc.Items))
	for _, it := range mc.Items {
		items = append(items, domain.CartItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}
	return &domain.Cart{
		ID:        mc.ID.Hex(),
		UserID:    mc.UserID,
		Items:     items,
		IsActive:  mc.IsActive,
		Version:   mc.Version,
		CreatedAt: mc.CreatedAt,
		UpdatedAt: mc.UpdatedAt,
	}
}
