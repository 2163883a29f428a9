package repository

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"product-admin/internal/apperrors"
	"product-admin/internal/models"
)

// Operational errors surfaced by the repositories.
var (
	ErrDuplicateName   = apperrors.New("Product with this name already exists", http.StatusConflict)
	ErrProductNotFound = apperrors.NotFound("Product not found")
	ErrInvalidID       = apperrors.Validation("invalid product id")
)

const (
	writeTimeout = 5 * time.Second
	queryTimeout = 10 * time.Second
)

type ProductRepository struct {
	products *mongo.Collection
	users    *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		products: db.Collection("products"),
		users:    db.Collection("users"),
	}
}

// Create inserts a new product. When a product with the same name already
// exists it returns that record together with ErrDuplicateName; the unique
// index on name guarantees this even when two creates race past the
// pre-insert check.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	existing, err := r.findByName(ctx, product.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, ErrDuplicateName
	}

	product.ID = primitive.NewObjectID()
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := r.products.InsertOne(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			existing, ferr := r.findByName(ctx, product.Name)
			if ferr == nil && existing != nil {
				return existing, ErrDuplicateName
			}
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) findByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	err := r.products.FindOne(ctx, bson.M{"name": name}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindAll returns every product with created_by resolved to a reduced
// creator projection (name and email only).
func (r *ProductRepository) FindAll(ctx context.Context) ([]models.ProductView, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "created_by",
			"foreignField": "_id",
			"as":           "creator",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$creator",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"creator": bson.M{
				"name":  "$creator.name",
				"email": "$creator.email",
			},
		}}},
	}

	cursor, err := r.products.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	views := make([]models.ProductView, 0)
	if err := cursor.All(ctx, &views); err != nil {
		return nil, err
	}

	// Products without a creator come back with an empty summary document.
	for i := range views {
		if c := views[i].CreatedBy; c != nil && c.Name == "" && c.Email == "" {
			views[i].CreatedBy = nil
		}
	}
	return views, nil
}

// FindByID returns a single product by id.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var product models.Product
	err = r.products.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDWithCreator returns a product together with its creating user, or
// a nil user when the product has no creator or the creator no longer exists.
func (r *ProductRepository) FindByIDWithCreator(ctx context.Context, id string) (*models.Product, *models.User, error) {
	product, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if product.CreatedBy.IsZero() {
		return product, nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var user models.User
	err = r.users.FindOne(ctx, bson.M{"_id": product.CreatedBy}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return product, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return product, &user, nil
}

// Update applies the patch to the product and returns the updated document.
// Fields absent from the patch are left untouched.
func (r *ProductRepository) Update(ctx context.Context, id string, patch bson.M) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	patch["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product models.Product
	err = r.products.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": patch}, opts).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes the product and returns the deleted document. Deletion is
// physical; there is no soft-delete.
func (r *ProductRepository) Delete(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var product models.Product
	err = r.products.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
