package handlers

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"product-admin/internal/apperrors"
	"product-admin/internal/cache"
	"product-admin/internal/middleware"
	"product-admin/internal/models"
	"product-admin/internal/repository"
)

const (
	listCacheKey       = "products:list"
	productCachePrefix = "products:id:"
)

// ProductStore is the storage surface the handlers need. Implemented by
// repository.ProductRepository.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.ProductView, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindByIDWithCreator(ctx context.Context, id string) (*models.Product, *models.User, error)
	Update(ctx context.Context, id string, patch bson.M) (*models.Product, error)
	Delete(ctx context.Context, id string) (*models.Product, error)
}

// AuditRecorder records mutation audit entries. Implemented by
// repository.AuditRepository.
type AuditRecorder interface {
	Record(ctx context.Context, entry *models.AuditLog) error
}

type ProductHandler struct {
	store  ProductStore
	audit  AuditRecorder
	cache  *cache.Cache
	logger *zap.Logger
}

func NewProductHandler(store ProductStore, audit AuditRecorder, c *cache.Cache, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		store:  store,
		audit:  audit,
		cache:  c,
		logger: logger,
	}
}

// CreateProduct handles POST /api/products. A duplicate name returns 409
// with the existing record.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.Error(apperrors.Validation(err.Error()))
		return
	}

	actor := middleware.ActorFrom(c)
	if actor != nil {
		product.CreatedBy = actor.ID
	}

	created, err := h.store.Create(c.Request.Context(), &product)
	if errors.Is(err, repository.ErrDuplicateName) {
		c.JSON(http.StatusConflict, gin.H{
			"message": "Product with this name already exists",
			"product": created,
		})
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	h.cache.DeleteByPrefix("products:")
	h.recordAudit(c, models.AuditActionCreate, created.ID, actor, map[string]interface{}{
		"name": created.Name,
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": created})
}

// GetProducts handles GET /api/products: an unconditional full-collection
// read with createdBy reduced to name and email, served from cache when warm.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	if cached, found := h.cache.GetValue(listCacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.store.FindAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	h.cache.Set(listCacheKey, products)
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	cacheKey := productCachePrefix + id

	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	h.cache.Set(cacheKey, product)
	c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /api/products/:id. The patch is applied onto the
// existing record; fields absent from the patch are left untouched. A manager
// may not edit a product created by another manager or a superadmin.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperrors.Validation(err.Error()))
		return
	}
	sanitizePatch(patch)

	actor := middleware.ActorFrom(c)
	if actor != nil && actor.Role == models.RoleManager {
		target, creator, err := h.store.FindByIDWithCreator(c.Request.Context(), id)
		if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
			c.Error(err)
			return
		}
		if target != nil && creator != nil && creator.ID != actor.ID &&
			(creator.Role == models.RoleManager || creator.Role == models.RoleSuperadmin) {
			c.Error(apperrors.Forbidden("Managers cannot edit products created by another manager or superadmin."))
			return
		}
	}

	var product *models.Product
	var err error
	if len(patch) == 0 {
		// Nothing left after sanitation: a no-op returning the current record.
		product, err = h.store.FindByID(c.Request.Context(), id)
	} else {
		product, err = h.store.Update(c.Request.Context(), id, bson.M(patch))
	}
	if err != nil {
		c.Error(err)
		return
	}

	h.cache.DeleteByPrefix("products:")
	h.recordAudit(c, models.AuditActionUpdate, product.ID, actor, map[string]interface{}{
		"updatedFields": patchFieldNames(patch),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

// DeleteProduct handles DELETE /api/products/:id. Deletion is physical and
// returns the removed record.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	actor := middleware.ActorFrom(c)
	h.cache.DeleteByPrefix("products:")
	h.recordAudit(c, models.AuditActionDelete, product.ID, actor, map[string]interface{}{
		"name": product.Name,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "product": product})
}

func (h *ProductHandler) recordAudit(c *gin.Context, action string, entityID primitive.ObjectID, actor *models.Actor, details map[string]interface{}) {
	entry := &models.AuditLog{
		Action:   action,
		Entity:   "product",
		EntityID: entityID,
		User:     actor,
		Details:  details,
	}
	if err := h.audit.Record(c.Request.Context(), entry); err != nil {
		h.logger.Warn("audit write failed",
			zap.String("action", action),
			zap.String("entity_id", entityID.Hex()),
			zap.Error(err),
		)
	}
}

// Fields clients may never patch directly. created_by is stamped once at
// creation and immutable afterwards.
var protectedPatchFields = []string{"_id", "id", "created_by", "createdBy", "created_at", "updated_at"}

// sanitizePatch strips protected fields and drops specs unless it is a
// non-empty key-value mapping. A malformed specs value is silently removed,
// never rejected.
func sanitizePatch(patch map[string]interface{}) {
	if raw, ok := patch["specs"]; ok {
		specs, isMap := raw.(map[string]interface{})
		if !isMap || len(specs) == 0 {
			delete(patch, "specs")
		}
	}
	for _, field := range protectedPatchFields {
		delete(patch, field)
	}
}

func patchFieldNames(patch map[string]interface{}) []string {
	fields := make([]string, 0, len(patch))
	for field := range patch {
		if field == "updated_at" {
			continue
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
