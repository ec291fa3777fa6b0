// internal/handlers/catalog.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sooqhub/sooq-backend/internal/catalogs"
	"github.com/sooqhub/sooq-backend/internal/i18n"
	"github.com/sooqhub/sooq-backend/internal/mediator"
	"github.com/sooqhub/sooq-backend/internal/models"
	"github.com/sooqhub/sooq-backend/internal/repository"
	"github.com/sooqhub/sooq-backend/internal/results"
	"github.com/sooqhub/sooq-backend/internal/storage"
	"github.com/sooqhub/sooq-backend/internal/utils"
)

// CatalogHandler covers listings, products, services, brands and categories.
type CatalogHandler struct {
	m       *mediator.Mediator
	storage *storage.Service
}

func NewCatalogHandler(m *mediator.Mediator, storage *storage.Service) *CatalogHandler {
	return &CatalogHandler{m: m, storage: storage}
}

// ListItems handles GET /v1/items
func (h *CatalogHandler) ListItems(c *gin.Context) {
	q := catalogs.ListCatalogItemsQuery{
		Filter:     catalogFilterFromQuery(c),
		Pagination: utils.GetPaginationParams(c),
	}
	utils.Respond(c, mediator.Send[results.PaginatedResult[models.BaseItem]](c.Request.Context(), h.m, q))
}

// GetItemDetails handles GET /v1/items/:id
func (h *CatalogHandler) GetItemDetails(c *gin.Context) {
	baseItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	q := catalogs.GetItemDetailsByBaseItemIDQuery{BaseItemID: baseItemID}
	utils.Respond(c, mediator.Send[catalogs.ItemDetails](c.Request.Context(), h.m, q))
}

// ResolveItem handles GET /v1/items/:id/resolve. It accepts either a base
// item id or a concrete product/service id and answers with the canonical
// pair.
func (h *CatalogHandler) ResolveItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	q := catalogs.ResolveItemQuery{ItemID: itemID}
	utils.Respond(c, mediator.Send[catalogs.Resolution](c.Request.Context(), h.m, q))
}

// CreateProduct handles POST /v1/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	var cmd catalogs.CreateProductCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.OwnerID = userID

	utils.RespondCreated(c, mediator.Send[*models.Product](c.Request.Context(), h.m, cmd))
}

// GetProduct handles GET /v1/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	q := catalogs.GetProductByIDQuery{ProductID: productID}
	utils.Respond(c, mediator.Send[*models.Product](c.Request.Context(), h.m, q))
}

// UpdateProduct handles PUT /v1/products/:id
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	var cmd catalogs.UpdateProductCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.ProductID = productID
	cmd.OwnerID = userID

	utils.Respond(c, mediator.Send[*models.Product](c.Request.Context(), h.m, cmd))
}

// DeleteProduct handles DELETE /v1/products/:id
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	cmd := catalogs.DeleteProductCommand{ProductID: productID, OwnerID: userID}
	utils.Respond(c, mediator.Send[bool](c.Request.Context(), h.m, cmd))
}

// AdjustProductStock handles POST /v1/products/:id/stock
func (h *CatalogHandler) AdjustProductStock(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	var cmd catalogs.AdjustProductStockCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.ProductID = productID

	utils.Respond(c, mediator.Send[int](c.Request.Context(), h.m, cmd))
}

// CreateService handles POST /v1/services
func (h *CatalogHandler) CreateService(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	var cmd catalogs.CreateServiceCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}
	cmd.OwnerID = userID

	utils.RespondCreated(c, mediator.Send[*models.Service](c.Request.Context(), h.m, cmd))
}

// GetService handles GET /v1/services/:id
func (h *CatalogHandler) GetService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	q := catalogs.GetServiceByIDQuery{ServiceID: serviceID}
	utils.Respond(c, mediator.Send[*models.Service](c.Request.Context(), h.m, q))
}

// CreateBrand handles POST /v1/brands
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var cmd catalogs.CreateBrandCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	utils.RespondCreated(c, mediator.Send[*models.Brand](c.Request.Context(), h.m, cmd))
}

// DeleteBrand handles DELETE /v1/brands/:id
func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	brandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	cmd := catalogs.DeleteBrandCommand{BrandID: brandID}
	utils.Respond(c, mediator.Send[bool](c.Request.Context(), h.m, cmd))
}

// ListBrands handles GET /v1/brands
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	utils.Respond(c, mediator.Send[[]models.Brand](c.Request.Context(), h.m, catalogs.ListBrandsQuery{}))
}

// CreateCategory handles POST /v1/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var cmd catalogs.CreateCategoryCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyValidationInvalid))
		return
	}

	utils.RespondCreated(c, mediator.Send[*models.Category](c.Request.Context(), h.m, cmd))
}

// ListCategories handles GET /v1/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	utils.Respond(c, mediator.Send[[]models.Category](c.Request.Context(), h.m, catalogs.ListCategoriesQuery{}))
}

// UploadItemMedia handles POST /v1/items/media. The caller attaches the
// returned URL when creating or updating a listing.
func (h *CatalogHandler) UploadItemMedia(c *gin.Context) {
	if _, ok := utils.UserIDFromContext(c); !ok {
		utils.Unauthorized(c, i18n.Tr(c.Request.Context(), i18n.KeyAuthRequired))
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyFileUploadFailed))
		return
	}
	defer file.Close()

	uploaded, err := h.storage.Upload(file, header, h.storage.OptionsFor("items"))
	if err != nil {
		utils.BadRequest(c, i18n.Tr(c.Request.Context(), i18n.KeyFileInvalidType))
		return
	}

	utils.RespondCreated(c, results.OkMsg(uploaded, i18n.Tr(c.Request.Context(), i18n.KeyFileUploadSuccess)))
}

func catalogFilterFromQuery(c *gin.Context) repository.CatalogFilter {
	var filter repository.CatalogFilter

	if raw := c.Query("category_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.CategoryID = &id
		}
	}
	if raw := c.Query("brand_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.BrandID = &id
		}
	}
	if raw := c.Query("owner_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.OwnerID = &id
		}
	}
	filter.Search = c.Query("search")
	if raw := c.Query("price_min"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.PriceMin = &v
		}
	}
	if raw := c.Query("price_max"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.PriceMax = &v
		}
	}
	if raw := c.Query("available"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.Available = &v
		}
	}
	switch c.Query("kind") {
	case "product":
		filter.Kind = models.ItemKindProduct
	case "service":
		filter.Kind = models.ItemKindService
	}

	return filter
}
