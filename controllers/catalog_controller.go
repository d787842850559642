package controllers

import (
	"strconv"

	"online-store/config"
	"online-store/models"
	"online-store/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService *services.CatalogService
	productService *services.ProductService
}

func NewCatalogController() *CatalogController {
	return &CatalogController{
		catalogService: services.NewCatalogService(),
		productService: services.NewProductService(),
	}
}

// @Summary Browse the catalog
// @Description Paginated product listing with optional category filter
// @Tags Catalog
// @Produce json
// @Param category_id query int false "Filter by category"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(8)
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *CatalogController) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(config.AppConfig.PageSize)))

	var categoryID *int
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid category_id"})
			return
		}
		categoryID = &id
	}

	pageData, err := ctrl.catalogService.ListProducts(c.Request.Context(), categoryID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Products retrieved",
		Data: gin.H{
			"products":   pageData.Products,
			"categories": pageData.Categories,
		},
		Meta: pageData.Meta,
	})
}

// @Summary Get product by ID
// @Description Get a single product with its category
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *CatalogController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := ctrl.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// @Summary Get all categories
// @Description Get the full category list for the filter UI
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CatalogController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.productService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}
