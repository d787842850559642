package controllers

import (
	"errors"
	"strconv"

	"online-store/models"
	"online-store/services"
	"online-store/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	productService *services.ProductService
}

func NewAdminController() *AdminController {
	return &AdminController{productService: services.NewProductService()}
}

// @Summary List all products
// @Description All products with their categories, unpaginated (Admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/products [get]
func (ctrl *AdminController) ListProducts(c *gin.Context) {
	products, err := ctrl.productService.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Products retrieved", "data": products})
}

// @Summary Create product
// @Description Create a new product with an optional image (Admin)
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param description formData string false "Description"
// @Param price formData string true "Price, decimal"
// @Param stock formData int false "Stock"
// @Param category_id formData int true "Category ID"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *AdminController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		ctrl.respondValidation(c, "Name, price, and category_id are required")
		return
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err = utils.UploadFile(c, file, "products")
		if err != nil {
			ctrl.respondValidation(c, err.Error())
			return
		}
	}

	product, err := ctrl.productService.CreateProduct(c.Request.Context(), req, imageURL)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.DeleteFile(imageURL)
			ctrl.respondValidation(c, err.Error())
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Product created successfully", "data": product})
}

// respondValidation is the API analogue of re-rendering the create form:
// the rejected submission comes back with the category list reloaded so the
// form can be redrawn without another round trip.
func (ctrl *AdminController) respondValidation(c *gin.Context, message string) {
	categories, err := ctrl.productService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(400, gin.H{
		"success":    false,
		"message":    message,
		"categories": categories,
	})
}

// @Summary Delete product
// @Description Delete a product; an unknown id is a success no-op (Admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *AdminController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	imageURL, err := ctrl.productService.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.DeleteFile(imageURL)

	c.JSON(200, gin.H{"success": true, "message": "Product deleted"})
}

// @Summary Create category
// @Description Create a new category (Admin)
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateCategoryRequest true "Category"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/categories [post]
func (ctrl *AdminController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name is required"})
		return
	}

	category, err := ctrl.productService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Category created successfully", "data": category})
}

// @Summary Delete category
// @Description Delete a category; fails while products still reference it (Admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (ctrl *AdminController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category ID"})
		return
	}

	if err := ctrl.productService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category deleted"})
}
