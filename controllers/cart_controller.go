package controllers

import (
	"errors"
	"strconv"

	"online-store/middleware"
	"online-store/models"
	"online-store/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController() *CartController {
	return &CartController{cartService: services.NewCartService()}
}

const cartTokenKey = "cart_id"

// resolveCartOwner derives the single owner key for this request: the user
// id when signed in, otherwise a session-scoped anonymous token minted on
// first use. The key is passed to the service explicitly; carts never
// migrate between the two key spaces.
func resolveCartOwner(c *gin.Context) (services.CartOwner, error) {
	session := middleware.GetSession(c)

	if userID, exists := c.Get("user_id"); exists {
		key := strconv.Itoa(userID.(int))
		if key == "0" {
			// Claims loaded without a usable id; fall back to the session.
			key = session.ID
		}
		return services.CartOwner{Key: key, Authenticated: true}, nil
	}

	ctx := c.Request.Context()
	token, err := session.Get(ctx, cartTokenKey)
	if err != nil {
		return services.CartOwner{}, err
	}
	if token == "" {
		token = uuid.NewString()
		if err := session.Set(ctx, cartTokenKey, token); err != nil {
			return services.CartOwner{}, err
		}
	}
	return services.CartOwner{Key: token}, nil
}

// @Summary Get cart
// @Description Get the current visitor's cart with totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	owner, err := resolveCartOwner(c)
	if err != nil {
		respondError(c, err)
		return
	}

	cart, err := ctrl.cartService.LoadCart(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": cart})
}

// @Summary Add item to cart
// @Description Add a product to the cart; an existing line is incremented
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	owner, err := resolveCartOwner(c)
	if err != nil {
		respondError(c, err)
		return
	}

	cart, err := ctrl.cartService.AddItem(c.Request.Context(), owner, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item added to cart", "data": cart})
}

// @Summary Update cart item
// @Description Set an absolute quantity; zero or less removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid cart item ID"})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	owner, err := resolveCartOwner(c)
	if err != nil {
		respondError(c, err)
		return
	}

	cart, err := ctrl.cartService.UpdateItem(c.Request.Context(), owner, id, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": cart})
}

// @Summary Checkout
// @Description Placeholder checkout: requires login and clears the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /cart/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	owner, err := resolveCartOwner(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ctrl.cartService.Checkout(c.Request.Context(), owner); err != nil {
		if errors.Is(err, services.ErrUnauthenticated) {
			c.JSON(401, gin.H{"success": false, "message": "Please sign in to checkout", "redirect": "/auth/login"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order placed successfully"})
}
