package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id" form:"product_id" binding:"required"`
	Quantity  int `json:"quantity" form:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" form:"quantity"`
}

// CreateProductRequest carries the admin create form. Price arrives as a
// string so it can be parsed into an exact decimal, never a float.
type CreateProductRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price" binding:"required"`
	Stock       int    `json:"stock" form:"stock" binding:"gte=0"`
	CategoryID  int    `json:"category_id" form:"category_id" binding:"required"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}
