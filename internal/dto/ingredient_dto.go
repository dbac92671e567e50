package dto

// CreateIngredientRequest 创建食材请求
type CreateIngredientRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateIngredientRequest 更新食材请求
type UpdateIngredientRequest struct {
	Name *string `json:"name"`
}

// IngredientResponse 食材响应
type IngredientResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
