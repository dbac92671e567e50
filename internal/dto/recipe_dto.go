package dto

// CreateRecipeRequest 创建菜谱请求
type CreateRecipeRequest struct {
	Title       string  `json:"title" binding:"required"`
	TimeMinutes int     `json:"time_minutes" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Link        string  `json:"link"`
}

// UpdateRecipeRequest 更新菜谱请求,nil字段不修改
type UpdateRecipeRequest struct {
	Title       *string  `json:"title"`
	TimeMinutes *int     `json:"time_minutes"`
	Price       *float64 `json:"price"`
	Link        *string  `json:"link"`
}

// RecipeResponse 菜谱响应
type RecipeResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	TimeMinutes int     `json:"time_minutes"`
	Price       float64 `json:"price"`
	Link        string  `json:"link"`
	ImagePath   string  `json:"image_path"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// RecipeImageResponse 菜谱图片上传响应
type RecipeImageResponse struct {
	ID        uint   `json:"id"`
	ImagePath string `json:"image_path"`
}
