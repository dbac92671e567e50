package utils

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// recipeUploadDir 菜谱图片的固定上传命名空间
const recipeUploadDir = "uploads/recipe"

// allowedImageExts 允许的图片扩展名
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// NewImageID 生成防碰撞的图片文件标识
func NewImageID() string {
	return uuid.New().String()
}

// RecipeImagePath 根据生成的标识和原始文件名拼接存储路径
// 保留原始扩展名: RecipeImagePath("abc123", "photo.jpeg") -> "uploads/recipe/abc123.jpeg"
func RecipeImagePath(imageID, originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	return path.Join(recipeUploadDir, imageID+ext)
}

// IsAllowedImage 检查文件名扩展是否为支持的图片格式
func IsAllowedImage(filename string) bool {
	return allowedImageExts[strings.ToLower(path.Ext(filename))]
}
