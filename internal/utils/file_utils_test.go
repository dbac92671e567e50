package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipeImagePath(t *testing.T) {
	// 固定标识加原始扩展名
	assert.Equal(t, "uploads/recipe/abc123.jpeg", RecipeImagePath("abc123", "photo.jpeg"))
	assert.Equal(t, "uploads/recipe/abc123.png", RecipeImagePath("abc123", "dinner.PNG"))
	assert.Equal(t, "uploads/recipe/abc123", RecipeImagePath("abc123", "noext"))
}

func TestNewImageID(t *testing.T) {
	id1 := NewImageID()
	id2 := NewImageID()

	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)
	assert.False(t, strings.Contains(id1, "/"))
}

func TestIsAllowedImage(t *testing.T) {
	assert.True(t, IsAllowedImage("photo.jpeg"))
	assert.True(t, IsAllowedImage("photo.JPG"))
	assert.True(t, IsAllowedImage("photo.webp"))
	assert.False(t, IsAllowedImage("script.sh"))
	assert.False(t, IsAllowedImage("archive.zip"))
	assert.False(t, IsAllowedImage("noext"))
}
