package service

import (
	"testing"

	"recipe-go/internal/models"
	"recipe-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newIngredientService(t *testing.T) (*IngredientService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewIngredientService(repository.NewIngredientRepository(db)), db
}

func TestIngredientCreate(t *testing.T) {
	svc, db := newIngredientService(t)
	user := createTestUser(t, db, "test@example.com")

	ingredient, err := svc.Create(user.ID, "Cabbage")
	require.NoError(t, err)
	assert.Equal(t, "Cabbage", ingredient.Name)
	assert.Equal(t, user.ID, ingredient.UserID)
	assert.Equal(t, "Cabbage", ingredient.String())
}

func TestIngredientCreateEmptyName(t *testing.T) {
	svc, db := newIngredientService(t)
	user := createTestUser(t, db, "test@example.com")

	_, err := svc.Create(user.ID, "  ")
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestIngredientListOrderedByNameDesc(t *testing.T) {
	svc, db := newIngredientService(t)
	user := createTestUser(t, db, "test@example.com")

	for _, name := range []string{"Kale", "Salt", "Egg"} {
		_, err := svc.Create(user.ID, name)
		require.NoError(t, err)
	}

	ingredients, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, ingredients, 3)

	assert.Equal(t, "Salt", ingredients[0].Name)
	assert.Equal(t, "Kale", ingredients[1].Name)
	assert.Equal(t, "Egg", ingredients[2].Name)
}

func TestIngredientLimitedToOwner(t *testing.T) {
	svc, db := newIngredientService(t)
	user := createTestUser(t, db, "test@example.com")
	other := createTestUser(t, db, "other@example.com")

	_, err := svc.Create(other.ID, "Egg")
	require.NoError(t, err)
	mine, err := svc.Create(user.ID, "Spinach")
	require.NoError(t, err)

	ingredients, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, mine.Name, ingredients[0].Name)
}

func TestIngredientGetNotOwnedIsNotFound(t *testing.T) {
	svc, db := newIngredientService(t)
	user := createTestUser(t, db, "test@example.com")
	other := createTestUser(t, db, "other@example.com")

	ingredient, err := svc.Create(other.ID, "Egg")
	require.NoError(t, err)

	_, err = svc.Get(user.ID, ingredient.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
