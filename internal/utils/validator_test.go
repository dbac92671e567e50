package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameInput struct {
	Name string `validate:"required,notblank,max=255"`
}

func TestValidateStructNotBlank(t *testing.T) {
	InitValidator()

	require.NoError(t, ValidateStruct(nameInput{Name: "Vegan"}))

	err := ValidateStruct(nameInput{Name: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "必填")

	err = ValidateStruct(nameInput{Name: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "空白")
}
