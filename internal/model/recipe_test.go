package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngredientValidate(t *testing.T) {
	valid := Ingredient{Name: "Quinoa", Amount: "1 cup", Category: "Grains"}
	assert.NoError(t, valid.Validate())

	invalid := Ingredient{Name: "Quinoa", Amount: "1 cup", Category: "Cereal"}
	assert.Error(t, invalid.Validate())
}
