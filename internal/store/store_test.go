package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forkful/client/internal/types"
)

func TestAuthStoreTransitions(t *testing.T) {
	s := NewAuthStore()
	assert.Nil(t, s.User())
	assert.False(t, s.IsAuthenticated())

	s.SetUser(&types.User{ID: 1, ProfileName: "Demo"})
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "Demo", s.User().ProfileName)

	s.ClearUser()
	assert.Nil(t, s.User())
	assert.False(t, s.IsAuthenticated())
}

func TestDraftStartsWithoutServerID(t *testing.T) {
	d := NewDraftStore()
	assert.Equal(t, 0, d.RecipeID())
}

func TestSetRecipeMergesTopLevelFields(t *testing.T) {
	d := NewDraftStore()
	d.AddIngredients(types.Ingredient{Name: "flour", Quantity: "200", Unit: "g"})

	// Adopting the server-assigned recipe must not wipe accumulated state.
	d.SetRecipe(types.Recipe{ID: 42, Name: "Bread", CookingTime: "2h"})
	r := d.Recipe()
	assert.Equal(t, 42, r.ID)
	assert.Equal(t, "Bread", r.Name)
	assert.Equal(t, "2h", r.CookingTime)
	assert.Len(t, r.Ingredients, 1)

	// A later merge with zero-valued fields leaves earlier values alone.
	d.SetRecipe(types.Recipe{Categories: []types.Category{{ID: 1, Name: "Baking"}}})
	r = d.Recipe()
	assert.Equal(t, 42, r.ID)
	assert.Equal(t, "Bread", r.Name)
	assert.Len(t, r.Categories, 1)
}

func TestDraftSequencesAreAppendOnly(t *testing.T) {
	d := NewDraftStore()
	d.AddIngredients(types.Ingredient{Name: "eggs", Quantity: "3", Unit: "pcs"})
	d.AddIngredients(types.Ingredient{Name: "milk", Quantity: "200", Unit: "ml"})
	d.AddInstructions(types.Instruction{Text: "Whisk the eggs"})
	d.AddInstructions(types.Instruction{Text: "Add the milk"})

	r := d.Recipe()
	assert.Equal(t, []string{"eggs", "milk"}, []string{r.Ingredients[0].Name, r.Ingredients[1].Name})
	assert.Equal(t, "Whisk the eggs", r.Instructions[0].Text)
	assert.Equal(t, "Add the milk", r.Instructions[1].Text)
}

func TestResetDiscardsDraft(t *testing.T) {
	d := NewDraftStore()
	d.SetRecipe(types.Recipe{ID: 42, Name: "Bread"})
	d.AddInstructions(types.Instruction{Text: "Bake"})

	d.Reset()
	assert.Equal(t, 0, d.RecipeID())
	assert.Equal(t, types.Recipe{}, d.Recipe())
}
