package dining

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The fixture files live under the project root; tests run from this
// package's directory.
func pointAtProjectRoot(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "../..")
}

func TestDiningApiClientMock_GetLocations(t *testing.T) {
	pointAtProjectRoot(t)
	client := NewDiningApiClientMock()

	locations, err := client.GetLocations(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.NotEmpty(t, locations, "Expected fixture locations")

	names := make(map[string]bool, len(locations))
	for _, loc := range locations {
		names[loc.Name] = true
	}
	assert.True(t, names["J2 Dining"], "Expected J2 Dining in the fixtures")
}

func TestDiningApiClientMock_GetMenus_RewritesDates(t *testing.T) {
	pointAtProjectRoot(t)
	client := NewDiningApiClientMock()

	menus, err := client.GetMenus(context.Background(), "2025-03-01")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.NotEmpty(t, menus, "Expected fixture menus")
	for _, m := range menus {
		assert.Equal(t, "2025-03-01", m.Date, "Mock menus should land on the requested date")
	}
}

func TestDiningApiClientMock_FiltersById(t *testing.T) {
	pointAtProjectRoot(t)
	client := NewDiningApiClientMock()
	ctx := context.Background()

	// Categories are filtered to the requested menus, same as the real API.
	categories, err := client.GetMenuCategories(ctx, []int64{101})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.NotEmpty(t, categories)
	for _, c := range categories {
		assert.Equal(t, int64(101), c.MenuID)
	}

	items, err := client.GetFoodItems(ctx, []int64{201})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.NotEmpty(t, items)
	for _, fi := range items {
		assert.Equal(t, int64(201), fi.CategoryID)
	}

	// An id with no children filters down to nothing.
	none, err := client.GetFoodItems(ctx, []int64{999})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Empty(t, none)
}

func TestDiningApiClientMock_NutritionAndAllergens(t *testing.T) {
	pointAtProjectRoot(t)
	client := NewDiningApiClientMock()
	ctx := context.Background()

	nutrition, err := client.GetNutrition(ctx, []int64{301})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Len(t, nutrition, 1)
	assert.Equal(t, int64(301), nutrition[0].FoodItemID)

	allergens, err := client.GetAllergens(ctx, []int64{301})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Len(t, allergens, 1)
	assert.Equal(t, int64(301), allergens[0].FoodItemID)
}
