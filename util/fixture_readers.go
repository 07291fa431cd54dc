package util

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Longhorn-Developers/UT-Dining-sub000/models"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models/menu"
)

func readJSON(filePath string, out interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %q: %w", filePath, err)
	}
	return nil
}

// ReadLocationsFromJSON loads location rows from JSON on disk.
func ReadLocationsFromJSON(filePath string) ([]models.Location, error) {
	var rows []models.Location
	if err := readJSON(filePath, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadLocationTypesFromJSON loads location type rows from JSON on disk.
func ReadLocationTypesFromJSON(filePath string) ([]models.LocationType, error) {
	var rows []models.LocationType
	if err := readJSON(filePath, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadMenusFromJSON loads menu rows from JSON on disk.
func ReadMenusFromJSON(filePath string) ([]menu.Menu, error) {
	var rows []menu.Menu
	if err := readJSON(filePath, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadMenuCategoriesFromJSON loads menu category rows from JSON on disk.
func ReadMenuCategoriesFromJSON(filePath string) ([]menu.MenuCategory, error) {
	var rows []menu.MenuCategory
	if err := readJSON(filePath, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadFoodItemsFromJSON loads food item rows from JSON on disk.
func ReadFoodItemsFromJSON(filePath string) ([]menu.FoodItem, error) {
	var rows []menu.FoodItem
	if err := readJSON(filePath, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadNutritionFromJSON loads nutrition rows from JSON on disk.
func ReadNutritionFromJSON(filePath string) ([]menu.Nutrition, error) {
	var rows []menu.Nutrition
	if err := readJSON(filePath, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadAllergensFromJSON loads allergen rows from JSON on disk.
func ReadAllergensFromJSON(filePath string) ([]menu.Allergens, error) {
	var rows []menu.Allergens
	if err := readJSON(filePath, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadAppInfoFromJSON loads app metadata rows from JSON on disk.
func ReadAppInfoFromJSON(filePath string) ([]models.AppInfo, error) {
	var rows []models.AppInfo
	if err := readJSON(filePath, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadNotificationsFromJSON loads notification rows from JSON on disk.
func ReadNotificationsFromJSON(filePath string) ([]models.Notification, error) {
	var rows []models.Notification
	if err := readJSON(filePath, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
