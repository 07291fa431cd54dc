package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/Longhorn-Developers/UT-Dining-sub000/models"
)

// FavoritesDAO owns the user-originated tables: favorites and the meal
// plan. Sync never touches these; they survive every mirror replacement
// because they carry their own copies of the nutrition values.
type FavoritesDAO struct {
	db *sql.DB
}

// NewFavoritesDAO initializes a FavoritesDAO over an opened sqlite handle.
func NewFavoritesDAO(db *sql.DB) *FavoritesDAO {
	return &FavoritesDAO{db: db}
}

const favoriteColumns = `id, location_name, menu_name, category_name,
	item_name, date_added, calories, protein, total_carbohydrates,
	total_fat, allergen_list`

// InsertFavorite stores a favorite with its denormalized nutrition fields.
func (dao *FavoritesDAO) InsertFavorite(f models.Favorite) error {
	_, err := dao.db.Exec(`
		INSERT INTO favorite (`+favoriteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.LocationName, f.MenuName, f.CategoryName, f.ItemName,
		f.DateAdded, f.Calories, f.Protein, f.TotalCarbohydrates,
		f.TotalFat, f.AllergenList)
	if err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}
	return nil
}

// GetFavorite finds a favorite by item display identity, nil when absent.
func (dao *FavoritesDAO) GetFavorite(locationName, menuName, categoryName, itemName string) (*models.Favorite, error) {
	row := dao.db.QueryRow(`
		SELECT `+favoriteColumns+` FROM favorite
		WHERE location_name = ? AND menu_name = ? AND category_name = ? AND item_name = ?`,
		locationName, menuName, categoryName, itemName)
	f, err := scanFavorite(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query favorite: %w", err)
	}
	return f, nil
}

// DeleteFavorite removes a favorite by id.
func (dao *FavoritesDAO) DeleteFavorite(id string) error {
	_, err := dao.db.Exec("DELETE FROM favorite WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}

// ListFavorites returns all favorites, newest first.
func (dao *FavoritesDAO) ListFavorites() ([]models.Favorite, error) {
	rows, err := dao.db.Query(`SELECT ` + favoriteColumns + ` FROM favorite ORDER BY date_added DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var out []models.Favorite
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

func scanFavorite(row rowScanner) (*models.Favorite, error) {
	var f models.Favorite
	var calories, protein, carbs, fat, allergens sql.NullString
	err := row.Scan(&f.ID, &f.LocationName, &f.MenuName, &f.CategoryName,
		&f.ItemName, &f.DateAdded, &calories, &protein, &carbs, &fat, &allergens)
	if err != nil {
		return nil, err
	}
	f.Calories = calories.String
	f.Protein = protein.String
	f.TotalCarbohydrates = carbs.String
	f.TotalFat = fat.String
	f.AllergenList = allergens.String
	return &f, nil
}

// AddMealPlanItem stores a meal plan entry with denormalized nutrition.
func (dao *FavoritesDAO) AddMealPlanItem(item models.MealPlanItem) error {
	_, err := dao.db.Exec(`
		INSERT INTO meal_plan_item (`+favoriteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.LocationName, item.MenuName, item.CategoryName,
		item.ItemName, item.DateAdded, item.Calories, item.Protein,
		item.TotalCarbohydrates, item.TotalFat, item.AllergenList)
	if err != nil {
		return fmt.Errorf("failed to insert meal plan item: %w", err)
	}
	return nil
}

// RemoveMealPlanItem removes a meal plan entry by id.
func (dao *FavoritesDAO) RemoveMealPlanItem(id string) error {
	_, err := dao.db.Exec("DELETE FROM meal_plan_item WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete meal plan item: %w", err)
	}
	return nil
}

// ListMealPlan returns the meal plan entries, newest first.
func (dao *FavoritesDAO) ListMealPlan() ([]models.MealPlanItem, error) {
	rows, err := dao.db.Query(`SELECT ` + favoriteColumns + ` FROM meal_plan_item ORDER BY date_added DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query meal plan: %w", err)
	}
	defer rows.Close()

	var out []models.MealPlanItem
	for rows.Next() {
		var item models.MealPlanItem
		var calories, protein, carbs, fat, allergens sql.NullString
		err := rows.Scan(&item.ID, &item.LocationName, &item.MenuName,
			&item.CategoryName, &item.ItemName, &item.DateAdded,
			&calories, &protein, &carbs, &fat, &allergens)
		if err != nil {
			return nil, err
		}
		item.Calories = calories.String
		item.Protein = protein.String
		item.TotalCarbohydrates = carbs.String
		item.TotalFat = fat.String
		item.AllergenList = allergens.String
		out = append(out, item)
	}
	return out, rows.Err()
}
