package menu

// Allergens is the 1:1 allergen flag record for a food item.
type Allergens struct {
	ID         int64 `json:"id"`
	FoodItemID int64 `json:"food_item_id"`
	Beef       bool  `json:"beef"`
	Egg        bool  `json:"egg"`
	Fish       bool  `json:"fish"`
	Milk       bool  `json:"milk"`
	Peanuts    bool  `json:"peanuts"`
	Pork       bool  `json:"pork"`
	Shellfish  bool  `json:"shellfish"`
	Soy        bool  `json:"soy"`
	TreeNuts   bool  `json:"tree_nuts"`
	Wheat      bool  `json:"wheat"`
	Sesame     bool  `json:"sesame"`
}

// List returns the names of the set allergen flags, in a stable order.
func (a Allergens) List() []string {
	var out []string
	flags := []struct {
		name string
		set  bool
	}{
		{"Beef", a.Beef},
		{"Egg", a.Egg},
		{"Fish", a.Fish},
		{"Milk", a.Milk},
		{"Peanuts", a.Peanuts},
		{"Pork", a.Pork},
		{"Shellfish", a.Shellfish},
		{"Soy", a.Soy},
		{"Tree Nuts", a.TreeNuts},
		{"Wheat", a.Wheat},
		{"Sesame", a.Sesame},
	}
	for _, f := range flags {
		if f.set {
			out = append(out, f.name)
		}
	}
	return out
}
