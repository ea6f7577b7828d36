package types

// ShoppingListItem is one merged ingredient line. Amounts holds the
// literal amount strings of every contributing recipe; they are never
// parsed or summed.
type ShoppingListItem struct {
	Name    string   `json:"name"`
	Amounts []string `json:"amounts"`
}

// ShoppingList maps ingredient category to the merged items of that
// category, in first-seen order.
type ShoppingList map[string][]*ShoppingListItem
