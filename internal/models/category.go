package models

// Category is one of the fixed spending categories.
//
// The catalog is seeded once when the schema is initialized and is read-only
// afterwards. Category IDs are assigned by the database in seed order.
type Category struct {
	// ID is the database-assigned identifier.
	ID int64

	// Name is the unique category name (e.g. "Food").
	Name string
}

// SeedNames is the fixed list of category names seeded into a fresh
// database, in catalog order.
var SeedNames = []string{
	"Food",
	"Transportation",
	"Utilities",
	"Entertainment",
	"Healthcare",
	"Education",
	"Miscellaneous",
}
