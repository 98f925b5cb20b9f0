package entity

// UncategorizedName labels the bucket for products without a resolvable category.
const UncategorizedName = "uncategorized"

// Product represents the product table
type Product struct {
	ID         string  `db:"id" json:"id"`
	ShopID     string  `db:"shop_id" json:"shopId"`
	CategoryID *string `db:"category_id" json:"categoryId"`
	Name       string  `db:"name" json:"name"`
}

// Category represents the category table
type Category struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
