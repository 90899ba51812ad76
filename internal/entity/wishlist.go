package entity

type WishlistItem struct {
	ID        int `json:"id"`
	UserID    int `json:"user_id"`
	ProductID int `json:"product_id"`
}

// WishlistEntry is a wishlist row joined with its product, as listed to the
// customer.
type WishlistEntry struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

/*
Mysql Schema:

CREATE TABLE wishlists (
	id INT AUTO_INCREMENT PRIMARY KEY,
	user_id INT NOT NULL,
	product_id INT NOT NULL
);

Note: no unique index on (user_id, product_id); duplicates are rejected by a
pre-check in the wishlist service.
*/
