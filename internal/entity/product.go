package entity

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ProviderID  int     `json:"provider_id"`
	IsDeleted   bool    `json:"-"` // soft delete flag, never serialized
}

/*
Mysql Schema:

CREATE TABLE products (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	description VARCHAR(255),
	price DOUBLE NOT NULL,
	quantity INT NOT NULL DEFAULT 0,
	provider_id INT NOT NULL,
	is_deleted BOOLEAN NOT NULL DEFAULT FALSE
);
*/
