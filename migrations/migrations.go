package migrations

import (
	"database/sql"
	"time"
)

var tables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		full_name VARCHAR(120) NOT NULL,
		username VARCHAR(80) NOT NULL UNIQUE,
		email VARCHAR(120) NOT NULL UNIQUE,
		password_hash VARCHAR(128) NOT NULL,
		role VARCHAR(20) NOT NULL,
		account_status VARCHAR(10) NOT NULL DEFAULT '1',
		profile_pic VARCHAR(255) DEFAULT 'profile_pics/default.png'
	);`,
	`CREATE TABLE IF NOT EXISTS products (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description VARCHAR(255),
		price DOUBLE NOT NULL,
		quantity INT NOT NULL DEFAULT 0,
		provider_id INT NOT NULL,
		is_deleted BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INT AUTO_INCREMENT PRIMARY KEY,
		customer_id INT NOT NULL,
		product_id INT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'Pending',
		created_at DATETIME NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id INT AUTO_INCREMENT PRIMARY KEY,
		provider_id INT NOT NULL,
		message VARCHAR(255) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	// No unique index on (user_id, product_id): the duplicate guard lives in
	// the wishlist service as a pre-check.
	`CREATE TABLE IF NOT EXISTS wishlists (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		product_id INT NOT NULL
	);`,
}

// AutoMigrate creates the schema if it does not exist, retrying each
// statement a few times while the database comes up.
func AutoMigrate(db *sql.DB, retries int) error {
	for _, query := range tables {
		_, err := db.Exec(query)
		for i := 0; err != nil && i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(query)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
