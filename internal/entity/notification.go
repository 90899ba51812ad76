package entity

import "time"

type Notification struct {
	ID         int       `json:"id"`
	ProviderID int       `json:"provider_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

/*
Mysql Schema:

CREATE TABLE notifications (
	id INT AUTO_INCREMENT PRIMARY KEY,
	provider_id INT NOT NULL,
	message VARCHAR(255) NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
*/
