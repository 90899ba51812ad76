package entity

// Role identifies an actor type. Stored as a string tag in the users table.
type Role string

const (
	RoleAdmin    Role = "1"
	RoleCustomer Role = "2"
	RoleProvider Role = "3"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleProvider:
		return true
	}
	return false
}

const DefaultProfilePic = "profile_pics/default.png"

type User struct {
	ID            int    `json:"id"`
	FullName      string `json:"full_name"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	PasswordHash  string `json:"-"`
	Role          Role   `json:"role"`
	AccountStatus string `json:"account_status"` // "1": active, "2": inactive
	ProfilePic    string `json:"profile_pic"`
}

/*
Mysql Schema:

CREATE TABLE users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	full_name VARCHAR(120) NOT NULL,
	username VARCHAR(80) NOT NULL UNIQUE,
	email VARCHAR(120) NOT NULL UNIQUE,
	password_hash VARCHAR(128) NOT NULL,
	role VARCHAR(20) NOT NULL,
	account_status VARCHAR(10) NOT NULL DEFAULT '1',
	profile_pic VARCHAR(255) DEFAULT 'profile_pics/default.png'
);
*/
