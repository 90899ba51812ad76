package repository

import (
	"context"
	"database/sql"

	"ecommerce-backend/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

const userColumns = `id, full_name, username, email, password_hash, role, account_status, profile_pic`

func scanUser(row *sql.Row) (*entity.User, error) {
	user := &entity.User{}
	err := row.Scan(&user.ID, &user.FullName, &user.Username, &user.Email,
		&user.PasswordHash, &user.Role, &user.AccountStatus, &user.ProfilePic)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

// EmailTaken reports whether another user (id != excludeID) already owns the
// email. Pass excludeID 0 to check against all rows.
func (r *UserRepository) EmailTaken(ctx context.Context, email string, excludeID int) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE email = ? AND id != ?`
	err := r.db.QueryRowContext(ctx, query, email, excludeID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) UsernameTaken(ctx context.Context, username string, excludeID int) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE username = ? AND id != ?`
	err := r.db.QueryRowContext(ctx, query, username, excludeID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user := entity.User{}
		err := rows.Scan(&user.ID, &user.FullName, &user.Username, &user.Email,
			&user.PasswordHash, &user.Role, &user.AccountStatus, &user.ProfilePic)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `INSERT INTO users (full_name, username, email, password_hash, role, account_status, profile_pic)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, user.FullName, user.Username, user.Email,
		user.PasswordHash, user.Role, user.AccountStatus, user.ProfilePic)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	query := `UPDATE users SET full_name = ?, username = ?, email = ?, password_hash = ?,
		role = ?, account_status = ?, profile_pic = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, user.FullName, user.Username, user.Email,
		user.PasswordHash, user.Role, user.AccountStatus, user.ProfilePic, user.ID)
	return err
}

// Delete is a hard delete. Dependent orders and products are left in place.
func (r *UserRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
