package database

import (
	"database/sql"

	"swaram-cms/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT u.id, u.email, u.password, u.name, u.avatar_url, u.role_id, u.is_active, u.created_at
			  FROM users u WHERE u.email = $1 AND u.is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name,
		&user.AvatarURL, &user.RoleID, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT u.id, u.email, u.password, u.name, u.avatar_url, u.role_id, u.is_active, u.created_at
			  FROM users u WHERE u.id = $1 AND u.is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name,
		&user.AvatarURL, &user.RoleID, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRole(db *sql.DB, userID string) (*models.Role, error) {
	role := &models.Role{}
	query := `SELECT r.id, r.name, r.description
			  FROM roles r
			  JOIN users u ON u.role_id = r.id
			  WHERE u.id = $1`

	err := db.QueryRow(query, userID).Scan(&role.ID, &role.Name, &role.Description)
	if err != nil {
		return nil, err
	}
	return role, nil
}

// EnsureRole returns the role with the given name, creating it first if
// it does not exist.
func EnsureRole(db *sql.DB, name string) (*models.Role, error) {
	role := &models.Role{Name: name}
	err := db.QueryRow(`SELECT id, name, description FROM roles WHERE name = $1`, name).
		Scan(&role.ID, &role.Name, &role.Description)
	if err == nil {
		return role, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	err = db.QueryRow(`INSERT INTO roles (name) VALUES ($1) RETURNING id`, name).Scan(&role.ID)
	if err != nil {
		return nil, err
	}
	return role, nil
}

func CreateUser(db *sql.DB, user *models.User, hashedPassword string) error {
	query := `INSERT INTO users (email, password, name, role_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`
	return db.QueryRow(query, user.Email, hashedPassword, user.Name, user.RoleID).
		Scan(&user.ID, &user.CreatedAt)
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1 WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}
