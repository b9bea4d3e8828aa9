package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abubakar-88/jugjiggasha/internal/models"
)

// AdminServiceProvider defines the interface for admin account services.
type AdminServiceProvider interface {
	GetAdminByID(id string) (models.Admin, error)
	CreateAdmin(username, email, password string) (models.Admin, error)
	Authenticate(email, password string) (models.Admin, error)
	EnsureDefaultAdmin(username, email, password string) error
}

// AdminService provides business logic for admin account management.
type AdminService struct {
	db *sql.DB
}

// NewAdminService creates a new AdminService.
func NewAdminService(db *sql.DB) *AdminService {
	return &AdminService{db: db}
}

// GetAdminByID retrieves a single admin by their ID.
func (s *AdminService) GetAdminByID(id string) (models.Admin, error) {
	var admin models.Admin
	row := s.db.QueryRow("SELECT id, username, email, created_at FROM admins WHERE id = ?", id)
	err := row.Scan(&admin.ID, &admin.Username, &admin.Email, &admin.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Admin{}, fmt.Errorf("admin with ID %s not found", id)
		}
		return models.Admin{}, err
	}
	return admin, nil
}

// getAdminByEmail retrieves a single admin by email, including the password hash.
func (s *AdminService) getAdminByEmail(email string) (models.Admin, error) {
	var admin models.Admin
	row := s.db.QueryRow("SELECT id, username, email, password_hash, created_at FROM admins WHERE email = ?", email)
	err := row.Scan(&admin.ID, &admin.Username, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Admin{}, fmt.Errorf("admin with email %s not found", email)
		}
		return models.Admin{}, err
	}
	return admin, nil
}

// CreateAdmin creates a new admin account, hashing the password.
func (s *AdminService) CreateAdmin(username, email, password string) (models.Admin, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Admin{}, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.Admin{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	stmt, err := s.db.Prepare("INSERT INTO admins(id, username, email, password_hash) VALUES(?, ?, ?, ?)")
	if err != nil {
		return models.Admin{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(admin.ID, admin.Username, admin.Email, admin.PasswordHash)
	if err != nil {
		return models.Admin{}, err
	}

	// Return admin without password hash
	admin.PasswordHash = ""
	return admin, nil
}

// Authenticate verifies an admin's credentials.
func (s *AdminService) Authenticate(email, password string) (models.Admin, error) {
	admin, err := s.getAdminByEmail(email)
	if err != nil {
		return models.Admin{}, fmt.Errorf("authentication failed: admin not found")
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
	if err != nil {
		return models.Admin{}, fmt.Errorf("authentication failed: invalid password")
	}

	// Don't send the password hash to the client
	admin.PasswordHash = ""
	return admin, nil
}

// EnsureDefaultAdmin creates the bootstrap admin account when none exists.
func (s *AdminService) EnsureDefaultAdmin(username, email, password string) error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM admins").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := s.CreateAdmin(username, email, password)
	return err
}
