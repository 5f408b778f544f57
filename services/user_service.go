package services

import (
	"errors"
	"time"

	"urban-renewal-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrDuplicateUser is returned when registration hits an existing username
// or email.
var ErrDuplicateUser = errors.New("username or email already taken")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account after checking that neither the username
// nor the email is already taken. No user row is created on conflict.
func (s *UserService) Register(user *models.User, password string) error {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("username = ? OR email = ?", user.Username, user.Email).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateUser
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	if user.Role == "" {
		user.Role = models.RoleProfessional
	}
	user.Password = hash
	user.CreatedAt = time.Now()
	user.LastLogin = nil

	return s.db.Create(user).Error
}

// VerifyCredentials checks a username/password pair. The stored hash never
// leaves this layer.
func (s *UserService) VerifyCredentials(username, password string) (*models.User, bool) {
	user, err := s.GetByUsername(username)
	if err != nil {
		return nil, false
	}
	if !CheckPasswordHash(password, user.Password) {
		return nil, false
	}
	return user, true
}

// TouchLastLogin records a successful authentication.
func (s *UserService) TouchLastLogin(userID uint) error {
	return s.db.Model(&models.User{}).
		Where("user_id = ?", userID).
		Update("last_login", time.Now()).Error
}

// HashPassword hashes password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares password with hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
