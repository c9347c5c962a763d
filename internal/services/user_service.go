package services

import (
	"fmt"
	"strings"

	domainerrors "katalog/internal/errors"
	"katalog/internal/models"
	"katalog/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService manages catalog accounts.
type UserService struct {
	repo repositories.UserRepository
	log  *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository, log *zap.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

// CreateUser stores a new active user with a normalized email and a bcrypt
// hash of password.
func (s *UserService) CreateUser(email, password, name string) (*models.User, error) {
	user := &models.User{
		Email:    models.NormalizeEmail(email),
		Name:     strings.TrimSpace(name),
		IsActive: true,
	}
	if err := s.create(user, password); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateSuperuser is CreateUser with the staff and superuser flags set.
func (s *UserService) CreateSuperuser(email, password string) (*models.User, error) {
	user := &models.User{
		Email:       models.NormalizeEmail(email),
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	}
	if err := s.create(user, password); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) create(user *models.User, password string) error {
	if user.Email == "" {
		return domainerrors.FieldError("email", "users must have an email address")
	}
	if password == "" {
		return domainerrors.FieldError("password", "this field is required")
	}

	existing, err := s.repo.GetByEmail(user.Email)
	if err == nil && existing != nil {
		return domainerrors.AlreadyExistsf("email '%s' already registered", user.Email)
	}
	if err != nil && !domainerrors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hash

	if err := s.repo.Create(user); err != nil {
		// A concurrent registration can win between the lookup and the insert.
		if domainerrors.Is(err, domainerrors.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("failed to register user: %w", err)
	}
	s.log.Info("user created", zap.String("user_id", user.ID), zap.Bool("superuser", user.IsSuperuser))
	return nil
}

// VerifyCredentials returns the active user matching email and password.
// Unknown email, wrong password and inactive account all fail the same way.
func (s *UserService) VerifyCredentials(email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(models.NormalizeEmail(email))
	if err != nil {
		if domainerrors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InvalidCredentials("unable to authenticate with provided credentials")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil || !user.IsActive {
		return nil, domainerrors.InvalidCredentials("unable to authenticate with provided credentials")
	}
	return user, nil
}

// GetUser returns the user with id.
func (s *UserService) GetUser(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// UpdateProfile changes the caller's name and/or password. Nil fields are left as is.
func (s *UserService) UpdateProfile(id string, name, password *string) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		user.Name = strings.TrimSpace(*name)
	}
	if password != nil {
		if *password == "" {
			return nil, domainerrors.FieldError("password", "this field may not be blank")
		}
		hash, err := hashPassword(*password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
