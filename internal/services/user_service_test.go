package services_test

import (
	"testing"

	domainerrors "katalog/internal/errors"
	"katalog/internal/models"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func notFound() error {
	return domainerrors.NotFoundf("user not found")
}

func TestUserService_CreateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, zap.NewNop())

	mockRepo.On("GetByEmail", "test@gmail.com").Return(nil, notFound()).Once()
	mockRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "test@gmail.com" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Testpass123")) == nil &&
			u.IsActive && !u.IsStaff && !u.IsSuperuser
	})).Return(nil).Once()

	user, err := service.CreateUser("test@GMAIL.com", "Testpass123", "Test")
	require.NoError(t, err)
	assert.Equal(t, "test@gmail.com", user.Email)
	assert.NotEqual(t, "Testpass123", user.Password)
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUserWithoutEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, zap.NewNop())

	for _, email := range []string{"", "   "} {
		_, err := service.CreateUser(email, "test1234", "")
		assert.ErrorIs(t, err, domainerrors.ErrValidation)
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserService_CreateUserDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, zap.NewNop())

	mockRepo.On("GetByEmail", "test@gmail.com").Return(&models.User{ID: "1"}, nil).Once()

	_, err := service.CreateUser("test@gmail.com", "test1234", "")
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "email 'test@gmail.com' already registered")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserService_CreateSuperuser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, zap.NewNop())

	mockRepo.On("GetByEmail", "admin@gmail.com").Return(nil, notFound()).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := service.CreateSuperuser("admin@gmail.com", "test1234")
	require.NoError(t, err)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)
	mockRepo.AssertExpectations(t)
}

func TestUserService_VerifyCredentials(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	active := &models.User{ID: "user-1", Email: "test@example.com", Password: string(hashed), IsActive: true}
	inactive := &models.User{ID: "user-2", Email: "gone@example.com", Password: string(hashed), IsActive: false}

	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, zap.NewNop())

	// Email is normalized before lookup.
	mockRepo.On("GetByEmail", "test@example.com").Return(active, nil)
	mockRepo.On("GetByEmail", "gone@example.com").Return(inactive, nil)
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, notFound())

	user, err := service.VerifyCredentials("Test@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	_, wrongPassword := service.VerifyCredentials("test@example.com", "wrong")
	_, unknownEmail := service.VerifyCredentials("nobody@example.com", "password123")
	_, inactiveUser := service.VerifyCredentials("gone@example.com", "password123")

	for _, err := range []error{wrongPassword, unknownEmail, inactiveUser} {
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
	// The failure message does not reveal which check failed.
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.Equal(t, wrongPassword.Error(), inactiveUser.Error())
}

func TestUserService_UpdateProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, zap.NewNop())

	stored := &models.User{ID: "user-1", Email: "test@example.com", Password: "old", IsActive: true}
	mockRepo.On("GetByID", "user-1").Return(stored, nil)
	mockRepo.On("Update", stored).Return(nil).Once()

	name, password := " New Name ", "newpass1"
	user, err := service.UpdateProfile("user-1", &name, &password)
	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newpass1")))
	mockRepo.AssertExpectations(t)

	blank := ""
	_, err = service.UpdateProfile("user-1", nil, &blank)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestUserService_CreateUserLosesRace(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, zap.NewNop())

	// The lookup misses but another registration inserts first.
	mockRepo.On("GetByEmail", "race@example.com").Return(nil, notFound()).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Return(domainerrors.AlreadyExistsf("email 'race@example.com' already registered")).Once()

	_, err := service.CreateUser("race@example.com", "test1234", "")
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}
