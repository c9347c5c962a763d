package services_test

import (
	"strings"
	"testing"

	domainerrors "katalog/internal/errors"
	"katalog/internal/models"
	"katalog/internal/services"
	"katalog/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLabelService_CreateTag(t *testing.T) {
	repo := new(MockLabelRepository[models.Tag])
	events := new(MockPublisher)
	service := services.NewTagService(repo, events, zap.NewNop())

	repo.On("Create", mock.MatchedBy(func(tag *models.Tag) bool {
		return tag.Name == "Dessert" && tag.UserID == ownerID
	})).Return(nil).Once()
	events.On("Publish", mock.MatchedBy(func(e rabbitmq.Event) bool {
		return e.Type == "tag.created" && e.OwnerID == ownerID
	})).Return(nil).Once()

	tag, err := service.Create(ownerID, "  Dessert ")
	require.NoError(t, err)
	assert.Equal(t, "Dessert", tag.Name)
	assert.Equal(t, "Dessert", tag.String())
	assert.Equal(t, "tag", service.Kind())
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestLabelService_CreateAttributeValidation(t *testing.T) {
	repo := new(MockLabelRepository[models.Attribute])
	service := services.NewAttributeService(repo, nil, zap.NewNop())

	for _, name := range []string{"", "   ", strings.Repeat("n", 256)} {
		_, err := service.Create(ownerID, name)
		assert.ErrorIs(t, err, domainerrors.ErrValidation)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything)
	assert.Equal(t, "attribute", service.Kind())
}

func TestLabelService_List(t *testing.T) {
	repo := new(MockLabelRepository[models.Tag])
	service := services.NewTagService(repo, nil, zap.NewNop())

	tags := []models.Tag{
		{Label: models.Label{ID: "2", Name: "Vegan"}},
		{Label: models.Label{ID: "1", Name: "Dessert"}},
	}
	repo.On("List", ownerID, true).Return(tags, nil).Once()

	got, err := service.List(ownerID, true)
	require.NoError(t, err)
	assert.Equal(t, tags, got)
	repo.AssertExpectations(t)
}

func TestLabelService_CreateCountsCharactersNotBytes(t *testing.T) {
	repo := new(MockLabelRepository[models.Tag])
	service := services.NewTagService(repo, nil, zap.NewNop())
	repo.On("Create", mock.AnythingOfType("*models.Tag")).Return(nil).Once()

	name := strings.Repeat("é", 255)
	tag, err := service.Create(ownerID, name)
	require.NoError(t, err)
	assert.Equal(t, name, tag.Name)

	_, err = service.Create(ownerID, name+"é")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	repo.AssertExpectations(t)
}
