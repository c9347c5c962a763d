package dto_test

import (
	"encoding/json"
	"testing"

	"katalog/internal/dto"
	"katalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct() *models.Product {
	return &models.Product{
		ID:          "p1",
		UserID:      "u1",
		Title:       "Pack",
		TimeMinutes: 10,
		Price:       5,
		Tags:        []models.Tag{{Label: models.Label{ID: "t1", Name: "Outdoors", UserID: "u1"}}},
		Attributes:  []models.Attribute{{Label: models.Label{ID: "a1", Name: "Waterproof", UserID: "u1"}}},
	}
}

func TestFromProduct_ListUsesIDs(t *testing.T) {
	out := dto.FromProduct(sampleProduct())

	assert.Equal(t, []string{"t1"}, out.Tags)
	assert.Equal(t, []string{"a1"}, out.Attributes)
	assert.Nil(t, out.Image)
}

func TestFromProductDetail_NestsLabels(t *testing.T) {
	out := dto.FromProductDetail(sampleProduct())

	assert.Equal(t, []dto.Label{{ID: "t1", Name: "Outdoors"}}, out.Tags)
	assert.Equal(t, []dto.Label{{ID: "a1", Name: "Waterproof"}}, out.Attributes)
}

func TestFromProduct_ImageURL(t *testing.T) {
	p := sampleProduct()
	p.Image = "uploads/product/x.png"
	p.ImageBlurHash = "LEHV6nWB2yk8"

	out := dto.FromProduct(p)
	require.NotNil(t, out.Image)
	assert.Equal(t, "/media/uploads/product/x.png", *out.Image)
	require.NotNil(t, out.ImageBlurHash)
	assert.Equal(t, "LEHV6nWB2yk8", *out.ImageBlurHash)
}

func TestFromUser_OmitsPassword(t *testing.T) {
	body, err := json.Marshal(dto.FromUser(&models.User{ID: "u1", Email: "a@x.com", Password: "hash"}))
	require.NoError(t, err)
	assert.NotContains(t, string(body), "hash")
}

func TestFromLabel(t *testing.T) {
	tag := models.Tag{Label: models.Label{ID: "t1", Name: "Outdoors"}}
	assert.Equal(t, dto.Label{ID: "t1", Name: "Outdoors"}, dto.FromLabel(tag))
	assert.Equal(t, "Outdoors", tag.String())
}
