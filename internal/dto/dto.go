// Package dto maps catalog models to their JSON representation.
//
// Product listings reference tags and attributes by ID; the detail view
// expands them into {id, name} objects.
package dto

import (
	"path"

	"katalog/internal/models"
)

// MediaURL is the URL prefix stored images are served under.
const MediaURL = "/media/"

// User is the public view of an account.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Label is a tag or attribute.
type Label struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is the list representation of a product.
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	TimeMinutes   int      `json:"time_minutes"`
	Price         float64  `json:"price"`
	Image         *string  `json:"image"`
	ImageBlurHash *string  `json:"image_blurhash"`
	Tags          []string `json:"tags"`
	Attributes    []string `json:"attributes"`
}

// ProductDetail is the retrieve representation with nested labels.
type ProductDetail struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	TimeMinutes   int     `json:"time_minutes"`
	Price         float64 `json:"price"`
	Image         *string `json:"image"`
	ImageBlurHash *string `json:"image_blurhash"`
	Tags          []Label `json:"tags"`
	Attributes    []Label `json:"attributes"`
}

// FromUser converts a user. The password hash is never exposed.
func FromUser(u *models.User) User {
	return User{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
	}
}

// FromTags converts tags.
func FromTags(tags []models.Tag) []Label {
	out := make([]Label, 0, len(tags))
	for _, t := range tags {
		out = append(out, Label{ID: t.ID, Name: t.Name})
	}
	return out
}

// FromAttributes converts attributes.
func FromAttributes(attributes []models.Attribute) []Label {
	out := make([]Label, 0, len(attributes))
	for _, a := range attributes {
		out = append(out, Label{ID: a.ID, Name: a.Name})
	}
	return out
}

// FromLabels converts either label kind.
func FromLabels[T models.Tag | models.Attribute](labels []T) []Label {
	switch l := any(labels).(type) {
	case []models.Tag:
		return FromTags(l)
	case []models.Attribute:
		return FromAttributes(l)
	}
	return []Label{}
}

// FromLabel converts a single tag or attribute.
func FromLabel[T models.Tag | models.Attribute](label T) Label {
	return FromLabels([]T{label})[0]
}

// FromProduct converts a product to its list representation.
func FromProduct(p *models.Product) Product {
	image, blurHash := imageFields(p)
	return Product{
		ID:            p.ID,
		Title:         p.Title,
		TimeMinutes:   p.TimeMinutes,
		Price:         p.Price,
		Image:         image,
		ImageBlurHash: blurHash,
		Tags:          p.TagIDs(),
		Attributes:    p.AttributeIDs(),
	}
}

// FromProducts converts a product listing.
func FromProducts(products []models.Product) []Product {
	out := make([]Product, 0, len(products))
	for i := range products {
		out = append(out, FromProduct(&products[i]))
	}
	return out
}

// FromProductDetail converts a product to its detail representation.
func FromProductDetail(p *models.Product) ProductDetail {
	image, blurHash := imageFields(p)
	return ProductDetail{
		ID:            p.ID,
		Title:         p.Title,
		TimeMinutes:   p.TimeMinutes,
		Price:         p.Price,
		Image:         image,
		ImageBlurHash: blurHash,
		Tags:          FromTags(p.Tags),
		Attributes:    FromAttributes(p.Attributes),
	}
}

func imageFields(p *models.Product) (image, blurHash *string) {
	if p.Image == "" {
		return nil, nil
	}
	url := path.Join(MediaURL, p.Image)
	image = &url
	if p.ImageBlurHash != "" {
		hash := p.ImageBlurHash
		blurHash = &hash
	}
	return image, blurHash
}
