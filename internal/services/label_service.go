package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	domainerrors "katalog/internal/errors"
	"katalog/internal/models"
	"katalog/internal/repositories"

	"go.uber.org/zap"
)

// LabelService handles tags and attributes, which share one behaviour.
type LabelService[T models.Tag | models.Attribute] struct {
	repo     repositories.LabelRepository[T]
	kind     string
	newLabel func(models.Label) T
	events   EventPublisher
	log      *zap.Logger
}

// NewTagService creates a LabelService for tags.
func NewTagService(repo repositories.TagRepository, events EventPublisher, log *zap.Logger) *LabelService[models.Tag] {
	return &LabelService[models.Tag]{
		repo:     repo,
		kind:     "tag",
		newLabel: func(l models.Label) models.Tag { return models.Tag{Label: l} },
		events:   events,
		log:      log,
	}
}

// NewAttributeService creates a LabelService for attributes.
func NewAttributeService(repo repositories.AttributeRepository, events EventPublisher, log *zap.Logger) *LabelService[models.Attribute] {
	return &LabelService[models.Attribute]{
		repo:     repo,
		kind:     "attribute",
		newLabel: func(l models.Label) models.Attribute { return models.Attribute{Label: l} },
		events:   events,
		log:      log,
	}
}

// Kind returns "tag" or "attribute".
func (s *LabelService[T]) Kind() string {
	return s.kind
}

// List returns the owner's labels ordered by name descending.
func (s *LabelService[T]) List(ownerID string, assignedOnly bool) ([]T, error) {
	return s.repo.List(ownerID, assignedOnly)
}

// Create adds a label named name for ownerID.
func (s *LabelService[T]) Create(ownerID, name string) (*T, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.FieldError("name", "this field is required")
	}
	if utf8.RuneCountInString(name) > 255 {
		return nil, domainerrors.FieldError("name", "must not exceed 255 characters")
	}

	base := models.Label{Name: name, UserID: ownerID}
	label := s.newLabel(base)
	if err := s.repo.Create(&label); err != nil {
		return nil, err
	}

	publish(s.events, s.log, s.kind+".created", ownerID, labelID(label), label)
	return &label, nil
}

func labelID[T models.Tag | models.Attribute](label T) string {
	switch l := any(label).(type) {
	case models.Tag:
		return l.ID
	case models.Attribute:
		return l.ID
	}
	return ""
}

// resolveLabels loads the owner's labels for ids, ignoring duplicates. Ids that
// do not exist or belong to someone else are returned in missing.
func resolveLabels[T models.Tag | models.Attribute](repo repositories.LabelRepository[T], ownerID string, ids []string) (labels []T, missing []string, err error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	labels, err = repo.GetByIDs(ownerID, unique)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve labels: %w", err)
	}

	found := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		found[labelID(l)] = struct{}{}
	}
	for _, id := range unique {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return labels, missing, nil
}
