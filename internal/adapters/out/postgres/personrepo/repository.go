package personrepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/person"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPersonRepository implements PersonRepository using GORM.
type GormPersonRepository struct {
	db *gorm.DB
}

// NewGormPersonRepository creates a new GORM person repository.
func NewGormPersonRepository(db *gorm.DB) *GormPersonRepository {
	return &GormPersonRepository{db: db}
}

// Get retrieves a person by ID regardless of activity. Callers decide
// whether an inactive person is acceptable for their use case.
func (r *GormPersonRepository) Get(ctx context.Context, id kernel.UUID) (*person.Person, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PersonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("person", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
