// Package personrepo provides read-side persistence for the customer records
// referenced by service orders. Persons are written by the registration
// subsystem; this adapter only reads them.
package personrepo

import (
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/person"

	"github.com/google/uuid"
)

// PersonDTO represents the database structure of a customer record.
type PersonDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255)"`
	CorporateName string    `gorm:"type:varchar(255)"`
	TradeName     string    `gorm:"type:varchar(255)"`
	IsActive      bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for person entities.
// Overrides GORM's default naming convention to use "persons".
func (PersonDTO) TableName() string {
	return "persons"
}

// toDomain converts a database DTO to a person read model.
func toDomain(dto PersonDTO) (*person.Person, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return person.RestorePerson(id, dto.Name, dto.CorporateName, dto.TradeName, dto.IsActive)
}
