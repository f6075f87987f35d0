// Package person holds the customer read model referenced by service
// orders. Persons are owned by the registration subsystem; this package
// only rehydrates them for existence and activity checks and for
// enriching order listings with the customer's names.
package person

import (
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// Person is a customer as seen by the service-order workflows. It is a
// read model: orders reference persons, they never mutate them.
type Person struct {
	id            kernel.UUID
	name          string
	corporateName string
	tradeName     string
	isActive      bool
}

// RestorePerson rehydrates a person from storage.
func RestorePerson(id kernel.UUID, name, corporateName, tradeName string, isActive bool) (*Person, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("personId", err)
	}
	if name == "" && corporateName == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Person{
		id:            id,
		name:          name,
		corporateName: corporateName,
		tradeName:     tradeName,
		isActive:      isActive,
	}, nil
}

// ID returns the person's identifier.
func (p *Person) ID() kernel.UUID {
	return p.id
}

// Name returns the person's given name, empty for companies.
func (p *Person) Name() string {
	return p.name
}

// CorporateName returns the registered company name, empty for individuals.
func (p *Person) CorporateName() string {
	return p.corporateName
}

// TradeName returns the name the company trades under, empty for individuals.
func (p *Person) TradeName() string {
	return p.tradeName
}

// IsActive reports whether the person may be attached to new orders.
func (p *Person) IsActive() bool {
	return p.isActive
}

// DisplayName returns the name shown in listings: the given name for
// individuals, the trade name (or corporate name) for companies.
func (p *Person) DisplayName() string {
	if p.name != "" {
		return p.name
	}
	if p.tradeName != "" {
		return p.tradeName
	}
	return p.corporateName
}
