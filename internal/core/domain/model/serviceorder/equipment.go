package serviceorder

import "workshop/internal/pkg/errs"

// Equipment describes the item brought in for service. Only the name is
// semantically constrained; the remaining attributes are free text filled
// in at the front desk.
type Equipment struct {
	name         string
	model        string
	brand        string
	serialNumber string
	voltage      string
	accessories  string
}

// NewEquipment creates an equipment description. The name is required,
// everything else is optional free text.
func NewEquipment(name, model, brand, serialNumber, voltage, accessories string) (Equipment, error) {
	if name == "" {
		return Equipment{}, errs.NewValueIsRequiredError("equipment")
	}

	return Equipment{
		name:         name,
		model:        model,
		brand:        brand,
		serialNumber: serialNumber,
		voltage:      voltage,
		accessories:  accessories,
	}, nil
}

// Name returns what the equipment is.
func (e Equipment) Name() string { return e.name }

// Model returns the free-text model designation.
func (e Equipment) Model() string { return e.model }

// Brand returns the free-text manufacturer name.
func (e Equipment) Brand() string { return e.brand }

// SerialNumber returns the free-text serial number.
func (e Equipment) SerialNumber() string { return e.serialNumber }

// Voltage returns the free-text voltage rating.
func (e Equipment) Voltage() string { return e.voltage }

// Accessories returns the free-text list of accessories left with the equipment.
func (e Equipment) Accessories() string { return e.accessories }

// Validate checks the equipment invariants. A zero value is invalid
// because the name is required.
func (e Equipment) Validate() error {
	if e.name == "" {
		return errs.NewValueIsRequiredError("equipment")
	}
	return nil
}
