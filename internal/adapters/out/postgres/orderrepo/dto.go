// Package orderrepo provides data transfer objects and mapping functions for service order persistence.
// This package implements the repository pattern for the service order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceOrderDTO represents the database structure for persisting service order aggregates.
// Derived totals are stored alongside the inputs so list queries can read them without
// touching the items table; they are recomputed by the aggregate on every write.
type ServiceOrderDTO struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	OrderNumber int64        `gorm:"type:bigint;not null;uniqueIndex"`
	CustomerID  uuid.UUID    `gorm:"type:uuid;not null;index"`
	Equipment   EquipmentDTO `gorm:"embedded;embeddedPrefix:equipment_"`
	Notes       string       `gorm:"type:text"`
	Warranty    bool         `gorm:"not null"`
	IsReturn    bool         `gorm:"not null"`

	Status          int `gorm:"type:int;not null;index"`
	FinancialStatus int `gorm:"type:int;not null;index"`

	EntryDate            time.Time `gorm:"not null"`
	ApprovalDate         *time.Time
	ExpectedDeliveryDate *time.Time
	DeliveryDate         *time.Time

	PaymentType      int `gorm:"type:int;not null"`
	InstallmentCount int `gorm:"type:int;not null"`
	PaidInstallments int `gorm:"type:int;not null"`

	TotalDiscount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalAddition   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ServicesSum     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalAmountLeft decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalAmountPaid decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	IsActive  bool `gorm:"not null;index"`
	DeletedAt *time.Time

	Items []ServiceItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for service order entities.
// Overrides GORM's default naming convention to use "service_orders".
func (ServiceOrderDTO) TableName() string {
	return "service_orders"
}

// EquipmentDTO represents the embedded equipment description within the order table.
type EquipmentDTO struct {
	Name         string `gorm:"type:varchar(255);not null"`
	Model        string `gorm:"type:varchar(255)"`
	Brand        string `gorm:"type:varchar(255)"`
	SerialNumber string `gorm:"type:varchar(255)"`
	Voltage      string `gorm:"type:varchar(64)"`
	Accessories  string `gorm:"type:text"`
}

// ServiceItemDTO represents the database structure for persisting billed service items.
// Items carry no identity of their own; the position column preserves intake order.
type ServiceItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"type:int;not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	Quantity    int             `gorm:"type:int;not null"`
	UnitValue   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Discount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Addition    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName specifies the database table name for service item entities.
// Overrides GORM's default naming convention to use "service_order_items".
func (ServiceItemDTO) TableName() string {
	return "service_order_items"
}

// fromDomain converts a service order domain aggregate to its database representation.
// Maps all aggregate attributes including the billed items and derived totals.
func fromDomain(order *serviceorder.ServiceOrder) ServiceOrderDTO {
	orderID := order.ID().Bytes()
	items := make([]ServiceItemDTO, 0, len(order.Items()))
	for i, item := range order.Items() {
		items = append(items, ServiceItemDTO{
			OrderID:     orderID,
			Position:    i,
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitValue:   item.UnitValue(),
			Discount:    item.Discount(),
			Addition:    item.Addition(),
		})
	}

	terms := order.PaymentTerms()
	return ServiceOrderDTO{
		ID:          orderID,
		OrderNumber: order.OrderNumber(),
		CustomerID:  order.CustomerID().Bytes(),
		Equipment: EquipmentDTO{
			Name:         order.Equipment().Name(),
			Model:        order.Equipment().Model(),
			Brand:        order.Equipment().Brand(),
			SerialNumber: order.Equipment().SerialNumber(),
			Voltage:      order.Equipment().Voltage(),
			Accessories:  order.Equipment().Accessories(),
		},
		Notes:                order.Notes(),
		Warranty:             order.Warranty(),
		IsReturn:             order.IsReturn(),
		Status:               int(order.Status()),
		FinancialStatus:      int(order.Financial()),
		EntryDate:            order.EntryDate(),
		ApprovalDate:         order.ApprovalDate(),
		ExpectedDeliveryDate: order.ExpectedDeliveryDate(),
		DeliveryDate:         order.DeliveryDate(),
		PaymentType:          int(terms.PaymentType()),
		InstallmentCount:     terms.InstallmentCount(),
		PaidInstallments:     terms.PaidInstallments(),
		TotalDiscount:        order.TotalDiscount(),
		TotalAddition:        order.TotalAddition(),
		ServicesSum:          order.ServicesSum(),
		TotalAmountLeft:      order.TotalAmountLeft(),
		TotalAmountPaid:      order.TotalAmountPaid(),
		IsActive:             order.IsActive(),
		DeletedAt:            order.DeletedAt(),
		Items:                items,
	}
}

// toDomain converts a database DTO to a service order domain aggregate.
// Reconstructs the complete aggregate using RestoreServiceOrder; the derived
// totals are recomputed from the items rather than read from the row.
func toDomain(dto ServiceOrderDTO) (*serviceorder.ServiceOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	equipment, err := serviceorder.NewEquipment(
		dto.Equipment.Name,
		dto.Equipment.Model,
		dto.Equipment.Brand,
		dto.Equipment.SerialNumber,
		dto.Equipment.Voltage,
		dto.Equipment.Accessories,
	)
	if err != nil {
		return nil, err
	}

	terms, err := serviceorder.NewPaymentTerms(
		serviceorder.PaymentType(dto.PaymentType),
		dto.InstallmentCount,
		dto.PaidInstallments,
	)
	if err != nil {
		return nil, err
	}

	items := make([]serviceorder.ServiceItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := serviceorder.NewServiceItem(
			itemDto.Description,
			itemDto.Quantity,
			itemDto.UnitValue,
			itemDto.Discount,
			itemDto.Addition,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return serviceorder.RestoreServiceOrder(serviceorder.RestoreServiceOrderParams{
		ID:                   id,
		OrderNumber:          dto.OrderNumber,
		CustomerID:           customerID,
		Equipment:            equipment,
		Notes:                dto.Notes,
		Warranty:             dto.Warranty,
		IsReturn:             dto.IsReturn,
		Status:               serviceorder.Status(dto.Status),
		Financial:            serviceorder.FinancialStatus(dto.FinancialStatus),
		EntryDate:            dto.EntryDate,
		ApprovalDate:         dto.ApprovalDate,
		ExpectedDeliveryDate: dto.ExpectedDeliveryDate,
		DeliveryDate:         dto.DeliveryDate,
		Terms:                terms,
		Items:                items,
		TotalDiscount:        dto.TotalDiscount,
		TotalAddition:        dto.TotalAddition,
		TotalAmountPaid:      dto.TotalAmountPaid,
		IsActive:             dto.IsActive,
		DeletedAt:            dto.DeletedAt,
	})
}
