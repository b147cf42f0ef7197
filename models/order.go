package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of a POS order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderType tells where the food goes
type OrderType string

const (
	OrderDineIn   OrderType = "dine_in"
	OrderTakeaway OrderType = "takeaway"
	OrderDelivery OrderType = "delivery"
)

type Order struct {
	ID            uint                 `json:"id" gorm:"primaryKey"`
	OrderNumber   string               `json:"order_number" gorm:"uniqueIndex;not null"`
	OrderType     OrderType            `json:"order_type" gorm:"not null;default:'dine_in'"`
	TableID       *uint                `json:"table_id"`
	Table         *DiningTable         `json:"table,omitempty" gorm:"foreignKey:TableID"`
	StaffID       uint                 `json:"staff_id"`
	Status        OrderStatus          `json:"status" gorm:"not null;default:'pending';index"`
	Total         float64              `json:"total"`
	Notes         string               `json:"notes"`
	Items         []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time            `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// NowUTC is the clock gorm stamps rows with. Timestamps are kept in UTC so
// range queries compare like with like on drivers that store them as text.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// BeforeCreate stores caller-supplied creation times in UTC
func (o *Order) BeforeCreate(*gorm.DB) error {
	o.CreatedAt = o.CreatedAt.UTC()
	return nil
}

// TableNumber returns the number of the table the order is for, if any
func (o *Order) TableNumber() string {
	if o.Table == nil {
		return ""
	}
	return o.Table.Number
}

type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null"` // snapshot at order time
	Name      string  `json:"name"`
}

// OrderStatusHistory records every status change
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"`
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}

// All lists every model for migration
func All() []any {
	return []any{
		&User{},
		&Product{},
		&DiningTable{},
		&Setting{},
		&Order{},
		&OrderItem{},
		&OrderStatusHistory{},
	}
}
