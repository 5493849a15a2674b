package repository

import (
	"time"

	"github.com/lindltaylor7/monoessam/entity"

	"gorm.io/gorm"
)

type PurchaseOrderRepository struct {
	DB *gorm.DB
}

func NewPurchaseOrderRepository(db *gorm.DB) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{DB: db}
}

func (r *PurchaseOrderRepository) CreateOrder(tx *gorm.DB, o *entity.PurchaseOrder) error {
	return tx.Create(o).Error
}

func (r *PurchaseOrderRepository) CreateItem(tx *gorm.DB, it *entity.PurchaseOrderItem) error {
	return tx.Create(it).Error
}

// GetOrderWithItems returns the fully loaded order for display.
func (r *PurchaseOrderRepository) GetOrderWithItems(id uint) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := r.DB.
		Preload("Items").
		Preload("Items.Ingredient").
		Preload("Cafe").
		Preload("WeeklyProgram").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /purchase-orders → list with cafe name, no items
type PurchaseOrderSummary struct {
	ID              uint      `json:"id"`
	Code            string    `json:"code"`
	WeeklyProgramID *uint     `json:"weeklyProgramId"`
	CafeID          uint      `json:"cafeId"`
	CafeName        string    `json:"cafeName"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (r *PurchaseOrderRepository) ListOrders(limit int) ([]PurchaseOrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []PurchaseOrderSummary
	err := r.DB.Table("purchase_orders AS o").
		Select("o.id, o.code, o.weekly_program_id, o.cafe_id, c.name AS cafe_name, o.status, o.created_at").
		Joins("JOIN cafes c ON c.id = o.cafe_id").
		Where("o.deleted_at IS NULL").
		Order("o.id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}
