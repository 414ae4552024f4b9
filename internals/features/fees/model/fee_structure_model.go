// file: internals/features/fees/model/fee_structure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/tenancy"
)

// FeeStructureModel: paket biaya satu class untuk satu tahun ajaran.
type FeeStructureModel struct {
	FeeStructureID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:fee_structure_id" json:"fee_structure_id"`
	FeeStructureSchoolID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_fee_structure_class_year;column:fee_structure_school_id" json:"fee_structure_school_id"`

	FeeStructureClassID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_fee_structure_class_year;column:fee_structure_class_id" json:"fee_structure_class_id"`
	FeeStructureAcademicYear string    `gorm:"type:varchar(9);not null;uniqueIndex:uq_fee_structure_class_year;column:fee_structure_academic_year" json:"fee_structure_academic_year"`

	FeeStructureCreatedAt time.Time      `gorm:"autoCreateTime;column:fee_structure_created_at" json:"fee_structure_created_at"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;index"          json:"fee_structure_deleted_at,omitempty"`

	FeeStructureItems []FeeItemModel `gorm:"foreignKey:FeeItemStructureID;references:FeeStructureID" json:"fee_structure_items,omitempty"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }

func (FeeStructureModel) SchoolIDColumn() string { return "fee_structure_school_id" }

func (m *FeeStructureModel) TenantSchoolID() uuid.UUID { return m.FeeStructureSchoolID }

func (m *FeeStructureModel) BeforeCreate(tx *gorm.DB) error {
	return tenancy.FillSchoolID(tx, &m.FeeStructureSchoolID)
}

// TotalAmount menjumlahkan seluruh item.
func (m *FeeStructureModel) TotalAmount() int64 {
	var total int64
	for i := range m.FeeStructureItems {
		total += m.FeeStructureItems[i].FeeItemAmount
	}
	return total
}

// FeeItemModel: komponen biaya (SPP, lab, perpustakaan, dst). Nominal rupiah.
type FeeItemModel struct {
	FeeItemID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:fee_item_id" json:"fee_item_id"`
	FeeItemStructureID uuid.UUID `gorm:"type:uuid;not null;index;column:fee_item_structure_id" json:"fee_item_structure_id"`

	FeeItemName   string `gorm:"type:varchar(100);not null;column:fee_item_name" json:"fee_item_name"`
	FeeItemAmount int64  `gorm:"not null;column:fee_item_amount"                 json:"fee_item_amount"`

	FeeItemCreatedAt time.Time `gorm:"autoCreateTime;column:fee_item_created_at" json:"fee_item_created_at"`
}

func (FeeItemModel) TableName() string { return "fee_items" }
