package model

import "time"

// SequenceModel mirrors the 'sequences' table: one counter row per key.
type SequenceModel struct {
	Key       string `gorm:"type:varchar(64);primaryKey"`
	Value     int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SequenceModel) TableName() string {
	return "sequences"
}

// All lists every model managed by AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&PasswordResetModel{},
		&RoleModel{},
		&PermissionModel{},
		&UserDeviceModel{},
		&PetModel{},
		&AdoptionPetModel{},
		&AdoptionApplicationModel{},
		&ShopInventoryModel{},
		&PetReservationModel{},
		&VetAppointmentModel{},
		&MedicineModel{},
		&PrescriptionModel{},
		&PharmacyOrderModel{},
		&RescueReportModel{},
		&ShelterAnimalModel{},
		&CareServiceModel{},
		&CareBookingModel{},
		&ProductModel{},
		&CartModel{},
		&OrderModel{},
		&ReviewModel{},
		&SequenceModel{},
	}
}
