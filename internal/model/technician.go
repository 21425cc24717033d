package model

// Technician is a staff member shown on the storefront. Created and removed
// by admins only.
type Technician struct {
	Base
	Name      string `json:"name" db:"name"`
	Specialty string `json:"specialty" db:"specialty"`
	Phone     string `json:"phone" db:"phone"`
}

// CreateTechnicianRequest represents technician creation parameters.
type CreateTechnicianRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	Phone     string `json:"phone"`
}
