package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleStaff    = "staff"    // personal de bodega
	RoleExporter = "exporter" // despacha órdenes de la bodega de origen
	RoleShipper  = "shipper"  // transportista
	RoleBuyer    = "buyer"    // comprador mayorista
)

// User representa un usuario del sistema. WarehouseID es la bodega a la que
// está asignado (vacío para buyers y shippers).
type User struct {
	ID           string    `json:"id"`
	EnterpriseID string    `json:"enterpriseId,omitempty"`
	WarehouseID  string    `json:"warehouseId,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash,omitempty"` // bcrypt, nunca plano
	FullName     string    `json:"fullName"`
	Role         string    `json:"role"`
	Status       string    `json:"status"` // active, inactive
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}
