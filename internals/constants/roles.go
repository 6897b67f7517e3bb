package constants

import "fmt"

const (
	RoleAdmin  = "admin"
	RoleTenant = "tenant"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyTenantsCanAccess = "❌ Hanya penghuni yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorTenant(feature string) string {
	return fmt.Sprintf(ErrOnlyTenantsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTenant,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
