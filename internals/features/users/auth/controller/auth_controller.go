// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostelku_backend/internals/constants"
	tenantModel "hostelku_backend/internals/features/hostel/tenants/model"
	"hostelku_backend/internals/features/users/auth/service"
	userModel "hostelku_backend/internals/features/users/user/model"
	helper "hostelku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// =======================================================
// LOGIN
// =======================================================

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal login")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusUnauthorized, "Akun dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	// akun penghuni → sertakan tenant_id di token
	var tenantID *uuid.UUID
	if user.Role == constants.RoleTenant {
		var tenant tenantModel.TenantModel
		if err := ctl.DB.WithContext(c.UserContext()).
			First(&tenant, "tenant_user_id = ?", user.ID).Error; err == nil {
			tenantID = &tenant.TenantID
		}
	}

	token, err := service.GenerateAccessToken(&user, tenantID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"user":         user,
	})
}

// =======================================================
// ME
// =======================================================

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return helper.Success(c, "OK", user)
}

// =======================================================
// CREATE USER (admin) — buat akun portal utk penghuni
// =======================================================

type createUserRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8"`
	Role     string     `json:"role" validate:"required,oneof=admin tenant"`
	TenantID *uuid.UUID `json:"tenant_id" validate:"omitempty"` // wajib utk role tenant
}

func (ctl *AuthController) CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Role == constants.RoleTenant && req.TenantID == nil {
		return helper.Error(c, fiber.StatusBadRequest, "tenant_id wajib diisi untuk akun penghuni")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
		Role:     req.Role,
		IsActive: true,
	}
	user.SetDefaultValues()

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if strings.Contains(err.Error(), "duplicate key value") ||
				strings.Contains(err.Error(), "unique constraint") {
				return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
			}
			return err
		}
		if req.TenantID != nil {
			res := tx.Model(&tenantModel.TenantModel{}).
				Where("tenant_id = ? AND tenant_user_id IS NULL", *req.TenantID).
				Update("tenant_user_id", user.ID)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fiber.NewError(fiber.StatusConflict, "Penghuni tidak ditemukan atau sudah punya akun")
			}
		}
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User dibuat", user)
}
