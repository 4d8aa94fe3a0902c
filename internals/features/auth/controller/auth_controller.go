package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pmpro_backend/internals/configs"
	"pmpro_backend/internals/features/auth/dto"
	"pmpro_backend/internals/features/auth/model"
	helper "pmpro_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ===================== REGISTER ===================== */
// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := ctrl.DB.Model(&model.SupervisorModel{}).
		Where("supervisor_email = ?", email).Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email ya registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	sup := model.SupervisorModel{
		SupervisorNombre:   strings.TrimSpace(req.Nombre),
		SupervisorEmail:    email,
		SupervisorPassword: string(hash),
	}
	if err := ctrl.DB.Create(&sup).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Supervisor registrado", fiber.Map{
		"supervisor_id": sup.SupervisorID,
		"nombre":        sup.SupervisorNombre,
		"email":         sup.SupervisorEmail,
	})
}

/* ===================== LOGIN ===================== */
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var sup model.SupervisorModel
	err := ctrl.DB.Where("supervisor_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		Take(&sup).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if bcrypt.CompareHashAndPassword([]byte(sup.SupervisorPassword), []byte(req.Password)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	token, err := signToken(sup)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	return helper.Success(c, "Login correcto", fiber.Map{
		"token": token,
		"supervisor": fiber.Map{
			"supervisor_id": sup.SupervisorID,
			"nombre":        sup.SupervisorNombre,
			"email":         sup.SupervisorEmail,
		},
	})
}

func signToken(sup model.SupervisorModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    sup.SupervisorID.String(),
		"nombre": sup.SupervisorNombre,
		"iat":    now.Unix(),
		"exp":    now.Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
}
