package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luxe-fashion/luxe-backend/internal/app/service"
	httperrors "github.com/luxe-fashion/luxe-backend/internal/errors"
	"github.com/luxe-fashion/luxe-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Register creates the session account
// POST /api/v1/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid registration request", map[string]interface{}{
			"error": err.Error(),
		})
		httperrors.BadRequest(c, httperrors.ValidationInvalidInput, "Thông tin đăng ký không hợp lệ")
		return
	}

	user, tokens, err := ctrl.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			httperrors.Conflict(c, httperrors.AuthEmailAlreadyExists, "Email đã được đăng ký")
			return
		}
		log.Error("Registration failed", err, map[string]interface{}{
			"email": req.Email,
		})
		httperrors.InternalError(c, "")
		return
	}

	log.Info("User registered", map[string]interface{}{
		"user_id": user.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Đăng ký thành công",
		"user":    user,
		"tokens":  tokens,
	})
}

// Login opens a session
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		httperrors.BadRequest(c, httperrors.ValidationInvalidInput, "Thông tin đăng nhập không hợp lệ")
		return
	}

	user, tokens, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httperrors.RespondWithError(c, http.StatusUnauthorized, httperrors.AuthInvalidCredentials, "Email hoặc mật khẩu không đúng")
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"email": req.Email,
		})
		httperrors.InternalError(c, "")
		return
	}

	log.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Đăng nhập thành công",
		"user":    user,
		"tokens":  tokens,
	})
}

// Logout closes the session
// POST /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.authService.Logout()

	c.JSON(http.StatusOK, gin.H{
		"message": "Đã đăng xuất",
	})
}

// GetProfile returns the session profile
// GET /api/v1/auth/me
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	user, err := ctrl.authService.CurrentUser()
	if err != nil {
		httperrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
	})
}

// UpdateProfile updates the session profile
// PUT /api/v1/auth/me
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid profile update request", map[string]interface{}{
			"error": err.Error(),
		})
		httperrors.BadRequest(c, httperrors.ValidationInvalidInput, "Dữ liệu không hợp lệ")
		return
	}

	user, err := ctrl.authService.UpdateProfile(req.Name, req.Phone, req.Address)
	if err != nil {
		httperrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Đã cập nhật thông tin",
		"user":    user,
	})
}
