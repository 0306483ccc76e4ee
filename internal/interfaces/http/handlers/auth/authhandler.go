package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campushub/internal/application/auth/usecases"
	"campushub/internal/shared/logger"
	"campushub/internal/shared/utils"
)

type AuthHandler struct {
	loginUC      usecases.LoginExecutor
	rememberedUC usecases.GetRememberedLoginExecutor
	logger       logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	rememberedUC usecases.GetRememberedLoginExecutor,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		rememberedUC: rememberedUC,
		logger:       logger.NewLogger(),
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := req.ToCommand(c.GetHeader("X-Device-Key"))

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", ToLoginResponse(result))
}

// GetRemembered handles GET /auth/remembered
func (h *AuthHandler) GetRemembered(c *gin.Context) {
	deviceKey := c.GetHeader("X-Device-Key")
	if deviceKey == "" {
		deviceKey = c.Query("device_key")
	}

	result, err := h.rememberedUC.Execute(c.Request.Context(), usecases.GetRememberedLoginQuery{
		DeviceKey: deviceKey,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
