package menu

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campushub/internal/application/menu/usecases"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
	"campushub/internal/shared/utils"
	"campushub/internal/shared/validation"
)

type MenuHandler struct {
	addItemUC    usecases.AddItemExecutor
	deleteItemUC usecases.DeleteItemExecutor
	listMenuUC   usecases.ListMenuExecutor
	logger       logger.Interface
}

func NewMenuHandler(
	addItemUC usecases.AddItemExecutor,
	deleteItemUC usecases.DeleteItemExecutor,
	listMenuUC usecases.ListMenuExecutor,
) *MenuHandler {
	return &MenuHandler{
		addItemUC:    addItemUC,
		deleteItemUC: deleteItemUC,
		listMenuUC:   listMenuUC,
		logger:       logger.NewLogger(),
	}
}

// ListMenu handles GET /menu
func (h *MenuHandler) ListMenu(c *gin.Context) {
	query := usecases.ListMenuQuery{
		Category: c.Query("category"),
		Day:      c.Query("day"),
		Search:   c.Query("search"),
	}

	result, err := h.listMenuUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total)
}

// AddItem handles POST /menu
func (h *MenuHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add menu item", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(c.GetString("username"))

	result, err := h.addItemUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Menu item added successfully")
}

// DeleteItem handles DELETE /menu/:id
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid menu item ID"))
		return
	}

	if _, err := h.deleteItemUC.Execute(c.Request.Context(), usecases.DeleteItemCommand{ItemID: uint(id)}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
