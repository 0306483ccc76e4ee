package complaint

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campushub/internal/application/complaint/usecases"
	"campushub/internal/shared/authorization"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
	"campushub/internal/shared/utils"
	"campushub/internal/shared/validation"
)

type ComplaintHandler struct {
	submitUC       usecases.SubmitComplaintExecutor
	updateStatusUC usecases.UpdateStatusExecutor
	addCommentUC   usecases.AddCommentExecutor
	getComplaintUC usecases.GetComplaintExecutor
	listAllUC      usecases.ListComplaintsExecutor
	listMineUC     usecases.ListMyComplaintsExecutor
	statsUC        usecases.GetStatsExecutor
	logger         logger.Interface
}

func NewComplaintHandler(
	submitUC usecases.SubmitComplaintExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	addCommentUC usecases.AddCommentExecutor,
	getComplaintUC usecases.GetComplaintExecutor,
	listAllUC usecases.ListComplaintsExecutor,
	listMineUC usecases.ListMyComplaintsExecutor,
	statsUC usecases.GetStatsExecutor,
) *ComplaintHandler {
	return &ComplaintHandler{
		submitUC:       submitUC,
		updateStatusUC: updateStatusUC,
		addCommentUC:   addCommentUC,
		getComplaintUC: getComplaintUC,
		listAllUC:      listAllUC,
		listMineUC:     listMineUC,
		statsUC:        statsUC,
		logger:         logger.NewLogger(),
	}
}

// SubmitComplaint handles POST /complaints
func (h *ComplaintHandler) SubmitComplaint(c *gin.Context) {
	var req SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit complaint", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(c.GetString("username"))

	result, err := h.submitUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint submitted successfully")
}

// ListComplaints handles GET /complaints
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	query := usecases.ListComplaintsQuery{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
	}

	result, err := h.listAllUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Complaints, result.Total)
}

// ListMyComplaints handles GET /complaints/mine
func (h *ComplaintHandler) ListMyComplaints(c *gin.Context) {
	query := usecases.ListMyComplaintsQuery{
		StudentUsername: c.GetString("username"),
		Status:          c.Query("status"),
		Category:        c.Query("category"),
		SortBy:          c.Query("sort"),
	}

	result, err := h.listMineUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Complaints, result.Total)
}

// GetStats handles GET /complaints/stats
func (h *ComplaintHandler) GetStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetComplaint handles GET /complaints/:id
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role := authorization.UserRole(c.GetString("user_role"))
	query := usecases.GetComplaintQuery{
		ComplaintID:       complaintID,
		RequesterUsername: c.GetString("username"),
		RequesterIsAdmin:  role.IsAdmin(),
	}

	result, err := h.getComplaintUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus handles PATCH /complaints/:id/status
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), req.ToCommand(complaintID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}

// AddComment handles POST /complaints/:id/comments
func (h *ComplaintHandler) AddComment(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := req.ToCommand(complaintID, c.GetString("username"), c.GetString("user_role"))

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

func parseComplaintID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid complaint ID")
	}
	return uint(id), nil
}
