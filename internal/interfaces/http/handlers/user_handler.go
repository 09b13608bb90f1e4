package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"finuel.backend/internal/domain/entities"
	domainerrors "finuel.backend/internal/domain/errors"
	"finuel.backend/internal/interfaces/http/middleware"
	"finuel.backend/internal/interfaces/http/response"
	"finuel.backend/internal/usecases"
)

// UserHandler handles profile, PIN, settings, KYC, employment and loan
// eligibility endpoints.
type UserHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase *usecases.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// GetMe returns the authenticated user's profile
// GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	profile, err := h.userUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// EditUser applies a partial profile update
// PATCH /users/me
func (h *UserHandler) EditUser(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.EditUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.userUsecase.EditUser(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// SetPaymentPin stores a 4-digit payment PIN
// POST /users/me/payment-pin
func (h *UserHandler) SetPaymentPin(c *gin.Context) {
	h.setPin(c, h.userUsecase.SetPaymentPin)
}

// SetAuthenticationPin stores a 6-digit authentication PIN
// POST /users/me/authentication-pin
func (h *UserHandler) SetAuthenticationPin(c *gin.Context) {
	h.setPin(c, h.userUsecase.SetAuthenticationPin)
}

func (h *UserHandler) setPin(c *gin.Context, set func(ctx context.Context, id uuid.UUID, pin string) (*entities.User, error)) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input struct {
		Pin string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := set(c.Request.Context(), userID, input.Pin)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// VerifyAuthenticationPin checks a submitted authentication PIN
// POST /users/me/verify-authentication-pin
func (h *UserHandler) VerifyAuthenticationPin(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input struct {
		Pin string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.userUsecase.VerifyAuthenticationPin(c.Request.Context(), userID, input.Pin); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"valid": true})
}

// AddPushToken registers a push-notification device token
// POST /users/me/push-token
func (h *UserHandler) AddPushToken(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.userUsecase.AddPushToken(c.Request.Context(), userID, input.Token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Push token registered"})
}

// RemovePushToken unregisters a device token; an empty token removes all
// DELETE /users/me/push-token
func (h *UserHandler) RemovePushToken(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input struct {
		Token string `json:"token"`
	}
	// A missing body means remove everything.
	_ = c.ShouldBindJSON(&input)

	if err := h.userUsecase.RemovePushToken(c.Request.Context(), userID, input.Token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Push token removed"})
}

// UpdateSettings applies a partial settings update
// PATCH /users/me/settings
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	settings, err := h.userUsecase.UpdateSettings(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"settings": settings})
}

// SubmitEmploymentInformation stores the user's employment record
// POST /users/me/employment-information
func (h *UserHandler) SubmitEmploymentInformation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.EmploymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	info, err := h.userUsecase.SubmitEmploymentInformation(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"employmentInformation": info})
}

// SubmitKYC stores the user's identity-verification record
// POST /users/me/kyc
func (h *UserHandler) SubmitKYC(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.KYCInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.userUsecase.SubmitKYC(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// GetLoanEligibility evaluates the user's loan eligibility
// GET /users/me/loan-eligibility
func (h *UserHandler) GetLoanEligibility(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	eligibility, err := h.userUsecase.GetLoanEligibility(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, eligibility)
}
