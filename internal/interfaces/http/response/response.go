package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "finuel.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Domain sentinels are translated to their
// HTTP shape; anything unrecognized becomes a 500 with a generic body.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = translate(err)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

func translate(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Invalid credentials", err)
	case errors.Is(err, domainerrors.ErrInvalidOrExpiredOTP):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeInvalidOTP, "Invalid or expired OTP", err)
	case errors.Is(err, domainerrors.ErrEmailInUse):
		return domainerrors.Conflict("Email already in use")
	case errors.Is(err, domainerrors.ErrPhoneInUse):
		return domainerrors.Conflict("Phone number already in use")
	case errors.Is(err, domainerrors.ErrUsernameInUse):
		return domainerrors.Conflict("Username already in use")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("Resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidPin):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeBadRequest, "Invalid pin", err)
	case errors.Is(err, domainerrors.ErrNameMismatch):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeBadRequest, err.Error(), err)
	case errors.Is(err, domainerrors.ErrMailDelivery):
		return domainerrors.NewAppError(http.StatusBadGateway, domainerrors.CodeMailDelivery, "Failed to deliver verification email", err)
	case errors.Is(err, domainerrors.ErrTooManyRequests):
		return domainerrors.TooManyRequests("Please wait before requesting another code")
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Resource not found")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("Unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("Forbidden")
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return domainerrors.BadRequest(err.Error())
	default:
		return domainerrors.InternalError(err)
	}
}
