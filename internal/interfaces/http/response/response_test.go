package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	domainerrors "finuel.backend/internal/domain/errors"
)

func doError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Error(c, err)
	return w
}

func TestError_AppErrorPassedThrough(t *testing.T) {
	w := doError(domainerrors.NotFound("User not found"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
	assert.Contains(t, w.Body.String(), domainerrors.CodeNotFound)
}

func TestError_SentinelTranslation(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domainerrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{domainerrors.ErrInvalidOrExpiredOTP, http.StatusBadRequest},
		{domainerrors.ErrEmailInUse, http.StatusConflict},
		{domainerrors.ErrPhoneInUse, http.StatusConflict},
		{domainerrors.ErrUsernameInUse, http.StatusConflict},
		{domainerrors.ErrInvalidPin, http.StatusBadRequest},
		{domainerrors.ErrNameMismatch, http.StatusBadRequest},
		{domainerrors.ErrTooManyRequests, http.StatusTooManyRequests},
		{domainerrors.ErrNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		w := doError(tc.err)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
	}
}

func TestError_MailDeliveryFailure(t *testing.T) {
	// Mail failures arrive wrapped, the way the auth flows surface them.
	wrapped := fmt.Errorf("%w: provider returned 401", domainerrors.ErrMailDelivery)
	w := doError(wrapped)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), domainerrors.CodeMailDelivery)
	assert.NotContains(t, w.Body.String(), "401")
}

func TestError_WrappedSentinel(t *testing.T) {
	wrapped := errors.Join(domainerrors.ErrTooManyRequests, errors.New("cooldown active"))
	w := doError(wrapped)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestError_UnknownBecomesInternal(t *testing.T) {
	w := doError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), domainerrors.CodeInternalError)
	assert.NotContains(t, w.Body.String(), "boom")
}
