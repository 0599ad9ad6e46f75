package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yusuf/campushub/internal/pkg/apperrors"
)

func handle(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(ctx, err)
	return recorder
}

func TestHandleAPIError(t *testing.T) {
	t.Run("wrapped not-found surfaces its message", func(t *testing.T) {
		err := apperrors.NewCustomError(apperrors.ErrDepartmentNotFound, "Department not found")

		recorder := handle(err)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "RES_001")
		assert.Contains(t, recorder.Body.String(), "Department not found")
	})

	t.Run("bare not-found sentinel keeps the generic message", func(t *testing.T) {
		recorder := handle(apperrors.ErrResourceNotFound)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Resource not found")
	})

	t.Run("bad request carries the wrapped message", func(t *testing.T) {
		recorder := handle(apperrors.NewBadRequestError("Invalid department ID"))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "VAL_001")
		assert.Contains(t, recorder.Body.String(), "Invalid department ID")
	})

	t.Run("invalid credentials map to 401", func(t *testing.T) {
		recorder := handle(apperrors.ErrInvalidCredentials)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "AUTH_001")
	})

	t.Run("fetch failure maps to 500", func(t *testing.T) {
		recorder := handle(apperrors.ErrReportFetchFailed)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "RPT_001")
	})

	t.Run("unknown errors fall through to 500", func(t *testing.T) {
		recorder := handle(errors.New("connection reset"))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "SRV_001")
	})
}
