package handlers

import (
	"net/http"

	"taskloop/internal/infrastructure/logging"
	"taskloop/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func invalidStatus(allowed string) *pkg.AppError {
	return pkg.NewValidationError(map[string]string{"status": "must be one of: " + allowed})
}

// bindJSON binds the body into dst and writes the 400 response itself when
// binding fails. Validator failures carry field messages.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeBindError(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		writeBindError(c, err)
		return false
	}
	return true
}

func writeBindError(c *gin.Context, err error) {
	if fields := pkg.FieldErrors(err); fields != nil {
		writeError(c, pkg.NewValidationError(fields))
		return
	}
	writeError(c, errInvalidRequest)
}

// writeError renders appErr. Server-side failures are logged with their
// cause; the client only sees the generic message.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError && appErr.Err != nil {
		logging.Logger().WithFields(logrus.Fields{
			"module": "http",
			"method": c.Request.Method,
			"route":  c.FullPath(),
		}).WithError(appErr.Err).Error("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
