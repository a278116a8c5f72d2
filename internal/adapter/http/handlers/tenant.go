package handlers

import (
	"net/http"
	"strings"

	"metalmetrics/pkg"

	"github.com/gin-gonic/gin"
)

// TenantHeader carries the caller's tenant on every request. There is no
// cross-tenant surface: a request without it is rejected before any use case
// runs.
const TenantHeader = "X-Tenant-Id"

func tenantID(c *gin.Context) (string, bool) {
	v := strings.TrimSpace(c.GetHeader(TenantHeader))
	if v == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_TENANT", "X-Tenant-Id header is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return "", false
	}
	return v, true
}
