package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tenantdto "voicelog-backend/internal/tenant/dto"
	"voicelog-backend/internal/tenant/usecase"
	"voicelog-backend/pkg/apperr"
)

type TenantHandler struct {
	tenantUsecase usecase.TenantUsecase
}

func NewTenantHandler(tenantUsecase usecase.TenantUsecase) *TenantHandler {
	return &TenantHandler{tenantUsecase: tenantUsecase}
}

func (h *TenantHandler) ListUsers(c *gin.Context) {
	domainID := c.Param("domainId")
	users, err := h.tenantUsecase.ListUsers(c.Request.Context(), domainID)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, tenantdto.UsersResponse{DomainID: domainID, Users: users})
}

func (h *TenantHandler) AddUsers(c *gin.Context) {
	var req tenantdto.AddUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.InvalidArgument(err.Error()))
		return
	}

	added, err := h.tenantUsecase.AddUsers(c.Request.Context(), c.Param("domainId"), req.Users)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "added": added})
}

func (h *TenantHandler) RemoveUsers(c *gin.Context) {
	var req tenantdto.RemoveUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.InvalidArgument(err.Error()))
		return
	}

	removed, err := h.tenantUsecase.RemoveUsers(c.Request.Context(), c.Param("domainId"), req.Emails)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "removed": removed})
}

// CheckAccess is the login-time allow-list check: is this email permitted on
// this domain. An absent domain answers allowed=false, not an error.
func (h *TenantHandler) CheckAccess(c *gin.Context) {
	var req tenantdto.CheckAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.InvalidArgument(err.Error()))
		return
	}

	allowed, entry, err := h.tenantUsecase.IsAllowed(c.Request.Context(), c.Param("domainId"), req.Email)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, tenantdto.CheckAccessResponse{Allowed: allowed, User: entry})
}

func (h *TenantHandler) ListDepartments(c *gin.Context) {
	domainID := c.Param("domainId")
	departments, err := h.tenantUsecase.ListDepartments(c.Request.Context(), domainID)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	if departments == nil {
		departments = []string{}
	}
	c.JSON(http.StatusOK, tenantdto.DepartmentsResponse{DomainID: domainID, Departments: departments})
}

func (h *TenantHandler) ReplaceDepartments(c *gin.Context) {
	var req tenantdto.DepartmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.InvalidArgument(err.Error()))
		return
	}

	domainID := c.Param("domainId")
	if err := h.tenantUsecase.ReplaceDepartments(c.Request.Context(), domainID, req.Departments); err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, tenantdto.DepartmentsResponse{DomainID: domainID, Departments: req.Departments})
}
