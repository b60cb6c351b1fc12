package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order/middlewares"
	"github.com/yeremiapane/table-order/services"
	"github.com/yeremiapane/table-order/utils"
)

type AdminController struct {
	Finance *services.FinanceService
	Auth    *services.AuthService
}

func NewAdminController(finance *services.FinanceService, auth *services.AuthService) *AdminController {
	return &AdminController{Finance: finance, Auth: auth}
}

// GetDashboardStats -> today's figures and table occupancy
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	stats, err := ac.Finance.Dashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// GetFinanceToday -> revenue of today's orders, with labels for the finance tab
func (ac *AdminController) GetFinanceToday(c *gin.Context) {
	summary, orders, err := ac.Finance.Today(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	l := middlewares.LocalizerFrom(c)
	views := make([]orderView, 0, len(orders))
	for i := range orders {
		views = append(views, toOrderView(l, &orders[i]))
	}

	utils.RespondJSON(c, http.StatusOK, l.T("finance"), gin.H{
		"summary":  summary,
		"currency": utils.CurrencyCode(l.Lang),
		"labels": gin.H{
			"total_revenue": l.FormatPrice(summary.TotalRevenue),
			"average_order": l.FormatPrice(summary.AverageOrder),
		},
		"orders": views,
	})
}

// ExportPDF -> today's finance report as a PDF download
func (ac *AdminController) ExportPDF(c *gin.Context) {
	summary, orders, err := ac.Finance.Today(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.WriteDailyReport(&buf, summary, orders, middlewares.LocalizerFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="finance-%s.pdf"`, summary.Date))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (ac *AdminController) GetAdmins(c *gin.Context) {
	admins, err := ac.Auth.ListAdmins(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All admins", admins)
}

func (ac *AdminController) CreateAdmin(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	admin, err := ac.Auth.AddAdmin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Admin created", admin)
}

// DeleteAdmin -> the bootstrap admin is refused with 409
func (ac *AdminController) DeleteAdmin(c *gin.Context) {
	adminID := c.Param("admin_id")
	if err := ac.Auth.RemoveAdmin(c.Request.Context(), adminID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.InfoLogger.Printf("Admin %s removed by %s", adminID, c.GetString(middlewares.ContextUsername))
	utils.RespondJSON(c, http.StatusOK, "Admin deleted", gin.H{"id": adminID})
}
