package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order/middlewares"
	"github.com/yeremiapane/table-order/models"
	"github.com/yeremiapane/table-order/services"
	"github.com/yeremiapane/table-order/utils"
)

type TableController struct {
	Tables *services.TableService
	QR     services.QRGenerator
}

func NewTableController(tables *services.TableService, qr services.QRGenerator) *TableController {
	return &TableController{Tables: tables, QR: qr}
}

type tableRequest struct {
	Number   *string `json:"number"`
	Capacity *int    `json:"capacity"`
	Status   *string `json:"status"`
}

func (r tableRequest) status() (*models.TableStatus, error) {
	if r.Status == nil {
		return nil, nil
	}
	st, err := models.ParseTableStatus(*r.Status)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// CreateTable -> add a table, available unless told otherwise
func (tc *TableController) CreateTable(c *gin.Context) {
	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Number == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("number is required"))
		return
	}
	status, err := req.status()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	in := services.NewTable{Number: *req.Number, Capacity: req.Capacity}
	if status != nil {
		in.Status = *status
	}

	table, err := tc.Tables.Add(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> every table, or only those with ?status=
func (tc *TableController) GetAllTables(c *gin.Context) {
	var status models.TableStatus
	if s := c.Query("status"); s != "" {
		st, err := models.ParseTableStatus(s)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		status = st
	}

	tables, err := tc.Tables.List(c.Request.Context(), status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, middlewares.LocalizerFrom(c).T("tables"), tables)
}

func (tc *TableController) GetTableByID(c *gin.Context) {
	table, err := tc.Tables.Get(c.Request.Context(), c.Param("table_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// SelectTable -> a customer sits at the table; only available tables can be chosen
func (tc *TableController) SelectTable(c *gin.Context) {
	table, err := tc.Tables.SelectAvailable(c.Request.Context(), c.Param("table_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table selected", table)
}

func (tc *TableController) UpdateTable(c *gin.Context) {
	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	status, err := req.status()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.Update(c.Request.Context(), c.Param("table_id"), services.TableUpdate{
		Number:   req.Number,
		Capacity: req.Capacity,
		Status:   status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")
	if err := tc.Tables.Delete(c.Request.Context(), tableID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": tableID})
}

// GetTableQRCode -> PNG to print on the table
func (tc *TableController) GetTableQRCode(c *gin.Context) {
	table, err := tc.Tables.Get(c.Request.Context(), c.Param("table_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	png, err := tc.QR.TableQR(*table)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="table-%s.png"`, table.Number))
	c.Data(http.StatusOK, "image/png", png)
}
