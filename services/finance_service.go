package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/table-order/models"
	"github.com/yeremiapane/table-order/utils"
)

// FinanceSummary aggregates a set of orders. AverageOrder is 0 when there are
// no orders.
type FinanceSummary struct {
	Date         string                     `json:"date"`
	OrderCount   int                        `json:"order_count"`
	TotalRevenue float64                    `json:"total_revenue"`
	AverageOrder float64                    `json:"average_order"`
	ByStatus     map[models.OrderStatus]int `json:"by_status"`
}

type DashboardStats struct {
	TotalOrders int64          `json:"total_orders"`
	Today       FinanceSummary `json:"today"`
	Tables      TableStats     `json:"tables"`
}

type FinanceService struct {
	orders *OrderService
	tables *TableService
}

func NewFinanceService(orders *OrderService, tables *TableService) *FinanceService {
	return &FinanceService{orders: orders, tables: tables}
}

// Summarize adds up the orders' stored totals. Totals are never recomputed
// from the items.
func Summarize(orders []models.Order) FinanceSummary {
	summary := FinanceSummary{ByStatus: make(map[models.OrderStatus]int)}
	for _, st := range models.OrderStatuses() {
		summary.ByStatus[st] = 0
	}

	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(decimal.NewFromFloat(o.TotalAmount))
		summary.ByStatus[o.Status]++
	}
	summary.OrderCount = len(orders)
	summary.TotalRevenue = total.Round(2).InexactFloat64()
	if summary.OrderCount > 0 {
		summary.AverageOrder = total.Div(decimal.NewFromInt(int64(summary.OrderCount))).Round(2).InexactFloat64()
	}
	return summary
}

// Today summarizes today's orders and returns them alongside.
func (fs *FinanceService) Today(ctx context.Context) (FinanceSummary, []models.Order, error) {
	orders, err := fs.orders.Today(ctx, "")
	if err != nil {
		return FinanceSummary{}, nil, err
	}
	summary := Summarize(orders)
	summary.Date = fs.orders.store.Now().In(fs.location()).Format("2006-01-02")
	return summary, orders, nil
}

func (fs *FinanceService) Dashboard(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	today, _, err := fs.Today(ctx)
	if err != nil {
		return stats, err
	}
	stats.Today = today

	if stats.Tables, err = fs.tables.Stats(ctx); err != nil {
		return stats, err
	}
	if err := fs.orders.store.Read(ctx).Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return stats, err
	}
	return stats, nil
}

func (fs *FinanceService) location() *time.Location {
	if loc := fs.orders.store.Location; loc != nil {
		return loc
	}
	return time.Local
}

// WriteDailyReport renders the summary and its orders as a one-table PDF.
func WriteDailyReport(w io.Writer, summary FinanceSummary, orders []models.Order, l utils.Localizer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(l.T("dailyFinanceReport"), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s %s", l.T("dailyFinanceReport"), summary.Date)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	lines := [][2]string{
		{l.T("totalRevenue"), l.FormatPrice(summary.TotalRevenue)},
		{l.T("orderCount"), fmt.Sprintf("%d", summary.OrderCount)},
		{l.T("averageOrder"), l.FormatPrice(summary.AverageOrder)},
	}
	for _, line := range lines {
		pdf.CellFormat(60, 7, tr(line[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, tr(line[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{25, 30, 60, 35, 40}
	headers := []string{l.T("orderTime"), l.T("table"), l.T("customer"), l.T("status"), l.T("price")}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	if len(orders) == 0 {
		pdf.CellFormat(190, 7, tr(l.T("noOrders")), "1", 1, "C", false, 0, "")
	}
	for _, o := range orders {
		row := []string{
			o.Timestamp.Format("15:04"),
			o.TableNumber,
			o.CustomerName,
			l.T(string(o.Status)),
			l.FormatPrice(o.TotalAmount),
		}
		for i, cell := range row {
			align := "L"
			if i == len(row)-1 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 7, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
