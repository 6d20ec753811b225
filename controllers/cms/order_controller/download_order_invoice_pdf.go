package order_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"gorm.io/gorm"
)

// DownloadOrderInvoicePDF godoc
// @Summary Download order invoice PDF
// @Description Generate and download an invoice PDF for the order
// @Tags Admin - Orders
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/orders/{id}/download-invoice [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[admin.order.invoice] request for order: %s", orderID)

	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", orderID).
		First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order.invoice] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var customer struct {
		Email string
		Name  string
	}
	if err := config.Gorm.WithContext(ctx).
		Table("users").
		Select("email, name").
		Where("id::text = ?", order.UserID).
		Scan(&customer).Error; err != nil {
		log.Printf("[admin.order.invoice] failed to fetch customer: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var serviceName string
	if err := config.Gorm.WithContext(ctx).
		Table("cleaning_services").
		Select("name").
		Where("id::text = ?", order.ServiceID).
		Scan(&serviceName).Error; err != nil {
		log.Printf("[admin.order.invoice] failed to fetch service: %v", err)
		// Deleted service: fall through with an empty name
	}

	pdfBuffer := generateOrderInvoicePDF(&order, serviceName, customer.Name, customer.Email)

	filename := fmt.Sprintf("invoice-%s.pdf", order.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[admin.order.invoice] invoice PDF downloaded for order %s", orderID)
}

// generateOrderInvoicePDF builds a single-line-item invoice in memory
func generateOrderInvoicePDF(order *models.Order, serviceName, customerName, customerEmail string) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("FRESHPRESS CLEANING", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("hello@freshpress.example", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customerName, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice #%s", order.OrderNumber), props.Text{
				Size:  10,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customerEmail, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	// Line item table
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Service", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	if serviceName == "" {
		serviceName = "Unknown service"
	}

	m.Row(6, func() {
		m.Col(6, func() {
			m.Text(serviceName, props.Text{
				Size:  9,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("%d", order.Quantity), props.Text{
				Size:  9,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.UnitPrice), props.Text{
				Size:  9,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.TotalPrice), props.Text{
				Size:  9,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(10, func() {
			m.Text("TOTAL DUE", props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.TotalPrice), props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(10, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thank you for choosing FreshPress.", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[admin.order.invoice] PDF generation failed: %v", err)
		return &bytes.Buffer{}
	}
	return &buf
}
