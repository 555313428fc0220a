package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Keoroanthony/go-crm/internal/db"
	"github.com/Keoroanthony/go-crm/internal/models"
	"github.com/Keoroanthony/go-crm/internal/notifier"
)

type CreateOrderRequest struct {
	CustomerID uint       `json:"customer_id" binding:"required"`
	ProductIDs []uint     `json:"product_ids"`
	OrderDate  *time.Time `json:"order_date"`
}

func CreateOrder(c *gin.Context) {

	var req CreateOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"invalid request"}})
		return
	}

	var customer models.Customer
	if err := db.DB.First(&customer, req.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid customer ID"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(req.ProductIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"At least one product must be selected"}})
		return
	}

	// Resolve every product id before deciding, so the caller sees all the
	// bad ids at once.
	var products []models.Product
	var errs []string

	for _, pid := range req.ProductIDs {

		var product models.Product

		if err := db.DB.First(&product, pid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errs = append(errs, fmt.Sprintf("Invalid product ID: %d", pid))
				continue
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		products = append(products, product)
	}

	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	orderDate := time.Now()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	order := models.Order{
		CustomerID: customer.ID,
		OrderDate:  orderDate,
	}

	txErr := db.DB.Transaction(func(tx *gorm.DB) error {

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Model(&order).Association("Products").Append(&products); err != nil {
			return err
		}

		return order.RecalcTotal(tx)
	})

	if txErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": txErr.Error()})
		return
	}

	if err := db.DB.Preload("Customer").Preload("Products").First(&order, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve order with products"})
		return
	}

	if customer.Phone != "" {
		go func(customer models.Customer, order models.Order) {

			if err := notifier.SendSMS(customer.Phone, order.ID, order.TotalAmount); err != nil {
				fmt.Printf("Failed to send SMS for order %d to %s: %v\n", order.ID, customer.Phone, err)
			}
		}(customer, order)
	}

	go func(customer models.Customer, order models.Order) {

		if err := notifier.SendEmail(customer.Email, customer.Name, order.ID, order.TotalAmount); err != nil {
			fmt.Printf("Failed to send email for order %d to %s: %v\n", order.ID, customer.Email, err)
		}
	}(customer, order)

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func ListOrders(c *gin.Context) {

	query := db.DB.Model(&models.Order{}).Preload("Customer").Preload("Products")

	if name := c.Query("customer"); name != "" {
		query = query.
			Joins("JOIN customers ON customers.id = orders.customer_id").
			Where("customers.name LIKE ?", "%"+name+"%")
	}

	if minTotal := c.Query("min_total"); minTotal != "" {
		query = query.Where("total_amount >= ?", minTotal)
	}

	if date := c.Query("order_date"); date != "" {
		if day, err := time.Parse("2006-01-02", date); err == nil {
			query = query.Where("order_date >= ? AND order_date < ?", day, day.Add(24*time.Hour))
		}
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
