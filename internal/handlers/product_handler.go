package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Keoroanthony/go-crm/internal/db"
	"github.com/Keoroanthony/go-crm/internal/models"
)

type CreateProductRequest struct {

	Name  string      `json:"name" binding:"required"`
	Price json.Number `json:"price" binding:"required"`
	Stock *int        `json:"stock"`
}

// CreateProduct validates price and stock together and reports every
// applicable error in one response, persisting nothing on failure.
func CreateProduct(c *gin.Context) {

	var req CreateProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
		return
	}

	var errs []string

	price, err := decimal.NewFromString(req.Price.String())
	if err != nil {
		errs = append(errs, "Price must be a valid decimal number")
	} else if !price.IsPositive() {
		errs = append(errs, "Price must be positive")
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}

	if stock < 0 {
		errs = append(errs, "Stock cannot be negative")
	}

	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	product := models.Product{
		Name:  strings.TrimSpace(req.Name),
		Price: price,
		Stock: uint(stock),
	}

	if err := db.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func ListProducts(c *gin.Context) {

	query := db.DB.Model(&models.Product{})

	if name := c.Query("name"); name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	if minPrice := c.Query("min_price"); minPrice != "" {
		if v, err := decimal.NewFromString(minPrice); err == nil {
			query = query.Where("price >= ?", v)
		}
	}

	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if v, err := decimal.NewFromString(maxPrice); err == nil {
			query = query.Where("price <= ?", v)
		}
	}

	if c.Query("in_stock") == "true" {
		query = query.Where("stock > 0")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}
