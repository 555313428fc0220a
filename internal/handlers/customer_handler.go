package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Keoroanthony/go-crm/internal/db"
	"github.com/Keoroanthony/go-crm/internal/models"
	"github.com/Keoroanthony/go-crm/internal/validation"
)

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

type CustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BulkCreateCustomersRequest struct {
	Customers []CustomerInput `json:"customers"`
}

func CreateCustomer(c *gin.Context) {

	var req CreateCustomerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed", "errors": []string{err.Error()}})
		return
	}

	email := validation.NormalizeEmail(req.Email)

	var count int64
	if err := db.DB.Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed", "errors": []string{"Email already exists"}})
		return
	}

	if req.Phone != "" && !validation.ValidPhone(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed", "errors": []string{"Invalid phone format. Use +1234567890 or 123-456-7890"}})
		return
	}

	customer := models.Customer{
		Name:  strings.TrimSpace(req.Name),
		Email: email,
		Phone: req.Phone,
	}

	if err := db.DB.Create(&customer).Error; err != nil {
		// A concurrent insert can still trip the unique index after the
		// count check passed.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"customer": customer, "message": "Customer created successfully"})
}

// BulkCreateCustomers processes the records in input order, each inside its
// own savepoint nested in one surrounding transaction. A bad record rolls
// back to its savepoint and is reported by index; the rest of the batch is
// unaffected. Duplicate checks run on the surrounding transaction's
// connection, so a record duplicating an email created earlier in the same
// batch is rejected too.
func BulkCreateCustomers(c *gin.Context) {

	var req BulkCreateCustomersRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
		return
	}

	created := []models.Customer{}
	errs := []string{}

	txErr := db.DB.Transaction(func(tx *gorm.DB) error {

		for idx, rec := range req.Customers {

			err := tx.Transaction(func(sp *gorm.DB) error {

				if rec.Name == "" || rec.Email == "" {
					return fmt.Errorf("name and email are required")
				}

				email := validation.NormalizeEmail(rec.Email)

				var count int64
				if err := sp.Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
					return err
				}

				if count > 0 {
					return fmt.Errorf("Email already exists (%s)", rec.Email)
				}

				if rec.Phone != "" && !validation.ValidPhone(rec.Phone) {
					return fmt.Errorf("Invalid phone format (%s)", rec.Phone)
				}

				customer := models.Customer{
					Name:  strings.TrimSpace(rec.Name),
					Email: email,
					Phone: rec.Phone,
				}

				if err := sp.Create(&customer).Error; err != nil {
					return err
				}

				created = append(created, customer)
				return nil
			})

			if err != nil {
				errs = append(errs, fmt.Sprintf("Record %d: %s", idx, err.Error()))
			}
		}

		return nil
	})

	if txErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": txErr.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": created, "errors": errs})
}

func ListCustomers(c *gin.Context) {

	query := db.DB.Model(&models.Customer{})

	if name := c.Query("name"); name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	if email := c.Query("email"); email != "" {
		query = query.Where("email = ?", validation.NormalizeEmail(email))
	}

	if phone := c.Query("phone"); phone != "" {
		query = query.Where("phone = ?", phone)
	}

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
