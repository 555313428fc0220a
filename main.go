package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/go-crm/configs"
	"github.com/Keoroanthony/go-crm/internal/db"
	"github.com/Keoroanthony/go-crm/internal/handlers"
)

func main() {

	seed := flag.Bool("seed", false, "insert sample customers and products, then exit")
	flag.Parse()

	db.Init()

	if *seed {
		if err := db.Seed(db.DB); err != nil {
			log.Fatalf("Failed to seed DB: %v", err)
		}
		return
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	{
		api.GET("/customers", handlers.ListCustomers)
		api.POST("/customers", handlers.CreateCustomer)
		api.POST("/customers/bulk", handlers.BulkCreateCustomers)
		api.GET("/products", handlers.ListProducts)
		api.POST("/products", handlers.CreateProduct)
		api.GET("/orders", handlers.ListOrders)
		api.POST("/orders", handlers.CreateOrder)
	}

	r.Run(config.LoadServerConfig().Addr)
}
