package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BBojan94/InventoryManagement/app/categories"
	"github.com/BBojan94/InventoryManagement/app/products"
	"github.com/BBojan94/InventoryManagement/app/suppliers"
	"github.com/BBojan94/InventoryManagement/app/web"
	"github.com/BBojan94/InventoryManagement/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading configuration from the environment")
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=inventory port=5432 sslmode=disable"
	}
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	categoryRepo := models.NewCategoryRepository(db)
	supplierRepo := models.NewSupplierRepository(db)
	productRepo := models.NewProductRepository(db)

	categoryService := categories.NewCategoryService(categoryRepo)
	supplierService := suppliers.NewSupplierService(supplierRepo)
	productService := products.NewProductService(productRepo, categoryRepo, supplierRepo)

	categoryHandler := categories.NewCategoryHandler(categoryService)
	supplierHandler := suppliers.NewSupplierHandler(supplierService)
	productHandler := products.NewProductHandler(productService)
	productPages := web.NewProductPages(productService, categoryService, supplierService)

	mux := http.NewServeMux()

	// JSON API
	mux.HandleFunc("POST /api/categories", categoryHandler.HandleCreate)
	mux.HandleFunc("GET /api/categories", categoryHandler.HandleList)
	mux.HandleFunc("GET /api/categories/{id}", categoryHandler.HandleGet)
	mux.HandleFunc("PUT /api/categories/{id}", categoryHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/categories/{id}", categoryHandler.HandleDelete)

	mux.HandleFunc("POST /api/suppliers", supplierHandler.HandleCreate)
	mux.HandleFunc("GET /api/suppliers", supplierHandler.HandleList)
	mux.HandleFunc("GET /api/suppliers/{id}", supplierHandler.HandleGet)
	mux.HandleFunc("PUT /api/suppliers/{id}", supplierHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/suppliers/{id}", supplierHandler.HandleDelete)

	mux.HandleFunc("POST /api/products", productHandler.HandleCreate)
	mux.HandleFunc("GET /api/products", productHandler.HandleList)
	mux.HandleFunc("GET /api/products/{id}", productHandler.HandleGet)
	mux.HandleFunc("PUT /api/products/{id}", productHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/products/{id}", productHandler.HandleDelete)

	// Server-rendered pages
	mux.HandleFunc("GET /products", productPages.HandleList)
	mux.HandleFunc("GET /products/new", productPages.HandleNewForm)
	mux.HandleFunc("POST /products/new", productPages.HandleCreate)
	mux.HandleFunc("GET /products/{id}", productPages.HandleDetails)
	mux.HandleFunc("GET /products/edit/{id}", productPages.HandleEditForm)
	mux.HandleFunc("POST /products/edit/{id}", productPages.HandleUpdate)
	mux.HandleFunc("GET /products/delete/{id}", productPages.HandleDelete)

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/products", http.StatusFound)
	})

	slog.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
