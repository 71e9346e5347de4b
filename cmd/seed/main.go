package main

import (
	"fmt"

	"github.com/minimarket/internal/config"
	"github.com/minimarket/internal/logger"
	"github.com/minimarket/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "电子产品"},
		{Name: "生活用品"},
		{Name: "数码配件"},
	}

	categoryIDs := map[string]uint{}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
				continue
			}
			stdLog.Printf("Created category: %s", cat.Name)
			categoryIDs[cat.Name] = cat.ID
		} else {
			stdLog.Printf("Category already exists: %s", existing.Name)
			categoryIDs[existing.Name] = existing.ID
		}
	}

	// 添加商品
	products := []models.Product{
		{
			Name:        "无线蓝牙耳机",
			Description: "高品质音质，长续航，舒适佩戴",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(99.99)),
			Stock:       50,
			CategoryID:  categoryIDs["电子产品"],
		},
		{
			Name:        "智能手表",
			Description: "健康监测，运动追踪，消息提醒",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(199.99)),
			Stock:       30,
			CategoryID:  categoryIDs["电子产品"],
		},
		{
			Name:        "便携充电宝",
			Description: "大容量，快速充电，多设备兼容",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(49.99)),
			Stock:       100,
			CategoryID:  categoryIDs["数码配件"],
		},
		{
			Name:        "多功能背包",
			Description: "大容量，防水防盗，USB充电接口",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(79.99)),
			Stock:       40,
			CategoryID:  categoryIDs["生活用品"],
		},
	}

	for _, prod := range products {
		if prod.CategoryID == 0 {
			stdLog.Printf("Skip product %s: category missing", prod.Name)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("name = ?", prod.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Name)
			}
		} else {
			existing.Description = prod.Description
			existing.Price = prod.Price
			existing.Stock = prod.Stock
			existing.CategoryID = prod.CategoryID
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Name)
			}
		}
	}

	// 添加演示用户
	users := []models.User{
		{Username: "alice", Balance: models.NewMoneyFromDecimal(decimal.NewFromFloat(500.00))},
		{Username: "bob", Balance: models.NewMoneyFromDecimal(decimal.NewFromFloat(100.00))},
	}

	for _, user := range users {
		var existing models.User
		if err := models.DB.Where("username = ?", user.Username).First(&existing).Error; err != nil {
			if err := models.DB.Create(&user).Error; err != nil {
				stdLog.Printf("Failed to create user %s: %v", user.Username, err)
			} else {
				stdLog.Printf("Created user: %s", user.Username)
			}
		} else {
			stdLog.Printf("User already exists: %s", user.Username)
		}
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Categories")
	fmt.Println("- 4 Products")
	fmt.Println("- 2 Users")
}
