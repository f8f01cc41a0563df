package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ArchivedOrder is the MySQL row written for every successful checkout.
type ArchivedOrder struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `gorm:"type:varchar(36);not null;index"`
	Items       string    `gorm:"type:text"` // JSON string
	TotalAmount float64   `gorm:"type:decimal(10,2)"`
	Status      string    `gorm:"type:varchar(20)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ArchivedOrder) TableName() string {
	return "archived_orders"
}

// OrderArchive copies checkout results into MySQL as a write-behind
// record. Optional collaborator; order reads always come from the
// in-memory store, never from here.
type OrderArchive struct {
	db *gorm.DB
}

func NewOrderArchive(cfg *config.MySQLConfig) (*OrderArchive, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}

	if err := db.AutoMigrate(&ArchivedOrder{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	return &OrderArchive{db: db}, nil
}

// Save writes the order as an archive row, serializing items to JSON.
func (a *OrderArchive) Save(ctx context.Context, order models.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to serialize items: %w", err)
	}

	row := &ArchivedOrder{
		ID:          order.ID,
		UserID:      order.UserID,
		Items:       string(itemsJSON),
		TotalAmount: order.TotalAmount.InexactFloat64(),
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
	return a.db.WithContext(ctx).Create(row).Error
}

// UpdateStatus mirrors an order status change into the archive row.
func (a *OrderArchive) UpdateStatus(ctx context.Context, orderID, status string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	return a.db.WithContext(ctx).Model(&ArchivedOrder{}).Where("id = ?", orderID).Updates(updates).Error
}

func (a *OrderArchive) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
