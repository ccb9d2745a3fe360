package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string         `gorm:"type:varchar(255);not null"`
	Settings  SettingsColumn `gorm:"type:jsonb;serializer:json"`
	Photo     *string        `gorm:"type:varchar(500)"`
	Role      string         `gorm:"type:varchar(50);not null;default:visitante;index"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time

	Transactions []TransactionModel `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Savings      []SavingModel      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (UserModel) TableName() string {
	return "users"
}

// SettingsColumn é a forma serializada (JSON) das preferências do usuário
type SettingsColumn struct {
	EmailNotifications bool   `json:"emailNotifications"`
	MonthlyReport      bool   `json:"monthlyReport"`
	DarkMode           bool   `json:"darkMode"`
	Language           string `json:"language"`
}

// TransactionModel é o model GORM para transações
type TransactionModel struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	UserID       uint            `gorm:"not null;index"`
	Description  string          `gorm:"type:varchar(255);not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Type         string          `gorm:"type:varchar(20);not null;index"`
	Category     string          `gorm:"type:varchar(100);not null;index"`
	Date         time.Time       `gorm:"not null;index"`
	Status       string          `gorm:"type:varchar(20);not null;default:pendente"`
	Observations *string         `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}

// SavingModel é o model GORM para metas de economia
type SavingModel struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	UserID        uint            `gorm:"not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Deadline      time.Time       `gorm:"not null;index"`
	Category      string          `gorm:"type:varchar(100);not null;index"`
	Status        string          `gorm:"type:varchar(20);not null;default:em_andamento"`
	Description   *string         `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (SavingModel) TableName() string {
	return "savings"
}

// AllModels lista os models na ordem de criação das tabelas
func AllModels() []any {
	return []any{&UserModel{}, &TransactionModel{}, &SavingModel{}}
}
