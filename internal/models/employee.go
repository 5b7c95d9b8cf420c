package models

import "time"

const (
	EmployeeActive   = "Active"
	EmployeeInactive = "Inactive"
)

// NormalizeEmployeeStatus keeps "Inactive" and collapses anything else to "Active".
func NormalizeEmployeeStatus(status string) string {
	if status == EmployeeInactive {
		return EmployeeInactive
	}
	return EmployeeActive
}

type Employee struct {
	EmployeeID     string    `json:"employeeId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone"`
	Department     *string   `json:"department"`
	Designation    *string   `json:"designation"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	PhotoURL       *string   `json:"photoUrl"`
	HireDate       *string   `json:"hireDate"`
	TelegramChatID *int64    `json:"telegramChatId,omitempty"`
	Password       string    `json:"-"` // не отдаём наружу
	CreatedAt      time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required"`
}
