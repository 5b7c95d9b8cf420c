package models

import "time"

// ReportListLimit caps GET /reports.
const ReportListLimit = 50

// Report is append-only: there is no update or delete path.
type Report struct {
	ReportID   int64     `json:"reportId"`
	TaskID     int64     `json:"taskId"`
	ManagerID  string    `json:"managerId"`
	ReportName *string   `json:"reportName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	TaskTitle  *string   `json:"taskTitle"`
}
