package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ComplexityEasy   = "easy"
	ComplexityNormal = "normal"
	ComplexityHard   = "hard"
)

type Task struct {
	gorm.Model
	CatalogID       uint        `gorm:"not null; index" json:"catalogId"`
	Name            string      `gorm:"not null" json:"name"`
	Complexity      string      `gorm:"not null" json:"complexity"`
	Deadline        *time.Time  `json:"deadline"`
	Completed       bool        `gorm:"not null; default:false" json:"completed"`
	ParentTaskID    *uint       `gorm:"index" json:"parentTaskId"`
	IsDailyInstance bool        `gorm:"not null; default:false" json:"isDailyInstance"`
	DailyTasks      []DailyTask `gorm:"foreignKey:TaskID; constraint:OnDelete:CASCADE" json:"dailyTasks,omitempty"`
}

type DailyTask struct {
	gorm.Model
	TaskID  uint   `gorm:"not null; index" json:"taskId"`
	DayWeek string `gorm:"not null" json:"dayWeek"`
}
