package model

import (
	"time"

	"gorm.io/datatypes"
)

// Key yang dipakai di tabel app_states. Versi ikut di key supaya upgrade
// skema bisa pakai key baru tanpa menimpa data lama.
const (
	AppStateKeyAttendance = "attendance_state_v1"
	AppStateKeyReportMeta = "report_meta_v1"
)

// AppStateModel: baris key-value di Postgres, value-nya JSONB utuh.
type AppStateModel struct {
	AppStateKey       string         `gorm:"primaryKey;column:app_state_key" json:"app_state_key"`
	AppStateValue     datatypes.JSON `gorm:"type:jsonb;not null;column:app_state_value" json:"app_state_value"`
	AppStateUpdatedAt time.Time      `gorm:"column:app_state_updated_at;autoUpdateTime" json:"app_state_updated_at"`
}

func (AppStateModel) TableName() string { return "app_states" }
