package service

import (
	"encoding/json"
	"errors"
	"fmt"

	smodel "absensiku_backend/internals/features/attendance/state/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage: kontrak penyimpanan durable untuk Store.
// Load mengembalikan (nil, nil) kalau record-nya belum pernah ada;
// error hanya untuk data korup / storage bermasalah — pemanggil jatuh ke
// default bootstrap, tidak pernah crash.
type Storage interface {
	LoadState() (*smodel.StateBlob, error)
	SaveState(smodel.StateBlob) error
	LoadReportMeta() (*smodel.ReportMeta, error)
	SaveReportMeta(smodel.ReportMeta) error
}

/* =========================================================
   GormStorage — tabel KV app_states, value JSONB
   ========================================================= */

type GormStorage struct {
	DB *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage { return &GormStorage{DB: db} }

// Migrate membuat tabel app_states kalau belum ada.
func (g *GormStorage) Migrate() error {
	return g.DB.AutoMigrate(&smodel.AppStateModel{})
}

func (g *GormStorage) LoadState() (*smodel.StateBlob, error) {
	raw, err := g.loadRaw(smodel.AppStateKeyAttendance)
	if err != nil || raw == nil {
		return nil, err
	}
	var blob smodel.StateBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return nil, fmt.Errorf("state blob korup: %w", err)
	}
	return &blob, nil
}

func (g *GormStorage) SaveState(blob smodel.StateBlob) error {
	return g.saveRaw(smodel.AppStateKeyAttendance, blob)
}

func (g *GormStorage) LoadReportMeta() (*smodel.ReportMeta, error) {
	raw, err := g.loadRaw(smodel.AppStateKeyReportMeta)
	if err != nil || raw == nil {
		return nil, err
	}
	var meta smodel.ReportMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("report meta korup: %w", err)
	}
	return &meta, nil
}

func (g *GormStorage) SaveReportMeta(meta smodel.ReportMeta) error {
	return g.saveRaw(smodel.AppStateKeyReportMeta, meta)
}

func (g *GormStorage) loadRaw(key string) ([]byte, error) {
	var row smodel.AppStateModel
	err := g.DB.Where("app_state_key = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(row.AppStateValue), nil
}

func (g *GormStorage) saveRaw(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	row := smodel.AppStateModel{AppStateKey: key, AppStateValue: datatypes.JSON(payload)}
	return g.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "app_state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"app_state_value", "app_state_updated_at"}),
	}).Create(&row).Error
}
