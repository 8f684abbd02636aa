package dto

import (
	smodel "absensiku_backend/internals/features/attendance/state/model"
)

/* ===================== REQUESTS ===================== */

// Create
type CreateTeacherRequest struct {
	TeacherName     string `json:"name"     validate:"required,max=120"`
	TeacherSubject  string `json:"subject"  validate:"required,max=120"`
	TeacherPhotoURL string `json:"photoUrl" validate:"omitempty,max=2048"`
	// 0=Minggu .. 6=Sabtu; kosong = tidak pernah terjadwal
	TeacherWorkDays []int `json:"workDays" validate:"omitempty,dive,gte=0,lte=6"`
}

func (r CreateTeacherRequest) ToModel() smodel.Teacher {
	days := r.TeacherWorkDays
	if days == nil {
		days = []int{}
	}
	return smodel.Teacher{
		TeacherName:     r.TeacherName,
		TeacherSubject:  r.TeacherSubject,
		TeacherPhotoURL: r.TeacherPhotoURL,
		TeacherWorkDays: days,
	}
}

// Update (full replace profil; workDays nil = jangan diubah)
type UpdateTeacherRequest struct {
	TeacherName     string `json:"name"     validate:"required,max=120"`
	TeacherSubject  string `json:"subject"  validate:"required,max=120"`
	TeacherPhotoURL string `json:"photoUrl" validate:"omitempty,max=2048"`
	TeacherWorkDays *[]int `json:"workDays" validate:"omitempty,dive,gte=0,lte=6"`
}

// ApplyTo menyalin field request ke model existing.
func (r UpdateTeacherRequest) ApplyTo(t smodel.Teacher) smodel.Teacher {
	t.TeacherName = r.TeacherName
	t.TeacherSubject = r.TeacherSubject
	t.TeacherPhotoURL = r.TeacherPhotoURL
	if r.TeacherWorkDays != nil {
		t.TeacherWorkDays = *r.TeacherWorkDays
	}
	return t
}

// Ganti jadwal mingguan saja
type SetWorkDaysRequest struct {
	TeacherWorkDays []int `json:"workDays" validate:"required,dive,gte=0,lte=6"`
}
