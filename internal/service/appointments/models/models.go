package models

import (
	"time"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
)

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	UserID string `json:"-"` // из заголовка аутентификации
	Status string `json:"status" validate:"required"`
}

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              string    `json:"id"`
	BusinessID      string    `json:"businessId"`
	CustomerID      string    `json:"customerId,omitempty"` // пусто для блокировки
	AppointmentDate string    `json:"appointmentDate"`      // "2026-03-02"
	StartTime       string    `json:"startTime"`            // "10:00"
	Status          string    `json:"status"`
	Note            *string   `json:"note,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		BusinessID:      a.BusinessID,
		CustomerID:      a.CustomerID,
		AppointmentDate: a.AppointmentDate.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		Status:          string(a.Status),
		Note:            a.Note,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{Appointments: make([]AppointmentResponse, 0, len(list))}
	for _, a := range list {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a))
	}
	return resp
}
