package backend

import (
	"context"

	"clinicdesk/models"
)

// ScheduleAPI is the schedule slice of the clinic backend contract.
type ScheduleAPI interface {
	GetSchedule(ctx context.Context, auth, email string) ([]models.ScheduleRecord, error)
	SaveSchedule(ctx context.Context, auth string, req models.SaveScheduleRequest) error
}

// TreatmentAPI is the treatment slice of the clinic backend contract.
type TreatmentAPI interface {
	FilterTreatments(ctx context.Context, auth string, req models.TreatmentFilterRequest) ([]models.Treatment, error)
	UpdateTreatment(ctx context.Context, auth, id string, upd models.TreatmentUpdate) (*models.Treatment, error)
	ReplacePrescriptions(ctx context.Context, auth, id string, prescriptions []models.Prescription) ([]models.Prescription, error)
}
