package dto

import (
	"frontdesk/internal/domains/housekeeping/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateHousekeepingTaskRequest struct {
	RoomNumber string `json:"room_number" validate:"required"`
	TaskType   string `json:"task_type" validate:"required,oneof=Cleaning Maintenance Inspection"`
	Notes      string `json:"notes"`
}

func (r *CreateHousekeepingTaskRequest) ToModel(user string) model.HousekeepingTask {
	now := timezone.Now()

	return model.HousekeepingTask{
		ID:         uuid.NewString(),
		RoomNumber: r.RoomNumber,
		TaskType:   r.TaskType,
		Notes:      r.Notes,
		Status:     model.StatusOpen,
		Approved:   false,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			CreatedBy:  user,
			ModifiedAt: now,
			ModifiedBy: user,
		},
	}
}

type HousekeepingTaskResponse struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	TaskType   string `json:"task_type"`
	Notes      string `json:"notes,omitempty"`
	Status     string `json:"status"`
	Approved   bool   `json:"approved"`
	gDto.Metadata
}

func (r *HousekeepingTaskResponse) FromModel(model model.HousekeepingTask) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.TaskType = model.TaskType
	r.Notes = model.Notes
	r.Status = model.Status
	r.Approved = model.Approved
	r.Metadata.FromModel(model.Metadata)
}

type GetHousekeepingTasksResponse struct {
	Tasks     []HousekeepingTaskResponse `json:"tasks"`
	TotalPage int                        `json:"total_page"`
	TotalData int                        `json:"total_data"`
}

func (r *GetHousekeepingTasksResponse) FromModels(models []model.HousekeepingTask, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tasks = make([]HousekeepingTaskResponse, len(models))
	for i, mod := range models {
		r.Tasks[i].FromModel(mod)
	}
}
