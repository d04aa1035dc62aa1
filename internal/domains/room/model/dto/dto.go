package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber string  `json:"room_number" validate:"required,max=10"`
	RoomType   string  `json:"room_type"   validate:"required,max=50"`
	Rate       float64 `json:"rate"        validate:"required,gt=0"`
	Status     string  `json:"status"      validate:"omitempty,oneof=Available Occupied Maintenance Cleaning"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:         uuid.NewString(),
		RoomNumber: c.RoomNumber,
		RoomType:   c.RoomType,
		Rate:       c.Rate,
		Status:     status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomType string  `db:"room_type" json:"room_type" validate:"omitempty,max=50"`
	Rate     float64 `db:"rate"      json:"rate"      validate:"omitempty,gt=0"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Available Occupied Maintenance Cleaning"`
}

type RoomResponse struct {
	ID         string  `json:"id"`
	RoomNumber string  `json:"room_number"`
	RoomType   string  `json:"room_type"`
	Rate       float64 `json:"rate"`
	Status     string  `json:"status"`
	Image      string  `json:"image,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Rate = model.Rate
	r.Status = model.Status
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type UploadRoomPhotoRequest struct {
	Photo     *multipart.FileHeader `json:"photo"                swaggerignore:"true"                 validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	PhotoFile multipart.File        `json:"-"`
}

type UploadRoomPhotoResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadRoomPhotoResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
