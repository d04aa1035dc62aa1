package dto

import (
	"frontdesk/internal/domains/user/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Role     string `json:"role"      validate:"omitempty,oneof=admin manager reception"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleReception
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		FullName: r.FullName,
		Role:     role,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	LastLogin string `json:"last_login,omitempty"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FullName = model.FullName
	r.Role = model.Role
	r.Active = model.Active

	if model.LastLogin != nil {
		r.LastLogin = timezone.Format(*model.LastLogin, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	FullName *string `db:"full_name" json:"full_name,omitempty" validate:"omitempty,max=200"`
	Role     *string `db:"role"      json:"role,omitempty"      validate:"omitempty,oneof=admin manager reception"`
	Active   *bool   `db:"active"    json:"active,omitempty"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
