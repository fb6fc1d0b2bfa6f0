package user

import (
	"github.com/localscene/events-backend/internal/model"
)

type userDTO struct {
	ID          int64
	FullName    string
	Email       string
	Photo       string
	IsHost      bool
	DeviceToken string
}

func mapToUser(dto *userDTO) *model.User {
	return &model.User{
		ID: dto.ID,
		UserCreate: model.UserCreate{
			FullName:    dto.FullName,
			Email:       dto.Email,
			Photo:       dto.Photo,
			IsHost:      dto.IsHost,
			DeviceToken: dto.DeviceToken,
		},
	}
}
