package model

type UserCreate struct {
	FullName    string
	Email       string
	Photo       string
	IsHost      bool
	DeviceToken string
}

type User struct {
	ID int64
	UserCreate
}
