package entity

type User struct {
	Base

	Handle string `gorm:"unique"`
	Name   string
}
