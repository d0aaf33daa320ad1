package model

type AccessToken struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
}
