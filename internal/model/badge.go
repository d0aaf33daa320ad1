package model

type Achievement struct {
	Category    string `json:"category"`
	Level       string `json:"level"`
	Threshold   int    `json:"threshold"`
	Description string `json:"description"`
}

type GetAchievementsRequest struct {
	// Category optionally restricts the result to one achievement category.
	Category string `json:"category"`
}

type GetAchievementsResponse struct {
	Achievements []Achievement `json:"achievements"`
}
