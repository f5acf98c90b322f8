package dto

import "time"

type UpdateProfileDTO struct {
	Industry   *string  `json:"industry" binding:"omitempty,max=120"`
	Experience *int     `json:"experience" binding:"omitempty,min=0,max=70"`
	Skills     []string `json:"skills" binding:"omitempty,max=50,dive,max=80"`
}

type ProfileResponseDTO struct {
	ID         string     `json:"id"`
	Industry   *string    `json:"industry,omitempty"`
	Experience *int       `json:"experience,omitempty"`
	Skills     []string   `json:"skills"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
