package request

type UpdateProfileRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	PhotoURL        *string `json:"photo_url,omitempty" validate:"omitempty,url,max=500"`
	CurrentPassword *string `json:"current_password,omitempty"`
	NewPassword     *string `json:"new_password,omitempty" validate:"omitempty,min=8,max=72"`
}
