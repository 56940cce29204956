package dto

type LoginRequestDTO struct {
	Login  string `json:"login" validate:"required,min=3,max=50"`
	Secret string `json:"secret" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
