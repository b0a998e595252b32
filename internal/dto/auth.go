package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"asha" validate:"required,min=3,max=50"`
	Password string `json:"password" example:"hunter2hunter2" validate:"required,min=8"`
	Role     string `json:"role" example:"student" validate:"required,oneof=student teacher admin"`
	FullName string `json:"full_name" example:"Asha Mwangi" validate:"required"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"asha" validate:"required,min=3,max=50"`
	Password string `json:"password" example:"hunter2hunter2" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
