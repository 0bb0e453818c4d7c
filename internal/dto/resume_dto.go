package dto

type CreateResumeRequest struct {
	Title     string `json:"title" form:"title" validate:"required,max=255"`
	IsDefault bool   `json:"is_default" form:"is_default"`
}

type UpdateResumeRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=255"`
	IsDefault *bool   `json:"is_default"`
}
