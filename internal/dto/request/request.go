package request

type CreateRequestRequest struct {
	UserID      int64  `json:"userId" validate:"required,gt=0"`
	Description string `json:"description" validate:"required,min=10"`
	Status      string `json:"status,omitempty" validate:"omitempty,request_status"`
}

type UpdateRequestRequest struct {
	Description *string `json:"description,omitempty" validate:"omitempty,min=10"`
	Status      *string `json:"status,omitempty" validate:"omitempty,request_status"`
}
