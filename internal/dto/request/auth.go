package request

type SignInRequest struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	CallbackURL string `json:"callbackUrl,omitempty"`
}
