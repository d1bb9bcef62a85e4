package dto

type SignupRequest struct {
	Email      string   `json:"email" validate:"required,email,max=255"`
	Password   string   `json:"password" validate:"required,min=8,max=72"`
	Nickname   string   `json:"nickname" validate:"required,min=2,max=50"`
	BirthDate  *string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Career     string   `json:"career" validate:"omitempty,oneof=NEWBIE JUNIOR SENIOR"`
	Job        string   `json:"job" validate:"max=100"`
	Goal       string   `json:"goal" validate:"max=2000"`
	StudyStyle string   `json:"study_style" validate:"omitempty,oneof=ONLINE OFFLINE HYBRID"`
	Region     string   `json:"region" validate:"max=100"`
	Tags       []string `json:"tags" validate:"max=20,dive,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
