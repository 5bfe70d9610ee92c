package dto

type VerifyRequestDTO struct {
	InitData string `json:"init_data" validate:"required" example:"query_id=AAHdF6IQAAAAAN0XohDhrOrc&user=%7B%22id%22%3A279058397%7D&auth_date=1662771648&hash=c501b71e775f74ce10e377dea85a7ea24ecd640b223ea86dfe453e0eaed2e2b2"`
}

type VerifyResponseDTO struct {
	OK    bool       `json:"ok" example:"true"`
	Token string     `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  ProfileDTO `json:"user"`
}

type ProfileDTO struct {
	TgID      int64  `json:"tg_id" example:"279058397"`
	Username  string `json:"username,omitempty" example:"vdkfrost"`
	FirstName string `json:"first_name,omitempty" example:"Vlad"`
	LastName  string `json:"last_name,omitempty" example:"Larin"`
	PhotoURL  string `json:"photo_url,omitempty" example:"https://t.me/i/userpic/320/vdkfrost.jpg"`
}

// UpsertProfileRequestDTO replaces the caller's profile. tg_id may be sent by
// older clients and must then match the token.
type UpsertProfileRequestDTO struct {
	TgID      int64  `json:"tg_id,omitempty" validate:"omitempty,gt=0" example:"279058397"`
	Username  string `json:"username,omitempty" validate:"omitempty,max=32,tg_username" example:"vdkfrost"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=64,notblank" example:"Vlad"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=64,notblank" example:"Larin"`
	PhotoURL  string `json:"photo_url,omitempty" validate:"omitempty,max=2048,url" example:"https://t.me/i/userpic/320/vdkfrost.jpg"`
}

type OKResponseDTO struct {
	OK bool `json:"ok" example:"true"`
}
