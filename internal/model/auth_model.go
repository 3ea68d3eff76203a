package model

type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CurrentUser 登入後的session紀錄，寫入local store
type CurrentUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponseModel struct {
	AccessToken string
	User        CurrentUser
}
