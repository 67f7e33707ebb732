package domain

type User struct {
	Id       UserId
	Username Username
	Fullname string
	PassHash string
}

type NewUser struct {
	Username Username `validate:"max=50,username"`
	Password string   `validate:"min=6,max=72"` // bcrypt ignores bytes past 72
	Fullname string   `validate:"max=100"`
}

type Credentials struct {
	Username Username `validate:"max=50"`
	Password string   `validate:"max=72"`
}

type AddedUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}
