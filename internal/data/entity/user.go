package entity

type User struct {
	BaseNoDelete
	Name         string  `db:"name"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password_hash"`
	PhotoURL     *string `db:"photo_url"`
	IsAdmin      bool    `db:"is_admin"`
}
