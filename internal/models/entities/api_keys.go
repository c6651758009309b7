package entities

type ApiKey struct {
	ID     int64  `db:"id"`
	Key    string `db:"key"`
	UserID uint   `db:"user_id"`
	Status bool   `db:"status"`
}
