package constants

const (
	GetAPIKeyByKey = `SELECT id, key, user_id, status FROM api_keys WHERE key = ?`

	InsertAPIKey = `INSERT INTO api_keys (key, user_id, status) VALUES (?, ?, ?) RETURNING id`
)
