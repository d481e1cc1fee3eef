package store

const (
	upsertSession = `INSERT INTO session (id, email, token, expires_at, created_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			email = excluded.email,
			token = excluded.token,
			expires_at = excluded.expires_at,
			created_at = excluded.created_at;`

	selectSession = `SELECT email, token, expires_at, created_at FROM session WHERE id = 1;`

	deleteSession = `DELETE FROM session;`
)
