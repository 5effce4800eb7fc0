package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			name,
			email,
			password,
			phone,
			address,
			profile_image,
			theme,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:email,
			:password,
			:phone,
			:address,
			:profile_image,
			:theme,
			:created_at,
			:updated_at
		)
	`

	queryGetByID = `
		SELECT
			id,
			name,
			email,
			password,
			phone,
			address,
			profile_image,
			theme,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetByEmail = `
		SELECT
			id,
			name,
			email,
			password,
			phone,
			address,
			profile_image,
			theme,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`

	queryUpdateUser = `
		UPDATE users
		SET
			name = :name,
			email = :email,
			password = :password,
			phone = :phone,
			address = :address,
			theme = :theme,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateProfileImage = `
		UPDATE users
		SET
			profile_image = :profile_image,
			updated_at = :updated_at
		WHERE id = :id
	`
)
