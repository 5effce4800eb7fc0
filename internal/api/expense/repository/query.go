package expenseRepository

const (
	queryCreateExpense = `
		INSERT INTO expenses (
			id,
			user_id,
			category,
			amount,
			description,
			date,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:category,
			:amount,
			:description,
			:date,
			:created_at,
			:updated_at
		)
	`

	queryGetExpensesByUserID = `
		SELECT
			id,
			user_id,
			category,
			amount,
			description,
			date,
			created_at,
			updated_at
		FROM expenses
		WHERE user_id = :user_id
		ORDER BY date DESC
	`
)
