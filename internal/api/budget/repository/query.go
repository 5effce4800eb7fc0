package budgetRepository

const (
	queryCreateBudget = `
		INSERT INTO budgets (
			id,
			user_id,
			category,
			limit_amount,
			spent,
			month,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:category,
			:limit_amount,
			:spent,
			:month,
			:created_at,
			:updated_at
		)
	`

	queryGetBudgetsByUserID = `
		SELECT
			id,
			user_id,
			category,
			limit_amount,
			spent,
			month,
			created_at,
			updated_at
		FROM budgets
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryGetBudgetByID = `
		SELECT
			id,
			user_id,
			category,
			limit_amount,
			spent,
			month,
			created_at,
			updated_at
		FROM budgets
		WHERE id = :id AND user_id = :user_id
	`

	queryGetBudgetByCategoryMonth = `
		SELECT
			id,
			user_id,
			category,
			limit_amount,
			spent,
			month,
			created_at,
			updated_at
		FROM budgets
		WHERE user_id = :user_id AND category = :category AND month = :month
	`

	queryUpdateBudget = `
		UPDATE budgets
		SET
			category = :category,
			limit_amount = :limit_amount,
			month = :month,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	queryDeleteBudget = `
		DELETE FROM budgets
		WHERE id = :id AND user_id = :user_id
	`

	queryAddSpent = `
		UPDATE budgets
		SET
			spent = spent + :amount,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
		RETURNING spent, limit_amount
	`
)
