package reportRepository

const (
	queryCategoryTotals = `
		SELECT
			category,
			SUM(amount) AS total
		FROM expenses
		WHERE user_id = :user_id
		GROUP BY category
		ORDER BY total DESC
	`

	queryMonthlyTotals = `
		SELECT
			EXTRACT(YEAR FROM date)::int AS year,
			EXTRACT(MONTH FROM date)::int AS month,
			SUM(amount) AS total
		FROM expenses
		WHERE user_id = :user_id
		GROUP BY year, month
		ORDER BY year ASC, month ASC
	`

	queryCategoryMonthTotals = `
		SELECT
			category,
			to_char(date, 'YYYY-MM') AS month,
			SUM(amount) AS total
		FROM expenses
		WHERE user_id = :user_id
		GROUP BY category, month
	`
)
