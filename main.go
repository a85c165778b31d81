package main

import "github.com/pennyplan/backend/internal/cli"

//	@title			pennyplan
//	@description	The backend for pennyplan, a planner for recurring incomes, expenses, subscriptions and installments.
//	@version		1.0
//	@contact.url	https://github.com/pennyplan/backend
//	@license.name	AGPL-3.0
//	@license.url	https://www.gnu.org/licenses/agpl-3.0.en.html

func main() {
	cli.Execute()
}
