package postgres

import "github.com/Masterminds/squirrel"

// Builder is the shared squirrel statement builder with PostgreSQL
// placeholders ($1, $2, …).
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
