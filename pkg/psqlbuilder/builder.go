package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select построитель SELECT с плейсхолдерами $1, $2...
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert построитель INSERT с плейсхолдерами $1, $2...
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update построитель UPDATE с плейсхолдерами $1, $2...
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete построитель DELETE с плейсхолдерами $1, $2...
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
