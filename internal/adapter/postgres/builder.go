package postgres

import "github.com/Masterminds/squirrel"

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// LiveRef is the WHERE clause selecting live rows for one entity reference.
func LiveRef(id any, kind string) squirrel.Eq {
	return squirrel.Eq{"entity_id": id, "entity_kind": kind, "is_deleted": false}
}
