package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// builder is the squirrel statement builder of the client database; sqlite
// takes '?' placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertMessageQuery(id, role, text, products string, createdAt time.Time) (string, []any, error) {
	return builder.
		Insert("conversation_messages").
		Columns("id", "role", "text", "products", "created_at").
		Values(id, role, text, products, createdAt).
		ToSql()
}

// buildSelectRecentMessagesQuery selects the newest limit messages, newest
// first. ids are UUIDv7 and break ties between equal timestamps.
func buildSelectRecentMessagesQuery(limit int) (string, []any, error) {
	return builder.
		Select("id", "role", "text", "products", "created_at").
		From("conversation_messages").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}

func buildDeleteMessagesQuery() (string, []any, error) {
	return builder.
		Delete("conversation_messages").
		ToSql()
}

func buildUpsertSearchQuery(query string, at time.Time) (string, []any, error) {
	return builder.
		Insert("recent_searches").
		Columns("query", "searched_at").
		Values(query, at).
		Suffix("ON CONFLICT (query) DO UPDATE SET searched_at = excluded.searched_at").
		ToSql()
}

// buildTrimSearchesQuery deletes everything but the newest keep queries.
func buildTrimSearchesQuery(keep int) (string, []any, error) {
	return builder.
		Delete("recent_searches").
		Where(sq.Expr("query NOT IN (SELECT query FROM recent_searches ORDER BY searched_at DESC, query LIMIT ?)", keep)).
		ToSql()
}

func buildSelectSearchesQuery(limit int) (string, []any, error) {
	return builder.
		Select("query").
		From("recent_searches").
		OrderBy("searched_at DESC", "query").
		Limit(uint64(limit)).
		ToSql()
}
