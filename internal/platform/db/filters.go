package db

import (
	"regexp"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope is a composable query filter, applied with (*gorm.DB).Scopes.
type Scope = func(*gorm.DB) *gorm.DB

type wildcards struct {
	leading  bool
	trailing bool
}

// LikeOption switches off one of the wildcards LikePattern adds.
type LikeOption func(*wildcards)

func NoLeadingWildcard() LikeOption {
	return func(w *wildcards) {
		w.leading = false
	}
}

func NoTrailingWildcard() LikeOption {
	return func(w *wildcards) {
		w.trailing = false
	}
}

// LikePattern wraps search in % wildcards, both on by default. The search
// text is used as is: % and _ inside it keep their LIKE meaning.
func LikePattern(search string, opts ...LikeOption) string {
	w := wildcards{leading: true, trailing: true}
	for _, opt := range opts {
		opt(&w)
	}
	var b strings.Builder
	b.Grow(len(search) + 2)
	if w.leading {
		b.WriteByte('%')
	}
	b.WriteString(search)
	if w.trailing {
		b.WriteByte('%')
	}
	return b.String()
}

// WhereEmpty ANDs (column IS NULL OR column = '').
func WhereEmpty(column string) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(emptyCondition(column))
	}
}

// WhereNotEmpty ANDs (column IS NOT NULL AND column <> '').
func WhereNotEmpty(column string) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(notEmptyCondition(column))
	}
}

func OrWhereEmpty(column string) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Or(emptyCondition(column))
	}
}

func OrWhereNotEmpty(column string) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Or(notEmptyCondition(column))
	}
}

// WhereLike ANDs column LIKE LikePattern(search, opts...).
func WhereLike(column string, search string, opts ...LikeOption) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(likeCondition(columnOf(column), search, opts))
	}
}

func WhereNotLike(column string, search string, opts ...LikeOption) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(clause.Not(likeCondition(columnOf(column), search, opts)))
	}
}

func OrWhereLike(column string, search string, opts ...LikeOption) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Or(likeCondition(columnOf(column), search, opts))
	}
}

func OrWhereNotLike(column string, search string, opts ...LikeOption) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Or(clause.Not(likeCondition(columnOf(column), search, opts)))
	}
}

// WherePivotLike ANDs a LIKE on a column of the pivot (join) table of a
// many-to-many relation. The caller is responsible for the join.
func WherePivotLike(pivotTable string, column string, search string, opts ...LikeOption) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(likeCondition(clause.Column{Table: pivotTable, Name: column}, search, opts))
	}
}

// Group ANDs the conditions of scopes as one parenthesized group, so OR
// scopes inside it do not leak into the rest of the query.
func Group(scopes ...Scope) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		group := tx.Session(&gorm.Session{NewDB: true})
		for _, scope := range scopes {
			group = scope(group)
		}
		return tx.Where(group)
	}
}

func emptyCondition(column string) clause.Expression {
	col := columnOf(column)
	return clause.Or(
		clause.Eq{Column: col, Value: nil},
		clause.Eq{Column: col, Value: ""},
	)
}

func notEmptyCondition(column string) clause.Expression {
	col := columnOf(column)
	return clause.And(
		clause.Neq{Column: col, Value: nil},
		clause.Neq{Column: col, Value: ""},
	)
}

func likeCondition(col clause.Column, search string, opts []LikeOption) clause.Like {
	return clause.Like{Column: col, Value: LikePattern(search, opts...)}
}

// columnOf splits "table.column" so both parts get quoted.
func columnOf(column string) clause.Column {
	column = strings.TrimSpace(column)
	if table, name, ok := strings.Cut(column, "."); ok {
		return clause.Column{Table: table, Name: name}
	}
	return clause.Column{Name: column}
}

// MatchLike evaluates a LIKE pattern against value in memory, with the
// same case-sensitive semantics Postgres applies: % matches any run of
// characters and _ exactly one.
func MatchLike(value string, pattern string) bool {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '%':
			b.WriteString("(?s:.*)")
		case '_':
			b.WriteString("(?s:.)")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	re, err := regexp.Compile(b.String())
	if err != nil {
		return false
	}
	return re.MatchString(value)
}
