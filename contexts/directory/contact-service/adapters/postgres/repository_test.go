package postgresadapter

import (
	"errors"
	"testing"

	"apikit/contexts/directory/contact-service/domain/entities"
	domainerrors "apikit/contexts/directory/contact-service/domain/errors"
	"apikit/contexts/directory/contact-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 user=apikit dbname=apikit sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func listSQL(t *testing.T, filter ports.ContactListFilter) string {
	t.Helper()
	return dryRunDB(t).ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []contactModel
		return tx.Model(&contactModel{}).Scopes(filterScopes(filter)...).Find(&rows)
	})
}

func TestFilterScopesSearch(t *testing.T) {
	sql := listSQL(t, ports.ContactListFilter{Search: "ada"})
	assert.Contains(t, sql, `"first_name" LIKE '%ada%' OR "last_name" LIKE '%ada%' OR "email" LIKE '%ada%'`)
}

func TestFilterScopesPhone(t *testing.T) {
	yes, no := true, false
	assert.Contains(t, listSQL(t, ports.ContactListFilter{HasPhone: &yes}), `"phone" IS NOT NULL AND "phone" <> ''`)
	assert.Contains(t, listSQL(t, ports.ContactListFilter{HasPhone: &no}), `("phone" IS NULL OR "phone" = '')`)
}

func TestFilterScopesExcludeCompanyIsPrefixMatch(t *testing.T) {
	sql := listSQL(t, ports.ContactListFilter{ExcludeCompany: "Acme"})
	assert.Contains(t, sql, `"company" NOT LIKE 'Acme%'`)
}

func TestFilterScopesTagUsesPivotSubquery(t *testing.T) {
	sql := listSQL(t, ports.ContactListFilter{Tag: "vip"})
	assert.Contains(t, sql, `contact_id IN (SELECT`)
	assert.Contains(t, sql, `FROM "contact_tags"`)
	assert.Contains(t, sql, `"contact_tags"."label" LIKE '%vip%'`)
}

func TestFilterScopesSearchStaysGroupedWhenCombined(t *testing.T) {
	yes := true
	sql := listSQL(t, ports.ContactListFilter{Search: "ada", HasPhone: &yes})
	assert.Contains(t, sql, `("first_name" LIKE '%ada%' OR "last_name" LIKE '%ada%' OR "email" LIKE '%ada%') AND ("phone" IS NOT NULL`)
}

func TestFilterScopesEmptyFilter(t *testing.T) {
	assert.NotContains(t, listSQL(t, ports.ContactListFilter{}), "WHERE")
}

func TestModelMapping(t *testing.T) {
	contact := entities.Contact{
		ContactID: "c-1",
		FirstName: "Ada",
		Email:     "ada@example.com",
		Tags:      []entities.Tag{{Label: "vip"}},
	}
	row := contactModelFromEntity(contact)
	assert.Nil(t, row.Phone)

	row.Tags = []contactTagModel{{ContactID: "c-1", Label: "vip"}}
	back := row.toEntity()
	assert.Equal(t, "", back.Phone)
	assert.Equal(t, []entities.Tag{{Label: "vip"}}, back.Tags)

	contact.Phone = "+39 06 000"
	row = contactModelFromEntity(contact)
	require.NotNil(t, row.Phone)
	assert.Equal(t, "+39 06 000", *row.Phone)
}

func TestMapWriteError(t *testing.T) {
	duplicate := &pgconn.PgError{Code: "23505", ConstraintName: emailUniqueIndex}
	assert.ErrorIs(t, mapWriteError(duplicate), domainerrors.ErrDuplicateEmail)

	other := &pgconn.PgError{Code: "23505", ConstraintName: "contacts_pkey"}
	assert.ErrorIs(t, mapWriteError(other), domainerrors.ErrRepositoryFailure)

	plain := errors.New("connection reset")
	assert.Equal(t, plain, mapWriteError(plain))
}
