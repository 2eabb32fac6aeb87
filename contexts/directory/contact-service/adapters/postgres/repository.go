package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"apikit/contexts/directory/contact-service/domain/entities"
	domainerrors "apikit/contexts/directory/contact-service/domain/errors"
	"apikit/contexts/directory/contact-service/ports"
	platformdb "apikit/internal/platform/db"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const emailUniqueIndex = "contacts_email_unique"

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Models lists the tables owned by this adapter, in migration order.
func Models() []any {
	return []any{&contactModel{}, &contactTagModel{}}
}

func (r *Repository) ListContacts(ctx context.Context, filter ports.ContactListFilter) ([]entities.Contact, int, error) {
	scopes := filterScopes(filter)

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&contactModel{}).
		Scopes(scopes...).
		Count(&total).
		Error; err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	tx := r.db.WithContext(ctx).
		Model(&contactModel{}).
		Scopes(scopes...).
		Preload("Tags", orderTags).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "contact_id"}, Desc: true})
	if filter.PerPage > 0 {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		tx = tx.Offset((page - 1) * filter.PerPage).Limit(filter.PerPage)
	}

	var rows []contactModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}

	items := make([]entities.Contact, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, int(total), nil
}

func (r *Repository) GetContact(ctx context.Context, contactID string) (entities.Contact, error) {
	var row contactModel
	err := r.db.WithContext(ctx).
		Preload("Tags", orderTags).
		Where("contact_id = ?", contactID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Contact{}, domainerrors.ErrContactNotFound
		}
		return entities.Contact{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateContact(ctx context.Context, contact entities.Contact) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := contactModelFromEntity(contact)
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return mapWriteError(err)
		}
		return insertTags(tx, contact)
	})
}

// UpdateContact rewrites the contact row and replaces its tag set.
func (r *Repository) UpdateContact(ctx context.Context, contact entities.Contact) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := contactModelFromEntity(contact)
		result := tx.Model(&contactModel{}).
			Where("contact_id = ?", contact.ContactID).
			Select("first_name", "last_name", "email", "phone", "company", "notes", "owner_id", "updated_at").
			Updates(&row)
		if result.Error != nil {
			return mapWriteError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrContactNotFound
		}
		if err := tx.Where("contact_id = ?", contact.ContactID).Delete(&contactTagModel{}).Error; err != nil {
			return err
		}
		return insertTags(tx, contact)
	})
}

func (r *Repository) DeleteContact(ctx context.Context, contactID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", contactID).Delete(&contactTagModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("contact_id = ?", contactID).Delete(&contactModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrContactNotFound
		}
		r.logger.Debug("contact row deleted",
			"event", "postgres_contact_deleted",
			"module", "directory/contact-service",
			"layer", "adapter",
			"contact_id", contactID,
		)
		return nil
	})
}

func (r *Repository) CountWithoutPhone(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&contactModel{}).
		Scopes(platformdb.WhereEmpty("phone")).
		Count(&count).
		Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *Repository) ListTags(ctx context.Context) ([]entities.Tag, error) {
	var labels []string
	if err := r.db.WithContext(ctx).
		Model(&contactTagModel{}).
		Distinct("label").
		Order(clause.OrderByColumn{Column: clause.Column{Name: "label"}}).
		Pluck("label", &labels).
		Error; err != nil {
		return nil, err
	}
	tags := make([]entities.Tag, 0, len(labels))
	for _, label := range labels {
		tags = append(tags, entities.Tag{Label: label})
	}
	return tags, nil
}

// filterScopes translates the list filter into query scopes. The search
// terms are grouped so the ORs stay inside their parentheses.
func filterScopes(filter ports.ContactListFilter) []platformdb.Scope {
	var scopes []platformdb.Scope
	if filter.Search != "" {
		scopes = append(scopes, platformdb.Group(
			platformdb.WhereLike("first_name", filter.Search),
			platformdb.OrWhereLike("last_name", filter.Search),
			platformdb.OrWhereLike("email", filter.Search),
		))
	}
	if filter.HasPhone != nil {
		if *filter.HasPhone {
			scopes = append(scopes, platformdb.WhereNotEmpty("phone"))
		} else {
			scopes = append(scopes, platformdb.WhereEmpty("phone"))
		}
	}
	if filter.ExcludeCompany != "" {
		scopes = append(scopes, platformdb.WhereNotLike("company", filter.ExcludeCompany, platformdb.NoLeadingWildcard()))
	}
	if filter.Tag != "" {
		tag := filter.Tag
		scopes = append(scopes, func(tx *gorm.DB) *gorm.DB {
			tagged := tx.Session(&gorm.Session{NewDB: true}).
				Model(&contactTagModel{}).
				Select("contact_id").
				Scopes(platformdb.WherePivotLike(contactTagModel{}.TableName(), "label", tag))
			return tx.Where("contact_id IN (?)", tagged)
		})
	}
	return scopes
}

func orderTags(tx *gorm.DB) *gorm.DB {
	return tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "label"}})
}

func insertTags(tx *gorm.DB, contact entities.Contact) error {
	if len(contact.Tags) == 0 {
		return nil
	}
	rows := make([]contactTagModel, 0, len(contact.Tags))
	for _, tag := range contact.Tags {
		rows = append(rows, contactTagModel{ContactID: contact.ContactID, Label: tag.Label})
	}
	if err := tx.Create(&rows).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrRepositoryFailure
		}
		return err
	}
	return nil
}

func mapWriteError(err error) error {
	if isUniqueViolation(err) {
		if constraintName(err) == emailUniqueIndex {
			return domainerrors.ErrDuplicateEmail
		}
		return domainerrors.ErrRepositoryFailure
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
