package postgresadapter

import (
	"time"

	"apikit/contexts/directory/contact-service/domain/entities"
)

// Indexed varchar columns are capped at 191 characters.
type contactModel struct {
	ContactID string            `gorm:"column:contact_id;primaryKey;size:191"`
	FirstName string            `gorm:"column:first_name;size:191;not null;index:contacts_name"`
	LastName  string            `gorm:"column:last_name;size:191;index:contacts_name"`
	Email     string            `gorm:"column:email;size:191;not null;uniqueIndex:contacts_email_unique"`
	Phone     *string           `gorm:"column:phone;size:191"`
	Company   string            `gorm:"column:company;size:191;index"`
	Notes     string            `gorm:"column:notes;type:text"`
	OwnerID   string            `gorm:"column:owner_id;size:191"`
	Tags      []contactTagModel `gorm:"foreignKey:ContactID;references:ContactID"`
	CreatedAt time.Time         `gorm:"column:created_at;index"`
	UpdatedAt time.Time         `gorm:"column:updated_at"`
}

func (contactModel) TableName() string {
	return "contacts"
}

type contactTagModel struct {
	ContactID string `gorm:"column:contact_id;primaryKey;size:191"`
	Label     string `gorm:"column:label;primaryKey;size:191"`
}

func (contactTagModel) TableName() string {
	return "contact_tags"
}

func (m contactModel) toEntity() entities.Contact {
	contact := entities.Contact{
		ContactID: m.ContactID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Company:   m.Company,
		Notes:     m.Notes,
		OwnerID:   m.OwnerID,
		Tags:      make([]entities.Tag, 0, len(m.Tags)),
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
	if m.Phone != nil {
		contact.Phone = *m.Phone
	}
	for _, tag := range m.Tags {
		contact.Tags = append(contact.Tags, entities.Tag{Label: tag.Label})
	}
	return contact
}

func contactModelFromEntity(contact entities.Contact) contactModel {
	row := contactModel{
		ContactID: contact.ContactID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Company:   contact.Company,
		Notes:     contact.Notes,
		OwnerID:   contact.OwnerID,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
	if contact.Phone != "" {
		phone := contact.Phone
		row.Phone = &phone
	}
	return row
}
