package contactrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"messaging-server/internal/domain/contact"
	"messaging-server/internal/infrastructure/database/entities"
	"messaging-server/internal/infrastructure/database/transaction"
	"messaging-server/internal/utils/platformerrors"
)

type ContactGormRepository struct {
	db *transaction.Database
}

var _ contact.Repository = (*ContactGormRepository)(nil)

func NewContactGormRepository(db *transaction.Database) contact.Repository {
	return &ContactGormRepository{db: db}
}

func (repo *ContactGormRepository) Create(ctx context.Context, c *contact.Contact) error {
	entity := entities.NewSchemaContact(c)
	if err := repo.db.GetTx(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeConflict,
				"contact already exists",
				err,
				"contact-duplicate",
			)
		}
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create contact",
			err,
			"contact-create",
		)
	}
	*c = *entity.EtoD()
	return nil
}

func (repo *ContactGormRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*contact.Contact, error) {
	var rows []entities.Contact
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Preload("Subject").
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list contacts",
			err,
			"contact-list",
		)
	}
	contacts := make([]*contact.Contact, 0, len(rows))
	for i := range rows {
		contacts = append(contacts, rows[i].EtoD())
	}
	return contacts, nil
}
