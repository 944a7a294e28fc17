package userrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"messaging-server/internal/domain/user"
	"messaging-server/internal/infrastructure/database/entities"
	"messaging-server/internal/infrastructure/database/transaction"
	"messaging-server/internal/utils/platformerrors"
)

type UserGormRepository struct {
	db *transaction.Database
}

var _ user.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *transaction.Database) user.Repository {
	return &UserGormRepository{db: db}
}

func (repo *UserGormRepository) Create(ctx context.Context, u *user.User) error {
	entity := entities.NewSchemaUser(u)
	if err := repo.db.GetTx(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeConflict,
				"email is already registered",
				err,
				"user-email-taken",
			)
		}
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create user",
			err,
			"user-create",
		)
	}
	*u = *entity.EtoD()
	return nil
}

func (repo *UserGormRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var entity entities.User
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"user not found",
			err,
			"user-not-found",
		)
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find user by ID",
			err,
			"user-find-by-id",
		)
	}
	return entity.EtoD(), nil
}

func (repo *UserGormRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var entity entities.User
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Where("email = ?", email).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"user not found",
			err,
			"user-not-found-email",
		)
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find user by email",
			err,
			"user-find-by-email",
		)
	}
	return entity.EtoD(), nil
}

func (repo *UserGormRepository) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []entities.User
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find users by IDs",
			err,
			"user-find-by-ids",
		)
	}
	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		users = append(users, rows[i].EtoD())
	}
	return users, nil
}
