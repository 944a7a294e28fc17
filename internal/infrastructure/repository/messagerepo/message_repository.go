package messagerepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"messaging-server/internal/domain/message"
	"messaging-server/internal/infrastructure/database/entities"
	"messaging-server/internal/infrastructure/database/transaction"
	"messaging-server/internal/utils/platformerrors"
)

type MessageGormRepository struct {
	db *transaction.Database
}

var _ message.Repository = (*MessageGormRepository)(nil)

func NewMessageGormRepository(db *transaction.Database) message.Repository {
	return &MessageGormRepository{db: db}
}

// Create inserts the message with its attachment rows and bumps the parent
// conversation's updated_at to the send time in the same transaction, so the
// inbox ordering can never observe a message without the recency bump.
func (repo *MessageGormRepository) Create(ctx context.Context, m *message.Message) error {
	entity := entities.NewSchemaMessage(m)
	err := repo.db.Transaction(ctx, func(ctx context.Context) error {
		tx := repo.db.GetTx(ctx)
		if err := tx.Create(entity).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Conversation{}).
			Where("id = ?", entity.ConversationID).
			Update("updated_at", entity.SendAt).
			Error
	})
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create message",
			err,
			"msg-create",
		)
	}
	*m = *entity.EtoD()
	return nil
}

func (repo *MessageGormRepository) FindByUUID(ctx context.Context, conversationID uint, messageUUID string) (*message.Message, error) {
	var entity entities.Message
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Preload("Files").
		Preload("Images").
		Where("conversation_id = ? AND uuid = ?", conversationID, messageUUID).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"message not found",
			err,
			"msg-not-found",
		)
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find message",
			err,
			"msg-find",
		)
	}
	return entity.EtoD(), nil
}

func (repo *MessageGormRepository) ListByConversation(ctx context.Context, conversationID uint, authorID *uint) ([]*message.Message, error) {
	q := repo.db.GetTx(ctx).WithContext(ctx).
		Preload("Author").
		Preload("Files").
		Preload("Images").
		Where("conversation_id = ?", conversationID)
	if authorID != nil {
		q = q.Where("author_id = ?", *authorID)
	}

	var rows []entities.Message
	if err := q.Order("send_at DESC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list messages",
			err,
			"msg-list",
		)
	}

	messages := make([]*message.Message, 0, len(rows))
	for i := range rows {
		messages = append(messages, rows[i].EtoD())
	}
	return messages, nil
}

// ApplyEdit writes the new content and editedAt marker and applies the
// attachment delta in one transaction. Attachment deletes are scoped to the
// message's own rows, so a stray ID from another message is ignored rather
// than removed.
func (repo *MessageGormRepository) ApplyEdit(ctx context.Context, m *message.Message, delta message.AttachmentDelta) (*message.Message, error) {
	var err error
	if delta.Empty() {
		// A content-only edit is a single UPDATE, atomic on its own.
		err = repo.updateContent(repo.db.GetTx(ctx).WithContext(ctx), m)
	} else {
		err = repo.db.Transaction(ctx, func(ctx context.Context) error {
			tx := repo.db.GetTx(ctx)

			if err := repo.updateContent(tx, m); err != nil {
				return err
			}

			if len(delta.FileIDsDelete) > 0 {
				if err := tx.Where("message_id = ? AND id IN ?", m.ID, delta.FileIDsDelete).
					Delete(&entities.File{}).Error; err != nil {
					return err
				}
			}
			if len(delta.ImageIDsDelete) > 0 {
				if err := tx.Where("message_id = ? AND id IN ?", m.ID, delta.ImageIDsDelete).
					Delete(&entities.Image{}).Error; err != nil {
					return err
				}
			}

			if len(delta.FilesAdd) > 0 {
				files := make([]entities.File, 0, len(delta.FilesAdd))
				for _, path := range delta.FilesAdd {
					files = append(files, entities.File{MessageID: m.ID, Filepath: path})
				}
				if err := tx.Create(&files).Error; err != nil {
					return err
				}
			}
			if len(delta.ImagesAdd) > 0 {
				images := make([]entities.Image, 0, len(delta.ImagesAdd))
				for _, path := range delta.ImagesAdd {
					images = append(images, entities.Image{MessageID: m.ID, Filepath: path})
				}
				if err := tx.Create(&images).Error; err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to apply message edit",
			err,
			"msg-edit",
		)
	}
	return repo.FindByUUID(ctx, m.ConversationID, m.UUID)
}

// updateContent writes content and edited_at through a map so an empty
// content string still updates.
func (repo *MessageGormRepository) updateContent(tx *gorm.DB, m *message.Message) error {
	return tx.Model(&entities.Message{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"content":   m.Content,
			"edited_at": m.EditedAt,
		}).Error
}

func (repo *MessageGormRepository) MarkDeleted(ctx context.Context, messageID uint, at time.Time) error {
	// The IS NULL guard keeps the original tombstone timestamp when the
	// message was already deleted.
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Model(&entities.Message{}).
		Where("id = ? AND deleted_at IS NULL", messageID).
		Update("deleted_at", at).
		Error
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete message",
			err,
			"msg-delete",
		)
	}
	return nil
}
