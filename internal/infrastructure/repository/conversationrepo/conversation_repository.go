package conversationrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"messaging-server/internal/domain/conversation"
	"messaging-server/internal/domain/message"
	"messaging-server/internal/infrastructure/database/entities"
	"messaging-server/internal/infrastructure/database/transaction"
	"messaging-server/internal/utils/platformerrors"
)

type ConversationGormRepository struct {
	db *transaction.Database
}

var _ conversation.Repository = (*ConversationGormRepository)(nil)

func NewConversationGormRepository(db *transaction.Database) conversation.Repository {
	return &ConversationGormRepository{db: db}
}

func (repo *ConversationGormRepository) Create(ctx context.Context, conv *conversation.Conversation) error {
	entity := entities.NewSchemaConversation(conv)
	if err := repo.db.GetTx(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create conversation",
			err,
			"conv-create",
		)
	}
	*conv = *entity.EtoD()
	return nil
}

// FindForUser loads the conversation only when userID is a participant.
// A missing conversation and a conversation the user is not part of are
// deliberately the same NotFound, so callers cannot probe for existence.
func (repo *ConversationGormRepository) FindForUser(ctx context.Context, conversationID, userID uint) (*conversation.Conversation, error) {
	var entity entities.Conversation
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Preload("Participants.User").
		Where("id = ? AND EXISTS (SELECT 1 FROM participants p WHERE p.conversation_id = conversations.id AND p.user_id = ?)",
			conversationID, userID).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"conversation not found",
			err,
			"conv-not-found",
		)
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find conversation",
			err,
			"conv-find",
		)
	}
	return entity.EtoD(), nil
}

func (repo *ConversationGormRepository) ListForUser(ctx context.Context, userID uint, descending bool, limit int) ([]*conversation.Conversation, error) {
	order := "conversations.updated_at ASC"
	if descending {
		order = "conversations.updated_at DESC"
	}

	var rows []entities.Conversation
	q := repo.db.GetTx(ctx).WithContext(ctx).
		Preload("Participants.User").
		Joins("JOIN participants ON participants.conversation_id = conversations.id AND participants.user_id = ?", userID).
		Order(order)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list conversations",
			err,
			"conv-list",
		)
	}

	conversations := make([]*conversation.Conversation, 0, len(rows))
	for i := range rows {
		conv := rows[i].EtoD()
		preview, err := repo.LatestVisibleMessage(ctx, conv.ID, true)
		if err != nil {
			return nil, err
		}
		conv.LastMessage = preview
		conversations = append(conversations, conv)
	}
	return conversations, nil
}

func (repo *ConversationGormRepository) LatestVisibleMessage(ctx context.Context, conversationID uint, withDetails bool) (*message.Message, error) {
	q := repo.db.GetTx(ctx).WithContext(ctx).
		Where("conversation_id = ? AND deleted_at IS NULL", conversationID).
		Order("send_at DESC")
	if withDetails {
		q = q.Preload("Author").Preload("Files").Preload("Images")
	}

	var entity entities.Message
	err := q.First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to load latest message",
			err,
			"conv-latest-message",
		)
	}
	return entity.EtoD(), nil
}

func (repo *ConversationGormRepository) IsParticipant(ctx context.Context, userID, conversationID uint) (bool, error) {
	var count int64
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Model(&entities.Participant{}).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Count(&count).
		Error
	if err != nil {
		return false, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to check conversation membership",
			err,
			"conv-membership",
		)
	}
	return count > 0, nil
}
