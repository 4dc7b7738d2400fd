package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "brandloop/contexts/community-experience/chat-service/domain/errors"
	"brandloop/contexts/community-experience/chat-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

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

func (r *Repository) EnsureDirectThread(
	ctx context.Context,
	firstUserID string,
	secondUserID string,
	threadID string,
	now time.Time,
) (ports.Thread, error) {
	first := strings.TrimSpace(firstUserID)
	second := strings.TrimSpace(secondUserID)
	if second < first {
		first, second = second, first
	}

	var out ports.Thread
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing threadModel
		err := tx.
			Where("kind = ? AND participant_key = ?", ports.ThreadKindDirect, first+"|"+second).
			First(&existing).
			Error
		if err == nil {
			loaded, loadErr := loadThread(tx, existing)
			if loadErr != nil {
				return loadErr
			}
			out = loaded
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row := threadModel{
			ThreadID:       strings.TrimSpace(threadID),
			Kind:           ports.ThreadKindDirect,
			ParticipantKey: first + "|" + second,
			CreatedAt:      now.UTC(),
		}
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				// Lost the race against a concurrent EnsureDirectThread.
				if err := tx.
					Where("kind = ? AND participant_key = ?", ports.ThreadKindDirect, row.ParticipantKey).
					First(&existing).
					Error; err != nil {
					return err
				}
				loaded, loadErr := loadThread(tx, existing)
				if loadErr != nil {
					return loadErr
				}
				out = loaded
				return nil
			}
			return err
		}

		for _, userID := range []string{first, second} {
			participant := participantModel{
				ThreadID: row.ThreadID,
				UserID:   userID,
				JoinedAt: now.UTC(),
			}
			if err := tx.Create(&participant).Error; err != nil {
				return err
			}
		}
		out = ports.Thread{
			ThreadID:       row.ThreadID,
			Kind:           row.Kind,
			ParticipantIDs: []string{first, second},
			CreatedAt:      row.CreatedAt.UTC(),
		}
		return nil
	})
	if err != nil {
		return ports.Thread{}, err
	}
	return out, nil
}

func (r *Repository) GetThread(ctx context.Context, threadID string) (ports.Thread, error) {
	var row threadModel
	err := r.db.WithContext(ctx).
		Where("thread_id = ?", strings.TrimSpace(threadID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Thread{}, domainerrors.ErrThreadNotFound
		}
		return ports.Thread{}, err
	}
	return loadThread(r.db.WithContext(ctx), row)
}

func (r *Repository) IsParticipant(ctx context.Context, threadID string, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&participantModel{}).
		Where("thread_id = ? AND user_id = ?", strings.TrimSpace(threadID), strings.TrimSpace(userID)).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	var threadCount int64
	err = r.db.WithContext(ctx).
		Model(&threadModel{}).
		Where("thread_id = ?", strings.TrimSpace(threadID)).
		Count(&threadCount).
		Error
	if err != nil {
		return false, err
	}
	if threadCount == 0 {
		return false, domainerrors.ErrThreadNotFound
	}
	return false, nil
}

func (r *Repository) CreateMessage(ctx context.Context, message ports.Message) error {
	row := messageModel{
		MessageID:   strings.TrimSpace(message.MessageID),
		ThreadID:    strings.TrimSpace(message.ThreadID),
		SenderID:    strings.TrimSpace(message.SenderID),
		Content:     message.Content,
		MessageType: strings.TrimSpace(message.MessageType),
		CreatedAt:   message.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidRequest
		}
		return err
	}
	return nil
}

func (r *Repository) ListMessages(ctx context.Context, input ports.ListMessagesInput) ([]ports.Message, error) {
	tx := r.db.WithContext(ctx).
		Where("thread_id = ?", strings.TrimSpace(input.ThreadID)).
		Order("created_at DESC")
	if input.Limit > 0 {
		tx = tx.Limit(input.Limit)
	}

	var rows []messageModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	// Rows were fetched newest first to honor the limit; return them oldest first.
	items := make([]ports.Message, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		items = append(items, ports.Message{
			MessageID:   row.MessageID,
			ThreadID:    row.ThreadID,
			SenderID:    row.SenderID,
			Content:     row.Content,
			MessageType: row.MessageType,
			CreatedAt:   row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) DeleteOrphanedDirectThreads(ctx context.Context) (int, error) {
	removed := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orphanIDs []string
		if err := tx.
			Model(&threadModel{}).
			Select("chat_threads.thread_id").
			Joins("LEFT JOIN chat_participants ON chat_participants.thread_id = chat_threads.thread_id").
			Where("chat_threads.kind = ?", ports.ThreadKindDirect).
			Group("chat_threads.thread_id").
			Having("COUNT(chat_participants.user_id) < 2").
			Find(&orphanIDs).
			Error; err != nil {
			return err
		}
		if len(orphanIDs) == 0 {
			return nil
		}

		if err := tx.Where("thread_id IN ?", orphanIDs).Delete(&messageModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("thread_id IN ?", orphanIDs).Delete(&participantModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("thread_id IN ?", orphanIDs).Delete(&threadModel{}).Error; err != nil {
			return err
		}
		removed = len(orphanIDs)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func loadThread(tx *gorm.DB, row threadModel) (ports.Thread, error) {
	var participants []participantModel
	if err := tx.
		Where("thread_id = ?", row.ThreadID).
		Order("user_id ASC").
		Find(&participants).
		Error; err != nil {
		return ports.Thread{}, err
	}

	participantIDs := make([]string, 0, len(participants))
	for _, participant := range participants {
		participantIDs = append(participantIDs, participant.UserID)
	}
	return ports.Thread{
		ThreadID:       row.ThreadID,
		Kind:           row.Kind,
		ParticipantIDs: participantIDs,
		CreatedAt:      row.CreatedAt.UTC(),
	}, nil
}

type threadModel struct {
	ThreadID       string    `gorm:"column:thread_id;primaryKey"`
	Kind           string    `gorm:"column:kind"`
	ParticipantKey string    `gorm:"column:participant_key"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (threadModel) TableName() string {
	return "chat_threads"
}

type participantModel struct {
	ThreadID string    `gorm:"column:thread_id;primaryKey"`
	UserID   string    `gorm:"column:user_id;primaryKey"`
	JoinedAt time.Time `gorm:"column:joined_at"`
}

func (participantModel) TableName() string {
	return "chat_participants"
}

type messageModel struct {
	MessageID   string    `gorm:"column:message_id;primaryKey"`
	ThreadID    string    `gorm:"column:thread_id"`
	SenderID    string    `gorm:"column:sender_id"`
	Content     string    `gorm:"column:content"`
	MessageType string    `gorm:"column:message_type"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (messageModel) TableName() string {
	return "messages"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
