package repository

import (
	"github.com/hyeonwoo/placepick/internal/util"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB            *gorm.DB
	User          *UserRepository
	LinkedAccount *LinkedAccountRepository
	Session       *SessionRepository
	Profile       *ProfileRepository
	Consent       *ConsentRepository
	Place         *PlaceRepository
	Vote          *VoteRepository
	Favorite      *FavoriteRepository
	Review        *ReviewRepository
	Notification  *NotificationRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger) *baseRepository {
	return &baseRepository{db: db, logger: logger}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger) *Repository {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("")
	}

	br := newBaseRepository(db, logger)

	return &Repository{
		DB:            db,
		User:          &UserRepository{baseRepository: br},
		LinkedAccount: &LinkedAccountRepository{baseRepository: br},
		Session:       &SessionRepository{baseRepository: br},
		Profile:       &ProfileRepository{baseRepository: br},
		Consent:       &ConsentRepository{baseRepository: br},
		Place:         &PlaceRepository{baseRepository: br},
		Vote:          &VoteRepository{baseRepository: br},
		Favorite:      &FavoriteRepository{baseRepository: br},
		Review:        &ReviewRepository{baseRepository: br},
		Notification:  &NotificationRepository{baseRepository: br},
	}
}

func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Errorf("withTx Transaction error: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
