package repository

import (
	"context"

	"gorm.io/gorm"

	"cafeyak/internal/model"
)

// AnnouncementRepository defines announcement persistence operations.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *model.Announcement) error
	List(ctx context.Context) ([]model.Announcement, error)
	FindByTitle(ctx context.Context, title string) (*model.Announcement, error)
}

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository builds a GORM-backed repository.
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepository) List(ctx context.Context) ([]model.Announcement, error) {
	var announcements []model.Announcement
	if err := r.db.WithContext(ctx).Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *announcementRepository) FindByTitle(ctx context.Context, title string) (*model.Announcement, error) {
	var announcement model.Announcement
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&announcement).Error; err != nil {
		return nil, err
	}
	return &announcement, nil
}
