package repository

import (
	"context"

	constant "github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"gorm.io/gorm"
)

type PlaceRepository struct {
	*baseRepository
}

func (plr PlaceRepository) GetById(ctx context.Context, tx *gorm.DB, placeId string) (*model.Place, error) {
	plr.logger.Debugf("Get place by id: %s \n", placeId)

	db := plr.getDB(tx)
	var place *model.Place

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Place{}).Where(&model.Place{BaseModel: model.BaseModel{ID: placeId}}).First(&place).Error; err != nil {
		return place, err
	}

	return place, nil
}

// List returns a page of places, optionally filtered by category and a
// case-insensitive name keyword.
func (plr PlaceRepository) List(ctx context.Context, tx *gorm.DB, category string, keyword string, page uint, pageSize uint) ([]model.Place, int64, error) {
	plr.logger.Debugf("List places category: %s keyword: %s page: %d \n", category, keyword, page)

	db := plr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Place{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var places []model.Place
	offset := int((page - 1) * pageSize)
	if err := query.Order("created_at DESC").Offset(offset).Limit(int(pageSize)).Find(&places).Error; err != nil {
		return nil, 0, err
	}

	return places, total, nil
}

func (plr *PlaceRepository) Create(ctx context.Context, tx *gorm.DB, newPlace model.Place) (*model.Place, error) {
	plr.logger.Debugf("Create place with data: %v \n", newPlace)

	db := plr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	place := model.Place{
		Name:      newPlace.Name,
		Category:  newPlace.Category,
		Address:   newPlace.Address,
		Phone:     newPlace.Phone,
		Latitude:  newPlace.Latitude,
		Longitude: newPlace.Longitude,
		ImageURL:  newPlace.ImageURL,
		CreatedBy: newPlace.CreatedBy,
	}
	if err := db.WithContext(ctx).Model(&model.Place{}).Create(&place).Error; err != nil {
		return nil, err
	}

	return &place, nil
}

func (plr *PlaceRepository) Update(ctx context.Context, tx *gorm.DB, placeId string, updates map[string]any) error {
	plr.logger.Debugf("Update place: %s with %v \n", placeId, updates)

	db := plr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Place{}).Where("id = ?", placeId).Updates(updates).Error
}

func (plr *PlaceRepository) DeleteById(ctx context.Context, tx *gorm.DB, placeId string) error {
	plr.logger.Debugf("Delete place by id: %s \n", placeId)

	db := plr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", placeId).Delete(&model.Place{}).Error
}
