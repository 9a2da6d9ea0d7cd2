package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/hyeonwoo/placepick/internal/repository"
	"github.com/hyeonwoo/placepick/internal/util"
	"gorm.io/gorm"
)

type PlaceController struct {
	*baseController
}

// GetPlaces lists places with optional category and keyword filters, together
// with their aggregated vote counts.
func (plc PlaceController) GetPlaces(ctx *gin.Context) {
	page, pageSize := util.ReadPageQuery(ctx)
	category := ctx.Query("category")
	keyword := ctx.Query("keyword")

	places, total, err := plc.app.Repository.Place.List(ctx, nil, category, keyword, page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	placeIds := make([]string, 0, len(places))
	for _, place := range places {
		placeIds = append(placeIds, place.ID)
	}

	voteCounts := []repository.VoteCount{}
	if len(placeIds) > 0 {
		voteCounts, err = plc.app.Repository.Vote.CountByPlaceIds(ctx, nil, placeIds)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
			return
		}
	}

	util.ResponseSuccess(ctx, gin.H{
		"places":     places,
		"voteCounts": voteCounts,
		"total":      total,
		"totalPage":  util.CalculateTotalPage(total, pageSize),
		"page":       page,
		"pageSize":   pageSize,
	})
}

func (plc PlaceController) GetPlaceById(ctx *gin.Context) {
	placeId := ctx.Param("placeId")

	place, err := plc.app.Repository.Place.GetById(ctx, nil, placeId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Place not found", nil, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	voteCounts, err := plc.app.Repository.Vote.CountByPlaceIds(ctx, nil, []string{place.ID})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"place":      place,
		"voteCounts": voteCounts,
	})
}

func (plc PlaceController) CreatePlace(ctx *gin.Context) {
	user, err := plc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	var newPlace model.Place
	if err := ctx.ShouldBind(&newPlace); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if fileHeader, err := ctx.FormFile("image"); err == nil {
		info, err := util.UploadFileToS3ByFileHeader(fileHeader, &util.FileUploadOptions{
			DirectoryPath: "places",
			UniquePrefix:  true,
			Bucket:        plc.app.Config.Minio.BUCKET,
			S3:            plc.app.S3,
		})
		if err != nil {
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload image", util.GenerateErrorMessages(err), nil)
			return
		}
		newPlace.ImageURL = plc.objectURL(info.Key)
	}

	newPlace.CreatedBy = user.ID
	place, err := plc.app.Repository.Place.Create(ctx, nil, newPlace)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"place": place})
}

type updatePlaceRequest struct {
	Name      *string  `json:"name" form:"name"`
	Category  *string  `json:"category" form:"category"`
	Address   *string  `json:"address" form:"address"`
	Phone     *string  `json:"phone" form:"phone"`
	Latitude  *float64 `json:"latitude" form:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" form:"longitude" binding:"omitempty,longitude"`
	ImageURL  *string  `json:"imageURL" form:"imageURL"`
}

func (plc PlaceController) UpdatePlace(ctx *gin.Context) {
	_, place, ok := plc.requireOwnedPlace(ctx)
	if !ok {
		return
	}

	var req updatePlaceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	if len(updates) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Nothing to update", nil, nil)
		return
	}

	if err := plc.app.Repository.Place.Update(ctx, nil, place.ID, updates); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	updated, err := plc.app.Repository.Place.GetById(ctx, nil, place.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"place": updated})
}

func (plc PlaceController) DeletePlace(ctx *gin.Context) {
	_, place, ok := plc.requireOwnedPlace(ctx)
	if !ok {
		return
	}

	if err := plc.app.Repository.Place.DeleteById(ctx, nil, place.ID); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// requireOwnedPlace loads the place in the path and checks the caller owns it.
func (plc PlaceController) requireOwnedPlace(ctx *gin.Context) (*model.User, *model.Place, bool) {
	user, err := plc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return nil, nil, false
	}

	place, err := plc.app.Repository.Place.GetById(ctx, nil, ctx.Param("placeId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Place not found", nil, nil)
			return nil, nil, false
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return nil, nil, false
	}

	if place.CreatedBy != user.ID {
		util.ResponseFailed(ctx, http.StatusForbidden, "Only the owner can modify this place", nil, nil)
		return nil, nil, false
	}

	return user, place, true
}
