package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/util"
	"gorm.io/gorm"
)

type FavoriteController struct {
	*baseController
}

func (fc FavoriteController) AddFavorite(ctx *gin.Context) {
	user, err := fc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	placeId := ctx.Param("placeId")
	if _, err := fc.app.Repository.Place.GetById(ctx, nil, placeId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Place not found", nil, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := fc.app.Repository.Favorite.Add(ctx, nil, user.ID, placeId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (fc FavoriteController) RemoveFavorite(ctx *gin.Context) {
	user, err := fc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	if err := fc.app.Repository.Favorite.Remove(ctx, nil, user.ID, ctx.Param("placeId")); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (fc FavoriteController) GetOwnFavorites(ctx *gin.Context) {
	user, err := fc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	favorites, err := fc.app.Repository.Favorite.GetAllByUserId(ctx, nil, user.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"favorites": favorites})
}
