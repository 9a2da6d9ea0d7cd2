package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/util"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"message": "PlacePick api",
	})
}
