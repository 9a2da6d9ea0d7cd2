package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/constant"
)

func CalculateTotalPage(totalItems int64, pageSize uint) int {
	if pageSize <= 0 {
		pageSize = constant.DefaultPageSize
	}
	if totalItems == 0 {
		return 1
	}
	totalPage := int(totalItems / int64(pageSize))
	if totalItems%int64(pageSize) != 0 {
		totalPage++
	}
	return totalPage
}

// ReadPageQuery reads ?page= and ?pageSize= with sane bounds.
func ReadPageQuery(ctx *gin.Context) (page uint, pageSize uint) {
	page = 1
	pageSize = constant.DefaultPageSize

	if p, err := strconv.Atoi(ctx.DefaultQuery("page", "1")); err == nil && p > 0 {
		page = uint(p)
	}
	if ps, err := strconv.Atoi(ctx.DefaultQuery("pageSize", "20")); err == nil && ps > 0 {
		pageSize = uint(ps)
	}
	if pageSize > constant.MaxPageSize {
		pageSize = constant.MaxPageSize
	}

	return page, pageSize
}
