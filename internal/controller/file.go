package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyeonwoo/placepick/internal/util"
)

type FileController struct {
	*baseController
}

// UploadImage stores an uploaded image in object storage and returns its
// public URL.
func (fc FileController) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No file provided", util.GenerateErrorMessages(err), nil)
		return
	}

	info, err := util.UploadFileToS3ByFileHeader(fileHeader, &util.FileUploadOptions{
		DirectoryPath: "uploads",
		UniquePrefix:  true,
		Bucket:        fc.app.Config.Minio.BUCKET,
		S3:            fc.app.S3,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload file", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"key": info.Key,
		"url": fc.objectURL(info.Key),
	})
}
