package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jordan10001/soramatcha-admin/pkg/resp"
	"github.com/Jordan10001/soramatcha-admin/services"
	"github.com/Jordan10001/soramatcha-admin/storage"
)

type UploadController struct {
	Uploads *services.UploadService
}

func NewUploadController(uploads *services.UploadService) *UploadController {
	return &UploadController{Uploads: uploads}
}

// POST /menu/menus/image — multipart "file" plus an optional "name" that
// overrides the generated object name.
func (ctl *UploadController) UploadMenuImage(c *gin.Context) {
	ctl.upload(c, storage.BucketMenus)
}

// POST /event/image
func (ctl *UploadController) UploadEventImage(c *gin.Context) {
	ctl.upload(c, storage.BucketEvents)
}

func (ctl *UploadController) upload(c *gin.Context, bucket string) {
	header, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "Image file is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		resp.ServerError(c, "Could not read uploaded file")
		return
	}
	defer file.Close()

	up := services.Upload{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}

	var result *services.UploadResult
	if bucket == storage.BucketMenus {
		result, err = ctl.Uploads.UploadMenuImage(c.Request.Context(), up, c.PostForm("name"))
	} else {
		result, err = ctl.Uploads.UploadEventImage(c.Request.Context(), up, c.PostForm("name"))
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, result)
}

// DELETE /menu/menus/image?path=
func (ctl *UploadController) DeleteMenuImage(c *gin.Context) {
	ctl.deleteImage(c, storage.BucketMenus)
}

// DELETE /event/image?path=
func (ctl *UploadController) DeleteEventImage(c *gin.Context) {
	ctl.deleteImage(c, storage.BucketEvents)
}

func (ctl *UploadController) deleteImage(c *gin.Context, bucket string) {
	if err := ctl.Uploads.DeleteImage(c.Request.Context(), bucket, c.Query("path")); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": c.Query("path")})
}
