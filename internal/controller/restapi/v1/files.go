package v1

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/avdeev/courtside-media/internal/controller/restapi/v1/response"
	"github.com/avdeev/courtside-media/internal/controller/restapi/v1/validate"
)

// @Summary  	Upload image
// @Description Uploads an image to the bucket and returns a one-hour signed URL
// @Tags 		files
// @Accept 		mpfd
// @Produce 	json
// @Param 		file formData file true "Image file (jpeg, png, jpg)"
// @Success 	200 {object} response.UploadImage
// @Failure 	400 {object} response.Error "Empty file"
// @Failure 	413 {object} response.Error "File too large"
// @Failure 	415 {object} response.Error "Unsupported format"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/upload [post]
func (r *V1) uploadImage(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "no file part in the request")
	}

	if file.Filename == "" {
		return errorResponse(ctx, http.StatusBadRequest, "no selected file")
	}

	reader, err := file.Open()
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadImage")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with opening the file")
	}
	defer reader.Close()

	// Unique target name keeps concurrent uploads of the same file apart.
	targetName := fmt.Sprintf("%s_%s", uuid.New(), file.Filename)

	url, err := r.media.Upload(
		ctx.UserContext(),
		reader,
		file.Size,
		file.Header.Get("Content-Type"),
		targetName,
		validate.AllowedImageTypes,
		r.upload.ImageMaxSizeMB,
	)
	if err != nil {
		return r.mapError(ctx, err, "uploadImage")
	}

	return ctx.JSON(response.UploadImage{
		Status:   "success",
		ImageURL: url,
		Filename: targetName,
	})
}

// @Summary  	Get signed URL
// @Description Returns a one-hour signed URL for an existing object
// @Tags 		files
// @Produce 	json
// @Param 		filename path string true "Object name"
// @Success 	200 {object} response.SignedURL
// @Failure 	404 {object} response.Error "File not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/files/url/{filename} [get]
func (r *V1) getFileURL(ctx *fiber.Ctx) error {
	name := ctx.Params("+")

	url, err := r.media.SignedURL(ctx.UserContext(), name)
	if err != nil {
		return r.mapError(ctx, err, "getFileURL")
	}

	return ctx.JSON(response.SignedURL{ImageURL: url})
}

// @Summary  	Delete file
// @Description Deletes one object from the bucket
// @Tags 		files
// @Produce 	json
// @Param 		filename path string true "Object name"
// @Success 	200 {object} response.DeleteFile
// @Failure 	400 {object} response.Error "Invalid filename"
// @Failure 	404 {object} response.Error "File not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/files/{filename} [delete]
func (r *V1) deleteFile(ctx *fiber.Ctx) error {
	name := ctx.Params("+")

	if err := r.media.Delete(ctx.UserContext(), name); err != nil {
		return r.mapError(ctx, err, "deleteFile")
	}

	return ctx.JSON(response.DeleteFile{
		Status:  "success",
		Message: fmt.Sprintf("File %q deleted successfully", name),
	})
}

// @Summary  	List files
// @Description Lists objects under a folder prefix
// @Tags 		files
// @Produce 	json
// @Param 		folder 		query string false "Folder prefix"
// @Param 		max_results query int 	 false "Maximum entries (1-1000)" default(100)
// @Success 	200 {object} response.FileList
// @Failure 	400 {object} response.Error "max_results out of range"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/files [get]
func (r *V1) listFiles(ctx *fiber.Ctx) error {
	folder := ctx.Query("folder")

	maxResults := ctx.QueryInt("max_results", validate.DefaultListResults)
	if maxResults < validate.MinListResults || maxResults > validate.MaxListResults {
		return errorResponse(ctx, http.StatusBadRequest,
			fmt.Sprintf("max_results must be between %d and %d", validate.MinListResults, validate.MaxListResults))
	}

	files, err := r.media.List(ctx.UserContext(), folder, maxResults)
	if err != nil {
		return r.mapError(ctx, err, "listFiles")
	}

	displayFolder := folder
	if displayFolder == "" {
		displayFolder = "root"
	}

	return ctx.JSON(response.FileList{
		Status:     "success",
		Folder:     displayFolder,
		FileCount:  len(files),
		MaxResults: maxResults,
		Files:      files,
	})
}
