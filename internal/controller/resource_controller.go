package controller

import (
	"educonexa_backend/internal/middleware"
	"educonexa_backend/internal/service"
	"educonexa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

// canManageCourse writes 404 or 403 and returns false unless the current
// user may add material to the course.
func (c *ResourceController) canManageCourse(ctx *gin.Context, courseID string) bool {
	ownerID, err := c.ResourceService.CourseOwnerID(ctx.Request.Context(), courseID)
	if err != nil {
		respondError(ctx, err)
		return false
	}
	if !middleware.CurrentUser(ctx).CanManage(ownerID) {
		util.Forbidden(ctx)
		return false
	}
	return true
}

// ListResources godoc
// @Summary Course material
// @Tags resources
// @Produce  json
// @Param   courseId query string false "Only resources of this course"
// @Success 200 {object} util.Response{data=[]model.Resource} "Success"
// @Router /api/resources [get]
func (c *ResourceController) ListResources(ctx *gin.Context) {
	resources, err := c.ResourceService.List(ctx.Request.Context(), ctx.Query("courseId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, resources)
}

// CreateResource godoc
// @Summary Link material to a course
// @Description Owner of the course or admin. Type defaults to LINK
// @Tags resources
// @Accept  json
// @Produce  json
// @Param   body body service.CreateResourceRequest true "Resource"
// @Success 201 {object} util.Response{data=model.Resource} "Created"
// @Failure 400 {object} util.Response "Validation failed"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Forbidden"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/resources [post]
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	var req service.CreateResourceRequest
	if !util.BindJSON(ctx, &req) {
		return
	}
	if !c.canManageCourse(ctx, req.CourseID) {
		return
	}

	res, err := c.ResourceService.Create(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, res)
}

// UploadResource godoc
// @Summary Upload a video or PDF
// @Description Videos are inspected for duration and get a thumbnail
// @Tags resources
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Video or PDF"
// @Param   courseId formData string true "Course ID"
// @Param   title formData string true "Title"
// @Param   description formData string false "Description"
// @Param   type formData string false "VIDEO or PDF"
// @Success 201 {object} util.Response{data=model.Resource} "Created"
// @Failure 400 {object} util.Response "Invalid file"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Forbidden"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/resources/upload [post]
func (c *ResourceController) UploadResource(ctx *gin.Context) {
	var req service.UploadResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ValidationFailed(ctx, util.FieldErrors(err))
		return
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		util.ValidationFailed(ctx, map[string]string{"file": "is required"})
		return
	}
	if !c.canManageCourse(ctx, req.CourseID) {
		return
	}

	res, err := c.ResourceService.Upload(ctx.Request.Context(), req, file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, res)
}

// DeleteResource godoc
// @Summary Delete material
// @Description Owner of the course or admin
// @Tags resources
// @Produce  json
// @Param   id path string true "Resource ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Forbidden"
// @Failure 404 {object} util.Response "Resource not found"
// @Router /api/resources/{id} [delete]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	if err := c.ResourceService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"ok": true})
}
