package controller

import (
	"educonexa_backend/internal/middleware"
	"educonexa_backend/internal/service"
	"educonexa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
	LessonService *service.LessonService
}

func NewCourseController(courseService *service.CourseService, lessonService *service.LessonService) *CourseController {
	return &CourseController{
		CourseService: courseService,
		LessonService: lessonService,
	}
}

// ListCourses godoc
// @Summary List courses
// @Description Newest first, with author, lesson count and enrollment count
// @Tags courses
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.CourseListItem} "Success"
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CourseService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary Course detail
// @Tags courses
// @Produce  json
// @Param   id path string true "Course ID"
// @Success 200 {object} util.Response{data=service.CourseDetail} "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.CourseService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// CreateCourse godoc
// @Summary Create a course
// @Description The current user becomes the author
// @Tags courses
// @Accept  json
// @Produce  json
// @Param   body body service.CreateCourseRequest true "Course"
// @Success 201 {object} util.Response{data=model.Course} "Created"
// @Failure 400 {object} util.Response "Validation failed"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req service.CreateCourseRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	user := middleware.CurrentUser(ctx)
	course, err := c.CourseService.Create(ctx.Request.Context(), user.ID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// UpdateCourse godoc
// @Summary Update a course
// @Description Owner or admin only. Every field is optional
// @Tags courses
// @Accept  json
// @Produce  json
// @Param   id path string true "Course ID"
// @Param   body body service.UpdateCourseRequest true "Changes"
// @Success 200 {object} util.Response{data=model.Course} "Success"
// @Failure 400 {object} util.Response "Validation failed"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Forbidden"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id} [patch]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req service.UpdateCourseRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	course, err := c.CourseService.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary Delete a course
// @Description Removes lessons, resources, progress, enrollments and certifications too
// @Tags courses
// @Produce  json
// @Param   id path string true "Course ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Forbidden"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.CourseService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"ok": true})
}

// ListLessons godoc
// @Summary Lessons of a course
// @Tags lessons
// @Produce  json
// @Param   id path string true "Course ID"
// @Success 200 {object} util.Response{data=[]model.Lesson} "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id}/lessons [get]
func (c *CourseController) ListLessons(ctx *gin.Context) {
	lessons, err := c.LessonService.List(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// CreateLesson godoc
// @Summary Add a lesson
// @Description Owner of the course or admin. Order defaults to the next position
// @Tags lessons
// @Accept  json
// @Produce  json
// @Param   id path string true "Course ID"
// @Param   body body service.CreateLessonRequest true "Lesson"
// @Success 201 {object} util.Response{data=model.Lesson} "Created"
// @Failure 400 {object} util.Response "Validation failed"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Forbidden"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id}/lessons [post]
func (c *CourseController) CreateLesson(ctx *gin.Context) {
	var req service.CreateLessonRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	lesson, err := c.LessonService.Create(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}
