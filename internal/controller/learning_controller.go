package controller

import (
	"educonexa_backend/internal/middleware"
	"educonexa_backend/internal/service"
	"educonexa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// LearningController serves lesson completion, enrollments and certificates.
type LearningController struct {
	ProgressService      *service.ProgressService
	EnrollmentService    *service.EnrollmentService
	CertificationService *service.CertificationService
}

func NewLearningController(
	progressService *service.ProgressService,
	enrollmentService *service.EnrollmentService,
	certificationService *service.CertificationService,
) *LearningController {
	return &LearningController{
		ProgressService:      progressService,
		EnrollmentService:    enrollmentService,
		CertificationService: certificationService,
	}
}

// createdOrOK answers 201 for a new row and 200 for one that already existed.
func createdOrOK(ctx *gin.Context, created bool, data interface{}) {
	if created {
		util.Created(ctx, data)
		return
	}
	util.Success(ctx, data)
}

// CompleteLesson godoc
// @Summary Mark a lesson completed
// @Description Recomputes course progress and issues the certificate at 100%
// @Tags lessons
// @Produce  json
// @Param   id path string true "Lesson ID"
// @Success 200 {object} util.Response{data=service.CompletionResult} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Lesson not found"
// @Router /api/lessons/{id}/complete [post]
func (c *LearningController) CompleteLesson(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	result, err := c.ProgressService.CompleteLesson(ctx.Request.Context(), user.ID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// ListEnrollments godoc
// @Summary My enrollments
// @Tags enrollments
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Enrollment} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/enrollments [get]
func (c *LearningController) ListEnrollments(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	enrollments, err := c.EnrollmentService.ListForUser(ctx.Request.Context(), user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, enrollments)
}

// Enroll godoc
// @Summary Enroll in a course
// @Tags enrollments
// @Accept  json
// @Produce  json
// @Param   body body service.EnrollRequest true "Course"
// @Success 200 {object} util.Response{data=model.Enrollment} "Already enrolled"
// @Success 201 {object} util.Response{data=model.Enrollment} "Created"
// @Failure 400 {object} util.Response "Validation failed"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/enrollments [post]
func (c *LearningController) Enroll(ctx *gin.Context) {
	var req service.EnrollRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	user := middleware.CurrentUser(ctx)
	enrollment, created, err := c.EnrollmentService.Enroll(ctx.Request.Context(), user.ID, req.CourseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	createdOrOK(ctx, created, enrollment)
}

// ListCertifications godoc
// @Summary My certificates
// @Tags certifications
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Certification} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/certifications [get]
func (c *LearningController) ListCertifications(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	certs, err := c.CertificationService.ListForUser(ctx.Request.Context(), user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, certs)
}

// GrantCertification godoc
// @Summary Issue a certificate to a user
// @Description Admin only. Existing certificates are returned unchanged
// @Tags certifications
// @Accept  json
// @Produce  json
// @Param   body body service.GrantCertificationRequest true "Grant"
// @Success 200 {object} util.Response{data=model.Certification} "Already issued"
// @Success 201 {object} util.Response{data=model.Certification} "Created"
// @Failure 400 {object} util.Response "Validation failed"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Forbidden"
// @Failure 404 {object} util.Response "User or course not found"
// @Router /api/certifications [post]
func (c *LearningController) GrantCertification(ctx *gin.Context) {
	var req service.GrantCertificationRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	cert, created, err := c.CertificationService.Grant(ctx.Request.Context(), middleware.CurrentUser(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	createdOrOK(ctx, created, cert)
}

// SelfCertify godoc
// @Summary Claim the certificate of a course
// @Tags certifications
// @Accept  json
// @Produce  json
// @Param   body body service.SelfCertifyRequest true "Course"
// @Success 200 {object} util.Response{data=model.Certification} "Already issued"
// @Success 201 {object} util.Response{data=model.Certification} "Created"
// @Failure 400 {object} util.Response "Validation failed"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/certifications/self [post]
func (c *LearningController) SelfCertify(ctx *gin.Context) {
	var req service.SelfCertifyRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	user := middleware.CurrentUser(ctx)
	cert, created, err := c.CertificationService.SelfCertify(ctx.Request.Context(), user.ID, req.CourseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	createdOrOK(ctx, created, cert)
}
