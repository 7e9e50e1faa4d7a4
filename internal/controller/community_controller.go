package controller

import (
	"educonexa_backend/internal/middleware"
	"educonexa_backend/internal/service"
	"educonexa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommunityController struct {
	CommunityService *service.CommunityService
	EventService     *service.EventService
}

func NewCommunityController(communityService *service.CommunityService, eventService *service.EventService) *CommunityController {
	return &CommunityController{
		CommunityService: communityService,
		EventService:     eventService,
	}
}

func viewerID(ctx *gin.Context) string {
	if user := middleware.CurrentUser(ctx); user != nil {
		return user.ID
	}
	return ""
}

// ListPosts godoc
// @Summary Community feed
// @Description Newest first. likedByCurrent is false for anonymous viewers
// @Tags community
// @Produce  json
// @Param   userId query string false "Only posts by this author"
// @Success 200 {object} util.Response{data=[]service.PostView} "Success"
// @Router /api/posts [get]
func (c *CommunityController) ListPosts(ctx *gin.Context) {
	posts, err := c.CommunityService.ListPosts(ctx.Request.Context(), viewerID(ctx), ctx.Query("userId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, posts)
}

// CreatePost godoc
// @Summary Publish a post
// @Description A post with eventDate is listed as an event
// @Tags community
// @Accept  json
// @Produce  json
// @Param   body body service.CreatePostRequest true "Post"
// @Success 201 {object} util.Response{data=service.PostView} "Created"
// @Failure 400 {object} util.Response "Validation failed"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/posts [post]
func (c *CommunityController) CreatePost(ctx *gin.Context) {
	var req service.CreatePostRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	user := middleware.CurrentUser(ctx)
	post, err := c.CommunityService.CreatePost(ctx.Request.Context(), user.ID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	view, err := c.CommunityService.GetPost(ctx.Request.Context(), user.ID, post.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, view)
}

// DeletePost godoc
// @Summary Delete a post
// @Description Author or admin. Comments and likes go with it
// @Tags community
// @Produce  json
// @Param   id path string true "Post ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Forbidden"
// @Failure 404 {object} util.Response "Post not found"
// @Router /api/posts/{id} [delete]
func (c *CommunityController) DeletePost(ctx *gin.Context) {
	if err := c.CommunityService.DeletePost(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"ok": true})
}

// LikePost godoc
// @Summary Like a post
// @Tags community
// @Produce  json
// @Param   id path string true "Post ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Post not found"
// @Router /api/posts/{id}/like [post]
func (c *CommunityController) LikePost(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if err := c.CommunityService.Like(ctx.Request.Context(), user.ID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"liked": true})
}

// UnlikePost godoc
// @Summary Remove a like
// @Tags community
// @Produce  json
// @Param   id path string true "Post ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/posts/{id}/like [delete]
func (c *CommunityController) UnlikePost(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if err := c.CommunityService.Unlike(ctx.Request.Context(), user.ID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"liked": false})
}

// SharePost godoc
// @Summary Count a share
// @Tags community
// @Produce  json
// @Param   id path string true "Post ID"
// @Success 200 {object} util.Response{data=service.ShareResult} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Post not found"
// @Router /api/posts/{id}/share [post]
func (c *CommunityController) SharePost(ctx *gin.Context) {
	result, err := c.CommunityService.Share(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// ListComments godoc
// @Summary Comments of a post
// @Tags community
// @Produce  json
// @Param   id path string true "Post ID"
// @Success 200 {object} util.Response{data=[]service.CommentView} "Success"
// @Failure 404 {object} util.Response "Post not found"
// @Router /api/posts/{id}/comments [get]
func (c *CommunityController) ListComments(ctx *gin.Context) {
	comments, err := c.CommunityService.ListComments(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, comments)
}

// CreateComment godoc
// @Summary Comment on a post
// @Tags community
// @Accept  json
// @Produce  json
// @Param   id path string true "Post ID"
// @Param   body body service.CreateCommentRequest true "Comment"
// @Success 201 {object} util.Response{data=service.CommentView} "Created"
// @Failure 400 {object} util.Response "Validation failed"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Post not found"
// @Router /api/posts/{id}/comments [post]
func (c *CommunityController) CreateComment(ctx *gin.Context) {
	var req service.CreateCommentRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	comment, err := c.CommunityService.CreateComment(ctx.Request.Context(), middleware.CurrentUser(ctx), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, comment)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Author or admin
// @Tags community
// @Produce  json
// @Param   id path string true "Comment ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Forbidden"
// @Failure 404 {object} util.Response "Comment not found"
// @Router /api/comments/{id} [delete]
func (c *CommunityController) DeleteComment(ctx *gin.Context) {
	if err := c.CommunityService.DeleteComment(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"ok": true})
}

// ListEvents godoc
// @Summary Upcoming events
// @Description Posts with an event date in [from, to], soonest first. from defaults to now
// @Tags events
// @Produce  json
// @Param   from query string false "RFC 3339 lower bound"
// @Param   to query string false "RFC 3339 upper bound"
// @Success 200 {object} util.Response{data=[]service.EventView} "Success"
// @Router /api/events [get]
func (c *CommunityController) ListEvents(ctx *gin.Context) {
	events, err := c.EventService.List(ctx.Request.Context(), ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, events)
}

// CreateEvent godoc
// @Summary Announce an event
// @Description Location defaults to Online
// @Tags events
// @Accept  json
// @Produce  json
// @Param   body body service.CreateEventRequest true "Event"
// @Success 201 {object} util.Response{data=service.EventView} "Created"
// @Failure 400 {object} util.Response "Validation failed"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/events [post]
func (c *CommunityController) CreateEvent(ctx *gin.Context) {
	var req service.CreateEventRequest
	if !util.BindJSON(ctx, &req) {
		return
	}

	event, err := c.EventService.Create(ctx.Request.Context(), middleware.CurrentUser(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, event)
}
