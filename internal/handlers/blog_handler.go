package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/adotapet/adota-pet-api/internal/httpresp"
	"github.com/adotapet/adota-pet-api/internal/middleware"
	ucblog "github.com/adotapet/adota-pet-api/internal/usecase/blog"
	"github.com/adotapet/adota-pet-api/internal/validators"
)

type BlogHandler struct {
	list       *ucblog.ListPosts
	create     *ucblog.AddNewPost
	update     *ucblog.UpdatePostDetails
	remove     *ucblog.DeletePost
	toggleLike *ucblog.TogglePostLike
	addComment *ucblog.AddComment
}

func NewBlogHandler(
	list *ucblog.ListPosts,
	create *ucblog.AddNewPost,
	update *ucblog.UpdatePostDetails,
	remove *ucblog.DeletePost,
	toggleLike *ucblog.TogglePostLike,
	addComment *ucblog.AddComment,
) *BlogHandler {
	return &BlogHandler{
		list:       list,
		create:     create,
		update:     update,
		remove:     remove,
		toggleLike: toggleLike,
		addComment: addComment,
	}
}

// --------- Requests ---------

type PostPageQuery struct {
	Page  int `form:"page" binding:"omitempty,gte=1"`
	Limit int `form:"limit" binding:"omitempty,gte=1,max=50"`
}

type CreatePostRequest struct {
	Content  string  `form:"content" binding:"required,min=1,max=280"`
	Location *string `form:"location" binding:"omitempty,max=100"`
}

type UpdatePostRequest struct {
	Content  *string `form:"content" binding:"omitempty,min=1,max=280"`
	Location *string `form:"location" binding:"omitempty,max=100"`
	PhotoURL *string `form:"photoUrl" binding:"omitempty,max=500"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

// --------- Handlers ---------

func (h *BlogHandler) List(c *gin.Context) {
	var q PostPageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.Fail(c, validators.FormatBinding(err))
		return
	}

	page, err := h.list.Execute(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.OK(c, "Posts retrieved.", httpresp.Page{
		Data:       page.Data,
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	})
}

func (h *BlogHandler) Create(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.Fail(c, validators.FormatBinding(err))
		return
	}

	post, err := h.create.Execute(c.Request.Context(), ucblog.AddNewPostInput{
		OwnerID:  identity.UserID,
		Content:  req.Content,
		Location: req.Location,
		Photo:    middleware.UploadFrom(c),
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.Created(c, "Post created.", post)
}

func (h *BlogHandler) Update(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	postID, err := validators.IDParam(c, "postId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.Fail(c, validators.FormatBinding(err))
		return
	}

	photo := middleware.UploadFrom(c)

	if err := validators.AtLeastOneField(
		req.Content != nil,
		req.Location != nil,
		req.PhotoURL != nil,
		photo != nil,
	); err != nil {
		middleware.Fail(c, err)
		return
	}

	post, err := h.update.Execute(c.Request.Context(), ucblog.UpdatePostDetailsInput{
		PostID:   postID,
		OwnerID:  identity.UserID,
		Content:  req.Content,
		Location: req.Location,
		PhotoURL: req.PhotoURL,
		Photo:    photo,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.OK(c, "Post updated.", post)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	postID, err := validators.IDParam(c, "postId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), postID, identity.UserID); err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.Message(c, "Post deleted.")
}

func (h *BlogHandler) ToggleLike(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	postID, err := validators.IDParam(c, "postId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	liked, err := h.toggleLike.Execute(c.Request.Context(), postID, identity.UserID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	if liked {
		httpresp.Message(c, "Post liked.")
		return
	}
	httpresp.Message(c, "Post unliked.")
}

func (h *BlogHandler) AddComment(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	postID, err := validators.IDParam(c, "postId")
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, validators.FormatBinding(err))
		return
	}

	comment, err := h.addComment.Execute(c.Request.Context(), ucblog.AddCommentInput{
		PostID:  postID,
		OwnerID: identity.UserID,
		Content: req.Content,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	httpresp.Created(c, "Comment added.", comment)
}
