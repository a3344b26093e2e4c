package handler

import (
	"log/slog"

	deliverycontext "petstar/internal/delivery/context"
	"petstar/internal/delivery/http/response"
	"petstar/internal/domain/entity"
	domainerrors "petstar/internal/domain/errors"
	"petstar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for the feed and forum handlers.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{uc: uc, logger: logger}
}

type createPostRequest struct {
	PostPhoto string `json:"postPhoto" validate:"required"`
	PostText  string `json:"postText"`
}

type createCommentRequest struct {
	CommentPostText string `json:"commentPostText" validate:"required"`
}

type createTopicRequest struct {
	ForumTopicTittle string `json:"forumTopicTittle" validate:"required"`
	ForumTopicText   string `json:"forumTopicText" validate:"required"`
}

type createResponseRequest struct {
	TopicResponseText string `json:"topicResponseText" validate:"required"`
}

// --- Posts ---

// CreatePost handles POST /api/post.
func (h *ContentHandler) CreatePost(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewMissingFields("postPhoto is a required field")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewMissingFields("postPhoto is a required field")
	}

	if _, err := h.uc.CreatePost(c.Request().Context(), deliverycontext.GetUserEmail(c), usecase.CreatePostInput{
		PostPhoto: req.PostPhoto,
		PostText:  req.PostText,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "New post created")
}

// ListOwnPosts handles GET /api/singlePosts.
func (h *ContentHandler) ListOwnPosts(c echo.Context) error {
	output, err := h.uc.ListOwnPosts(c.Request().Context(), deliverycontext.GetUserEmail(c))
	if err != nil {
		return errors.WithStack(err)
	}

	posts := make([]response.Body, 0, len(output.Posts))
	for _, post := range output.Posts {
		posts = append(posts, response.Body{
			"id":        post.ID,
			"postPhoto": post.PostPhoto,
			"postText":  post.PostText,
		})
	}

	return response.OK(c, "ok", response.Body{
		"author": response.Body{
			"email":   output.Author.Email,
			"petStar": output.Author.PetStar,
		},
		"posts": posts,
	})
}

// ListAllPosts handles GET /api/allPosts.
func (h *ContentHandler) ListAllPosts(c echo.Context) error {
	posts, err := h.uc.ListAllPosts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]response.Body, 0, len(posts))
	for _, post := range posts {
		views = append(views, response.Body{
			"id":        post.ID,
			"postPhoto": post.PostPhoto,
			"postText":  post.PostText,
			"author":    authorView(post.Author, true),
		})
	}

	return response.OK(c, "ok", response.Body{"posts": views})
}

// AddComment handles POST /api/commentPost/:postId.
func (h *ContentHandler) AddComment(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		return domainerrors.ErrPostNotFound
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewMissingFields("commentPostText is a required field")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewMissingFields("commentPostText is a required field")
	}

	if _, err := h.uc.AddComment(c.Request().Context(), deliverycontext.GetUserEmail(c), postID, req.CommentPostText); err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "New commentPostText created")
}

// ListComments handles GET /api/commentPost/:postId.
func (h *ContentHandler) ListComments(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		return domainerrors.ErrPostNotFound
	}

	output, err := h.uc.ListComments(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	comments := make([]response.Body, 0, len(output.Comments))
	for _, comment := range output.Comments {
		comments = append(comments, response.Body{
			"id":          comment.ID,
			"commentPost": comment.Text,
			"author":      authorView(comment.Author, false),
		})
	}

	return response.OK(c, "ok", response.Body{
		"post": response.Body{
			"id":        output.Post.ID,
			"postPhoto": output.Post.PostPhoto,
			"postText":  output.Post.PostText,
			"author":    authorView(output.Post.Author, false),
		},
		"commentPost": comments,
	})
}

// --- Forum ---

// CreateTopic handles POST /api/forumTopic.
func (h *ContentHandler) CreateTopic(c echo.Context) error {
	var req createTopicRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewMissingFields("forumTopicTittle and forumTopicText fields are required")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewMissingFields("forumTopicTittle and forumTopicText fields are required")
	}

	if _, err := h.uc.CreateTopic(c.Request().Context(), deliverycontext.GetUserEmail(c), usecase.CreateTopicInput{
		Title: req.ForumTopicTittle,
		Text:  req.ForumTopicText,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "New forumTopic created")
}

// ListOwnTopics handles GET /api/singleForumTopics.
func (h *ContentHandler) ListOwnTopics(c echo.Context) error {
	output, err := h.uc.ListOwnTopics(c.Request().Context(), deliverycontext.GetUserEmail(c))
	if err != nil {
		return errors.WithStack(err)
	}

	topics := make([]response.Body, 0, len(output.Topics))
	for _, topic := range output.Topics {
		topics = append(topics, response.Body{
			"id":               topic.ID,
			"forumTopicTittle": topic.Title,
			"forumTopicText":   topic.Text,
		})
	}

	return response.OK(c, "ok", response.Body{
		"author": response.Body{
			"email":   output.Author.Email,
			"petStar": output.Author.PetStar,
		},
		"forumTopics": topics,
	})
}

// ListAllTopics handles GET /api/allForumTopics.
func (h *ContentHandler) ListAllTopics(c echo.Context) error {
	topics, err := h.uc.ListAllTopics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]response.Body, 0, len(topics))
	for _, topic := range topics {
		views = append(views, response.Body{
			"id":               topic.ID,
			"forumTopicTittle": topic.Title,
			"forumTopicText":   topic.Text,
			"author":           authorView(topic.Author, true),
		})
	}

	return response.OK(c, "ok", response.Body{"forumTopics": views})
}

// AddResponse handles POST /api/topicResponse/:topicId.
func (h *ContentHandler) AddResponse(c echo.Context) error {
	topicID, err := uuid.Parse(c.Param("topicId"))
	if err != nil {
		return domainerrors.ErrTopicNotFound
	}

	var req createResponseRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewMissingFields("topicResponseText is a required field")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewMissingFields("topicResponseText is a required field")
	}

	if _, err := h.uc.AddResponse(c.Request().Context(), deliverycontext.GetUserEmail(c), topicID, req.TopicResponseText); err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "New topicResponseText created")
}

// ListResponses handles GET /api/topicResponse/:topicId.
func (h *ContentHandler) ListResponses(c echo.Context) error {
	topicID, err := uuid.Parse(c.Param("topicId"))
	if err != nil {
		return domainerrors.ErrTopicNotFound
	}

	output, err := h.uc.ListResponses(c.Request().Context(), topicID)
	if err != nil {
		return errors.WithStack(err)
	}

	responses := make([]response.Body, 0, len(output.Responses))
	for _, res := range output.Responses {
		responses = append(responses, response.Body{
			"id":                res.ID,
			"topicResponseText": res.Text,
			"author":            authorView(res.Author, false),
		})
	}

	return response.OK(c, "ok", response.Body{
		"forumTopic": response.Body{
			"id":               output.Topic.ID,
			"forumTopicTittle": output.Topic.Title,
			"forumTopicText":   output.Topic.Text,
			"author":           authorView(output.Topic.Author, false),
		},
		"topicResponse": responses,
	})
}

// authorView renders the nested author object. The photo only appears on the
// board-wide listings.
func authorView(author *entity.User, withPhoto bool) response.Body {
	if author == nil {
		return nil
	}

	view := response.Body{
		"petStar": author.PetStar,
		"email":   author.Email,
	}
	if withPhoto {
		view["userPhoto"] = author.UserPhoto
	}

	return view
}
