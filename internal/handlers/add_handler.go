package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/services"
	"costmanager/internal/validator"
)

// AddHandler creates users and costs through the single /add endpoint.
type AddHandler struct {
	userService services.UserServicer
	costService services.CostServicer
	logs        services.LogServicer
	categories  []string
}

// NewAddHandler creates a new AddHandler.
func NewAddHandler(
	userService services.UserServicer,
	costService services.CostServicer,
	logs services.LogServicer,
	categories []string,
) *AddHandler {
	return &AddHandler{
		userService: userService,
		costService: costService,
		logs:        logs,
		categories:  categories,
	}
}

// CreateUserRequest represents the request payload for adding a user.
type CreateUserRequest struct {
	ID        *int64 `json:"id" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Birthday  string `json:"birthday" binding:"required" example:"1990-01-01"`
}

// UserResponse is the echo of a created user.
type UserResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Birthday  time.Time `json:"birthday"`
}

// CreateCostRequest represents the request payload for adding a cost.
// Sum accepts a JSON number or a numeric string.
type CreateCostRequest struct {
	Description string       `json:"description" binding:"required"`
	Category    string       `json:"category" binding:"required,cost_category"`
	UserID      *int64       `json:"userid" binding:"required"`
	Sum         *json.Number `json:"sum" binding:"required" swaggertype:"number"`
	CreatedAt   *string      `json:"createdAt" example:"2025-09-01T10:00:00Z"`
}

// CostResponse is the echo of a created cost.
type CostResponse struct {
	Description string    `json:"description"`
	Category    string    `json:"category"`
	UserID      int64     `json:"userid"`
	Sum         float64   `json:"sum"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Add creates a user or a cost depending on which keys the body carries.
// @Summary     Add a user or a cost
// @Description A body with first_name/last_name/birthday adds a user; one with description/category/userid/sum adds a cost
// @Tags        add
// @Accept      json
// @Produce     json
// @Param       request body CreateCostRequest true "Cost (or user) details"
// @Success     201 {object} CostResponse "Cost created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/add [post]
func (h *AddHandler) Add(c *gin.Context) {
	recordAccess(c, h.logs, nil)

	var body map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "body must be a JSON object"))
		return
	}

	switch validator.ClassifyPayload(body) {
	case validator.PayloadUser:
		h.addUser(c)
	case validator.PayloadCost:
		h.addCost(c)
	case validator.PayloadAmbiguous:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "payload must be either user or cost, not both"))
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "payload must be either a user or a cost"))
	}
}

func (h *AddHandler) addUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation,
			"id(Number), first_name(String), last_name(String), birthday(Date) are required"))
		return
	}

	birthday, err := parseFlexibleTime(req.Birthday)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "birthday must be a valid date"))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		ID:        *req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Birthday:  birthday,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Birthday:  user.Birthday,
	})
}

func (h *AddHandler) addCost(c *gin.Context) {
	var req CreateCostRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation,
			"description(String), category(String), userid(Number), sum(Number) are required"))
		return
	}

	sum, err := req.Sum.Float64()
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "sum must be a number"))
		return
	}

	var createdAt *time.Time
	if req.CreatedAt != nil {
		t, err := parseFlexibleTime(*req.CreatedAt)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "createdAt must be a valid date if provided"))
			return
		}
		createdAt = &t
	}

	cost, err := h.costService.CreateCost(c.Request.Context(), services.CreateCostInput{
		Description: req.Description,
		Category:    req.Category,
		UserID:      *req.UserID,
		Sum:         sum,
		CreatedAt:   createdAt,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CostResponse{
		Description: cost.Description,
		Category:    cost.Category,
		UserID:      cost.UserID,
		Sum:         cost.Sum,
		CreatedAt:   cost.CreatedAt,
	})
}

// MethodNotAllowed answers non-POST requests to /add with usage help.
func (h *AddHandler) MethodNotAllowed(c *gin.Context) {
	c.Header("Allow", http.MethodPost)
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"error":           apperrors.ErrMethodNotAllowed.Code,
		"status":          http.StatusMethodNotAllowed,
		"path":            c.Request.URL.Path,
		"method_received": c.Request.Method,
		"allowed":         []string{http.MethodPost},
		"message":         "This endpoint accepts POST only.",
		"how_to_fix":      "Send a POST request with Content-Type: application/json and a valid JSON body.",
		"payloads": gin.H{
			"add_user": gin.H{
				"required_fields": []string{"id:Number", "first_name:String", "last_name:String", "birthday:YYYY-MM-DD"},
			},
			"add_cost": gin.H{
				"required_fields": []string{"userid:Number", "description:String", "category:" + strings.Join(h.categories, "|"), "sum:Number"},
				"optional_fields": []string{"createdAt:ISO-8601 (must not be in the past)"},
			},
		},
		"see_also": gin.H{
			"report":       "GET /api/report?id=<userid>&year=<YYYY>&month=<1..12>",
			"user_details": "GET /api/users/<id>",
			"users":        "GET /api/users",
			"about":        "GET /api/about",
			"logs":         "GET /api/logs",
		},
	})
}
