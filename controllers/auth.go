package controllers

import (
	"log"
	"net/http"
	"strings"

	"therapydesk-backend/cosmic"
	"therapydesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Store *cosmic.Client
}

func NewAuthController(store *cosmic.Client) *AuthController {
	return &AuthController{Store: store}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a dashboard user. Users live in the content store like
// every other record type.
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := ac.Store.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("Failed to look up user %s: %v", email, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Unable to load users")
		return
	}
	if existing != nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user, err := ac.Store.CreateUser(c.Request.Context(), input.Name, map[string]interface{}{
		"name":          input.Name,
		"email":         email,
		"phone":         input.Phone,
		"password_hash": hashed,
		"role":          "admin",
		"active":        true,
	})
	if err != nil {
		log.Printf("Failed to create user %s: %v", email, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := utils.GenerateToken(user.ID, email, user.Metadata.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	expiryHours := 24
	maxAge := expiryHours * 3600

	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Metadata.Name,
			"email": user.Metadata.Email,
			"role":  user.Metadata.Role,
		},
	})
}

// Login checks credentials against the stored user record
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := ac.Store.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("Failed to look up user %s: %v", email, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Unable to load users")
		return
	}
	if user == nil || !user.Metadata.Active {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Metadata.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, email, user.Metadata.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	expiryHours := 24
	maxAge := expiryHours * 3600

	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Metadata.Name,
			"email": user.Metadata.Email,
			"role":  user.Metadata.Role,
		},
	})
}

// Me returns the authenticated user's profile
func (ac *AuthController) Me(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Email not found in context")
		return
	}

	user, err := ac.Store.GetUserByEmail(c.Request.Context(), email.(string))
	if err != nil {
		log.Printf("Failed to look up user %v: %v", email, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Unable to load users")
		return
	}
	if user == nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Metadata.Name,
		"email": user.Metadata.Email,
		"phone": user.Metadata.Phone,
		"role":  user.Metadata.Role,
	})
}
