package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/masalamart/masalamart-api/models"
	"github.com/masalamart/masalamart-api/services"
	"github.com/masalamart/masalamart-api/utils"
)

// AuthController handles registration, login, the OTP handshake and logout.
type AuthController struct {
	Auth *services.AuthService
}

// NewAuthController creates an AuthController.
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Register handles POST /api/auth/register.
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string         `json:"name"`
		Email    string         `json:"email"`
		Password string         `json:"password"`
		Address  models.Address `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	user, err := ac.Auth.Register(r.Context(), body.Name, body.Email, body.Password, body.Address)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, "account created", user)
}

// Login handles POST /api/auth/login. The token is returned in the body and
// set as the session cookie.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	user, err := ac.Auth.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	ac.issueSession(w, user)
}

// RequestOTP handles POST /api/auth/otp/request.
func (ac *AuthController) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := ac.Auth.RequestOTP(r.Context(), body.Email); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, "one-time code sent", nil)
}

// VerifyOTP handles POST /api/auth/otp/verify. A code verifies at most once.
func (ac *AuthController) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	user, err := ac.Auth.VerifyOTP(r.Context(), body.Email, body.Code)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	ac.issueSession(w, user)
}

// Logout handles POST and GET /api/auth/logout, clearing the session cookie
// with an immediate expiry. Always succeeds.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	utils.ClearAuthCookie(w)
	utils.WriteJSON(w, http.StatusOK, "logged out", nil)
}

func (ac *AuthController) issueSession(w http.ResponseWriter, user *models.User) {
	token, err := utils.GenerateJWT(user.UserID, user.Email, user.Role)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.SetAuthCookie(w, token)
	utils.WriteJSON(w, http.StatusOK, "login successful", map[string]interface{}{
		"token": token,
		"user":  user,
	})
}
