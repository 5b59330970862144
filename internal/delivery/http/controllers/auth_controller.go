package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"chainpass/internal/delivery/http/helpers"
	"chainpass/internal/domain"
)

const devTokenExpiry = 24 * time.Hour

// AuthController mints development tokens. Real deployments authenticate
// callers out of band (the ledger only ever sees a verified identity), so the
// router wires this controller in non-production environments only.
type AuthController struct {
	Logger *slog.Logger
	Issuer domain.TokenIssuer
}

func NewAuthController(logger *slog.Logger, issuer domain.TokenIssuer) *AuthController {
	return &AuthController{
		Logger: logger,
		Issuer: issuer,
	}
}

// TokenRequest is the request body for POST /auth/token.
type TokenRequest struct {
	Subject string `json:"subject"`
}

// Validate implements helpers.Validator.
func (r *TokenRequest) Validate() []string {
	r.Subject = strings.TrimSpace(r.Subject)
	if r.Subject == "" {
		return []string{"subject is required"}
	}
	return nil
}

// TokenResponse is the success payload for POST /auth/token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Token godoc
// @Summary Mint a development bearer token
// @Description Issues a JWT whose subject is the given identity. Available outside production only.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body controllers.TokenRequest true "Caller identity"
// @Success 201 {object} helpers.APIResponse "data: controllers.TokenResponse"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /auth/token [post]
func (c *AuthController) Token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Issuer.Issue(req.Subject, devTokenExpiry)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, TokenResponse{Token: token})
}
