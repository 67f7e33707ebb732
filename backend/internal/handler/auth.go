package handler

import (
	"net/http"

	"github.com/sembang-dev/sembang/shared/api"
	mw "github.com/sembang-dev/sembang/shared/middleware"
	"github.com/sembang-dev/sembang/shared/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(w, r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	added, err := h.auth.Register(r.Context(), payload)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedUserResponse{AddedUser: added})
}

// Login returns the access token in the body and also sets it as an
// HttpOnly cookie for browser clients.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(w, r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	accessToken, err := h.auth.Login(r.Context(), payload)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     mw.AccessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	utils.WriteSuccess(w, http.StatusCreated, api.LoginResponse{AccessToken: accessToken})
}
