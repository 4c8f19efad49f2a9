package handler

import (
	"net/http"

	"github.com/osse101/kingdomroll/internal/user"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

type UserProfileResponse struct {
	DiscordID   string `json:"discord_id"`
	Username    string `json:"username"`
	Wallet      string `json:"wallet,omitempty"`
	PityStreak  int    `json:"pity_streak"`
	PityPending bool   `json:"pity_pending"`
}

// HandleGetUser looks up a user profile by Discord ID. The wallet address is
// masked; full addresses only leave the system through the export endpoints.
func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	discordID, ok := GetQueryParam(r, w, "discord_id")
	if !ok {
		return
	}

	u, err := h.service.Profile(r.Context(), discordID)
	if err != nil {
		respondServiceError(w, r, "Get user", err)
		return
	}

	respondJSON(w, http.StatusOK, UserProfileResponse{
		DiscordID:   u.DiscordID,
		Username:    u.Username,
		Wallet:      user.MaskWallet(u.Wallet),
		PityStreak:  u.Pity.Streak,
		PityPending: u.Pity.Qualified,
	})
}

type BindWalletRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Wallet    string `json:"wallet" validate:"required,wallet"`
}

type BindWalletResponse struct {
	Message string `json:"message"`
	Wallet  string `json:"wallet"`
}

// HandleBindWallet stores a wallet address for a user.
func (h *UserHandler) HandleBindWallet(w http.ResponseWriter, r *http.Request) {
	var req BindWalletRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Bind wallet"); err != nil {
		return
	}

	u, err := h.service.BindWallet(r.Context(), req.DiscordID, req.Username, req.Wallet)
	if err != nil {
		respondServiceError(w, r, "Bind wallet", err)
		return
	}

	respondJSON(w, http.StatusOK, BindWalletResponse{
		Message: MsgWalletBound,
		Wallet:  user.MaskWallet(u.Wallet),
	})
}
