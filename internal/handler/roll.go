package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/kingdomroll/internal/roll"
)

type RollHandler struct {
	service roll.Service
}

func NewRollHandler(service roll.Service) *RollHandler {
	return &RollHandler{service: service}
}

type GrantBonusRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	Username  string `json:"username" validate:"required"`
	GrantedBy string `json:"granted_by" validate:"required"`
	Count     int    `json:"count" validate:"required,min=1,max=2"`
}

type GrantBonusResponse struct {
	Message string `json:"message"`
	Unspent int    `json:"unspent"`
}

// HandleGrantBonus awards bonus rolls to a user on behalf of a moderator.
func (h *RollHandler) HandleGrantBonus(w http.ResponseWriter, r *http.Request) {
	var req GrantBonusRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grant bonus"); err != nil {
		return
	}

	unspent, err := h.service.Grant(r.Context(), req.DiscordID, req.Username, req.GrantedBy, req.Count)
	if err != nil {
		respondServiceError(w, r, "Grant bonus", err)
		return
	}

	respondJSON(w, http.StatusCreated, GrantBonusResponse{
		Message: MsgBonusGranted,
		Unspent: unspent,
	})
}

type RollHistoryResponse struct {
	Rolls []RollEntry `json:"rolls"`
	Total int         `json:"total"`
}

type RollEntry struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Tier     *int   `json:"tier,omitempty"`
	IsPity   bool   `json:"is_pity"`
	RollDate string `json:"roll_date"`
	RolledAt string `json:"rolled_at"`
}

// HandleRollHistory returns a page of a user's completed rolls.
func (h *RollHandler) HandleRollHistory(w http.ResponseWriter, r *http.Request) {
	discordID, ok := GetQueryParam(r, w, "discord_id")
	if !ok {
		return
	}

	limit := parsePositiveInt(GetOptionalQueryParam(r, "limit", "10"), 10, 100)
	offset := parsePositiveInt(GetOptionalQueryParam(r, "offset", "0"), 0, 1<<20)

	rolls, total, err := h.service.History(r.Context(), discordID, limit, offset)
	if err != nil {
		respondServiceError(w, r, "Roll history", err)
		return
	}

	entries := make([]RollEntry, 0, len(rolls))
	for _, rl := range rolls {
		entries = append(entries, RollEntry{
			ID:       rl.ID,
			Source:   string(rl.Source),
			Tier:     rl.TierWon,
			IsPity:   rl.IsPity,
			RollDate: rl.RollDate.Format("2006-01-02"),
			RolledAt: rl.RolledAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	respondJSON(w, http.StatusOK, RollHistoryResponse{Rolls: entries, Total: total})
}

// HandleBonusBalance returns a user's unspent bonus roll count.
func (h *RollHandler) HandleBonusBalance(w http.ResponseWriter, r *http.Request) {
	discordID, ok := GetQueryParam(r, w, "discord_id")
	if !ok {
		return
	}

	unspent, err := h.service.BonusBalance(r.Context(), discordID)
	if err != nil {
		respondServiceError(w, r, "Bonus balance", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"unspent": unspent})
}

func parsePositiveInt(raw string, fallback, max int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	if n > max {
		return max
	}
	return n
}
