package leaderboard

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/starboard/internal/dto"
	"github.com/GlebRadaev/starboard/internal/service/leaderboardservice"
	"github.com/GlebRadaev/starboard/pkg/utils"
)

type Service interface {
	Leaderboard(ctx context.Context) (*leaderboardservice.Snapshot, error)
}

type LeaderboardHandler struct {
	leaderboardService Service
}

func New(leaderboardService Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// GetLeaderboard godoc
//
//	@Summary		Get leaderboard
//	@Description	Top users by current balance. Served from a periodically refreshed snapshot.
//	@Tags			Leaderboard
//	@Produce		json
//	@Success		200	{object}	dto.LeaderboardResponseDTO
//	@Failure		429	{object}	utils.Response	"Too many requests"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.leaderboardService.Leaderboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load leaderboard")
		return
	}

	data := make([]dto.LeaderboardEntryDTO, len(snapshot.Entries))
	for i, e := range snapshot.Entries {
		data[i] = dto.LeaderboardEntryDTO{
			TgID:           e.TgID,
			CurrentBalance: e.CurrentBalance,
			TotalDeposited: e.TotalDeposited,
			Withdrawable:   e.Withdrawable,
		}
		if e.User != nil {
			data[i].User = &dto.ProfileDTO{
				TgID:      e.User.TgID,
				Username:  e.User.Username,
				FirstName: e.User.FirstName,
				LastName:  e.User.LastName,
				PhotoURL:  e.User.PhotoURL,
			}
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LeaderboardResponseDTO{
		OK:        true,
		Data:      data,
		UpdatedAt: snapshot.UpdatedAt,
	})
}
