package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type recordUseCase interface {
	GetRecord(ctx context.Context, playerID string) (*entity.Record, error)
}

type recordResponse struct {
	PlayerID string `json:"player_id"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
	Played   int    `json:"played"`
}

type recordHandler struct {
	logger  *slog.Logger
	records recordUseCase
}

func newRecordHandler(logger *slog.Logger, records recordUseCase) *recordHandler {
	return &recordHandler{
		logger:  logger,
		records: records,
	}
}

// GetRecord answers GET /records/{player} with the player's wins, losses and draws.
func (that *recordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetRecord")

	playerID := r.PathValue("player")
	if playerID == "" {
		http.Error(w, "player is required", http.StatusBadRequest)
		return
	}

	record, err := that.records.GetRecord(r.Context(), playerID)
	if err != nil {
		log.Error("failed to get record", "player", playerID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	err = json.NewEncoder(w).Encode(recordResponse{
		PlayerID: record.PlayerID,
		Wins:     record.Wins,
		Losses:   record.Losses,
		Draws:    record.Draws,
		Played:   record.Played(),
	})
	if err != nil {
		log.Error("failed to write record", "player", playerID, "error", err)
	}
}
