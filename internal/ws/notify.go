package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"sponsor-scout/internal/domain/scoring"
)

type ScoreCompletedEvent struct {
	Type           string `json:"type"`
	PostingID      string `json:"posting_id"`
	OverallScore   int    `json:"overall_score"`
	Action         string `json:"action"`
	Recommendation string `json:"recommendation"`
	Timestamp      string `json:"timestamp"`
}

// Notifier implements the usecase ScoreNotifier over the hub.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) ScoreCompleted(userID uuid.UUID, postingID uuid.UUID, result scoring.MultiScoreResult) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ScoreCompletedEvent{
		Type:           "score_completed",
		PostingID:      postingID.String(),
		OverallScore:   result.OverallScore,
		Action:         result.Recommendation.Action,
		Recommendation: result.Recommendation.Reason,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Send(userID, b)
}
