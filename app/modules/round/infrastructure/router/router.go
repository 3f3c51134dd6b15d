package roundrouter

import (
	"fmt"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	roundhandlers "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts /round{N} for every round and /round{N}/overall.png
// for rounds that carry an overall table.
func RegisterRoutes(r chi.Router, rounds []rounddomain.RoundSpec, handlers roundhandlers.Handlers) {
	for _, spec := range rounds {
		r.Get(fmt.Sprintf("/round%d", spec.Number), handlers.HandleRound(spec.Number))
		if spec.OverallRounds > 0 {
			r.Get(fmt.Sprintf("/round%d/overall.png", spec.Number), handlers.HandleOverallChart(spec))
		}
	}
}
