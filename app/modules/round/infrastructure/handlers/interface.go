package roundhandlers

import (
	"net/http"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
)

// Handlers serves the round endpoints.
type Handlers interface {
	HandleRound(round int) http.HandlerFunc
	HandleOverallChart(spec rounddomain.RoundSpec) http.HandlerFunc
}
