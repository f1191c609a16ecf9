package handler

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/cameronehrlich/deals-sub001/internal/engine"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// OfferStream serves the interactive offer slider: the client sends a
// fresh request each time the target return changes and receives the
// solved offer for every message. Invalid messages get an error frame
// and the stream continues.
func (h *Handler) OfferStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("Failed to upgrade offer stream: %v", err)
		return
	}
	defer conn.Close()

	for {
		var req analyzeRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warnf("Offer stream closed unexpectedly: %v", err)
			}
			return
		}

		if req.TargetCashOnCash == nil {
			if err := conn.WriteJSON(map[string]string{"error": "target_cash_on_cash is required"}); err != nil {
				return
			}
			continue
		}

		f := req.financing(h.rates.CurrentRate())
		a := req.assumptions(h.defaults)
		if err := engine.ValidateFinancing(f); err != nil {
			if werr := conn.WriteJSON(map[string]string{"error": err.Error()}); werr != nil {
				return
			}
			continue
		}
		if err := engine.ValidateAssumptions(a); err != nil {
			if werr := conn.WriteJSON(map[string]string{"error": err.Error()}); werr != nil {
				return
			}
			continue
		}

		sol, err := engine.SolveOfferPrice(float64(*req.TargetCashOnCash), f, a, req.OfferFloor.Float(0))
		if err != nil {
			if werr := conn.WriteJSON(map[string]string{"error": err.Error()}); werr != nil {
				return
			}
			continue
		}
		if err := conn.WriteJSON(sol); err != nil {
			return
		}
	}
}
