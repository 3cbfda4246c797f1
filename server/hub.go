package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"dyno/model"
	"dyno/simulator"
)

// Hub owns one client connection: requests come in on msg, replies go out on
// out. One goroutine dispatches, one writes, so simulation work never blocks
// the read loop.
type Hub struct {
	sim  *simulator.Simulator
	conn *websocket.Conn

	msg chan model.Msg
	out chan model.Msg
}

func NewHub(sim *simulator.Simulator) *Hub {
	return &Hub{
		sim: sim,
		msg: make(chan model.Msg, 10),
		out: make(chan model.Msg, 10),
	}
}

func (h *Hub) close() {
	close(h.msg)
}

func (h *Hub) handleRequest() {
	for msg := range h.msg {
		reply, ok := h.dispatch(msg)
		if ok {
			h.out <- reply
		}
	}
	close(h.out)
}

func (h *Hub) handleResponse() {
	for reply := range h.out {
		if err := h.conn.WriteJSON(&reply); err != nil {
			log.Error("write: ", err)
		}
	}
}

// dispatch handles one request message and builds the reply. Unknown types
// are logged and produce no reply; the connection stays up.
func (h *Hub) dispatch(msg model.Msg) (model.Msg, bool) {
	switch msg.Type {
	case "config":
		var ec model.EngineConfig
		if err := json.Unmarshal([]byte(msg.Content), &ec); err != nil {
			return errMsg(err), true
		}
		if err := h.sim.Validate(&ec); err != nil {
			return errMsg(err), true
		}
		content, _ := json.Marshal(map[string]float64{
			"displacement_liters": simulator.DisplacementLiters(ec.Cylinders, ec.BoreMm, ec.StrokeMm),
		})
		return model.Msg{Type: "configOk", Content: string(content)}, true
	case "simulate":
		var ec model.EngineConfig
		if err := json.Unmarshal([]byte(msg.Content), &ec); err != nil {
			return errMsg(err), true
		}
		result, err := h.sim.Run(&ec)
		if err != nil {
			return errMsg(err), true
		}
		log.WithFields(log.Fields{
			"displacement_l": result.DisplacementLiters,
			"peak_hp":        result.Summary.PeakHp,
			"peak_hp_rpm":    result.Summary.PeakHpRpm,
		}).Info("simulation complete")
		content, err := json.Marshal(result)
		if err != nil {
			return errMsg(err), true
		}
		return model.Msg{Type: "result", Content: string(content)}, true
	case "stop":
		return model.Msg{Type: "stopped", Content: "stopped"}, true
	default:
		log.Warn("no such type: ", msg.Type)
		return model.Msg{}, false
	}
}

func errMsg(err error) model.Msg {
	return model.Msg{Type: "error", Content: err.Error()}
}
