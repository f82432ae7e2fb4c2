package minesweeper

import (
	"strconv"

	"github.com/rbrander/minesweeper/internal/core"
)

// Parameters reports the board configuration and live status for the HUD.
func (s *State) Parameters() core.ParameterSnapshot {
	size := s.grid.Size()
	st := s.Stats()
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("w", "Columns", size.W),
				intParam("h", "Rows", size.H),
				floatParam("mine_probability", "Mine chance", s.cfg.MineProbability),
				int64Param("seed", "Seed", s.seed),
				textParam("mode", "Sweep", s.cfg.Mode.String()),
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				textParam("phase", "Phase", s.phase.String()),
				intParam("mines", "Mines", st.Mines),
				intParam("flags", "Flags", st.Flags),
				intParam("hidden_safe", "Hidden safe", st.HiddenSafe),
				intParam("ticks", "Ticks", st.Ticks),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable values.
func (s *State) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "mine_probability",
			Label:  "Mine chance",
			Type:   core.ParamTypeFloat,
			Step:   0.01,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetFloatParameter updates a tunable. The mine probability takes effect on
// the next Reset.
func (s *State) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "mine_probability":
		s.cfg.MineProbability = clampProbability(value)
		return true
	default:
		return false
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
