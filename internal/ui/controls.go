package ui

import (
	"math"
	"strconv"

	"islandgen/internal/core"
)

// controlState tracks one HUD row: the control description, its last known
// value and where its buttons sit on the panel.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	boolValue  bool
	hasValue   bool

	top       int
	minusRect rect
	plusRect  rect
}

type rect struct {
	minX, minY, maxX, maxY int
}

func (r rect) contains(x, y int) bool {
	return x >= r.minX && x < r.maxX && y >= r.minY && y < r.maxY
}

func (r rect) dx() int { return r.maxX - r.minX }
func (r rect) dy() int { return r.maxY - r.minY }

// setters bundles the optional parameter setters a view may implement.
type setters struct {
	ints   core.IntParameterSetter
	floats core.FloatParameterSetter
	bools  core.BoolParameterSetter
}

func settersFor(view any) setters {
	var s setters
	s.ints, _ = view.(core.IntParameterSetter)
	s.floats, _ = view.(core.FloatParameterSetter)
	s.bools, _ = view.(core.BoolParameterSetter)
	return s
}

func newControlStates(view any) []controlState {
	provider, ok := view.(core.ParameterControlsProvider)
	if !ok {
		return nil
	}
	controls := provider.ParameterControls()
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl, value: "--"}
	}
	return states
}

// refresh copies values for every control out of the snapshot.
func refresh(states []controlState, snapshot core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			state.clear()
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.clear()
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.clear()
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		case core.ParamTypeBool:
			parsed, err := strconv.ParseBool(param.Value)
			if err != nil {
				state.clear()
				continue
			}
			state.boolValue = parsed
			state.value = onOff(parsed)
			state.hasValue = true
		default:
			state.clear()
		}
	}
}

func (s *controlState) clear() {
	s.hasValue = false
	s.value = "--"
}

// intTarget returns the clamped next integer value in direction.
func (s *controlState) intTarget(direction int) int {
	step := int(math.Round(s.control.Step))
	if step <= 0 {
		step = 1
	}
	target := s.intValue + direction*step
	if s.control.HasMin {
		if min := int(math.Round(s.control.Min)); target < min {
			target = min
		}
	}
	if s.control.HasMax {
		if max := int(math.Round(s.control.Max)); target > max {
			target = max
		}
	}
	return target
}

// floatTarget returns the clamped next float value in direction.
func (s *controlState) floatTarget(direction int) float64 {
	step := s.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := s.floatValue + float64(direction)*step
	if s.control.HasMin && target < s.control.Min {
		target = s.control.Min
	}
	if s.control.HasMax && target > s.control.Max {
		target = s.control.Max
	}
	return target
}

// canAdjust reports whether a press in direction would change the value.
func (s *controlState) canAdjust(set setters, direction int) bool {
	if !s.hasValue || direction == 0 {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		return set.ints != nil && s.intTarget(direction) != s.intValue
	case core.ParamTypeFloat:
		return set.floats != nil && math.Abs(s.floatTarget(direction)-s.floatValue) >= 1e-9
	case core.ParamTypeBool:
		// minus turns off, plus turns on
		return set.bools != nil && s.boolValue != (direction > 0)
	default:
		return false
	}
}

// adjust applies one button press through the matching setter.
func (s *controlState) adjust(set setters, direction int) bool {
	if !s.canAdjust(set, direction) {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		target := s.intTarget(direction)
		if !set.ints.SetIntParameter(s.control.Key, target) {
			return false
		}
		s.intValue = target
		s.floatValue = float64(target)
		s.value = strconv.Itoa(target)
	case core.ParamTypeFloat:
		target := s.floatTarget(direction)
		if !set.floats.SetFloatParameter(s.control.Key, target) {
			return false
		}
		s.floatValue = target
		s.value = formatFloat(s.control, target)
	case core.ParamTypeBool:
		target := direction > 0
		if !set.bools.SetBoolParameter(s.control.Key, target) {
			return false
		}
		s.boolValue = target
		s.value = onOff(target)
	}
	return true
}

// layout places the -/+ buttons of every row against the right panel edge.
func layout(states []controlState, width int) {
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := rect{width - panelPadding - buttonSize, buttonY, width - panelPadding, buttonY + buttonSize}
		minus := rect{plus.minX - buttonGap - buttonSize, buttonY, plus.minX - buttonGap, buttonY + buttonSize}
		states[i].top = top
		states[i].minusRect = minus
		states[i].plusRect = plus
	}
}

// hit returns the control and direction under the panel-relative point.
func hit(states []controlState, x, y int) (*controlState, int) {
	for i := range states {
		state := &states[i]
		if !state.hasValue {
			continue
		}
		if state.minusRect.contains(x, y) {
			return state, -1
		}
		if state.plusRect.contains(x, y) {
			return state, 1
		}
	}
	return nil, 0
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	case step >= 10:
		precision = 0
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
