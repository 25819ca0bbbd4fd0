package instance

import (
	"encoding/json"
	"fmt"

	"github.com/hailam/tiltmp/internal/board"
)

// Solution is the result of one solver run over one Instance, in the
// shape every `tiltmp` invocation writes to its output file regardless of
// which solver produced it.
type Solution struct {
	ControlSequence []board.Direction
	TimeNeeded      float64 // seconds
	TimedOut        bool
	NumberOfNodes   int
	MaxMemUsageKB   int64
	Instance        *Instance
	RuntimeProfile  map[string]float64 // phase name -> seconds, optional
}

type solutionJSON struct {
	ControlSequence []string           `json:"control_sequence"`
	TimeNeeded      float64            `json:"time_needed"`
	TimedOut        bool               `json:"timed_out"`
	NumberOfNodes   int                `json:"number_of_nodes"`
	MaxMemUsageKB   int64              `json:"max_mem_usage"`
	Instance        instanceJSON       `json:"instance"`
	RuntimeProfile  map[string]float64 `json:"runtime_profile,omitempty"`
}

// EncodeSolution serializes sol to its JSON wire format.
func EncodeSolution(sol *Solution) ([]byte, error) {
	ij, err := instanceToJSON(sol.Instance)
	if err != nil {
		return nil, err
	}
	sj := solutionJSON{
		TimeNeeded:     sol.TimeNeeded,
		TimedOut:       sol.TimedOut,
		NumberOfNodes:  sol.NumberOfNodes,
		MaxMemUsageKB:  sol.MaxMemUsageKB,
		Instance:       ij,
		RuntimeProfile: sol.RuntimeProfile,
	}
	for _, d := range sol.ControlSequence {
		sj.ControlSequence = append(sj.ControlSequence, d.String())
	}
	return json.MarshalIndent(sj, "", "  ")
}

// DecodeSolution parses the JSON wire format into a Solution.
func DecodeSolution(data []byte) (*Solution, error) {
	var sj solutionJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return nil, fmt.Errorf("instance: malformed solution: %w", err)
	}
	inst, err := instanceFromJSON(sj.Instance)
	if err != nil {
		return nil, err
	}
	sol := &Solution{
		TimeNeeded:     sj.TimeNeeded,
		TimedOut:       sj.TimedOut,
		NumberOfNodes:  sj.NumberOfNodes,
		MaxMemUsageKB:  sj.MaxMemUsageKB,
		Instance:       inst,
		RuntimeProfile: sj.RuntimeProfile,
	}
	for _, s := range sj.ControlSequence {
		d, err := directionFromString(s)
		if err != nil {
			return nil, fmt.Errorf("instance: malformed solution: %w", err)
		}
		sol.ControlSequence = append(sol.ControlSequence, d)
	}
	return sol, nil
}

func directionFromString(s string) (board.Direction, error) {
	for _, d := range board.Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// instanceToJSON/instanceFromJSON factor the board<->wire conversion out
// of Encode/Decode so Solution can embed it without round-tripping
// through bytes.
func instanceToJSON(inst *Instance) (instanceJSON, error) {
	data, err := Encode(inst)
	if err != nil {
		return instanceJSON{}, err
	}
	var ij instanceJSON
	if err := json.Unmarshal(data, &ij); err != nil {
		return instanceJSON{}, err
	}
	return ij, nil
}

func instanceFromJSON(ij instanceJSON) (*Instance, error) {
	data, err := json.Marshal(ij)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
