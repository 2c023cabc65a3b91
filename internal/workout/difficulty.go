package workout

import (
	"encoding/json"
	"fmt"
)

// DifficultyType classifies how an exercise's effort is measured. Can be one of:
//   - weight
//   - weighted_bodyweight
//   - bodyweight
//   - assisted_bodyweight
//   - time
type DifficultyType string

const (
	DifficultyTypeWeight             DifficultyType = "weight"
	DifficultyTypeWeightedBodyweight DifficultyType = "weighted_bodyweight"
	DifficultyTypeBodyweight         DifficultyType = "bodyweight"
	DifficultyTypeAssistedBodyweight DifficultyType = "assisted_bodyweight"
	DifficultyTypeTime               DifficultyType = "time"
)

func (dt DifficultyType) String() string {
	return string(dt)
}

func (dt DifficultyType) IsValid() bool {
	switch dt {
	case DifficultyTypeWeight,
		DifficultyTypeWeightedBodyweight,
		DifficultyTypeBodyweight,
		DifficultyTypeAssistedBodyweight,
		DifficultyTypeTime:
		return true
	default:
		return false
	}
}

// Difficulty is the recorded performance of a set. The set of implementations is closed,
// read sites switch over the concrete types below.
type Difficulty interface {
	Type() DifficultyType
	isDifficulty()
}

type WeightDifficulty struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

type WeightedBodyweightDifficulty struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

type BodyweightDifficulty struct {
	Reps int `json:"reps"`
}

type AssistedBodyweightDifficulty struct {
	AssistanceWeight float64 `json:"assistanceWeight"`
	Reps             int     `json:"reps"`
}

type TimeDifficulty struct {
	// Duration in seconds
	Duration int `json:"duration"`
}

func (WeightDifficulty) Type() DifficultyType { return DifficultyTypeWeight }
func (WeightedBodyweightDifficulty) Type() DifficultyType {
	return DifficultyTypeWeightedBodyweight
}
func (BodyweightDifficulty) Type() DifficultyType { return DifficultyTypeBodyweight }
func (AssistedBodyweightDifficulty) Type() DifficultyType {
	return DifficultyTypeAssistedBodyweight
}
func (TimeDifficulty) Type() DifficultyType { return DifficultyTypeTime }

func (WeightDifficulty) isDifficulty()             {}
func (WeightedBodyweightDifficulty) isDifficulty() {}
func (BodyweightDifficulty) isDifficulty()         {}
func (AssistedBodyweightDifficulty) isDifficulty() {}
func (TimeDifficulty) isDifficulty()               {}

// NewDifficulty returns the zero value of the variant that belongs to dt.
func NewDifficulty(dt DifficultyType) (Difficulty, error) {
	switch dt {
	case DifficultyTypeWeight:
		return WeightDifficulty{}, nil
	case DifficultyTypeWeightedBodyweight:
		return WeightedBodyweightDifficulty{}, nil
	case DifficultyTypeBodyweight:
		return BodyweightDifficulty{}, nil
	case DifficultyTypeAssistedBodyweight:
		return AssistedBodyweightDifficulty{}, nil
	case DifficultyTypeTime:
		return TimeDifficulty{}, nil
	default:
		return nil, fmt.Errorf("unknown difficulty type: %s", dt)
	}
}

func MarshalDifficulty(d Difficulty) ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	switch v := d.(type) {
	case WeightDifficulty:
		return json.Marshal(struct {
			Type DifficultyType `json:"type"`
			WeightDifficulty
		}{v.Type(), v})
	case WeightedBodyweightDifficulty:
		return json.Marshal(struct {
			Type DifficultyType `json:"type"`
			WeightedBodyweightDifficulty
		}{v.Type(), v})
	case BodyweightDifficulty:
		return json.Marshal(struct {
			Type DifficultyType `json:"type"`
			BodyweightDifficulty
		}{v.Type(), v})
	case AssistedBodyweightDifficulty:
		return json.Marshal(struct {
			Type DifficultyType `json:"type"`
			AssistedBodyweightDifficulty
		}{v.Type(), v})
	case TimeDifficulty:
		return json.Marshal(struct {
			Type DifficultyType `json:"type"`
			TimeDifficulty
		}{v.Type(), v})
	default:
		return nil, fmt.Errorf("unsupported difficulty %T", d)
	}
}

func UnmarshalDifficulty(data []byte) (Difficulty, error) {
	if string(data) == "null" || len(data) == 0 {
		return nil, nil
	}

	var tagged struct {
		Type DifficultyType `json:"type"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return nil, fmt.Errorf("unmarshal difficulty type: %w", err)
	}

	switch tagged.Type {
	case DifficultyTypeWeight:
		var d WeightDifficulty
		err := json.Unmarshal(data, &d)
		return d, err
	case DifficultyTypeWeightedBodyweight:
		var d WeightedBodyweightDifficulty
		err := json.Unmarshal(data, &d)
		return d, err
	case DifficultyTypeBodyweight:
		var d BodyweightDifficulty
		err := json.Unmarshal(data, &d)
		return d, err
	case DifficultyTypeAssistedBodyweight:
		var d AssistedBodyweightDifficulty
		err := json.Unmarshal(data, &d)
		return d, err
	case DifficultyTypeTime:
		var d TimeDifficulty
		err := json.Unmarshal(data, &d)
		return d, err
	default:
		return nil, fmt.Errorf("unknown difficulty type: %q", tagged.Type)
	}
}

type setJSON struct {
	setAlias
	Difficulty json.RawMessage `json:"difficulty"`
}

// setAlias drops Set's methods so encoding/json doesn't recurse.
type setAlias Set

func (s Set) MarshalJSON() ([]byte, error) {
	difficulty, err := MarshalDifficulty(s.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("set %s: %w", s.ID, err)
	}
	return json.Marshal(setJSON{
		setAlias:   setAlias(s),
		Difficulty: difficulty,
	})
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var raw setJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	difficulty, err := UnmarshalDifficulty(raw.Difficulty)
	if err != nil {
		return fmt.Errorf("set %s: %w", raw.ID, err)
	}

	*s = Set(raw.setAlias)
	s.Difficulty = difficulty
	return nil
}
