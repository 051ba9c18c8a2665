package models

type PlantType string

const (
	PlantFlower    PlantType = "flower"
	PlantVegetable PlantType = "vegetable"
	PlantTree      PlantType = "tree"
	PlantHerb      PlantType = "herb"
)

func (t PlantType) Valid() bool {
	switch t {
	case PlantFlower, PlantVegetable, PlantTree, PlantHerb:
		return true
	}
	return false
}

// Stage is a plant's growth level. It is derived from the plant's
// completion percentage and is never assigned on its own.
type Stage string

const (
	StageSeed      Stage = "seed"
	StageSprout    Stage = "sprout"
	StageGrowing   Stage = "growing"
	StageMature    Stage = "mature"
	StageFlowering Stage = "flowering"
)

// Stages returns every stage in declaration order.
func Stages() []Stage {
	return []Stage{StageSeed, StageSprout, StageGrowing, StageMature, StageFlowering}
}

func (s Stage) Valid() bool {
	for _, st := range Stages() {
		if s == st {
			return true
		}
	}
	return false
}

// Plant is a garden entity grown by completing its habits
type Plant struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Type      PlantType `json:"type" yaml:"type"`
	Stage     Stage     `json:"stage" yaml:"stage"`
	Completed float64   `json:"completed" yaml:"completed"` // percentage, 0-100
}

// Bloomed reports whether the plant has reached its full-size stage.
func (p Plant) Bloomed() bool {
	return p.Stage == StageMature || p.Stage == StageFlowering
}

// Icon is the glyph a view draws for the plant. Seeds have no sprout yet.
func (p Plant) Icon() string {
	switch {
	case p.Stage == StageSeed:
		return "·"
	case !p.Bloomed():
		return "🌱"
	}
	switch p.Type {
	case PlantFlower:
		return "🌸"
	case PlantVegetable:
		return "🍅"
	case PlantTree:
		return "🌲"
	case PlantHerb:
		return "🌿"
	}
	return "🌱"
}
