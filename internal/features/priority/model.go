// ================== internal/features/priority/model.go ==================
package priority

// Type is the priority value persisted on tasks and events
type Type string

const (
	Low    Type = "LOW"
	Medium Type = "MEDIUM"
	High   Type = "HIGH"
)

// Level describes a priority value with a human readable label
type Level interface {
	Label() string
}

type lowPriority struct{}

func (lowPriority) Label() string { return "Low Priority" }

type mediumPriority struct{}

func (mediumPriority) Label() string { return "Medium Priority" }

type highPriority struct{}

func (highPriority) Label() string { return "High Priority" }

var levels = map[Type]Level{
	Low:    lowPriority{},
	Medium: mediumPriority{},
	High:   highPriority{},
}

// Resolve maps a stored priority value to its level. Unknown or empty
// values fall back to Low.
func Resolve(t Type) Level {
	if level, ok := levels[t]; ok {
		return level
	}
	return levels[Low]
}

// Levels returns every level, lowest first.
func Levels() []Level {
	return []Level{levels[Low], levels[Medium], levels[High]}
}

// Valid reports whether t is one of the recognized priority values.
func (t Type) Valid() bool {
	_, ok := levels[t]
	return ok
}
