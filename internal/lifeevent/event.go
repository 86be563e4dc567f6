// Package lifeevent is the closed catalog of life-event transforms. Each
// event is a pure function from one household to another: Validate runs
// before Apply, and Apply never touches the input household.
package lifeevent

import (
	"sort"

	json "github.com/goccy/go-json"

	"github.com/crossroads/crossroads-api/internal/household"
	"github.com/crossroads/crossroads-api/internal/validation"
)

// Event is one life-event variant. Implementations hold only their own
// parameters; all household state flows through Validate and Apply.
type Event interface {
	// Type is the stable wire identifier for the event variant.
	Type() string
	// Name is the human-readable event name.
	Name() string
	// Description summarizes what the event does for caller display.
	Description() string
	// Validate checks the event parameters against the household. It runs
	// before Apply and before any calculator call.
	Validate(h household.Household) error
	// Apply returns the household after the event. It must only be called
	// with a household that passed Validate.
	Apply(h household.Household) household.Household
}

// Event type identifiers.
const (
	TypeNewChild           = "new_child"
	TypePregnancy          = "pregnancy"
	TypeMove               = "move"
	TypeMarriage           = "marriage"
	TypeDivorce            = "divorce"
	TypeJobChange          = "job_change"
	TypeUnemployment       = "unemployment"
	TypeRetirement         = "retirement"
	TypeMedicareTransition = "medicare_transition"
	TypeChildAgingOut      = "child_aging_out"
	TypeLosingESI          = "losing_esi"
)

// defaulter lets an event fill unset parameters after decoding.
type defaulter interface {
	setDefaults()
}

// factories maps each event type to a constructor. The set is closed:
// adding a variant means adding an entry here and nothing else.
var factories = map[string]func() Event{
	TypeNewChild:           func() Event { return &NewChild{} },
	TypePregnancy:          func() Event { return &Pregnancy{} },
	TypeMove:               func() Event { return &Move{} },
	TypeMarriage:           func() Event { return &Marriage{} },
	TypeDivorce:            func() Event { return &Divorce{} },
	TypeJobChange:          func() Event { return &JobChange{} },
	TypeUnemployment:       func() Event { return &Unemployment{} },
	TypeRetirement:         func() Event { return &Retirement{} },
	TypeMedicareTransition: func() Event { return &MedicareTransition{} },
	TypeChildAgingOut:      func() Event { return &ChildAgingOut{} },
	TypeLosingESI:          func() Event { return &LosingESI{} },
}

// Decode builds an event from its wire type and raw JSON parameters.
// Unknown types and malformed parameter payloads are validation errors.
func Decode(eventType string, params []byte) (Event, error) {
	factory, ok := factories[eventType]
	if !ok {
		return nil, validation.Newf("lifeEvent.type", "unknown event type %q", eventType)
	}
	ev := factory()
	if len(params) > 0 {
		if err := json.Unmarshal(params, ev); err != nil {
			return nil, validation.Newf("lifeEvent.params", "malformed parameters for %s: %v", eventType, err)
		}
	}
	if d, ok := ev.(defaulter); ok {
		d.setDefaults()
	}
	return ev, nil
}

// Types lists the registered event type identifiers in stable order.
func Types() []string {
	out := make([]string, 0, len(factories))
	for t := range factories {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
