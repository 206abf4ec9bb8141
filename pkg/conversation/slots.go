package conversation

// Slot identifies a single fact the engine collects over the course of a
// conversation. Values are the JSON keys the extraction backend emits.
type Slot string

const (
	SlotPestType      Slot = "pestType"
	SlotLocation      Slot = "location"
	SlotDuration      Slot = "duration"
	SlotFrequency     Slot = "frequency"
	SlotSignsOrDamage Slot = "signsOrDamage"
	SlotPriorAttempts Slot = "priorAttempts"

	SlotContactName          Slot = "contactName"
	SlotContactPhone         Slot = "contactPhone"
	SlotContactEmail         Slot = "contactEmail"
	SlotContactCity          Slot = "contactCity"
	SlotContactPreferredTime Slot = "contactPreferredTime"
)

// qualificationSlots must all be filled before the severity read-out is
// disclosed. Order doubles as the follow-up priority order.
var qualificationSlots = []Slot{
	SlotPestType,
	SlotLocation,
	SlotDuration,
	SlotFrequency,
	SlotSignsOrDamage,
	SlotPriorAttempts,
}

// contactSlots are collected after disclosure. Order is the follow-up
// priority order; a lead is persisted once every one of them is filled.
var contactSlots = []Slot{
	SlotContactName,
	SlotContactPhone,
	SlotContactEmail,
	SlotContactCity,
	SlotContactPreferredTime,
}

// followUpQuestions are the deterministic fallback prompts per slot.
var followUpQuestions = map[Slot]string{
	SlotPestType:             "What kind of pest are you dealing with? If you're not sure, describe what you've seen.",
	SlotLocation:             "Where in your home or property have you noticed the activity?",
	SlotDuration:             "How long has this been going on?",
	SlotFrequency:            "How often do you notice the activity - daily, a few times a week, or just occasionally?",
	SlotSignsOrDamage:        "Have you seen any droppings, damage, nests, or odors?",
	SlotPriorAttempts:        "Have you tried anything to deal with it so far - traps, sprays, a previous service?",
	SlotContactName:          "Could I have your name?",
	SlotContactPhone:         "What's the best phone number to reach you at?",
	SlotContactEmail:         "And your email address?",
	SlotContactCity:          "Which city or area are you located in?",
	SlotContactPreferredTime: "When is the best time for our team to call you?",
}

// Slots holds the facts collected so far, keyed by slot name.
type Slots map[Slot]string

// Merge copies values from extracted into s without overwriting anything
// already collected. Empty extracted values are ignored.
func (s Slots) Merge(extracted Slots) {
	for slot, value := range extracted {
		if value == "" {
			continue
		}
		if _, ok := s[slot]; ok {
			continue
		}
		s[slot] = value
	}
}

// Filled reports whether every slot in the given set has a value.
func (s Slots) Filled(slots []Slot) bool {
	for _, slot := range slots {
		if s[slot] == "" {
			return false
		}
	}
	return true
}

// NextMissing returns the highest-priority unfilled slot from the given
// set, or ("", false) when the set is complete.
func (s Slots) NextMissing(slots []Slot) (Slot, bool) {
	for _, slot := range slots {
		if s[slot] == "" {
			return slot, true
		}
	}
	return "", false
}
