package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Day is a day of the week in a meal plan slot key.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// Days lists all valid slot days in week order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// MealType is the meal position within a day.
type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Dinner    MealType = "Dinner"
	Snack     MealType = "Snack"
)

// MealTypes lists all valid meal types.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

// SlotKey addresses one cell of the weekly meal calendar.
type SlotKey struct {
	Day      Day
	MealType MealType
}

// Validate checks both sides of the key against their enumerations.
func (k SlotKey) Validate() error {
	dayOK := false
	for _, d := range Days {
		if k.Day == d {
			dayOK = true
			break
		}
	}
	if !dayOK {
		return fmt.Errorf("invalid day %q", k.Day)
	}
	for _, m := range MealTypes {
		if k.MealType == m {
			return nil
		}
	}
	return fmt.Errorf("invalid meal type %q", k.MealType)
}

// String renders the wire form of the key, e.g. "Monday-Dinner".
func (k SlotKey) String() string {
	return string(k.Day) + "-" + string(k.MealType)
}

// ParseSlotKey parses and validates a "<Day>-<MealType>" string.
func ParseSlotKey(s string) (SlotKey, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return SlotKey{}, fmt.Errorf("invalid slot key %q", s)
	}
	key := SlotKey{Day: Day(parts[0]), MealType: MealType(parts[1])}
	if err := key.Validate(); err != nil {
		return SlotKey{}, err
	}
	return key, nil
}

// MealSlots is the sparse mapping from slot key to recipe id. An absent
// key is an empty slot. Stored as a JSONB object keyed by the wire form.
type MealSlots map[SlotKey]uuid.UUID

// Set assigns a recipe to a slot, overwriting any existing assignment.
func (m MealSlots) Set(key SlotKey, recipeID uuid.UUID) {
	m[key] = recipeID
}

// Clear empties a slot. Clearing a never-set slot is a no-op.
func (m MealSlots) Clear(key SlotKey) {
	delete(m, key)
}

// Get returns the recipe assigned to a slot, if any.
func (m MealSlots) Get(key SlotKey) (uuid.UUID, bool) {
	id, ok := m[key]
	return id, ok
}

// MarshalJSON renders the map keyed by "<Day>-<MealType>".
func (m MealSlots) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k.String()] = v.String()
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses the wire form, rejecting keys outside the
// day/meal-type enumerations and values that are not recipe uuids.
func (m *MealSlots) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	slots := make(MealSlots, len(raw))
	for k, v := range raw {
		key, err := ParseSlotKey(k)
		if err != nil {
			return err
		}
		id, err := uuid.Parse(v)
		if err != nil {
			return fmt.Errorf("invalid recipe id for slot %s: %w", k, err)
		}
		slots[key] = id
	}
	*m = slots
	return nil
}

// Value implements the driver.Valuer interface
func (m MealSlots) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *MealSlots) Scan(value interface{}) error {
	if value == nil {
		*m = MealSlots{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return m.UnmarshalJSON(bytes)
}

// MealPlan maps one user's week onto the slot calendar. Slot values are
// not checked against the recipe table; a dangling reference renders as
// an empty slot on the client.
type MealPlan struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string         `gorm:"size:255;not null;default:'My Meal Plan'" json:"name"`
	WeekStartDate datatypes.Date `gorm:"not null;index:idx_meal_plans_user_week" json:"week_start_date"`
	Meals         MealSlots      `gorm:"type:jsonb;not null;default:'{}'" json:"meals"`
}

func (p *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
