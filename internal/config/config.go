package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
)

// Household is the fully compiled configuration: people, classification
// rules and day profiles. Built once at startup and passed explicitly to
// every core function — never ambient global state.
type Household struct {
	People   []domain.Person
	Rules    domain.RuleSet
	Profiles map[domain.DayType]domain.DayProfile
}

// Person returns the person with the given ID, or false.
func (h *Household) Person(id string) (domain.Person, bool) {
	for _, p := range h.People {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Person{}, false
}

// schema is the raw YAML shape of a household configuration file.
type schema struct {
	People []personConfig          `yaml:"people"`
	Rules  rulesConfig             `yaml:"rules"`
	Days   map[string][]stepConfig `yaml:"days"`
}

type personConfig struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Emoji string `yaml:"emoji"`
}

type rulesConfig struct {
	Weekdays     map[string]string `yaml:"weekdays"`
	Breaks       []breakConfig     `yaml:"breaks"`
	Overrides    map[string]string `yaml:"overrides"`
	SpecialDates []string          `yaml:"special_dates"`
	// SpecialRules are RRULE strings (e.g. "FREQ=YEARLY;BYMONTH=12;
	// BYMONTHDAY=24") materialized into special dates over the horizon.
	SpecialRules []string `yaml:"special_rules"`
}

type breakConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Type string `yaml:"type"`
}

type stepConfig struct {
	Key       string            `yaml:"key"`
	Person    string            `yaml:"person"`
	Title     string            `yaml:"title"`
	At        string            `yaml:"at"`
	OffsetMin *int              `yaml:"offset_min"`
	EveningAt map[string]string `yaml:"evening_at"`
	MinMin    *int              `yaml:"min_min"`
	BestMin   *int              `yaml:"best_min"`
	Fixed     bool              `yaml:"fixed"`
	DependsOn []string          `yaml:"depends_on"`
	Requires  []string          `yaml:"requires"`
	Helpers   []string          `yaml:"helpers"`
	Resource  string            `yaml:"resource"`
	Cluster   string            `yaml:"cluster"`
}

var weekdayNames = map[string]time.Weekday{
	"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday,
	"saturday": time.Saturday, "sunday": time.Sunday,
}

// Load reads, compiles and validates a household configuration file.
// Special-day recurrence rules are materialized into concrete dates over
// [horizonFrom, horizonTo]; the caller picks the horizon from its clock
// so the core itself stays clock-free.
func Load(path string, horizonFrom, horizonTo time.Time) (*Household, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, horizonFrom, horizonTo)
}

// Parse compiles a household configuration from raw YAML bytes.
func Parse(data []byte, horizonFrom, horizonTo time.Time) (*Household, error) {
	var raw schema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	h := &Household{Profiles: make(map[domain.DayType]domain.DayProfile)}

	for _, pc := range raw.People {
		h.People = append(h.People, domain.Person{
			ID:    pc.ID,
			Name:  pc.Name,
			Color: pc.Color,
			Emoji: pc.Emoji,
		})
	}

	rules, err := compileRules(raw.Rules, horizonFrom, horizonTo)
	if err != nil {
		return nil, err
	}
	h.Rules = rules

	for name, steps := range raw.Days {
		if !domain.ValidDayTypes[name] {
			return nil, &contract.ConfigError{
				Code:    contract.ConfigErrBadRule,
				Message: fmt.Sprintf("unknown day type %q", name),
			}
		}
		dayType := domain.DayType(name)
		profile := domain.DayProfile{Type: dayType}
		for _, sc := range steps {
			step, err := compileStep(sc)
			if err != nil {
				return nil, err
			}
			profile.Steps = append(profile.Steps, step)
		}
		h.Profiles[dayType] = profile
	}

	if err := Validate(h); err != nil {
		return nil, err
	}
	return h, nil
}

func compileRules(rc rulesConfig, from, to time.Time) (domain.RuleSet, error) {
	rules := domain.RuleSet{
		WeekdayTypes:  make(map[time.Weekday]domain.DayType),
		DateOverrides: make(map[string]domain.DayType),
	}

	for name, dayType := range rc.Weekdays {
		wd, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return rules, &contract.ConfigError{
				Code:    contract.ConfigErrBadRule,
				Message: fmt.Sprintf("unknown weekday %q", name),
			}
		}
		if !domain.ValidDayTypes[dayType] {
			return rules, &contract.ConfigError{
				Code:    contract.ConfigErrBadRule,
				Message: fmt.Sprintf("weekday %s: unknown day type %q", name, dayType),
			}
		}
		rules.WeekdayTypes[wd] = domain.DayType(dayType)
	}

	for _, bc := range rc.Breaks {
		fromDate, err := domain.ParseDateKey(bc.From)
		if err != nil {
			return rules, badRange(bc.From, err)
		}
		toDate, err := domain.ParseDateKey(bc.To)
		if err != nil {
			return rules, badRange(bc.To, err)
		}
		if toDate.Before(fromDate) {
			return rules, &contract.ConfigError{
				Code:    contract.ConfigErrBadRange,
				Message: fmt.Sprintf("break %s..%s ends before it starts", bc.From, bc.To),
			}
		}
		if !domain.ValidDayTypes[bc.Type] {
			return rules, &contract.ConfigError{
				Code:    contract.ConfigErrBadRule,
				Message: fmt.Sprintf("break %s..%s: unknown day type %q", bc.From, bc.To, bc.Type),
			}
		}
		rules.Breaks = append(rules.Breaks, domain.DateRange{
			From: fromDate,
			To:   toDate,
			Type: domain.DayType(bc.Type),
		})
	}

	for key, dayType := range rc.Overrides {
		if _, err := domain.ParseDateKey(key); err != nil {
			return rules, badRange(key, err)
		}
		if !domain.ValidDayTypes[dayType] {
			return rules, &contract.ConfigError{
				Code:    contract.ConfigErrBadRule,
				Message: fmt.Sprintf("override %s: unknown day type %q", key, dayType),
			}
		}
		rules.DateOverrides[key] = domain.DayType(dayType)
	}

	for _, s := range rc.SpecialDates {
		d, err := domain.ParseDateKey(s)
		if err != nil {
			return rules, badRange(s, err)
		}
		rules.SpecialDates = append(rules.SpecialDates, d)
	}

	for _, s := range rc.SpecialRules {
		opt, err := rrule.StrToROption(s)
		if err != nil {
			return rules, &contract.ConfigError{
				Code:    contract.ConfigErrBadRule,
				Message: fmt.Sprintf("recurrence rule %q: %v", s, err),
			}
		}
		if opt.Dtstart.IsZero() {
			opt.Dtstart = from
		}
		rule, err := rrule.NewRRule(*opt)
		if err != nil {
			return rules, &contract.ConfigError{
				Code:    contract.ConfigErrBadRule,
				Message: fmt.Sprintf("recurrence rule %q: %v", s, err),
			}
		}
		for _, occ := range rule.Between(from, to, true) {
			rules.SpecialDates = append(rules.SpecialDates, domain.DateOnly(occ))
		}
	}

	return rules, nil
}

func compileStep(sc stepConfig) (domain.TemplateStep, error) {
	step := domain.TemplateStep{
		Key:             sc.Key,
		PersonID:        sc.Person,
		Title:           sc.Title,
		At:              sc.At,
		OffsetMin:       sc.OffsetMin,
		MinDurationMin:  sc.MinMin,
		BestDurationMin: sc.BestMin,
		FixedStart:      sc.Fixed,
		DependsOn:       append([]string(nil), sc.DependsOn...),
		Resource:        sc.Resource,
		Cluster:         sc.Cluster,
	}

	if len(sc.EveningAt) > 0 {
		step.EveningAt = make(map[domain.DayType]string, len(sc.EveningAt))
		for name, clock := range sc.EveningAt {
			if !domain.ValidDayTypes[name] {
				return step, &contract.ConfigError{
					Code:    contract.ConfigErrBadRule,
					Message: fmt.Sprintf("step %q: unknown day type %q in evening_at", sc.Key, name),
				}
			}
			step.EveningAt[domain.DayType(name)] = clock
		}
	}

	for _, id := range sc.Requires {
		step.Involved = append(step.Involved, domain.Participant{PersonID: id, Role: domain.RoleRequired})
	}
	for _, id := range sc.Helpers {
		step.Involved = append(step.Involved, domain.Participant{PersonID: id, Role: domain.RoleHelper})
	}

	return step, nil
}

func badRange(value string, err error) error {
	return &contract.ConfigError{
		Code:    contract.ConfigErrBadRange,
		Message: fmt.Sprintf("date %q: %v", value, err),
	}
}
