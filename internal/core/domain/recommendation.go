package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// LocationHint is a location name together with the locale used to resolve
// it against geo target constants. The model emits it as a two element array
// ["Pakistan", "ur"]; the object form {"name": ..., "locale": ...} is accepted
// as well.
type LocationHint struct {
	Name   string `json:"name"`
	Locale string `json:"locale"`
}

func (l *LocationHint) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var pair []string
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}
		if len(pair) == 0 {
			return fmt.Errorf("empty location hint")
		}
		l.Name = pair[0]
		if len(pair) > 1 {
			l.Locale = pair[1]
		}
		return nil
	}
	type plain LocationHint
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*l = LocationHint(p)
	return nil
}

// LocationRecommendation is the location/language answer for a landing page.
type LocationRecommendation struct {
	Locations []LocationHint `json:"locations"`
	Language  StringList     `json:"language"`
}

// ScheduleHint is one recommended ad slot as emitted by the model.
type ScheduleHint struct {
	DayOfWeek string  `json:"day_of_week"`
	StartHour FlexInt `json:"start_hour"`
	EndHour   FlexInt `json:"end_hour"`
}

// ScheduleDeviceRecommendation is the schedule/device answer for a landing page.
type ScheduleDeviceRecommendation struct {
	AdSchedule []ScheduleHint `json:"ad_schedule"`
	Device     StringList     `json:"device"`
}

// Devices maps the recommended device names onto known devices. Unknown
// names are dropped.
func (r ScheduleDeviceRecommendation) Devices() []Device {
	out := make([]Device, 0, len(r.Device))
	for _, name := range r.Device {
		if d, ok := ParseDevice(name); ok {
			out = append(out, d)
		}
	}
	return out
}

// Schedules maps the recommended slots onto ad schedules starting and ending
// on the full hour. Slots with an unknown day are dropped.
func (r ScheduleDeviceRecommendation) Schedules() []AdSchedule {
	out := make([]AdSchedule, 0, len(r.AdSchedule))
	for _, h := range r.AdSchedule {
		day, ok := ParseDayOfWeek(h.DayOfWeek)
		if !ok {
			continue
		}
		out = append(out, AdSchedule{
			Day:         day,
			StartHour:   int(h.StartHour),
			EndHour:     int(h.EndHour),
			StartMinute: MinuteZero,
			EndMinute:   MinuteZero,
		})
	}
	return out
}

// CampaignElements holds the creative text recommended for a landing page.
type CampaignElements struct {
	BusinessName  string   `json:"business_name"`
	Headlines     []string `json:"headlines"`
	LongHeadlines []string `json:"long_headlines"`
	Descriptions  []string `json:"descriptions"`
}

// AudienceCriteria is the raw audience exclusion recommendation. Search
// terms are empty when no filter is wanted.
type AudienceCriteria struct {
	TaxonomyType             string     `json:"taxonomy_type"`
	AudienceSearchTerm       FlexString `json:"audience_search_term"`
	Segments                 []string   `json:"segments"`
	TopicsSearchTerm         FlexString `json:"topics_search_term"`
	Topics                   []string   `json:"topics"`
	PlacementExclusions      []string   `json:"placement_exclusions"`
	GenderExclusions         []string   `json:"gender_exclusions"`
	AgeRangeExclusions       []string   `json:"age_range_exclusions"`
	ParentalStatusExclusions []string   `json:"parental_status_exclusions"`
	IncomeRangeExclusions    []string   `json:"income_range_exclusions"`
}

// Clone returns a copy of a whose slices do not alias it.
func (a AudienceCriteria) Clone() AudienceCriteria {
	a.Segments = slices.Clone(a.Segments)
	a.Topics = slices.Clone(a.Topics)
	a.PlacementExclusions = slices.Clone(a.PlacementExclusions)
	a.GenderExclusions = slices.Clone(a.GenderExclusions)
	a.AgeRangeExclusions = slices.Clone(a.AgeRangeExclusions)
	a.ParentalStatusExclusions = slices.Clone(a.ParentalStatusExclusions)
	a.IncomeRangeExclusions = slices.Clone(a.IncomeRangeExclusions)
	return a
}

// Demographics maps the textual demographic exclusions onto known enum
// values, dropping anything unrecognised.
func (a AudienceCriteria) Demographics() DemographicExclusions {
	var d DemographicExclusions
	for _, v := range a.GenderExclusions {
		if g, ok := ParseGender(v); ok {
			d.Genders = append(d.Genders, g)
		}
	}
	for _, v := range a.AgeRangeExclusions {
		if r, ok := ParseAgeRange(v); ok {
			d.AgeRanges = append(d.AgeRanges, r)
		}
	}
	for _, v := range a.ParentalStatusExclusions {
		if p, ok := ParseParentalStatus(v); ok {
			d.ParentalStatuses = append(d.ParentalStatuses, p)
		}
	}
	for _, v := range a.IncomeRangeExclusions {
		if r, ok := ParseIncomeRange(v); ok {
			d.IncomeRanges = append(d.IncomeRanges, r)
		}
	}
	return d
}

// StringList decodes either a JSON string or an array of strings.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = StringList{v}
		return nil
	}
	var v []string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = v
	return nil
}

// FlexString decodes a JSON string, null, or an array of strings joined by a
// single space.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var list StringList
	if err := list.UnmarshalJSON(data); err != nil {
		return err
	}
	*f = FlexString(strings.Join(list, " "))
	return nil
}

// FlexInt decodes a JSON number or a numeric string.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", raw, err)
	}
	*f = FlexInt(v)
	return nil
}
