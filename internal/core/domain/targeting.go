package domain

import "strings"

// Device is a targetable device type.
type Device string

const (
	DeviceMobile      Device = "MOBILE"
	DeviceTablet      Device = "TABLET"
	DeviceDesktop     Device = "DESKTOP"
	DeviceConnectedTV Device = "CONNECTED_TV"
	DeviceOther       Device = "OTHER"
)

// DayOfWeek is a day used by ad schedule criteria.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// MinuteOfHour is the quarter hour granularity of ad schedules.
type MinuteOfHour string

const (
	MinuteZero      MinuteOfHour = "ZERO"
	MinuteFifteen   MinuteOfHour = "FIFTEEN"
	MinuteThirty    MinuteOfHour = "THIRTY"
	MinuteFortyFive MinuteOfHour = "FORTY_FIVE"
)

// AdSchedule restricts serving to a window on one day of the week.
type AdSchedule struct {
	Day         DayOfWeek
	StartHour   int
	EndHour     int
	StartMinute MinuteOfHour
	EndMinute   MinuteOfHour
}

// ContentLabel is a content category that can be excluded from a campaign.
type ContentLabel string

const (
	ContentLabelParkedDomain       ContentLabel = "PARKED_DOMAIN"
	ContentLabelSexuallySuggestive ContentLabel = "SEXUALLY_SUGGESTIVE"
	ContentLabelBelowTheFold       ContentLabel = "BELOW_THE_FOLD"
	ContentLabelTragedy            ContentLabel = "TRAGEDY"
	ContentLabelVideo              ContentLabel = "VIDEO"
	ContentLabelJuvenile           ContentLabel = "JUVENILE"
	ContentLabelProfanity          ContentLabel = "PROFANITY"
	ContentLabelEmbeddedVideo      ContentLabel = "EMBEDDED_VIDEO"
	ContentLabelLiveStreamingVideo ContentLabel = "LIVE_STREAMING_VIDEO"
	ContentLabelSocialIssues       ContentLabel = "SOCIAL_ISSUES"
)

// TaxonomyType is the user interest taxonomy searched for audience exclusions.
type TaxonomyType string

const (
	TaxonomyAffinity TaxonomyType = "AFFINITY"
	TaxonomyInMarket TaxonomyType = "IN_MARKET"
)

// Gender is a demographic gender criterion.
type Gender string

const (
	GenderMale         Gender = "MALE"
	GenderFemale       Gender = "FEMALE"
	GenderUndetermined Gender = "UNDETERMINED"
)

// AgeRange is a demographic age criterion.
type AgeRange string

const (
	AgeRange18To24       AgeRange = "AGE_RANGE_18_24"
	AgeRange25To34       AgeRange = "AGE_RANGE_25_34"
	AgeRange35To44       AgeRange = "AGE_RANGE_35_44"
	AgeRange45To54       AgeRange = "AGE_RANGE_45_54"
	AgeRange55To64       AgeRange = "AGE_RANGE_55_64"
	AgeRange65Up         AgeRange = "AGE_RANGE_65_UP"
	AgeRangeUndetermined AgeRange = "AGE_RANGE_UNDETERMINED"
)

// ParentalStatus is a demographic parental status criterion.
type ParentalStatus string

const (
	ParentalStatusParent       ParentalStatus = "PARENT"
	ParentalStatusNotAParent   ParentalStatus = "NOT_A_PARENT"
	ParentalStatusUndetermined ParentalStatus = "UNDETERMINED"
)

// IncomeRange is a household income percentile criterion.
type IncomeRange string

const (
	IncomeRange0To50        IncomeRange = "INCOME_RANGE_0_50"
	IncomeRange50To60       IncomeRange = "INCOME_RANGE_50_60"
	IncomeRange60To70       IncomeRange = "INCOME_RANGE_60_70"
	IncomeRange70To80       IncomeRange = "INCOME_RANGE_70_80"
	IncomeRange80To90       IncomeRange = "INCOME_RANGE_80_90"
	IncomeRange90Up         IncomeRange = "INCOME_RANGE_90_UP"
	IncomeRangeUndetermined IncomeRange = "INCOME_RANGE_UNDETERMINED"
)

// DemographicExclusions groups the negative demographic criteria of a campaign.
type DemographicExclusions struct {
	Genders          []Gender
	AgeRanges        []AgeRange
	ParentalStatuses []ParentalStatus
	IncomeRanges     []IncomeRange
}

// Empty reports whether no exclusion is set.
func (d DemographicExclusions) Empty() bool {
	return len(d.Genders) == 0 && len(d.AgeRanges) == 0 &&
		len(d.ParentalStatuses) == 0 && len(d.IncomeRanges) == 0
}

// enumKey normalises a free text label into an enum style key:
// "Not a parent" becomes "NOT_A_PARENT".
func enumKey(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

func lookup[T ~string](key string, known ...T) (T, bool) {
	for _, k := range known {
		if string(k) == key {
			return k, true
		}
	}
	var zero T
	return zero, false
}

// ParseDevice resolves a device name such as "Mobile" or "connected tv".
func ParseDevice(name string) (Device, bool) {
	return lookup(enumKey(name), DeviceMobile, DeviceTablet, DeviceDesktop, DeviceConnectedTV, DeviceOther)
}

// ParseDayOfWeek resolves a day name such as "monday".
func ParseDayOfWeek(name string) (DayOfWeek, bool) {
	return lookup(enumKey(name), Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday)
}

// ParseContentLabel resolves a content label such as "PARKED_DOMAIN".
func ParseContentLabel(name string) (ContentLabel, bool) {
	return lookup(enumKey(name),
		ContentLabelParkedDomain, ContentLabelSexuallySuggestive, ContentLabelBelowTheFold,
		ContentLabelTragedy, ContentLabelVideo, ContentLabelJuvenile, ContentLabelProfanity,
		ContentLabelEmbeddedVideo, ContentLabelLiveStreamingVideo, ContentLabelSocialIssues)
}

// ParseTaxonomyType maps "affinity" or "in-market" style names onto a
// TaxonomyType.
func ParseTaxonomyType(name string) (TaxonomyType, bool) {
	return lookup(enumKey(name), TaxonomyAffinity, TaxonomyInMarket)
}

// ParseGender resolves "Male", "Female" or "Undetermined".
func ParseGender(name string) (Gender, bool) {
	return lookup(enumKey(name), GenderMale, GenderFemale, GenderUndetermined)
}

// ParseAgeRange resolves labels such as "25-34" or "65+".
func ParseAgeRange(label string) (AgeRange, bool) {
	key := strings.ReplaceAll(enumKey(label), "+", "_UP")
	if !strings.HasPrefix(key, "AGE_RANGE_") {
		key = "AGE_RANGE_" + key
	}
	return lookup(key,
		AgeRange18To24, AgeRange25To34, AgeRange35To44, AgeRange45To54,
		AgeRange55To64, AgeRange65Up, AgeRangeUndetermined)
}

// ParseParentalStatus resolves "Parent", "Not a parent" or "Undetermined".
func ParseParentalStatus(label string) (ParentalStatus, bool) {
	return lookup(enumKey(label), ParentalStatusParent, ParentalStatusNotAParent, ParentalStatusUndetermined)
}

// ParseIncomeRange resolves percentile labels such as "70-80%" or "90%+".
func ParseIncomeRange(label string) (IncomeRange, bool) {
	key := strings.ReplaceAll(enumKey(label), "%", "")
	key = strings.ReplaceAll(key, "+", "_UP")
	if !strings.HasPrefix(key, "INCOME_RANGE_") {
		key = "INCOME_RANGE_" + key
	}
	return lookup(key,
		IncomeRange0To50, IncomeRange50To60, IncomeRange60To70, IncomeRange70To80,
		IncomeRange80To90, IncomeRange90Up, IncomeRangeUndetermined)
}
