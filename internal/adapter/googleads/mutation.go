package googleads

// Mutate service names as they appear in the REST path.
const (
	serviceCampaignBudgets   = "campaignBudgets"
	serviceBiddingStrategies = "biddingStrategies"
	serviceCampaigns         = "campaigns"
	serviceCampaignCriteria  = "campaignCriteria"
	serviceAdGroups          = "adGroups"
	serviceAdGroupAds        = "adGroupAds"
	serviceAssets            = "assets"
)

// operation is one entry of a mutate request for resources of type T.
// Exactly one of Create or Update is set.
type operation[T any] struct {
	Create     *T     `json:"create,omitempty"`
	Update     *T     `json:"update,omitempty"`
	UpdateMask string `json:"updateMask,omitempty"`
}

type mutateRequest[T any] struct {
	Operations []operation[T] `json:"operations"`
}

func create[T any](v T) operation[T] {
	return operation[T]{Create: &v}
}

func update[T any](v T, mask string) operation[T] {
	return operation[T]{Update: &v, UpdateMask: mask}
}

type campaignBudget struct {
	Name             string `json:"name"`
	AmountMicros     int64  `json:"amountMicros,string"`
	DeliveryMethod   string `json:"deliveryMethod"`
	ExplicitlyShared bool   `json:"explicitlyShared"`
}

type biddingStrategy struct {
	Name      string    `json:"name"`
	TargetCPA targetCPA `json:"targetCpa"`
}

type targetCPA struct {
	TargetCPAMicros int64 `json:"targetCpaMicros,string"`
}

type campaign struct {
	ResourceName                string           `json:"resourceName,omitempty"`
	Name                        string           `json:"name,omitempty"`
	AdvertisingChannelType      string           `json:"advertisingChannelType,omitempty"`
	Status                      string           `json:"status,omitempty"`
	CampaignBudget              string           `json:"campaignBudget,omitempty"`
	BiddingStrategy             string           `json:"biddingStrategy,omitempty"`
	StartDate                   string           `json:"startDate,omitempty"`
	EndDate                     string           `json:"endDate,omitempty"`
	NetworkSettings             *networkSettings `json:"networkSettings,omitempty"`
	AdServingOptimizationStatus string           `json:"adServingOptimizationStatus,omitempty"`
	TrackingURLTemplate         string           `json:"trackingUrlTemplate,omitempty"`
	URLCustomParameters         []customParam    `json:"urlCustomParameters,omitempty"`
}

type networkSettings struct {
	TargetGoogleSearch         bool `json:"targetGoogleSearch"`
	TargetContentNetwork       bool `json:"targetContentNetwork"`
	TargetPartnerSearchNetwork bool `json:"targetPartnerSearchNetwork"`
}

type customParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// campaignCriterion carries exactly one criterion field.
type campaignCriterion struct {
	Campaign       string            `json:"campaign"`
	Negative       bool              `json:"negative,omitempty"`
	Location       *locationInfo     `json:"location,omitempty"`
	Language       *languageInfo     `json:"language,omitempty"`
	Device         *typeInfo         `json:"device,omitempty"`
	AdSchedule     *adScheduleInfo   `json:"adSchedule,omitempty"`
	ContentLabel   *typeInfo         `json:"contentLabel,omitempty"`
	UserInterest   *userInterestInfo `json:"userInterest,omitempty"`
	Topic          *topicInfo        `json:"topic,omitempty"`
	Placement      *placementInfo    `json:"placement,omitempty"`
	Gender         *typeInfo         `json:"gender,omitempty"`
	AgeRange       *typeInfo         `json:"ageRange,omitempty"`
	ParentalStatus *typeInfo         `json:"parentalStatus,omitempty"`
	IncomeRange    *typeInfo         `json:"incomeRange,omitempty"`
}

type locationInfo struct {
	GeoTargetConstant string `json:"geoTargetConstant"`
}

type languageInfo struct {
	LanguageConstant string `json:"languageConstant"`
}

type typeInfo struct {
	Type string `json:"type"`
}

type adScheduleInfo struct {
	DayOfWeek   string `json:"dayOfWeek"`
	StartHour   int    `json:"startHour"`
	EndHour     int    `json:"endHour"`
	StartMinute string `json:"startMinute"`
	EndMinute   string `json:"endMinute"`
}

type userInterestInfo struct {
	UserInterestCategory string `json:"userInterestCategory"`
}

type topicInfo struct {
	TopicConstant string `json:"topicConstant"`
}

type placementInfo struct {
	URL string `json:"url"`
}

type adGroup struct {
	Name     string `json:"name"`
	Campaign string `json:"campaign"`
	Status   string `json:"status"`
	Type     string `json:"type"`
}

type asset struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	ImageAsset imageAssetInfo `json:"imageAsset"`
}

// imageAssetInfo.Data is base64 encoded by encoding/json, which is the
// representation the API expects for bytes fields.
type imageAssetInfo struct {
	Data []byte `json:"data"`
}

type adGroupAd struct {
	AdGroup string `json:"adGroup"`
	Status  string `json:"status"`
	Ad      ad     `json:"ad"`
}

type ad struct {
	FinalURLs           []string            `json:"finalUrls"`
	ResponsiveDisplayAd responsiveDisplayAd `json:"responsiveDisplayAd"`
}

type responsiveDisplayAd struct {
	BusinessName          string       `json:"businessName"`
	Headlines             []textAsset  `json:"headlines"`
	LongHeadline          textAsset    `json:"longHeadline"`
	Descriptions          []textAsset  `json:"descriptions"`
	CallToActionText      string       `json:"callToActionText,omitempty"`
	MarketingImages       []imageAsset `json:"marketingImages"`
	SquareMarketingImages []imageAsset `json:"squareMarketingImages"`
}

type textAsset struct {
	Text string `json:"text"`
}

type imageAsset struct {
	Asset string `json:"asset"`
}

func textAssets(texts []string) []textAsset {
	out := make([]textAsset, 0, len(texts))
	for _, t := range texts {
		out = append(out, textAsset{Text: t})
	}
	return out
}

func imageAssets(names []string) []imageAsset {
	out := make([]imageAsset, 0, len(names))
	for _, n := range names {
		out = append(out, imageAsset{Asset: n})
	}
	return out
}
