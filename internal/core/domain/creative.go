package domain

// ImageSize is a target size in pixels.
type ImageSize struct {
	Width  int
	Height int
}

var (
	// SquareImageSize is the size of square marketing images.
	SquareImageSize = ImageSize{Width: 1200, Height: 1200}
	// LandscapeImageSize is the size of landscape marketing images.
	LandscapeImageSize = ImageSize{Width: 1200, Height: 628}
)

// CustomParameter is a key/value pair substituted into tracking templates.
type CustomParameter struct {
	Key   string
	Value string
}

// AdGroupStatus is the serving status of an ad group or ad.
type AdGroupStatus string

const (
	AdGroupEnabled AdGroupStatus = "ENABLED"
	AdGroupPaused  AdGroupStatus = "PAUSED"
)

// AdGroupType is the kind of ad group.
type AdGroupType string

const AdGroupDisplayStandard AdGroupType = "DISPLAY_STANDARD"

// AdGroupSpec describes an ad group to create under Campaign.
type AdGroupSpec struct {
	Name     string
	Campaign string
	Status   AdGroupStatus
	Type     AdGroupType
}

// ResponsiveDisplayAd is a responsive display ad referencing uploaded image
// assets by resource name.
type ResponsiveDisplayAd struct {
	AdGroup         string
	Status          AdGroupStatus
	FinalURLs       []string
	BusinessName    string
	Headlines       []string
	LongHeadline    string
	Descriptions    []string
	CallToAction    string
	SquareImages    []string
	LandscapeImages []string
}
